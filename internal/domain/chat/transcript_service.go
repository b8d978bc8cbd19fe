package chat

import (
	"context"

	"github.com/rs/zerolog"
)

// ApologyPrefix opens the assistant entry recorded for a failed turn.
const ApologyPrefix = "Sorry, I was unable to get a reply: "

// Completer produces the next assistant turn for a full transcript.
// The remote side is assumed stateless: the whole history, including
// the leading system message, is sent on every call.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (Message, error)
}

// TranscriptService orchestrates chat turns for a single conversation.
// It owns the transcript, appends turns, calls out to the completion
// capability and signals the caller after each mutation so the caller
// can re-render.
//
// One instance serves exactly one conversation. The service holds no
// lock; callers must not start a second turn while one is outstanding,
// which the widget enforces by disabling input while a turn is in
// flight.
type TranscriptService struct {
	transcript *Transcript
	completer  Completer
	log        zerolog.Logger
}

// NewTranscriptService creates a controller for a fresh conversation
// seeded with the given system prompt.
func NewTranscriptService(completer Completer, log zerolog.Logger, systemPrompt string) *TranscriptService {
	return &TranscriptService{
		transcript: NewTranscript(systemPrompt),
		completer:  completer,
		log:        log,
	}
}

// Transcript returns the conversation history for display.
func (s *TranscriptService) Transcript() []Message {
	return s.transcript.Messages()
}

// SendTurn records text as a user turn, obtains the assistant reply and
// records it. onUpdate is invoked exactly twice: once right after the
// user entry is appended, so observers can show it before the network
// round-trip begins, and once after the assistant entry (reply or
// error) lands.
//
// Completion failures never escape: they are recorded as an
// assistant-role error entry and logged.
//
// text is recorded literally; trimming and rejecting empty input is the
// caller's responsibility.
func (s *TranscriptService) SendTurn(ctx context.Context, text string, onUpdate func()) {
	s.transcript.Append(NewUserMessage(text))
	s.notify(onUpdate)

	s.log.Info().
		Int("transcript_len", s.transcript.Len()).
		Msg("requesting chat completion")

	reply, err := s.completer.Complete(ctx, s.transcript.Messages())
	if err != nil {
		s.log.Error().Err(err).Msg("chat completion failed")
		s.transcript.Append(NewAssistantErrorMessage(ApologyPrefix + err.Error()))
		s.notify(onUpdate)
		return
	}

	s.transcript.Append(NewAssistantMessage(reply.Content))
	s.notify(onUpdate)
}

func (s *TranscriptService) notify(onUpdate func()) {
	if onUpdate != nil {
		onUpdate()
	}
}
