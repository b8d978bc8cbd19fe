package chat

// Transcript is the append-only ordered message history of one
// conversation. It is owned by exactly one TranscriptService; nothing
// else mutates it.
type Transcript struct {
	messages []Message
}

// NewTranscript creates a transcript seeded with one system message
// describing assistant behavior. The seed happens before any user
// interaction.
func NewTranscript(systemPrompt string) *Transcript {
	return &Transcript{
		messages: []Message{NewSystemMessage(systemPrompt)},
	}
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg Message) {
	t.messages = append(t.messages, msg)
}

// Messages returns a copy of the transcript entries in order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Last returns the most recent entry. The system seed guarantees the
// transcript is never empty.
func (t *Transcript) Last() Message {
	return t.messages[len(t.messages)-1]
}

// Len returns the number of entries including the system seed.
func (t *Transcript) Len() int {
	return len(t.messages)
}
