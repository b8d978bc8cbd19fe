package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"quill-server/internal/domain/chat"
)

type echoCompleter struct{}

func (echoCompleter) Complete(_ context.Context, messages []chat.Message) (chat.Message, error) {
	last := messages[len(messages)-1]
	return chat.NewAssistantMessage("echo: " + last.Content), nil
}

func newTestRegistry(idle time.Duration) *Registry {
	factory := func() *chat.TranscriptService {
		return chat.NewTranscriptService(echoCompleter{}, zerolog.Nop(), "test prompt")
	}
	return NewRegistry(factory, idle, zerolog.Nop())
}

func TestRegistryCreateAndGet(t *testing.T) {
	r := newTestRegistry(time.Hour)

	sess, err := r.Create()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(sess.ID, "sess_") {
		t.Errorf("unexpected session id %q", sess.ID)
	}

	got, ok := r.Get(sess.ID)
	if !ok || got != sess {
		t.Fatal("created session not retrievable")
	}
	if r.Count() != 1 {
		t.Errorf("expected 1 session, got %d", r.Count())
	}
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := newTestRegistry(time.Hour)

	first, created, err := r.GetOrCreate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("empty id must create a session")
	}

	same, created, err := r.GetOrCreate(first.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same != first || created {
		t.Error("known id must resolve to the existing session")
	}

	fresh, created, err := r.GetOrCreate("sess_unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh == first || !created {
		t.Error("unknown id must start a new session")
	}
	if r.Count() != 2 {
		t.Errorf("expected 2 sessions, got %d", r.Count())
	}
}

func TestSessionSendTurnNotifiesSubscribers(t *testing.T) {
	r := newTestRegistry(time.Hour)
	sess, _ := r.Create()

	updates, cancel := sess.Updates.Subscribe()
	defer cancel()

	sess.SendTurn(context.Background(), "hi")

	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("no update signal received")
	}

	messages := sess.Transcript()
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[2].Content != "echo: hi" {
		t.Errorf("unexpected reply %q", messages[2].Content)
	}
}

type gatedCompleter struct {
	release chan struct{}
}

func (g *gatedCompleter) Complete(_ context.Context, _ []chat.Message) (chat.Message, error) {
	<-g.release
	return chat.NewAssistantMessage("done"), nil
}

// The widget fetches the transcript as soon as the first update signal
// arrives, while the turn is still waiting on the completer. That read
// must be safe under the race detector and must already show the user
// entry.
func TestTranscriptReadDuringInFlightTurn(t *testing.T) {
	gate := &gatedCompleter{release: make(chan struct{})}
	factory := func() *chat.TranscriptService {
		return chat.NewTranscriptService(gate, zerolog.Nop(), "test prompt")
	}
	r := NewRegistry(factory, time.Hour, zerolog.Nop())
	sess, _ := r.Create()

	updates, cancel := sess.Updates.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		sess.SendTurn(context.Background(), "question")
		close(done)
	}()

	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("no update signal for the user entry")
	}

	messages := sess.Transcript()
	if len(messages) != 2 {
		t.Fatalf("expected system seed plus user entry mid-turn, got %d messages", len(messages))
	}
	if messages[1].Content != "question" {
		t.Errorf("unexpected newest entry %q", messages[1].Content)
	}

	close(gate.release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("turn did not finish")
	}

	messages = sess.Transcript()
	if len(messages) != 3 || messages[2].Content != "done" {
		t.Fatalf("assistant entry missing from final snapshot: %d messages", len(messages))
	}
}

func TestSweepIdleEvictsOnlyStaleSessions(t *testing.T) {
	r := newTestRegistry(50 * time.Millisecond)

	stale, _ := r.Create()
	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-time.Minute)
	stale.mu.Unlock()

	live, _ := r.Create()

	if removed := r.SweepIdle(); removed != 1 {
		t.Fatalf("expected 1 eviction, got %d", removed)
	}
	if _, ok := r.Get(stale.ID); ok {
		t.Error("stale session still live")
	}
	if _, ok := r.Get(live.ID); !ok {
		t.Error("live session evicted")
	}
}

func TestBroadcasterCoalescesAndUnsubscribes(t *testing.T) {
	b := NewBroadcaster()

	ch, cancel := b.Subscribe()
	b.Notify()
	b.Notify() // coalesced into the buffered slot

	select {
	case <-ch:
	default:
		t.Fatal("expected a pending signal")
	}

	cancel()
	if b.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", b.SubscriberCount())
	}
	b.Notify() // must not panic or block
}
