package chathandler

import (
	"html/template"

	"quill-server/internal/domain/chat"
	"quill-server/internal/utils/markup"
)

// EntryView is one rendered transcript entry. Body is pre-sanitized by
// the image rewriter and must not be escaped again by the template.
type EntryView struct {
	Role    string
	Who     string
	Body    template.HTML
	IsError bool
}

// WidgetView feeds the full widget page template.
type WidgetView struct {
	Title    string
	Greeting string
	Entries  []EntryView
}

// TranscriptView renders transcript entries for display. The system
// seed is internal context for the model and never shown.
func TranscriptView(messages []chat.Message) []EntryView {
	entries := make([]EntryView, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == chat.RoleSystem {
			continue
		}

		who := "Assistant"
		if msg.Role == chat.RoleUser {
			who = "You"
		}

		entries = append(entries, EntryView{
			Role:    msg.Role.String(),
			Who:     who,
			Body:    markup.RewriteImages(msg.Content),
			IsError: msg.IsError,
		})
	}
	return entries
}
