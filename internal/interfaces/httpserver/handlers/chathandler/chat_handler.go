package chathandler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"quill-server/internal/config"
	"quill-server/internal/domain/session"
	"quill-server/internal/infrastructure/metrics"
	"quill-server/internal/interfaces/httpserver/middlewares"
	chatrequests "quill-server/internal/interfaces/httpserver/requests/chat"
	"quill-server/internal/interfaces/httpserver/responses"
)

const defaultWidgetTitle = "Quill Chat"

// ChatHandler serves the chat widget and its turn endpoints. It
// resolves the browser session to a transcript controller and keeps
// HTTP concerns out of the domain layer.
type ChatHandler struct {
	registry *session.Registry
	cfg      *config.Config
	log      zerolog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(registry *session.Registry, cfg *config.Config, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		registry: registry,
		cfg:      cfg,
		log:      log,
	}
}

// GetWidget renders the full chat widget page.
func (h *ChatHandler) GetWidget(c *gin.Context) {
	sess, err := h.bindSession(c)
	if err != nil {
		responses.HandleInternalError(c, "unable to start chat session")
		return
	}

	view := WidgetView{
		Title:    defaultWidgetTitle,
		Entries:  TranscriptView(sess.Transcript()),
		Greeting: "",
	}
	if p := h.cfg.Profile; p != nil {
		if p.Title != "" {
			view.Title = p.Title
		}
		view.Greeting = p.Greeting
	}

	c.HTML(http.StatusOK, "widget", view)
}

// CreateTurn records one user turn and replies with the re-rendered
// transcript fragment. Blank input never reaches the controller.
func (h *ChatHandler) CreateTurn(c *gin.Context) {
	sess, err := h.bindSession(c)
	if err != nil {
		responses.HandleInternalError(c, "unable to start chat session")
		return
	}

	var request chatrequests.TurnRequest
	if err := c.ShouldBind(&request); err != nil {
		responses.HandleBadRequest(c, "message must not be empty")
		return
	}

	text := strings.TrimSpace(request.Message)
	sess.SendTurn(c.Request.Context(), text)

	c.HTML(http.StatusOK, "transcript", TranscriptView(sess.Transcript()))
}

// GetTranscript replies with the rendered transcript fragment. The
// widget re-fetches it whenever the event stream signals an update.
func (h *ChatHandler) GetTranscript(c *gin.Context) {
	sess, err := h.bindSession(c)
	if err != nil {
		responses.HandleInternalError(c, "unable to start chat session")
		return
	}

	c.HTML(http.StatusOK, "transcript", TranscriptView(sess.Transcript()))
}

// StreamEvents emits one SSE event per transcript update for the
// caller's session.
func (h *ChatHandler) StreamEvents(c *gin.Context) {
	sess, err := h.bindSession(c)
	if err != nil {
		responses.HandleInternalError(c, "unable to start chat session")
		return
	}

	flusher, ok := middlewares.PrepareSSE(c)
	if !ok {
		responses.HandleInternalError(c, "streaming unsupported")
		return
	}

	updates, cancel := sess.Updates.Subscribe()
	defer cancel()

	c.Writer.WriteHeaderNow()
	flusher.Flush()

	for {
		select {
		case <-updates:
			if _, err := fmt.Fprint(c.Writer, "event: transcript\ndata: {}\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

// bindSession resolves the session cookie to a live session, creating
// one (and setting the cookie) when needed.
func (h *ChatHandler) bindSession(c *gin.Context) (*session.Session, error) {
	cookieID, _ := c.Cookie(h.cfg.SessionCookieName)

	sess, created, err := h.registry.GetOrCreate(cookieID)
	if err != nil {
		h.log.Error().Err(err).Msg("session setup failed")
		return nil, err
	}
	if created {
		metrics.SessionsCreatedTotal.Inc()
		metrics.SessionsLive.Set(float64(h.registry.Count()))
		c.SetCookie(h.cfg.SessionCookieName, sess.ID, 0, "/", "", false, true)
	}
	return sess, nil
}
