// Package inference implements the completion capability against any
// OpenAI-compatible chat API. The remote side carries no conversation
// state; the full transcript is sent on every call.
package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"resty.dev/v3"

	"quill-server/internal/config"
	"quill-server/internal/domain/chat"
	"quill-server/internal/infrastructure/metrics"
	"quill-server/internal/infrastructure/observability"
	"quill-server/internal/utils/httpclients"
)

const errorBodySnippetLen = 512

// CompletionClient calls a hosted chat-completion endpoint. It
// implements chat.Completer.
type CompletionClient struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

// NewCompletionClient builds a client from the provider configuration.
func NewCompletionClient(cfg *config.Config, log zerolog.Logger) *CompletionClient {
	return &CompletionClient{
		client:  httpclients.NewClient("chat-completions"),
		baseURL: normalizeBaseURL(cfg.ChatAPIBaseURL),
		apiKey:  cfg.ChatAPIKey,
		model:   cfg.ChatModel,
		timeout: cfg.CompletionTimeout,
		log:     log,
	}
}

// Complete sends the transcript to the remote API and returns the next
// assistant message. No retries; timeout and cancellation live here,
// not in the transcript controller.
func (c *CompletionClient) Complete(ctx context.Context, messages []chat.Message) (chat.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := observability.StartSpan(ctx, "quill-server", "CompletionClient.Complete")
	defer span.End()
	observability.AddSpanAttributes(ctx,
		attribute.String("chat.model", c.model),
		attribute.Int("chat.message_count", len(messages)),
	)

	start := time.Now()
	reply, err := c.complete(ctx, messages)
	metrics.RecordTurn(c.model, err != nil, time.Since(start).Seconds())
	if err != nil {
		observability.RecordError(ctx, err)
		return chat.Message{}, err
	}
	return reply, nil
}

func (c *CompletionClient) complete(ctx context.Context, messages []chat.Message) (chat.Message, error) {
	request := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toOpenAIMessages(messages),
	}

	var respBody openai.ChatCompletionResponse
	resp, err := c.prepareRequest(ctx).
		SetBody(request).
		SetResult(&respBody).
		Post(c.endpoint("/chat/completions"))
	if err != nil {
		return chat.Message{}, fmt.Errorf("chat completion request: %w", err)
	}
	if resp.IsError() {
		return chat.Message{}, fmt.Errorf("chat completion request failed: %s: %s", resp.Status(), bodySnippet(resp))
	}
	if len(respBody.Choices) == 0 {
		return chat.Message{}, errors.New("chat completion response contained no choices")
	}

	c.log.Debug().
		Str("model", respBody.Model).
		Int("prompt_tokens", respBody.Usage.PromptTokens).
		Int("completion_tokens", respBody.Usage.CompletionTokens).
		Msg("chat completion ok")

	return chat.NewAssistantMessage(respBody.Choices[0].Message.Content), nil
}

func (c *CompletionClient) prepareRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	if strings.TrimSpace(c.apiKey) != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	return req
}

func (c *CompletionClient) endpoint(path string) string {
	if path == "" {
		return c.baseURL
	}
	if c.baseURL == "" {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return c.baseURL + "/" + path
}

func toOpenAIMessages(messages []chat.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    msg.Role.String(),
			Content: msg.Content,
		})
	}
	return out
}

func normalizeBaseURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}

func bodySnippet(resp *resty.Response) string {
	body := resp.String()
	if len(body) > errorBodySnippetLen {
		body = body[:errorBodySnippetLen] + "..."
	}
	return body
}
