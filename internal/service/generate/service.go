// Package generate invokes the upstream chat model and applies the bounded
// retry policy with per-class failure handling.
package generate

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/chat"
	"github.com/anushka369/Marketing-Mavericks-Agent/internal/service/prompt"
	"github.com/anushka369/Marketing-Mavericks-Agent/internal/service/validate"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
	defaultMaxRetries  = 3
)

var errEmptyCompletion = errors.New("upstream returned an empty completion")

// Config tunes sampling and the retry budget. Zero values select defaults.
type Config struct {
	Temperature float32
	MaxTokens   int
	MaxRetries  int
	// Sleep is the delay function used between attempts; tests inject a
	// recording no-op here.
	Sleep func(time.Duration)
}

// Service encapsulates content generation against an injected chat model.
type Service struct {
	chatModel   model.BaseChatModel
	temperature float32
	maxTokens   int
	maxRetries  int
	sleep       func(time.Duration)
}

// NewService creates a generator bound to the supplied chat model.
func NewService(chatModel model.BaseChatModel, cfg Config) *Service {
	s := &Service{
		chatModel:   chatModel,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		maxRetries:  cfg.MaxRetries,
		sleep:       cfg.Sleep,
	}
	if s.temperature == 0 {
		s.temperature = defaultTemperature
	}
	if s.maxTokens == 0 {
		s.maxTokens = defaultMaxTokens
	}
	if s.maxRetries == 0 {
		s.maxRetries = defaultMaxRetries
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	return s
}

// Generate produces a completion for userMessage, retrying transient
// upstream failures up to the configured budget. Retries are strictly
// sequential; the returned error is always a *Error with a user-facing
// message.
func (s *Service) Generate(ctx context.Context, userMessage string, history []chat.Message, brandCtx *brand.Context) (string, error) {
	messages := s.buildMessages(userMessage, history, brandCtx)

	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		resp, err := s.chatModel.Generate(ctx, messages,
			model.WithTemperature(s.temperature),
			model.WithMaxTokens(s.maxTokens),
		)
		if err == nil {
			content, ok := validate.Output(resp.Content)
			if ok {
				if attempt > 0 {
					log.Printf("[generate] succeeded after %d retries, template=%s", attempt, prompt.TemplateName(userMessage))
				}
				return content, nil
			}
			err = errEmptyCompletion
		}

		if ctx.Err() != nil {
			return "", s.terminal(ClassCanceled, ctx.Err())
		}

		lastErr = err
		class := classify(err)
		log.Printf("[generate] attempt %d/%d failed (%s): %v", attempt+1, s.maxRetries, class, err)

		// Auth and malformed-request failures never recover on retry.
		if class == ClassAuth || class == ClassBadRequest {
			return "", s.terminal(class, err)
		}

		if attempt < s.maxRetries-1 {
			s.sleep(backoffDelay(class, attempt))
		}
	}

	return "", s.terminal(classify(lastErr), lastErr)
}

// Stream produces a streaming completion. Streaming is single-attempt:
// chunks already sent cannot be retried.
func (s *Service) Stream(ctx context.Context, userMessage string, history []chat.Message, brandCtx *brand.Context) (*schema.StreamReader[*schema.Message], error) {
	messages := s.buildMessages(userMessage, history, brandCtx)

	stream, err := s.chatModel.Stream(ctx, messages,
		model.WithTemperature(s.temperature),
		model.WithMaxTokens(s.maxTokens),
	)
	if err != nil {
		return nil, s.terminal(classify(err), err)
	}
	return stream, nil
}

// buildMessages assembles the ordered model input: system prompt first,
// prior user/assistant turns next (system-role history is dropped), the new
// user message last.
func (s *Service) buildMessages(userMessage string, history []chat.Message, brandCtx *brand.Context) []*schema.Message {
	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(prompt.Build(userMessage, brandCtx)))

	for _, msg := range history {
		switch msg.Role {
		case chat.RoleUser:
			messages = append(messages, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return append(messages, schema.UserMessage(userMessage))
}

func (s *Service) terminal(class Class, cause error) *Error {
	return &Error{
		Class:   class,
		Status:  statusFromError(cause),
		Message: userMessage(class, cause),
		cause:   cause,
	}
}

// backoffDelay returns the wait before the next attempt: exponential for
// rate limits (1s, 2s, 4s, ...), a flat second for everything else.
func backoffDelay(class Class, attempt int) time.Duration {
	if class == ClassRateLimited {
		return time.Second << attempt
	}
	return time.Second
}
