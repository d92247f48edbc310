package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/brainydate/internal/llm"
)

// Source produces the question list for one quiz session. A returned Batch
// always holds at least one question.
type Source interface {
	Produce(ctx context.Context, count int) (Batch, error)
}

// SourceObserver is told which path served each batch.
type SourceObserver interface {
	ObserveQuestionSource(origin string)
}

var errNoProvider = errors.New("no llm provider configured")

// LLMSource asks a model for the question set and falls back to the
// built-in list on any failure.
type LLMSource struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
	observer SourceObserver
}

// Option customises an LLMSource.
type Option func(*LLMSource)

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *LLMSource) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSourceObserver records every served batch.
func WithSourceObserver(o SourceObserver) Option {
	return func(s *LLMSource) { s.observer = o }
}

// NewLLMSource builds a source. A nil provider is allowed and means every
// call is served from the fallback list.
func NewLLMSource(provider llm.Provider, cfg Config, opts ...Option) *LLMSource {
	s := &LLMSource{provider: provider, config: cfg, logger: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// setOutput is the raw model reply.
type setOutput struct {
	Questions []Question `json:"questions"`
}

// Produce returns count questions. A valid live list is returned as is,
// even when shorter than asked for.
func (s *LLMSource) Produce(ctx context.Context, count int) (Batch, error) {
	if count <= 0 {
		return Batch{}, ErrNoQuestions
	}

	qs, err := s.generate(ctx, count)
	if err == nil {
		s.observe(OriginLive)
		return Batch{Questions: qs, Origin: OriginLive}, nil
	}

	// A caller that went away gets nothing; the batch would be discarded.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Batch{}, ctxErr
	}

	s.logger.Warn("question generation failed, using built-in questions",
		zap.Error(err),
		zap.String("outcome", llm.Classify(err)),
		zap.Int("count", count),
	)
	s.observe(OriginFallback)
	return Batch{Questions: Fallback(count), Origin: OriginFallback, FallbackReason: err}, nil
}

func (s *LLMSource) generate(ctx context.Context, count int) ([]Question, error) {
	if s.provider == nil {
		return nil, errNoProvider
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(count)},
		},
		Schema:      SetSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out setOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned no questions: %w", ErrNoQuestions)
	}
	if err := validateAll(out.Questions, s.config.Validators); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (s *LLMSource) observe(origin Origin) {
	if s.observer != nil {
		s.observer.ObserveQuestionSource(string(origin))
	}
}
