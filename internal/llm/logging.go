package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/brainydate/internal/store"
)

// RequestRecorder persists one row per provider call.
type RequestRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider records every call to the event log and emits a zap line.
type LoggingProvider struct {
	inner    Provider
	provider string
	recorder RequestRecorder
	logger   *zap.Logger
}

// WithLogging wraps p. Either recorder or logger may be nil.
func WithLogging(p Provider, providerName string, recorder RequestRecorder, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, provider: providerName, recorder: recorder, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		l.logger.Warn("llm request failed",
			zap.String("provider", l.provider),
			zap.String("model", data.Model),
			zap.String("purpose", purpose),
			zap.String("class", Classify(err)),
			zap.Duration("latency", latency),
			zap.Error(err))
	} else {
		l.logger.Info("llm request",
			zap.String("provider", l.provider),
			zap.String("model", data.Model),
			zap.String("purpose", purpose),
			zap.Int("input_tokens", data.InputTokens),
			zap.Int("output_tokens", data.OutputTokens),
			zap.Duration("latency", latency))
	}

	if l.recorder != nil {
		// A context already cancelled by the caller must not lose the row.
		if logErr := l.recorder.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
			l.logger.Warn("failed to record llm request event", zap.Error(logErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
