package llm

import (
	"context"
	"time"
)

// RequestObserver receives timing for every provider call.
type RequestObserver interface {
	ObserveLLMRequest(purpose, outcome string, elapsed time.Duration)
}

type instrumentedProvider struct {
	inner    Provider
	observer RequestObserver
}

// WithObserver reports each call's purpose, outcome class and latency.
func WithObserver(p Provider, obs RequestObserver) Provider {
	if obs == nil {
		return p
	}
	return &instrumentedProvider{inner: p, observer: obs}
}

func (i *instrumentedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := i.inner.Generate(ctx, req)
	i.observer.ObserveLLMRequest(PurposeFrom(ctx), Classify(err), time.Since(start))
	return resp, err
}

func (i *instrumentedProvider) ModelID() string { return i.inner.ModelID() }

type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout bounds every Generate call by d. A non-positive d disables it.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string { return t.inner.ModelID() }
