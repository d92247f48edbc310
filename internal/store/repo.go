package store

import (
	"context"
	"time"
)

// QueryOpts filters event queries.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only
}

// LLMRequestEventData is one provider call as handed to AppendLLMRequest.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored provider call.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates calls under one key (purpose or model).
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
	Failures     int
}

// Quiz session actions.
const (
	SessionStart  = "start"
	SessionFinish = "finish"
)

// Question sources.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// SessionEventData records the lifecycle of one test attempt. No profile
// data is ever stored.
type SessionEventData struct {
	SessionID         string
	Action            string
	Source            string
	TotalQuestions    int
	QuestionsAnswered int
	CorrectAnswers    int
	Score             int
	DurationSecs      int
}

// SessionEvent is a stored session row.
type SessionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// SessionStats summarizes every recorded attempt.
type SessionStats struct {
	Started   int
	Finished  int
	Abandoned int
	BestScore int
	AvgScore  float64
	LiveShare float64 // fraction of started sessions served by a live provider
}

// EventRepo is the append-only event log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
	// GetLLMEvent returns nil, nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)
	SessionStats(ctx context.Context) (SessionStats, error)
}
