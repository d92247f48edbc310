// Package iqtest is the timed IQ test screen.
package iqtest

import (
	"context"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/brainydate/internal/flow"
	"github.com/abhisek/brainydate/internal/quiz"
	"github.com/abhisek/brainydate/internal/screen"
	sess "github.com/abhisek/brainydate/internal/session"
	"github.com/abhisek/brainydate/internal/store"
	"github.com/abhisek/brainydate/internal/ui/components"
	"github.com/abhisek/brainydate/internal/ui/layout"
)

// Session outcomes reported to the SessionObserver.
const (
	OutcomeFinished  = "finished"
	OutcomeTimedOut  = "timed_out"
	OutcomeAbandoned = "abandoned"
	OutcomeError     = "error"
)

// SessionObserver is told how every session ended.
type SessionObserver interface {
	ObserveSession(outcome string, score int, scored bool)
}

// Deps are the collaborators of the test screen. Only Source is required.
type Deps struct {
	Source   quiz.Source
	Events   store.EventRepo
	Observer SessionObserver
	Logger   *zap.Logger
	Config   sess.Config

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// Screen runs one quiz session.
type Screen struct {
	deps    Deps
	state   *sess.State
	answers components.AnswerList

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.Closer = (*Screen)(nil)

// New creates a test screen with a fresh session.
func New(deps Deps) *Screen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	if deps.Config.TotalQuestions <= 0 {
		deps.Config = sess.DefaultConfig()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Screen{
		deps:   deps,
		state:  sess.NewState(deps.NewID(), deps.Config),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Screen) Title() string {
	return "IQ Test"
}

// State exposes the session for the app and tests.
func (s *Screen) State() *sess.State {
	return s.state
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.state.Phase != sess.PhaseActive || s.state.Locked {
		return nil
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.fetchQuestions()
}

// Close cancels any in-flight generation. A session that had not finished
// is recorded as abandoned.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()

	if s.state.Phase == sess.PhaseLoading || s.state.Phase == sess.PhaseActive {
		s.observe(OutcomeAbandoned, 0, false)
		s.deps.Logger.Info("quiz session abandoned",
			zap.String("session_id", s.state.SessionID),
			zap.String("phase", s.state.Phase.String()),
			zap.Int("answered", s.state.Index),
		)
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.closed {
		return s, nil
	}

	switch msg := msg.(type) {
	case questionsMsg:
		return s.handleQuestions(msg)

	case tickMsg:
		return s.handleTick(msg)

	case advanceMsg:
		return s.handleAdvance(msg)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// fetchQuestions asks the source for the whole set in one call.
func (s *Screen) fetchQuestions() tea.Cmd {
	ctx := s.ctx
	id := s.state.SessionID
	count := s.deps.Config.TotalQuestions
	src := s.deps.Source
	return func() tea.Msg {
		if src == nil {
			return questionsMsg{SessionID: id, Err: quiz.ErrNoQuestions}
		}
		batch, err := src.Produce(ctx, count)
		return questionsMsg{SessionID: id, Batch: batch, Err: err}
	}
}

func (s *Screen) handleQuestions(msg questionsMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.state.SessionID || s.state.Phase != sess.PhaseLoading {
		return s, nil
	}

	err := msg.Err
	if err == nil {
		err = sess.Start(s.state, msg.Batch, s.deps.Now())
	} else {
		sess.Fail(s.state, err)
	}
	if err != nil {
		s.deps.Logger.Error("quiz session has no questions",
			zap.String("session_id", s.state.SessionID),
			zap.Error(err),
		)
		s.observe(OutcomeError, 0, false)
		return s, nil
	}

	s.resetAnswers()
	s.appendEvent(store.SessionStart)
	s.deps.Logger.Info("quiz session started",
		zap.String("session_id", s.state.SessionID),
		zap.String("source", string(s.state.Source)),
		zap.Int("questions", len(s.state.Questions)),
	)
	return s, s.tickCmd()
}

func (s *Screen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.state.SessionID || s.state.Phase != sess.PhaseActive {
		return s, nil
	}
	if sess.Tick(s.state, s.deps.Now()) {
		return s, s.finish()
	}
	return s, s.tickCmd()
}

func (s *Screen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.state.SessionID || msg.Index != s.state.Index || !s.state.Locked {
		return s, nil
	}
	if sess.Advance(s.state, s.deps.Now()) {
		return s, s.finish()
	}
	s.resetAnswers()
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.state.Phase != sess.PhaseActive || s.state.Locked {
		return s, nil
	}

	switch key := msg.String(); key {
	case "1", "2", "3", "4":
		opt, _ := strconv.Atoi(key)
		return s, s.selectOption(opt - 1)
	case "up", "k":
		s.answers.Up()
	case "down", "j":
		s.answers.Down()
	case "enter":
		return s, s.selectOption(s.answers.Cursor)
	}
	return s, nil
}

// selectOption locks an answer and schedules the advance.
func (s *Screen) selectOption(opt int) tea.Cmd {
	if !sess.Select(s.state, opt) {
		return nil
	}
	s.answers.Cursor = opt
	s.answers.Locked = opt
	s.answers.Correct = s.state.LastCorrect

	id, index := s.state.SessionID, s.state.Index
	return tea.Tick(s.deps.Config.AnswerDelay, func(time.Time) tea.Msg {
		return advanceMsg{SessionID: id, Index: index}
	})
}

// finish records the result and hands the score to the flow. It runs at
// most once per session.
func (s *Screen) finish() tea.Cmd {
	score, ok := sess.TakeScore(s.state)
	if !ok {
		return nil
	}

	summary := sess.BuildSummary(s.state)
	outcome := OutcomeFinished
	if summary.QuestionsAnswered < summary.TotalQuestions && s.state.RemainingSecs <= 0 {
		outcome = OutcomeTimedOut
	}

	s.appendEvent(store.SessionFinish)
	s.observe(outcome, score, true)
	s.deps.Logger.Info("quiz session finished",
		zap.String("session_id", summary.SessionID),
		zap.String("outcome", outcome),
		zap.Int("score", score),
		zap.Int("correct", summary.Correct),
		zap.Int("answered", summary.QuestionsAnswered),
		zap.Duration("duration", summary.Duration),
	)
	return screen.Emit(flow.TestCompleted{Score: score})
}

func (s *Screen) appendEvent(action string) {
	if s.deps.Events == nil {
		return
	}
	summary := sess.BuildSummary(s.state)
	data := store.SessionEventData{
		SessionID:      summary.SessionID,
		Action:         action,
		Source:         summary.Source,
		TotalQuestions: summary.TotalQuestions,
	}
	if action == store.SessionFinish {
		data.QuestionsAnswered = summary.QuestionsAnswered
		data.CorrectAnswers = summary.Correct
		data.Score = summary.Score
		data.DurationSecs = int(summary.Duration.Seconds())
	}
	if err := s.deps.Events.AppendSessionEvent(s.ctx, data); err != nil {
		s.deps.Logger.Warn("failed to record session event",
			zap.String("session_id", summary.SessionID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func (s *Screen) observe(outcome string, score int, scored bool) {
	if s.deps.Observer != nil {
		s.deps.Observer.ObserveSession(outcome, score, scored)
	}
}

func (s *Screen) resetAnswers() {
	q, ok := sess.CurrentQuestion(s.state)
	if !ok {
		return
	}
	s.answers = components.NewAnswerList(q.Options)
}

// tickCmd returns a 1-second tick for the current session.
func (s *Screen) tickCmd() tea.Cmd {
	id := s.state.SessionID
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{SessionID: id}
	})
}
