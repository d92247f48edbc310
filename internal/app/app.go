// Package app is the root Bubble Tea model. It owns the screen flow and
// builds the screen for each flow state.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/brainydate/internal/flow"
	"github.com/abhisek/brainydate/internal/match"
	"github.com/abhisek/brainydate/internal/quiz"
	"github.com/abhisek/brainydate/internal/router"
	"github.com/abhisek/brainydate/internal/screen"
	"github.com/abhisek/brainydate/internal/screens/help"
	"github.com/abhisek/brainydate/internal/screens/iqtest"
	"github.com/abhisek/brainydate/internal/screens/matching"
	profilescreen "github.com/abhisek/brainydate/internal/screens/profile"
	"github.com/abhisek/brainydate/internal/screens/results"
	"github.com/abhisek/brainydate/internal/screens/welcome"
	"github.com/abhisek/brainydate/internal/session"
	"github.com/abhisek/brainydate/internal/store"
	"github.com/abhisek/brainydate/internal/ui/layout"
)

// Options holds the dependencies injected into the app.
type Options struct {
	Source     quiz.Source
	EventRepo  store.EventRepo
	Observer   iqtest.SessionObserver
	Logger     *zap.Logger
	Session    session.Config
	Candidates []match.Candidate
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	flow   flow.State
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel on the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Source == nil {
		opts.Source = quiz.FallbackSource{}
	}
	if opts.Session.TotalQuestions <= 0 {
		opts.Session = session.DefaultConfig()
	}
	if opts.Candidates == nil {
		opts.Candidates = match.MockCandidates()
	}

	m := AppModel{opts: opts, flow: flow.Initial()}
	m.router = router.New(m.screenFor(m.flow))
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		case "?":
			if m.router.Depth() == 1 && m.helpAllowed() {
				minutes := int(m.opts.Session.Duration.Minutes())
				return m, m.router.Push(help.New(m.opts.Session.TotalQuestions, minutes))
			}
		}

	case screen.FlowEventMsg:
		return m.applyEvent(msg.Event)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// helpAllowed keeps "?" free for typing on the profile form and out of the
// timed test.
func (m AppModel) helpAllowed() bool {
	switch m.flow.Screen {
	case flow.ScreenTesting, flow.ScreenProfileCreation:
		return false
	}
	return true
}

// applyEvent runs the flow transition and swaps the screen when it moves.
func (m AppModel) applyEvent(ev flow.Event) (tea.Model, tea.Cmd) {
	next, err := flow.Transition(m.flow, ev)
	if err != nil {
		m.opts.Logger.Debug("flow event rejected", zap.String("screen", string(m.flow.Screen)), zap.Error(err))
		return m, m.router.Update(screen.EventRejectedMsg{Err: err})
	}
	if next.Screen == m.flow.Screen {
		m.flow = next
		return m, nil
	}

	m.opts.Logger.Debug("screen transition",
		zap.String("from", string(m.flow.Screen)),
		zap.String("to", string(next.Screen)),
	)
	m.flow = next
	for m.router.Depth() > 1 {
		m.router.Pop()
	}
	return m, m.router.Replace(m.screenFor(next))
}

// screenFor builds the screen that renders s.
func (m AppModel) screenFor(s flow.State) screen.Screen {
	switch s.Screen.Normalize() {
	case flow.ScreenTesting:
		return iqtest.New(iqtest.Deps{
			Source:   m.opts.Source,
			Events:   m.opts.EventRepo,
			Observer: m.opts.Observer,
			Logger:   m.opts.Logger,
			Config:   m.opts.Session,
		})
	case flow.ScreenResults:
		return results.New(s.Score)
	case flow.ScreenProfileCreation:
		return profilescreen.New(s.Score)
	case flow.ScreenMatching:
		return matching.New(s.Profile, m.opts.Candidates, m.opts.Logger)
	}
	return welcome.New()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws header, active screen and footer into one frame.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if m.flow.HasScore {
		status = fmt.Sprintf("IQ %d", m.flow.Score)
	}
	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	for _, h := range hints {
		if h.Key == "Ctrl+C" {
			return hints
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and tears every screen down on exit.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if m, ok := final.(AppModel); ok {
		m.router.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
