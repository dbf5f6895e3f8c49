package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/dkoval/padelwiz/internal/advice"
	"github.com/dkoval/padelwiz/internal/rating"
	"github.com/dkoval/padelwiz/internal/screen"
	"github.com/dkoval/padelwiz/internal/screens/question"
	"github.com/dkoval/padelwiz/internal/screens/result"
	"github.com/dkoval/padelwiz/internal/screens/welcome"
	"github.com/dkoval/padelwiz/internal/ui/layout"
	"github.com/dkoval/padelwiz/internal/ui/theme"
	"github.com/dkoval/padelwiz/internal/wizard"
)

// Options wires the app to its collaborators. Advice is optional; when
// nil the result screen simply has no training-plan key.
type Options struct {
	Engine *wizard.Engine
	Advice *advice.Service
	UserID int64
	Log    *zap.SugaredLogger
}

// resumeProbeMsg carries the startup check for a resumable session.
type resumeProbeMsg struct {
	res *wizard.StepResult
	err error
}

// stepMsg carries the engine's reply to a start/submit call.
type stepMsg struct {
	res *wizard.StepResult
	err error
}

// Model is the root Bubble Tea model. The flow is linear: welcome, then
// one question screen per step, then the result.
type Model struct {
	opts Options
	log  *zap.SugaredLogger

	current       screen.Screen
	pendingResume *wizard.StepResult
	lastStep      *wizard.StepResult
	sessionNumber int64
	errLine       string

	width  int
	height int
}

func newModel(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return Model{
		opts:    opts,
		log:     log,
		current: welcome.New(0),
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		res, err := m.opts.Engine.Resume(context.Background(), m.opts.UserID)
		return resumeProbeMsg{res: res, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case resumeProbeMsg:
		if msg.err != nil {
			m.log.Errorw("resume probe failed", "error", msg.err)
			m.errLine = "could not load your previous session"
			return m, nil
		}
		if msg.res.Status == wizard.StatusQuestion {
			m.pendingResume = msg.res
			m.current = welcome.New(msg.res.SessionNumber)
		}
		return m, nil

	case welcome.ChosenMsg:
		switch msg.Option {
		case welcome.OptionQuit:
			return m, tea.Quit
		case welcome.OptionResume:
			if m.pendingResume != nil {
				res := m.pendingResume
				m.pendingResume = nil
				return m.applyStep(res), nil
			}
			return m, m.startCmd()
		default:
			return m, m.startCmd()
		}

	case question.AnsweredMsg:
		return m, m.submitCmd(msg.OptionText)

	case result.RestartMsg:
		return m, m.startCmd()

	case result.AdviceRequestedMsg:
		return m, m.adviceCmd()

	case stepMsg:
		if msg.err != nil {
			m.log.Errorw("wizard step failed", "error", msg.err)
			m.errLine = "something went wrong saving your answer, try again"
			// Rebuild the question screen so the same reply can be
			// retried.
			if m.lastStep != nil && m.lastStep.Question != nil {
				m.current = question.New(m.lastStep.Question, m.lastStep.Answered)
			}
			return m, nil
		}
		return m.applyStep(msg.res), nil
	}

	var cmd tea.Cmd
	m.current, cmd = m.current.Update(msg)
	return m, cmd
}

// applyStep swaps the active screen to match an engine result.
func (m Model) applyStep(res *wizard.StepResult) Model {
	m.errLine = ""
	m.lastStep = res

	switch res.Status {
	case wizard.StatusQuestion, wizard.StatusMismatch:
		m.sessionNumber = res.SessionNumber
		scr := question.New(res.Question, res.Answered)
		if res.Status == wizard.StatusMismatch {
			scr.SetNotice("that didn't match any option, try again")
		}
		m.current = scr

	case wizard.StatusCompleted:
		m.sessionNumber = res.SessionNumber
		m.current = result.New(res.Outcome, res.SessionNumber, m.opts.Advice != nil)

	case wizard.StatusRestart:
		m.sessionNumber = 0
		m.errLine = "your previous session could not be restored"
		m.current = welcome.New(0)

	default:
		m.sessionNumber = 0
		m.current = welcome.New(0)
	}
	return m
}

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.opts.Engine.Start(context.Background(), m.opts.UserID)
		return stepMsg{res: res, err: err}
	}
}

func (m Model) submitCmd(optionText string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.opts.Engine.Submit(context.Background(), m.opts.UserID, optionText)
		return stepMsg{res: res, err: err}
	}
}

func (m Model) adviceCmd() tea.Cmd {
	outcome := m.lastStep.Outcome
	userID := m.opts.UserID
	svc := m.opts.Advice
	return func() tea.Msg {
		final := &rating.FinalRating{
			Level:           outcome.Level,
			Score:           outcome.Score,
			ExperienceLevel: outcome.Experience,
			Skills:          outcome.Skills,
		}
		out, err := svc.ForRating(context.Background(), userID, final)
		return result.AdviceReadyMsg{Advice: out, Err: err}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.current.Title(), m.sessionNumber, m.width)

	hints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := m.current.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.current.View(m.width, contentHeight)
	if m.errLine != "" {
		errLine := lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(m.width).
			Align(lipgloss.Center).
			Render(m.errLine)
		content = errLine + "\n" + content
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	_, err := p.Run()
	return err
}
