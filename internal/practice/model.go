package practice

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openkcm/interview-manager/internal/openapi"
)

const (
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
)

// API is the part of the interview API the practice client needs.
type API interface {
	Start(ctx context.Context, req openapi.StartRequest) (openapi.StartResult, error)
	Answer(ctx context.Context, sessionID, text string) (openapi.AnswerResult, error)
	Status(ctx context.Context, sessionID string) (openapi.StatusResult, error)
	Summary(ctx context.Context, sessionID string) (openapi.SummaryResult, error)
}

type state int

const (
	stateStarting state = iota
	stateAnswering
	stateWaiting
	stateDone
	stateFailed
)

type startedMsg struct {
	question  string
	round     int
	maxRounds int
}

type answeredMsg struct {
	resp openapi.AnswerResult
}

type summaryMsg struct {
	summary string
}

type errMsg struct {
	err error
}

// Model is the bubbletea model of a practice session.
type Model struct {
	ctx     context.Context
	api     API
	request openapi.StartRequest

	state      state
	question   string
	round      int
	maxRounds  int
	lastAnswer string
	evaluation string
	feedback   string
	summary    string
	notice     string
	err        error

	input textinput.Model
	width int
}

func NewModel(ctx context.Context, api API, req openapi.StartRequest) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer and press enter..."
	ti.CharLimit = 4000
	ti.Width = maxWidth - 4
	ti.Focus()

	return Model{
		ctx:     ctx,
		api:     api,
		request: req,
		state:   stateStarting,
		input:   ti,
	}
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startCmd(), textinput.Blink)
}

func (m Model) startCmd() tea.Cmd {
	ctx, api, req := m.ctx, m.api, m.request
	return func() tea.Msg {
		resp, err := api.Start(ctx, req)
		if err != nil {
			return errMsg{err: fmt.Errorf("starting interview: %w", err)}
		}
		status, err := api.Status(ctx, req.SessionId)
		if err != nil {
			return errMsg{err: fmt.Errorf("reading interview status: %w", err)}
		}
		return startedMsg{question: resp.Question, round: resp.Round, maxRounds: status.MaxRounds}
	}
}

func (m Model) answerCmd(text string) tea.Cmd {
	ctx, api, id := m.ctx, m.api, m.request.SessionId
	return func() tea.Msg {
		resp, err := api.Answer(ctx, id, text)
		if err != nil {
			return errMsg{err: fmt.Errorf("submitting answer: %w", err)}
		}
		return answeredMsg{resp: resp}
	}
}

func (m Model) summaryCmd() tea.Cmd {
	ctx, api, id := m.ctx, m.api, m.request.SessionId
	return func() tea.Msg {
		resp, err := api.Summary(ctx, id)
		if err != nil {
			return errMsg{err: fmt.Errorf("fetching summary: %w", err)}
		}
		return summaryMsg{summary: resp.Summary}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = min(msg.Width, maxWidth) - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case startedMsg:
		m.state = stateAnswering
		m.question = msg.question
		m.round = msg.round
		m.maxRounds = msg.maxRounds
		return m, nil

	case answeredMsg:
		m.evaluation = msg.resp.Evaluation
		m.feedback = msg.resp.Feedback
		if msg.resp.Done {
			m.state = stateDone
			m.summary = valueOf(msg.resp.Summary)
			if m.summary == "" {
				return m, m.summaryCmd()
			}
			return m, nil
		}
		m.state = stateAnswering
		m.question = valueOf(msg.resp.Question)
		m.round = valueOf(msg.resp.Round)
		return m, nil

	case summaryMsg:
		m.summary = msg.summary
		return m, nil

	case errMsg:
		m.state = stateFailed
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC, keyEsc:
		return m, tea.Quit
	}

	switch m.state {
	case stateDone, stateFailed:
		if msg.String() == keyEnter || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case stateAnswering:
		if msg.String() != keyEnter {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		answer := strings.TrimSpace(m.input.Value())
		if answer == "" {
			m.notice = "Type an answer before pressing enter."
			return m, nil
		}
		m.notice = ""
		m.lastAnswer = answer
		m.input.Reset()
		m.state = stateWaiting
		return m, m.answerCmd(answer)
	default:
		return m, nil
	}
}

func (m Model) View() string {
	width := maxWidth
	if m.width > 0 {
		width = min(m.width, maxWidth)
	}
	text := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Interview practice"))
	if m.maxRounds > 0 {
		b.WriteString("  ")
		b.WriteString(roundStyle.Render(fmt.Sprintf("round %d of %d", min(m.round, m.maxRounds), m.maxRounds)))
	}
	b.WriteString("\n\n")

	if m.evaluation != "" {
		b.WriteString(labelStyle.Render("Evaluation"))
		b.WriteString("\n")
		b.WriteString(evaluationStyle.Inherit(text).Render(m.evaluation))
		b.WriteString("\n\n")
	}
	if m.feedback != "" {
		b.WriteString(labelStyle.Render("Feedback"))
		b.WriteString("\n")
		b.WriteString(feedbackStyle.Inherit(text).Render(m.feedback))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateStarting:
		b.WriteString(helpStyle.Render("Starting the interview..."))
	case stateAnswering:
		b.WriteString(questionStyle.Width(width - 4).Render(m.question))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.notice != "" {
			b.WriteString(errorStyle.Render(m.notice))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter: submit  esc: quit"))
	case stateWaiting:
		b.WriteString(helpStyle.Render("Evaluating your answer..."))
	case stateDone:
		b.WriteString(labelStyle.Render("Summary"))
		b.WriteString("\n")
		if m.summary == "" {
			b.WriteString(helpStyle.Render("Preparing your summary..."))
		} else {
			b.WriteString(text.Render(m.summary))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: quit"))
	case stateFailed:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
