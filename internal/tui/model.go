// Package tui is the terminal front end of the questionnaire.
package tui

import (
	"context"
	"fmt"
	"strings"

	"farmatch-backend/internal/domain"
	"farmatch-backend/internal/questionnaire"

	tea "github.com/charmbracelet/bubbletea"
)

const progressWidth = 30

// SubmitFunc sends a completed answer set and returns the matches.
type SubmitFunc func(ctx context.Context, answers domain.Answers) (*domain.MatchResult, error)

type submitDoneMsg struct {
	result *domain.MatchResult
	err    error
}

// Model drives a questionnaire.Flow from keyboard input.
type Model struct {
	flow     *questionnaire.Flow
	submit   SubmitFunc
	styles   Styles
	cursor   int
	startErr error
	width    int
	quitting bool
}

// New starts flow immediately; a closed gate is rendered instead of the first question.
func New(flow *questionnaire.Flow, submit SubmitFunc) Model {
	return Model{
		flow:     flow,
		submit:   submit,
		styles:   DefaultStyles(),
		startErr: flow.Start(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Flow exposes the underlying state machine.
func (m Model) Flow() *questionnaire.Flow { return m.flow }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case submitDoneMsg:
		if msg.err != nil {
			_ = m.flow.Fail(msg.err)
		} else {
			_ = m.flow.Complete(msg.result)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.flow.Phase() {
	case questionnaire.Asking:
		q, _ := m.flow.Current()
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case "enter":
			answers, done, err := m.flow.Answer(q.Options[m.cursor])
			if err != nil {
				return m, nil
			}
			m.cursor = 0
			if done {
				return m, m.submitCmd(answers)
			}
		}

	case questionnaire.Failed:
		if msg.String() == "r" {
			answers, err := m.flow.Retry()
			if err != nil {
				return m, nil
			}
			return m, m.submitCmd(answers)
		}
	}
	return m, nil
}

func (m Model) submitCmd(answers domain.Answers) tea.Cmd {
	submit := m.submit
	return func() tea.Msg {
		result, err := submit(context.Background(), answers)
		return submitDoneMsg{result: result, err: err}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("FarMatch"))
	sb.WriteString("\n\n")

	if m.startErr != nil {
		sb.WriteString(m.styles.Title.Render("Please open this app in Farcaster"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("No identity available. Pass --identity to start."))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("q quit"))
		return sb.String()
	}

	switch m.flow.Phase() {
	case questionnaire.Asking:
		m.renderQuestion(&sb)
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("↑/↓ move • enter select • q quit"))
	case questionnaire.Submitting:
		sb.WriteString(m.styles.Muted.Render("Finding your matches..."))
	case questionnaire.Failed:
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf("Submission failed: %v", m.flow.Err())))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("r retry • q quit"))
	case questionnaire.Submitted:
		m.renderResult(&sb)
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("q quit"))
	}
	return sb.String()
}

func (m Model) renderQuestion(sb *strings.Builder) {
	q, ok := m.flow.Current()
	if !ok {
		return
	}

	filled := int(m.flow.Progress() * progressWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
	sb.WriteString(m.styles.Progress.Render(bar))
	sb.WriteString(fmt.Sprintf(" Question %d of %d\n\n", m.flow.Index()+1, m.flow.Len()))

	sb.WriteString(m.styles.Title.Render(q.Title))
	sb.WriteString("\n")
	for i, opt := range q.Options {
		if i == m.cursor {
			sb.WriteString(m.styles.Selected.Render("> " + opt))
		} else {
			sb.WriteString(m.styles.Option.Render(opt))
		}
		sb.WriteString("\n")
	}
}

func (m Model) renderResult(sb *strings.Builder) {
	result := m.flow.Result()
	if result == nil || result.NoMatches {
		sb.WriteString(m.styles.Success.Render("Thanks for submitting! 🎉"))
		sb.WriteString("\n")
		if result != nil && result.Message != "" {
			sb.WriteString(result.Message)
			sb.WriteString("\n")
		}
		return
	}

	if len(result.Matches) == 0 {
		sb.WriteString(m.styles.Title.Render("No strong matches yet"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("Nobody scored high enough. Check back as more builders join."))
		sb.WriteString("\n")
		return
	}

	sb.WriteString(m.styles.Success.Render("Your Builder Matches! 🎉"))
	sb.WriteString("\n\n")
	for _, match := range result.Matches {
		var card strings.Builder
		card.WriteString(fmt.Sprintf("@%s  %s\n", Username(match.Identity), m.styles.Score.Render(fmt.Sprintf("%d%% Match", match.Score))))
		for _, c := range match.Commonalities {
			card.WriteString("• " + c + "\n")
		}
		card.WriteString(m.styles.Muted.Render(ProfileURL(match.Identity)))
		sb.WriteString(m.styles.Card.Render(card.String()))
		sb.WriteString("\n")
	}
	sb.WriteString("\nShare on Farcaster: ")
	sb.WriteString(ShareCastURL(result.Matches))
	sb.WriteString("\n")
}
