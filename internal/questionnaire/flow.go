// Package questionnaire holds the answer-collection state machine used by the
// terminal client. It performs no I/O; callers submit the answers returned by
// Answer and report the outcome through Complete or Fail.
package questionnaire

import (
	"errors"
	"fmt"

	"farmatch-backend/internal/domain"
)

// Phase is the coarse state of a Flow
type Phase int

const (
	NotStarted Phase = iota
	Asking
	Submitting
	Submitted
	Failed
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case Asking:
		return "asking"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

var (
	ErrGateClosed        = errors.New("questionnaire: host identity not available")
	ErrInvalidTransition = errors.New("questionnaire: invalid transition")
	ErrInvalidOption     = errors.New("questionnaire: option not offered for this question")
)

// Gate reports whether the flow may start. It stands in for "the host frame
// has provided an identity".
type Gate func() bool

// IdentityGate opens once identity is non-empty.
func IdentityGate(identity string) Gate {
	return func() bool { return identity != "" }
}

// Flow walks the ordered questions once. Submitted is terminal.
type Flow struct {
	questions []domain.Question
	gate      Gate
	phase     Phase
	index     int
	answers   domain.Answers
	result    *domain.MatchResult
	err       error
}

// New builds a flow over domain.Questions. A nil gate is always open.
func New(gate Gate) *Flow {
	return NewWithQuestions(domain.Questions, gate)
}

func NewWithQuestions(questions []domain.Question, gate Gate) *Flow {
	if gate == nil {
		gate = func() bool { return true }
	}
	return &Flow{questions: questions, gate: gate}
}

func (f *Flow) Phase() Phase { return f.phase }

// Index is the current question index while Asking.
func (f *Flow) Index() int { return f.index }

func (f *Flow) Len() int { return len(f.questions) }

// Answers returns the answers recorded so far.
func (f *Flow) Answers() domain.Answers { return f.answers }

// Result is set once the flow reaches Submitted.
func (f *Flow) Result() *domain.MatchResult { return f.result }

// Err is the last submission error while Failed.
func (f *Flow) Err() error { return f.err }

// Current returns the question being asked.
func (f *Flow) Current() (domain.Question, bool) {
	if f.phase != Asking || f.index >= len(f.questions) {
		return domain.Question{}, false
	}
	return f.questions[f.index], true
}

// Progress returns (index+1)/N while asking, 1 once all questions are answered
// and 0 before the start.
func (f *Flow) Progress() float64 {
	n := len(f.questions)
	if n == 0 {
		return 0
	}
	switch f.phase {
	case NotStarted:
		return 0
	case Asking:
		return float64(f.index+1) / float64(n)
	}
	return 1
}

// Start moves NotStarted to Asking(0) once the gate is open.
func (f *Flow) Start() error {
	if f.phase != NotStarted {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, f.phase)
	}
	if !f.gate() {
		return ErrGateClosed
	}
	if len(f.questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidTransition)
	}
	f.phase = Asking
	f.index = 0
	return nil
}

// Answer records option for the current question and advances. After the last
// question the flow enters Submitting and the completed answers are returned
// with done set.
func (f *Flow) Answer(option string) (answers domain.Answers, done bool, err error) {
	q, ok := f.Current()
	if !ok {
		return domain.Answers{}, false, fmt.Errorf("%w: answer from %s", ErrInvalidTransition, f.phase)
	}
	if !offers(q, option) {
		return domain.Answers{}, false, fmt.Errorf("%w: %q", ErrInvalidOption, option)
	}

	f.answers.Set(q.Field, option)
	if f.index+1 < len(f.questions) {
		f.index++
		return domain.Answers{}, false, nil
	}

	f.phase = Submitting
	return f.answers, true, nil
}

// Complete moves Submitting to Submitted.
func (f *Flow) Complete(result *domain.MatchResult) error {
	if f.phase != Submitting {
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, f.phase)
	}
	f.phase = Submitted
	f.result = result
	f.err = nil
	return nil
}

// Fail moves Submitting to Failed.
func (f *Flow) Fail(err error) error {
	if f.phase != Submitting {
		return fmt.Errorf("%w: fail from %s", ErrInvalidTransition, f.phase)
	}
	f.phase = Failed
	f.err = err
	return nil
}

// Retry moves Failed back to Submitting and returns the answers to resend.
func (f *Flow) Retry() (domain.Answers, error) {
	if f.phase != Failed {
		return domain.Answers{}, fmt.Errorf("%w: retry from %s", ErrInvalidTransition, f.phase)
	}
	f.phase = Submitting
	f.err = nil
	return f.answers, nil
}

func offers(q domain.Question, option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}
