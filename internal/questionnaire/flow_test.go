package questionnaire_test

import (
	"errors"
	"testing"

	"farmatch-backend/internal/domain"
	"farmatch-backend/internal/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerAll(t *testing.T, f *questionnaire.Flow) domain.Answers {
	t.Helper()
	var (
		answers domain.Answers
		done    bool
		err     error
	)
	for i, q := range domain.Questions {
		answers, done, err = f.Answer(q.Options[0])
		require.NoError(t, err)
		assert.Equal(t, i == len(domain.Questions)-1, done)
	}
	return answers
}

func TestStartRequiresGate(t *testing.T) {
	f := questionnaire.New(questionnaire.IdentityGate(""))
	assert.ErrorIs(t, f.Start(), questionnaire.ErrGateClosed)
	assert.Equal(t, questionnaire.NotStarted, f.Phase())
	assert.Zero(t, f.Progress())

	f = questionnaire.New(questionnaire.IdentityGate("0xabc"))
	require.NoError(t, f.Start())
	assert.Equal(t, questionnaire.Asking, f.Phase())
	assert.ErrorIs(t, f.Start(), questionnaire.ErrInvalidTransition)
}

func TestAnswerWalksQuestionsInOrder(t *testing.T) {
	f := questionnaire.New(nil)
	require.NoError(t, f.Start())

	q, ok := f.Current()
	require.True(t, ok)
	assert.Equal(t, domain.FieldFocus, q.Field)
	assert.InDelta(t, 0.2, f.Progress(), 1e-9)

	answers := answerAll(t, f)

	assert.Equal(t, questionnaire.Submitting, f.Phase())
	assert.True(t, answers.Complete())
	assert.Equal(t, "Full-stack Development", answers.Focus)
	assert.Equal(t, "Show, don't tell", answers.Motto)
	assert.Equal(t, 1.0, f.Progress())

	_, ok = f.Current()
	assert.False(t, ok)
}

func TestAnswerRejectsUnknownOption(t *testing.T) {
	f := questionnaire.New(nil)
	require.NoError(t, f.Start())

	_, done, err := f.Answer("Rust")
	assert.ErrorIs(t, err, questionnaire.ErrInvalidOption)
	assert.False(t, done)
	assert.Equal(t, 0, f.Index())
	assert.Empty(t, f.Answers().Focus)
}

func TestAnswerBeforeStart(t *testing.T) {
	f := questionnaire.New(nil)
	_, _, err := f.Answer("Smart Contracts")
	assert.ErrorIs(t, err, questionnaire.ErrInvalidTransition)
}

func TestCompleteIsTerminal(t *testing.T) {
	f := questionnaire.New(nil)
	require.NoError(t, f.Start())
	answerAll(t, f)

	result := &domain.MatchResult{Matches: []domain.Match{{Identity: "0x2", Score: 55}}}
	require.NoError(t, f.Complete(result))
	assert.Equal(t, questionnaire.Submitted, f.Phase())
	assert.Same(t, result, f.Result())

	assert.ErrorIs(t, f.Start(), questionnaire.ErrInvalidTransition)
	assert.ErrorIs(t, f.Fail(errors.New("late")), questionnaire.ErrInvalidTransition)
	_, err := f.Retry()
	assert.ErrorIs(t, err, questionnaire.ErrInvalidTransition)
	_, _, err = f.Answer("Smart Contracts")
	assert.ErrorIs(t, err, questionnaire.ErrInvalidTransition)
}

func TestFailThenRetry(t *testing.T) {
	f := questionnaire.New(nil)
	require.NoError(t, f.Start())
	submitted := answerAll(t, f)

	boom := errors.New("network down")
	require.NoError(t, f.Fail(boom))
	assert.Equal(t, questionnaire.Failed, f.Phase())
	assert.Equal(t, boom, f.Err())

	resend, err := f.Retry()
	require.NoError(t, err)
	assert.Equal(t, submitted, resend)
	assert.Equal(t, questionnaire.Submitting, f.Phase())
	assert.NoError(t, f.Err())

	require.NoError(t, f.Complete(&domain.MatchResult{NoMatches: true}))
	assert.Equal(t, questionnaire.Submitted, f.Phase())
}

func TestCompleteRequiresSubmitting(t *testing.T) {
	f := questionnaire.New(nil)
	require.NoError(t, f.Start())
	assert.ErrorIs(t, f.Complete(&domain.MatchResult{}), questionnaire.ErrInvalidTransition)
	assert.ErrorIs(t, f.Fail(errors.New("x")), questionnaire.ErrInvalidTransition)
}

func TestEmptyQuestionList(t *testing.T) {
	f := questionnaire.NewWithQuestions(nil, nil)
	assert.ErrorIs(t, f.Start(), questionnaire.ErrInvalidTransition)
	assert.Zero(t, f.Progress())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "submitting", questionnaire.Submitting.String())
	assert.Equal(t, "phase(9)", questionnaire.Phase(9).String())
}
