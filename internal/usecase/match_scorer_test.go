package usecase_test

import (
	"testing"

	"farmatch-backend/internal/domain"
	"farmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestScoreProfilesIdentical(t *testing.T) {
	for _, focus := range domain.Questions[0].Options {
		a := domain.Answers{Focus: focus, Ecosystem: "Solana", Project: "Infrastructure", Approach: "User-Centric", Motto: "Still day one"}

		score, commonalities := usecase.ScoreProfiles(a, a)
		assert.Equal(t, usecase.MaxScore, score)
		assert.Len(t, commonalities, 5)
	}
}

func TestScoreProfilesDisjoint(t *testing.T) {
	a := domain.Answers{Focus: "Full-stack Development", Ecosystem: "OP Stack", Project: "DeFi Protocols", Approach: "Move Fast & Ship", Motto: "Show, don't tell"}
	b := domain.Answers{Focus: "Frontend/UX", Ecosystem: "Ethereum", Project: "Social dApps", Approach: "Security First", Motto: "Still day one"}

	score, commonalities := usecase.ScoreProfiles(a, b)
	assert.Equal(t, 0, score)
	assert.Empty(t, commonalities)
}

func TestScoreProfilesComplementaryExample(t *testing.T) {
	submitter := domain.Answers{Focus: "Frontend/UX", Ecosystem: "Ethereum", Project: "DeFi Protocols", Approach: "Move Fast & Ship", Motto: "Just build it"}
	stored := domain.Answers{Focus: "Smart Contracts", Ecosystem: "Ethereum", Project: "DeFi Protocols", Approach: "Security First", Motto: "Just build it"}

	score, commonalities := usecase.ScoreProfiles(submitter, stored)
	assert.Equal(t, 80, score)
	assert.Equal(t, []string{
		"Complementary skills: Frontend/UX + Smart Contracts",
		"Both build on Ethereum",
		"Both interested in DeFi Protocols",
		`Same motto: "Just build it"`,
	}, commonalities)

	// symmetric
	reverse, _ := usecase.ScoreProfiles(stored, submitter)
	assert.Equal(t, score, reverse)
}

func TestScoreProfilesSingleFieldWeights(t *testing.T) {
	base := domain.Answers{Focus: "Full-stack Development", Ecosystem: "OP Stack", Project: "DeFi Protocols", Approach: "Move Fast & Ship", Motto: "Show, don't tell"}
	other := domain.Answers{Focus: "Frontend/UX", Ecosystem: "Ethereum", Project: "Social dApps", Approach: "Security First", Motto: "Still day one"}

	cases := []struct {
		field  domain.Field
		weight int
	}{
		{domain.FieldFocus, 30},
		{domain.FieldEcosystem, 25},
		{domain.FieldProject, 20},
		{domain.FieldApproach, 15},
		{domain.FieldMotto, 10},
	}
	for _, tc := range cases {
		t.Run(string(tc.field), func(t *testing.T) {
			b := other
			b.Set(tc.field, base.Get(tc.field))

			score, commonalities := usecase.ScoreProfiles(base, b)
			assert.Equal(t, tc.weight, score)
			assert.Len(t, commonalities, 1)
		})
	}
}

func TestScoreProfilesMonotonic(t *testing.T) {
	full := domain.Answers{Focus: "Protocol Design", Ecosystem: "ZK Stack", Project: "Developer Tools", Approach: "Research Driven", Motto: "Let's fucking build!"}
	none := domain.Answers{Focus: "Frontend/UX", Ecosystem: "Ethereum", Project: "Social dApps", Approach: "Security First", Motto: "Still day one"}

	prev := -1
	b := none
	for _, f := range domain.Fields() {
		b.Set(f, full.Get(f))
		score, _ := usecase.ScoreProfiles(full, b)
		assert.Greater(t, score, prev)
		assert.LessOrEqual(t, score, usecase.MaxScore)
		prev = score
	}
	assert.Equal(t, usecase.MaxScore, prev)
}

func TestScoreProfilesEmptyAnswersNeverMatch(t *testing.T) {
	score, commonalities := usecase.ScoreProfiles(domain.Answers{}, domain.Answers{})
	assert.Equal(t, 0, score)
	assert.Empty(t, commonalities)
}

func TestIsComplementaryFocus(t *testing.T) {
	assert.True(t, usecase.IsComplementaryFocus("Smart Contracts", "Frontend/UX"))
	assert.True(t, usecase.IsComplementaryFocus("Protocol Design", "Full-stack Development"))
	assert.False(t, usecase.IsComplementaryFocus("Smart Contracts", "Protocol Design"))
	assert.False(t, usecase.IsComplementaryFocus("", ""))
}
