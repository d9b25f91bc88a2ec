package domain

import (
	"context"
	"time"
)

// Answers is one user's questionnaire answer set
type Answers struct {
	Focus     string `json:"focus" validate:"required,question_option=focus"`
	Ecosystem string `json:"ecosystem" validate:"required,question_option=ecosystem"`
	Project   string `json:"project" validate:"required,question_option=project"`
	Approach  string `json:"approach" validate:"required,question_option=approach"`
	Motto     string `json:"motto" validate:"required,question_option=motto"`
}

// Get returns the answer for field, or "" for an unknown field.
func (a Answers) Get(field Field) string {
	switch field {
	case FieldFocus:
		return a.Focus
	case FieldEcosystem:
		return a.Ecosystem
	case FieldProject:
		return a.Project
	case FieldApproach:
		return a.Approach
	case FieldMotto:
		return a.Motto
	}
	return ""
}

// Set stores value under field; unknown fields are ignored.
func (a *Answers) Set(field Field, value string) {
	switch field {
	case FieldFocus:
		a.Focus = value
	case FieldEcosystem:
		a.Ecosystem = value
	case FieldProject:
		a.Project = value
	case FieldApproach:
		a.Approach = value
	case FieldMotto:
		a.Motto = value
	}
}

// Map flattens the answers keyed by field name.
func (a Answers) Map() map[string]string {
	m := make(map[string]string, len(Questions))
	for _, f := range Fields() {
		m[string(f)] = a.Get(f)
	}
	return m
}

// AnswersFromMap is the inverse of Map. Missing keys stay empty.
func AnswersFromMap(m map[string]string) Answers {
	var a Answers
	for _, f := range Fields() {
		a.Set(f, m[string(f)])
	}
	return a
}

// Complete reports whether every field has a value.
func (a Answers) Complete() bool {
	for _, f := range Fields() {
		if a.Get(f) == "" {
			return false
		}
	}
	return true
}

// Profile is the stored record for one identity. Resubmission overwrites it in place.
type Profile struct {
	Identity    string    `json:"id"`
	Answers     Answers   `json:"answers"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ProfileRepository is the flat key-value profile namespace.
//
// GetAll skips records it cannot load or decode instead of failing the scan.
// Enumeration order is implementation defined but stable for a fixed store state.
type ProfileRepository interface {
	Put(ctx context.Context, profile *Profile) error
	GetAll(ctx context.Context) ([]Profile, error)
	Keys(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
