package usecase

import (
	"context"
	"crypto/subtle"
	"sort"

	"farmatch-backend/internal/domain"
	"farmatch-backend/pkg/apperror"
)

type adminUsecase struct {
	profiles domain.ProfileRepository
	secret   string
}

// NewAdminUsecase guards the listing with secret. An empty secret locks the listing.
func NewAdminUsecase(profiles domain.ProfileRepository, secret string) domain.AdminUsecase {
	return &adminUsecase{profiles: profiles, secret: secret}
}

// ListSubmissions returns every stored profile, newest first, unpaginated and unredacted.
func (u *adminUsecase) ListSubmissions(ctx context.Context, secret string) (*domain.SubmissionList, error) {
	if !u.authorized(secret) {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	profiles, err := u.profiles.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch submissions", err)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].SubmittedAt.After(profiles[j].SubmittedAt)
	})

	submissions := make([]domain.Submission, 0, len(profiles))
	for _, p := range profiles {
		var ts int64
		if !p.SubmittedAt.IsZero() {
			ts = p.SubmittedAt.UnixMilli()
		}
		submissions = append(submissions, domain.Submission{
			ID:        p.Identity,
			Focus:     p.Answers.Focus,
			Ecosystem: p.Answers.Ecosystem,
			Project:   p.Answers.Project,
			Approach:  p.Answers.Approach,
			Motto:     p.Answers.Motto,
			Timestamp: ts,
		})
	}

	return &domain.SubmissionList{Submissions: submissions, Count: len(submissions)}, nil
}

func (u *adminUsecase) authorized(secret string) bool {
	if u.secret == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(u.secret)) == 1
}
