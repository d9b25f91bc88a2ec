package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"farmatch-backend/internal/domain"
	"farmatch-backend/pkg/apperror"
	"farmatch-backend/pkg/logger"
	"farmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	NoMatchesMessage    = "You're one of the first builders here! Check back soon for your matches."
	MatchesFoundMessage = "We found some matches for you!"
	ProfileCreatedTitle = "Profile Created! 🎉"

	DefaultNotifyTimeout = 10 * time.Second
)

// MatchOptions tunes the match endpoint; zero values fall back to defaults.
type MatchOptions struct {
	Threshold int
	Limit     int
	// Now stamps submissions. Defaults to time.Now.
	Now func() time.Time
	// TargetURL is opened when the user taps a notification
	TargetURL string
	// NotifyTimeout bounds a notification sent after Submit has returned.
	NotifyTimeout time.Duration
	// Pending, when set, tracks notifications still in flight so callers can
	// wait for them on shutdown.
	Pending *sync.WaitGroup
}

type matchUsecase struct {
	profiles domain.ProfileRepository
	frames   domain.FrameUsecase
	validate *validator.Validate
	opts     MatchOptions
}

// NewMatchUsecase wires the match flow. frames may be nil to disable notifications.
func NewMatchUsecase(profiles domain.ProfileRepository, frames domain.FrameUsecase, validate *validator.Validate, opts MatchOptions) domain.MatchUsecase {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultMatchThreshold
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultMatchLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = DefaultNotifyTimeout
	}
	return &matchUsecase{
		profiles: profiles,
		frames:   frames,
		validate: validate,
		opts:     opts,
	}
}

// NewAnswerValidator returns the validator that enforces the questionnaire option lists.
func NewAnswerValidator() *validator.Validate {
	return validation.New(func(field, value string) bool {
		return domain.IsValidOption(domain.Field(field), value)
	})
}

// ResolveIdentity picks the store key for a request: explicit identity, wallet address, then FID.
func ResolveIdentity(req *domain.MatchRequest) string {
	if id := strings.TrimSpace(req.Identity); id != "" {
		return id
	}
	if addr := strings.TrimSpace(req.WalletAddress); addr != "" {
		return addr
	}
	if req.FID != 0 {
		return strconv.FormatUint(req.FID, 10)
	}
	return ""
}

func (uc *matchUsecase) Submit(ctx context.Context, req *domain.MatchRequest) (*domain.MatchResult, error) {
	identity := ResolveIdentity(req)
	if identity == "" {
		return nil, apperror.BadRequest("Identity is required")
	}

	if err := uc.validate.Struct(req.Answers); err != nil {
		return nil, apperror.Invalid("Invalid answers", validation.FormatValidationErrors(err))
	}

	profile := &domain.Profile{
		Identity:    identity,
		Answers:     req.Answers,
		SubmittedAt: uc.opts.Now().UTC(),
	}
	if err := uc.profiles.Put(ctx, profile); err != nil {
		return nil, apperror.Internal("Failed to process matching", err)
	}

	all, err := uc.profiles.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to process matching", err)
	}

	// Records without a submission time are listed by admin but never matched
	candidates := all[:0:0]
	for _, p := range all {
		if !p.SubmittedAt.IsZero() {
			candidates = append(candidates, p)
		}
	}

	var result *domain.MatchResult
	if len(candidates) < 2 {
		result = &domain.MatchResult{NoMatches: true, Message: NoMatchesMessage}
	} else {
		result = &domain.MatchResult{Matches: uc.rank(identity, req.Answers, candidates)}
	}

	uc.notify(ctx, req.FID, result)

	return result, nil
}

// rank scores every other profile, keeps those at or above the threshold and
// returns the best ones. Equal scores keep store enumeration order.
func (uc *matchUsecase) rank(identity string, answers domain.Answers, candidates []domain.Profile) []domain.Match {
	matches := []domain.Match{}
	for _, c := range candidates {
		if c.Identity == identity {
			continue
		}
		score, commonalities := ScoreProfiles(answers, c.Answers)
		if score < uc.opts.Threshold {
			continue
		}
		matches = append(matches, domain.Match{
			Identity:      c.Identity,
			Score:         score,
			Commonalities: commonalities,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > uc.opts.Limit {
		matches = matches[:uc.opts.Limit]
	}
	return matches
}

// notify sends the profile-created notification without holding up the
// response. The send outlives the request but not NotifyTimeout.
func (uc *matchUsecase) notify(ctx context.Context, fid uint64, result *domain.MatchResult) {
	if uc.frames == nil || fid == 0 {
		return
	}

	body := MatchesFoundMessage
	if result.NoMatches {
		body = result.Message
	}
	n := domain.Notification{
		Title:     ProfileCreatedTitle,
		Body:      body,
		TargetURL: uc.opts.TargetURL,
	}

	if uc.opts.Pending != nil {
		uc.opts.Pending.Add(1)
	}
	go func() {
		if uc.opts.Pending != nil {
			defer uc.opts.Pending.Done()
		}
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.opts.NotifyTimeout)
		defer cancel()

		err := uc.frames.NotifyUser(sendCtx, fid, n)
		if err != nil && !errors.Is(err, domain.ErrNotificationsDisabled) {
			logger.Log.Warn("Match notification not delivered", "fid", fid, "error", err)
		}
	}()
}
