package service

import (
	"context"
	"fmt"

	"meowscope/internal/model"
	"meowscope/internal/repository"

	"github.com/rs/zerolog"
)

// Session is what the client needs to render the signed-in state.
type Session struct {
	UserID             string
	Email              string
	Tier               model.Tier
	SubscriptionStatus *model.SubscriptionStatus
	HasCustomer        bool
	// CanManageBilling is true when the billing portal can be opened.
	CanManageBilling bool
}

// SessionService resolves the current session of a user.
type SessionService interface {
	Current(ctx context.Context, userID string) (Session, error)
	// Tier returns the tier of userID. Anonymous callers are basic.
	Tier(ctx context.Context, userID string) (model.Tier, error)
}

type sessionService struct {
	profiles repository.ProfileRepository
	logger   zerolog.Logger
}

func NewSessionService(profiles repository.ProfileRepository, logger zerolog.Logger) SessionService {
	lg := logger.With().Str("service", "SessionService").Logger()
	return &sessionService{profiles: profiles, logger: lg}
}

func (s *sessionService) Current(ctx context.Context, userID string) (Session, error) {
	if userID == "" {
		return Session{}, ErrUnauthenticated
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch profile for session")
		return Session{}, fmt.Errorf("%w: fetch profile: %v", ErrUpstream, err)
	}
	return sessionFromProfile(userID, profile), nil
}

func (s *sessionService) Tier(ctx context.Context, userID string) (model.Tier, error) {
	if userID == "" {
		return model.TierBasic, nil
	}
	sess, err := s.Current(ctx, userID)
	if err != nil {
		return "", err
	}
	return sess.Tier, nil
}

// sessionFromProfile treats a missing profile as basic with no subscription.
func sessionFromProfile(userID string, p *model.Profile) Session {
	if p == nil {
		return Session{UserID: userID, Tier: model.TierBasic}
	}
	tier := p.Tier
	if tier != model.TierEnhanced {
		tier = model.TierBasic
	}
	return Session{
		UserID:             userID,
		Email:              p.Email,
		Tier:               tier,
		SubscriptionStatus: p.SubscriptionStatus,
		HasCustomer:        p.HasCustomer(),
		CanManageBilling:   p.HasCustomer(),
	}
}
