package service

import (
	"context"
	"errors"
	"testing"

	"meowscope/internal/model"

	"github.com/rs/zerolog"
)

func TestSessionCurrent(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*model.Profile{
		"paid": {
			ID:                 "paid",
			Email:              "paid@example.com",
			Tier:               model.TierEnhanced,
			StripeCustomerID:   strPtr("cus_1"),
			SubscriptionStatus: statusPtr(model.SubscriptionStatusActive),
		},
		"free": {ID: "free", Email: "free@example.com", Tier: model.TierBasic},
	}}
	s := NewSessionService(profiles, zerolog.Nop())

	tests := []struct {
		user       string
		wantTier   model.Tier
		wantBill   bool
		wantEmail  string
		wantStatus bool
	}{
		{"paid", model.TierEnhanced, true, "paid@example.com", true},
		{"free", model.TierBasic, false, "free@example.com", false},
		{"missing", model.TierBasic, false, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.user, func(t *testing.T) {
			sess, err := s.Current(context.Background(), tc.user)
			fatalIfErr(t, err)
			if sess.UserID != tc.user || sess.Tier != tc.wantTier || sess.CanManageBilling != tc.wantBill || sess.Email != tc.wantEmail {
				t.Fatalf("unexpected session %+v", sess)
			}
			if (sess.SubscriptionStatus != nil) != tc.wantStatus {
				t.Fatalf("unexpected subscription status %v", sess.SubscriptionStatus)
			}
		})
	}
}

func TestSessionErrors(t *testing.T) {
	s := NewSessionService(&fakeProfiles{err: errors.New("timeout")}, zerolog.Nop())
	if _, err := s.Current(context.Background(), "u1"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if _, err := s.Current(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	tier, err := s.Tier(context.Background(), "")
	if err != nil || tier != model.TierBasic {
		t.Fatalf("anonymous tier = %v, %v", tier, err)
	}
}

func TestSessionUnknownTierIsBasic(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*model.Profile{"u1": {ID: "u1", Tier: "gold"}}}
	sess, err := NewSessionService(profiles, zerolog.Nop()).Current(context.Background(), "u1")
	fatalIfErr(t, err)
	if sess.Tier != model.TierBasic {
		t.Fatalf("expected basic tier, got %q", sess.Tier)
	}
}
