package service

import (
	"context"
	"errors"
	"testing"

	"meowscope/internal/classifier"
	"meowscope/internal/model"
	"meowscope/internal/taxonomy"

	"github.com/stripe/stripe-go/v82"
)

type fakeProfiles struct {
	profiles map[string]*model.Profile
	err      error
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID string) (*model.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

func (f *fakeProfiles) UpdateProfile(context.Context, model.ProfileKey, model.ProfileUpdate) (int64, error) {
	return 0, errors.New("not used")
}

type fakeHistory struct {
	entries []model.AnalysisHistoryEntry
	err     error
	listed  struct{ limit, offset int }
}

func (f *fakeHistory) CreateEntry(_ context.Context, e *model.AnalysisHistoryEntry) error {
	if f.err != nil {
		return f.err
	}
	e.ID = "h1"
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeHistory) ListByUser(_ context.Context, userID string, limit, offset int) ([]model.AnalysisHistoryEntry, error) {
	f.listed.limit, f.listed.offset = limit, offset
	if f.err != nil {
		return nil, f.err
	}
	var out []model.AnalysisHistoryEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeArchive struct {
	puts []string
	err  error
}

func (f *fakeArchive) Put(_ context.Context, userID, contentType string, audio []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.puts = append(f.puts, userID+"|"+contentType+"|"+string(audio))
	return "recordings/key", nil
}

type fakeCheckout struct {
	params *stripe.CheckoutSessionParams
	err    error
}

func (f *fakeCheckout) New(p *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.params = p
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: "cs_test", URL: "https://checkout.stripe.test/cs_test"}, nil
}

type fakePortal struct {
	params *stripe.BillingPortalSessionParams
	err    error
}

func (f *fakePortal) New(p *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error) {
	f.params = p
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.BillingPortalSession{URL: "https://billing.stripe.test/p_1"}, nil
}

// fixedClassifier always returns the same hunger prediction with one alternative.
type fixedClassifier struct{}

func (fixedClassifier) Classify([]byte) classifier.Result {
	primary := mustClass("f140A")
	alt := mustClass("f160A")
	return classifier.Result{
		Primary:    primary,
		Confidence: 0.9,
		Predictions: []classifier.Prediction{
			{Class: primary, Confidence: 0.9},
			{Class: alt, Confidence: 0.45},
		},
	}
}

func mustClass(code string) taxonomy.FGCClass {
	c, ok := taxonomy.Get(code)
	if !ok {
		panic("unknown code " + code)
	}
	return c
}

func strPtr(s string) *string { return &s }

func statusPtr(s model.SubscriptionStatus) *model.SubscriptionStatus { return &s }

func fatalIfErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
