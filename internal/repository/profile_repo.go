package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meowscope/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrEmptyProfileKey is returned when an update names neither a user nor a subscription.
var ErrEmptyProfileKey = errors.New("profile key has neither user id nor subscription id")

// ProfileRepository reads and reconciles subscriber profiles.
type ProfileRepository interface {
	// GetProfile returns nil, nil when the user has no profile row.
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	// UpdateProfile applies upd to the row selected by key and returns the number of rows changed.
	UpdateProfile(ctx context.Context, key model.ProfileKey, upd model.ProfileUpdate) (int64, error)
}

type profileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepo creates a new ProfileRepository.
func NewProfileRepo(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepo{pool: pool}
}

func (r *profileRepo) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	const q = `
        SELECT id::text, email, tier, stripe_customer_id, stripe_subscription_id, subscription_status, created_at, updated_at
        FROM profiles
        WHERE id = $1
    `
	var (
		p      model.Profile
		tier   string
		status *string
	)
	err := r.pool.QueryRow(ctx, q, userID).Scan(
		&p.ID,
		&p.Email,
		&tier,
		&p.StripeCustomerID,
		&p.StripeSubscriptionID,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch profile for user %s: %w", userID, err)
	}
	p.Tier = model.Tier(tier)
	if status != nil {
		s := model.SubscriptionStatus(*status)
		p.SubscriptionStatus = &s
	}
	return &p, nil
}

func (r *profileRepo) UpdateProfile(ctx context.Context, key model.ProfileKey, upd model.ProfileUpdate) (int64, error) {
	q, args, err := buildProfileUpdate(key, upd)
	if err != nil {
		return 0, err
	}
	tag, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("update profile %s: %w", describeKey(key), err)
	}
	return tag.RowsAffected(), nil
}

// buildProfileUpdate renders the UPDATE statement for the non-nil fields of upd.
func buildProfileUpdate(key model.ProfileKey, upd model.ProfileUpdate) (string, []any, error) {
	if upd.Empty() {
		return "", nil, errors.New("profile update has no fields")
	}

	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.StripeCustomerID != nil {
		add("stripe_customer_id", *upd.StripeCustomerID)
	}
	if upd.StripeSubscriptionID != nil {
		add("stripe_subscription_id", *upd.StripeSubscriptionID)
	}
	if upd.Tier != nil {
		add("tier", string(*upd.Tier))
	}
	if upd.SubscriptionStatus != nil {
		add("subscription_status", string(*upd.SubscriptionStatus))
	}
	sets = append(sets, "updated_at = NOW()")

	var where string
	switch {
	case key.UserID != "":
		args = append(args, key.UserID)
		where = fmt.Sprintf("id = $%d", len(args))
	case key.StripeSubscriptionID != "":
		args = append(args, key.StripeSubscriptionID)
		where = fmt.Sprintf("stripe_subscription_id = $%d", len(args))
	default:
		return "", nil, ErrEmptyProfileKey
	}

	q := "UPDATE profiles SET " + strings.Join(sets, ", ") + " WHERE " + where
	return q, args, nil
}

func describeKey(key model.ProfileKey) string {
	if key.UserID != "" {
		return "user " + key.UserID
	}
	return "subscription " + key.StripeSubscriptionID
}
