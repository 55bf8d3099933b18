package handler

import (
	"context"

	"meowscope/internal/api/v1/dto"
	"meowscope/internal/api/v1/operation"
	"meowscope/internal/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog"
)

// UserHandler serves the signed-in user's session and history
type UserHandler struct {
	sessions service.SessionService
	analysis service.AnalysisService
	logger   zerolog.Logger
}

func NewUserHandler(sessions service.SessionService, analysis service.AnalysisService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		sessions: sessions,
		analysis: analysis,
		logger:   logger,
	}
}

// GetSession returns the authenticated user's tier and billing state
func (h *UserHandler) GetSession(ctx context.Context, input *operation.GetSessionInput) (*operation.GetSessionOutput, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := h.sessions.Current(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load session", err)
	}

	var status *string
	if sess.SubscriptionStatus != nil {
		s := string(*sess.SubscriptionStatus)
		status = &s
	}
	return &operation.GetSessionOutput{
		Body: dto.SessionResponseDTO{
			UserID:             sess.UserID,
			Email:              sess.Email,
			Tier:               string(sess.Tier),
			SubscriptionStatus: status,
			HasCustomer:        sess.HasCustomer,
			CanManageBilling:   sess.CanManageBilling,
		},
	}, nil
}

// GetHistory lists past analyses, newest first
func (h *UserHandler) GetHistory(ctx context.Context, input *operation.GetHistoryInput) (*operation.GetHistoryOutput, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := h.analysis.History(ctx, userID, input.Limit, input.Offset)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to retrieve history", err)
	}

	out := make([]dto.HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.HistoryEntryDTO{
			ID:         e.ID,
			Category:   e.Category,
			Confidence: e.Confidence,
			FGCCode:    e.FGCCode,
			CreatedAt:  e.CreatedAt,
		})
	}
	return &operation.GetHistoryOutput{
		Body: dto.HistoryResponseDTO{Entries: out, Limit: input.Limit, Offset: input.Offset},
	}, nil
}
