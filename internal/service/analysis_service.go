package service

import (
	"context"
	"fmt"

	"meowscope/internal/classifier"
	"meowscope/internal/model"
	"meowscope/internal/repository"
	"meowscope/internal/storage"
	"meowscope/internal/taxonomy"

	"github.com/rs/zerolog"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Upload is a submitted recording.
type Upload struct {
	Audio       []byte
	ContentType string
	Filename    string
}

// ClassDetail is the enhanced view of a class.
type ClassDetail struct {
	Code           string
	Definition     string
	Vocalization   string
	Description    string
	Gender         taxonomy.Gender
	SoundType      taxonomy.SoundType
	SoundTypeLabel string
}

// Alternative is a lower-confidence prediction shown to enhanced users.
type Alternative struct {
	Code       string
	Definition string
	Category   taxonomy.Category
	Color      string
	Confidence float64
}

// Analysis is a classification shaped for the caller's tier. Detail and
// Alternatives are only set for the enhanced tier.
type Analysis struct {
	Tier         model.Tier
	Category     taxonomy.CategoryInfo
	Confidence   float64
	Detail       *ClassDetail
	Alternatives []Alternative
	// UpgradeAvailable is set for basic callers.
	UpgradeAvailable bool
	// HistoryID is set when the result was saved for a signed-in user.
	HistoryID string
}

// AnalysisService classifies recordings and keeps the per-user history.
type AnalysisService interface {
	// Analyze classifies upload. userID is empty for anonymous callers.
	Analyze(ctx context.Context, userID string, upload Upload) (*Analysis, error)
	History(ctx context.Context, userID string, limit, offset int) ([]model.AnalysisHistoryEntry, error)
}

type analysisService struct {
	classifier classifier.Classifier
	sessions   SessionService
	history    repository.AnalysisRepository
	archive    storage.Archive
	maxBytes   int64
	logger     zerolog.Logger
}

// NewAnalysisService creates an AnalysisService. archive may be nil.
func NewAnalysisService(
	c classifier.Classifier,
	sessions SessionService,
	history repository.AnalysisRepository,
	archive storage.Archive,
	maxBytes int64,
	logger zerolog.Logger,
) AnalysisService {
	lg := logger.With().Str("service", "AnalysisService").Logger()
	return &analysisService{
		classifier: c,
		sessions:   sessions,
		history:    history,
		archive:    archive,
		maxBytes:   maxBytes,
		logger:     lg,
	}
}

func (s *analysisService) Analyze(ctx context.Context, userID string, upload Upload) (*Analysis, error) {
	if s.maxBytes > 0 && int64(len(upload.Audio)) > s.maxBytes {
		return nil, ErrAudioTooLarge
	}

	tier, err := s.sessions.Tier(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := s.classifier.Classify(upload.Audio)
	analysis := shapeAnalysis(result, tier)

	if userID != "" {
		entry := &model.AnalysisHistoryEntry{
			UserID:     userID,
			Category:   string(result.Primary.Category),
			Confidence: result.Confidence,
			FGCCode:    result.Primary.Code,
		}
		if err := s.history.CreateEntry(ctx, entry); err != nil {
			s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to save analysis history")
		} else {
			analysis.HistoryID = entry.ID
		}
	}

	if s.archive != nil && len(upload.Audio) > 0 {
		key, err := s.archive.Put(ctx, userID, upload.ContentType, upload.Audio)
		if err != nil {
			s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to archive recording")
		} else {
			s.logger.Debug().Str("key", key).Int("bytes", len(upload.Audio)).Msg("Recording archived")
		}
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("tier", string(tier)).
		Str("fgc_code", result.Primary.Code).
		Float64("confidence", result.Confidence).
		Msg("Recording analyzed")
	return analysis, nil
}

func (s *analysisService) History(ctx context.Context, userID string, limit, offset int) ([]model.AnalysisHistoryEntry, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	entries, err := s.history.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list analysis history")
		return nil, fmt.Errorf("%w: list history: %v", ErrUpstream, err)
	}
	if entries == nil {
		entries = []model.AnalysisHistoryEntry{}
	}
	return entries, nil
}

// shapeAnalysis hides class-level detail from basic callers.
func shapeAnalysis(r classifier.Result, tier model.Tier) *Analysis {
	info, _ := taxonomy.CategoryOf(r.Primary.Category)
	a := &Analysis{
		Tier:       tier,
		Category:   info,
		Confidence: r.Confidence,
	}
	if tier != model.TierEnhanced {
		a.UpgradeAvailable = true
		return a
	}

	p := r.Primary
	a.Detail = &ClassDetail{
		Code:           p.Code,
		Definition:     p.Definition,
		Vocalization:   p.Vocalization,
		Description:    p.Description,
		Gender:         p.Gender,
		SoundType:      p.SoundType,
		SoundTypeLabel: p.SoundType.Label(),
	}
	a.Alternatives = []Alternative{}
	for _, alt := range r.Alternatives() {
		altInfo, _ := taxonomy.CategoryOf(alt.Class.Category)
		a.Alternatives = append(a.Alternatives, Alternative{
			Code:       alt.Class.Code,
			Definition: alt.Class.Definition,
			Category:   alt.Class.Category,
			Color:      altInfo.Color,
			Confidence: alt.Confidence,
		})
	}
	return a
}
