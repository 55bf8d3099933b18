package handler

import (
	"errors"
	"io"
	"net/http"

	"meowscope/internal/api/v1/dto"
	"meowscope/internal/middleware"
	"meowscope/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// multipartOverhead covers boundaries and part headers around the audio part.
const multipartOverhead = 64 << 10

// AnalysisHandler accepts recordings as multipart uploads. It is mounted as a
// plain chi handler because the body is streamed and size limited.
type AnalysisHandler struct {
	analysis service.AnalysisService
	validate *validator.Validate
	maxBytes int64
	logger   zerolog.Logger
}

func NewAnalysisHandler(analysis service.AnalysisService, validate *validator.Validate, maxBytes int64, logger zerolog.Logger) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, validate: validate, maxBytes: maxBytes, logger: logger}
}

// Analyze classifies the "audio" part of a multipart form.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxBytes + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Audio file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing audio file")
		return
	}
	defer file.Close()

	upload := dto.AudioUploadDTO{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
	if err := h.validate.Struct(upload); err != nil {
		h.logger.Debug().Err(err).Str("content_type", upload.ContentType).Msg("Rejected audio upload")
		writeError(w, http.StatusBadRequest, "Unsupported audio upload")
		return
	}
	if upload.Size > h.maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "Audio file too large")
		return
	}

	audio, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read audio file")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	analysis, err := h.analysis.Analyze(r.Context(), userID, service.Upload{
		Audio:       audio,
		ContentType: upload.ContentType,
		Filename:    upload.Filename,
	})
	if err != nil {
		if errors.Is(err, service.ErrAudioTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Audio file too large")
			return
		}
		h.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to analyze recording")
		writeError(w, http.StatusInternalServerError, "Failed to analyze recording")
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisResponse(analysis))
}

func toAnalysisResponse(a *service.Analysis) dto.AnalysisResponseDTO {
	resp := dto.AnalysisResponseDTO{
		Tier:             string(a.Tier),
		Category:         a.Category,
		Confidence:       a.Confidence,
		UpgradeAvailable: a.UpgradeAvailable,
		Saved:            a.HistoryID != "",
		HistoryID:        a.HistoryID,
	}
	if a.Detail != nil {
		resp.Detail = &dto.ClassDetailDTO{
			Code:           a.Detail.Code,
			Definition:     a.Detail.Definition,
			Vocalization:   a.Detail.Vocalization,
			Description:    a.Detail.Description,
			Gender:         string(a.Detail.Gender),
			SoundType:      string(a.Detail.SoundType),
			SoundTypeLabel: a.Detail.SoundTypeLabel,
		}
	}
	for _, alt := range a.Alternatives {
		resp.Alternatives = append(resp.Alternatives, dto.AlternativeDTO{
			Code:       alt.Code,
			Definition: alt.Definition,
			Category:   string(alt.Category),
			Color:      alt.Color,
			Confidence: alt.Confidence,
		})
	}
	return resp
}
