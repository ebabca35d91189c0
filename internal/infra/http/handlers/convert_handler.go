package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/csvio"
	"github.com/xavierca1/mailchimp-organizer/internal/usecase"
)

// Form field carrying the uploaded export.
const UploadField = "file"

type ConvertUseCase interface {
	ConvertStream(ctx context.Context, input usecase.ConvertStreamInput) (*usecase.ConvertStreamOutput, error)
}

type ConvertHandler struct {
	UC             ConvertUseCase
	MaxUploadBytes int64
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func NewConvertHandler(uc ConvertUseCase, maxUploadBytes int64) *ConvertHandler {
	return &ConvertHandler{
		UC:             uc,
		MaxUploadBytes: maxUploadBytes,
	}
}

// HandleAuto (POST /convert) picks the pipeline from the uploaded file name.
func (h *ConvertHandler) HandleAuto(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "")
}

// HandleRoster (POST /convert/roster)
func (h *ConvertHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, entity.KindRoster)
}

// HandleVolunteers (POST /convert/volunteers)
func (h *ConvertHandler) HandleVolunteers(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, entity.KindVolunteer)
}

func (h *ConvertHandler) handle(w http.ResponseWriter, r *http.Request, kind entity.ExportKind) {
	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}

	file, header, err := r.FormFile(UploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, usecase.CodeUnsupportedInput, "upload is too large")
			return
		}
		writeError(w, http.StatusBadRequest, usecase.CodeUnsupportedInput, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	output, err := h.UC.ConvertStream(r.Context(), usecase.ConvertStreamInput{
		FileName: header.Filename,
		Kind:     kind,
		Body:     file,
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, usecase.ErrorCode(err), err.Error())
		return
	}

	var body bytes.Buffer
	if err := csvio.Encode(&body, output.Sheet); err != nil {
		writeError(w, http.StatusInternalServerError, usecase.CodeWriteFailed, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	w.Header().Set("X-Run-Id", output.RunID)
	w.WriteHeader(http.StatusOK)
	w.Write(body.Bytes())
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Code:    code,
		Message: message,
	})
}
