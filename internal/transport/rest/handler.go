package rest

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"email-triage/internal/application/port/input"
	"email-triage/internal/application/port/output"
	"email-triage/internal/domain/entity"
)

// maxEmailBytes bounds both form parsing and file uploads.
const maxEmailBytes = 1 << 20

type Handler struct {
	classifier input.EmailClassifier
	logger     output.LoggerPort
}

func NewHandler(classifier input.EmailClassifier, logger output.LoggerPort) *Handler {
	return &Handler{
		classifier: classifier,
		logger:     logger,
	}
}

type processEmailResponse struct {
	Response string `json:"response"`
	Category string `json:"category"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ProcessEmail accepts the email as a form field or an uploaded file; the
// field wins when both are present.
func (h *Handler) ProcessEmail(w http.ResponseWriter, r *http.Request) {
	emailText, err := extractEmailText(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if emailText == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no email text provided"})
		return
	}

	result, err := h.classifier.Classify(r.Context(), entity.Email{Text: emailText})
	if err != nil {
		h.logger.Error("Classification failed", "error", err)
		writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, processEmailResponse{
		Response: result.RawAnswer,
		Category: string(result.Category),
	})
}

func extractEmailText(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxEmailBytes); err != nil {
			return "", errors.New("invalid multipart form")
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return "", errors.New("invalid form")
		}
	}

	if text := strings.TrimSpace(r.FormValue("email_text")); text != "" {
		return text, nil
	}

	file, _, err := r.FormFile("email_file")
	if err != nil {
		return "", nil
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxEmailBytes))
	if err != nil {
		return "", errors.New("could not read uploaded file")
	}
	return strings.TrimSpace(string(data)), nil
}

// statusForError maps the client error taxonomy onto gateway-style HTTP
// statuses: upstream rejections are 502, a timed-out upstream is 504.
func statusForError(err error) int {
	var authErr *output.AuthenticationError
	var svcErr *output.ServiceError
	var decErr *output.DecodeError
	var transErr *output.TransportError

	switch {
	case errors.Is(err, entity.ErrEmptyEmail):
		return http.StatusBadRequest
	case errors.As(err, &authErr), errors.As(err, &svcErr), errors.As(err, &decErr):
		return http.StatusBadGateway
	case errors.As(err, &transErr):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
