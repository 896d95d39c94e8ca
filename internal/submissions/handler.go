package submissions

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/reppreps/homesite/internal/observability/metrics"
	"github.com/reppreps/homesite/pkg/logging"
)

// Notifier receives persisted submissions for best-effort delivery to the
// business owner. Dispatch must never block the caller.
type Notifier interface {
	Enabled() bool
	Dispatch(sub *Submission)
}

// Handler handles HTTP requests for contact form submissions
type Handler struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.FormMetrics
	logger   *logging.Logger
}

// NewHandler creates a new submissions handler. notifier and m may be nil.
func NewHandler(repo Repository, notifier Notifier, m *metrics.FormMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// SubmitContactForm handles POST /api/contact requests.
//
// The pipeline is parse -> presence-validate -> insert -> detach
// notification -> respond. Only the parse, validation, and insert steps can
// fail the request; notification is launched after the insert succeeds and
// its outcome never reaches the client.
func (h *Handler) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.metrics.ObserveSubmitLatency(time.Since(start).Seconds())
	}()
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("unexpected panic in contact handler", "panic", rec)
			h.metrics.ObserveSubmission("panic")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
	}()

	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode contact request", "error", err)
		h.metrics.ObserveSubmission("parse_error")
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Error("contact validation failed - missing required fields", "business", req.BusinessName)
		h.metrics.ObserveSubmission("invalid")
		writeJSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	sub, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		// The raw diagnostic stays server-side; the client sees a
		// generic failure only.
		h.logger.Error("failed to persist submission", "error", err, "business", req.BusinessName, "email", req.Email)
		h.metrics.ObserveSubmission("store_error")
		writeJSONError(w, http.StatusInternalServerError, "Failed to submit form")
		return
	}

	h.logger.Info("submission created", "id", sub.ID, "business", sub.BusinessName, "name", sub.Name)
	h.metrics.ObserveSubmission("ok")

	// Fire-and-forget: a slow or failing email provider must never delay
	// or fail the user-visible response.
	if h.notifier != nil && h.notifier.Enabled() {
		h.notifier.Dispatch(sub)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    []*Submission{sub},
	})
}

// ValidateContactForm handles POST /api/contact/validate requests. It runs
// the strict field-format rules the contact form shows to the visitor and
// never touches the store; the submission endpoint itself stays
// presence-only.
func (h *Handler) ValidateContactForm(w http.ResponseWriter, r *http.Request) {
	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode validate request", "error", err)
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := ValidateStrict(&req); errs != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"valid":  false,
			"errors": errs,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
