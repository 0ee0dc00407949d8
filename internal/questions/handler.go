package questions

import (
	"encoding/json"
	"net/http"

	"github.com/tutorquest/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// IngestBatch handles POST /questions/batch.
func (h *Handler) IngestBatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.IngestBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.IngestBatch(req.Questions, userID)
	if err != nil {
		if vErr, ok := err.(*ValidationError); ok {
			writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: vErr.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to ingest question batch"})
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ListActive handles GET /questions.
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	qs, err := h.service.ActiveQuestions(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load questions"})
		return
	}

	if qs == nil {
		qs = []models.Question{}
	}

	writeJSON(w, http.StatusOK, models.QuestionListResponse{Questions: qs, Total: len(qs)})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
