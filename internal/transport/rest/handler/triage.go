// Package handler implements the REST endpoints for the triage service.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/crimson-sun/triage/internal/engine"
	"github.com/crimson-sun/triage/internal/model"
	"github.com/crimson-sun/triage/internal/store"
)

// TriageHandler handles assessment endpoints.
type TriageHandler struct {
	engine *engine.Engine
	store  *store.Store
}

// NewTriageHandler creates a TriageHandler.
func NewTriageHandler(eng *engine.Engine, st *store.Store) *TriageHandler {
	return &TriageHandler{engine: eng, store: st}
}

// AssessRequest is the request body for POST /v1/triage/assess.
type AssessRequest struct {
	PatientID string `json:"patient_id"`
	Symptoms  string `json:"symptoms"`
}

// ReviewRequest is the request body for POST /v1/triage/assessments/{id}/review.
type ReviewRequest struct {
	StaffID string `json:"staff_id"`
}

// AssessmentJSON is the wire shape of a stored assessment.
type AssessmentJSON struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	Symptoms       string    `json:"symptoms"`
	Severity       string    `json:"severity"`
	Recommendation string    `json:"recommendation"`
	Confidence     float64   `json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
	ReviewedBy     string    `json:"reviewed_by,omitempty"`
	IsReviewed     bool      `json:"is_reviewed"`
}

func toJSON(rec model.AssessmentRecord) AssessmentJSON {
	return AssessmentJSON{
		ID:             rec.ID,
		PatientID:      rec.PatientID,
		Symptoms:       rec.Symptoms,
		Severity:       string(rec.Assessment.Severity),
		Recommendation: rec.Assessment.Recommendation,
		Confidence:     rec.Assessment.Confidence,
		CreatedAt:      rec.CreatedAt,
		ReviewedBy:     rec.ReviewedBy,
		IsReviewed:     rec.IsReviewed,
	}
}

// Assess handles POST /v1/triage/assess. The assessment itself cannot fail
// (a degraded engine still produces an Unknown result), so the only error
// responses are for bad requests and storage failures.
func (h *TriageHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.PatientID == "" {
		writeError(w, http.StatusBadRequest, "patient_id is required")
		return
	}

	rec := model.AssessmentRecord{
		PatientID:  req.PatientID,
		Symptoms:   req.Symptoms,
		Assessment: h.engine.Assess(req.Symptoms),
	}
	if err := h.store.Save(r.Context(), &rec); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toJSON(rec))
}

// List handles GET /v1/triage/assessments with either ?patient_id=… or
// ?pending=true.
func (h *TriageHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		recs []model.AssessmentRecord
		err  error
	)
	switch {
	case r.URL.Query().Get("patient_id") != "":
		recs, err = h.store.ListByPatient(r.Context(), r.URL.Query().Get("patient_id"))
	case r.URL.Query().Get("pending") == "true":
		recs, err = h.store.ListPending(r.Context())
	default:
		writeError(w, http.StatusBadRequest, "patient_id or pending=true is required")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]AssessmentJSON, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toJSON(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /v1/triage/assessments/{id}.
func (h *TriageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rec, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}
	writeJSON(w, http.StatusOK, toJSON(*rec))
}

// Review handles POST /v1/triage/assessments/{id}/review.
func (h *TriageHandler) Review(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.StaffID == "" {
		writeError(w, http.StatusBadRequest, "staff_id is required")
		return
	}

	rec, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}

	if err := h.store.MarkReviewed(r.Context(), id, req.StaffID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rec.IsReviewed = true
	rec.ReviewedBy = req.StaffID
	writeJSON(w, http.StatusOK, toJSON(*rec))
}

// Stats handles GET /v1/triage/stats.
func (h *TriageHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	bySeverity := make(map[string]int, len(stats.BySeverity))
	for sev, n := range stats.BySeverity {
		bySeverity[string(sev)] = n
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":       stats.Total,
		"reviewed":    stats.Reviewed,
		"pending":     stats.Pending,
		"by_severity": bySeverity,
	})
}
