package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/FairEM360/internal/hermes"
	"github.com/MikeSquared-Agency/FairEM360/internal/metrics"
	"github.com/MikeSquared-Agency/FairEM360/internal/pareto"
	"github.com/MikeSquared-Agency/FairEM360/internal/store"
)

type ComparisonsHandler struct {
	store  store.Store
	hermes hermes.Client
	render *RenderHandler
	logger *slog.Logger
}

func NewComparisonsHandler(s store.Store, h hermes.Client, render *RenderHandler, logger *slog.Logger) *ComparisonsHandler {
	return &ComparisonsHandler{store: s, hermes: h, render: render, logger: logger}
}

type CreateComparisonRequest struct {
	Name               string          `json:"name"`
	DatasetID          string          `json:"dataset_id"`
	SensitiveAttribute string          `json:"sensitive_attribute,omitempty"`
	FairnessThreshold  *float64        `json:"fairness_threshold,omitempty"`
	Series             []pareto.Series `json:"series"`
}

// Create handles POST /api/v1/comparisons
func (h *ComparisonsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateComparisonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" || req.DatasetID == "" {
		writeError(w, http.StatusBadRequest, "name and dataset_id required")
		return
	}
	if req.Series == nil {
		req.Series = []pareto.Series{}
	}

	c := &store.Comparison{
		Name:               req.Name,
		DatasetID:          req.DatasetID,
		SensitiveAttribute: req.SensitiveAttribute,
		FairnessThreshold:  req.FairnessThreshold,
		Series:             req.Series,
	}
	if err := h.store.CreateComparison(r.Context(), c); err != nil {
		h.logger.Error("failed to save comparison", "dataset_id", req.DatasetID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.ComparisonsSaved.Inc()

	hermes.Emit(h.hermes, h.logger, hermes.SubjectComparisonSaved(c.ID.String()), hermes.ComparisonSavedEvent{
		ComparisonID: c.ID.String(),
		Name:         c.Name,
		DatasetID:    c.DatasetID,
		SeriesCount:  len(c.Series),
		Timestamp:    time.Now().UTC(),
	})

	writeJSON(w, http.StatusCreated, c)
}

// List handles GET /api/v1/comparisons
func (h *ComparisonsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ComparisonFilter{DatasetID: r.URL.Query().Get("dataset_id")}
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if s := r.URL.Query().Get("offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	list, err := h.store.ListComparisons(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*store.Comparison{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /api/v1/comparisons/{id}
func (h *ComparisonsHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Chart handles GET /api/v1/comparisons/{id}/chart
func (h *ComparisonsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.render.scatter(c.Series, c.ID.String()))
}

// Delete handles DELETE /api/v1/comparisons/{id}
func (h *ComparisonsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.store.DeleteComparison(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "comparison not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	hermes.Emit(h.hermes, h.logger, hermes.SubjectComparisonDeleted(id.String()), hermes.ComparisonDeletedEvent{
		ComparisonID: id.String(),
		Timestamp:    time.Now().UTC(),
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ComparisonsHandler) load(w http.ResponseWriter, r *http.Request) (*store.Comparison, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return nil, false
	}
	c, err := h.store.GetComparison(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "comparison not found")
		return nil, false
	}
	return c, true
}
