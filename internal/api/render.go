package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/FairEM360/internal/chart"
	"github.com/MikeSquared-Agency/FairEM360/internal/hermes"
	"github.com/MikeSquared-Agency/FairEM360/internal/metrics"
	"github.com/MikeSquared-Agency/FairEM360/internal/palette"
	"github.com/MikeSquared-Agency/FairEM360/internal/pareto"
	"github.com/MikeSquared-Agency/FairEM360/internal/table"
)

// RenderHandler serves the stateless chart and table computations.
type RenderHandler struct {
	builder *chart.Builder
	hermes  hermes.Client
	logger  *slog.Logger
}

func NewRenderHandler(b *chart.Builder, h hermes.Client, logger *slog.Logger) *RenderHandler {
	return &RenderHandler{builder: b, hermes: h, logger: logger}
}

type ColorsRequest struct {
	Labels []string `json:"labels"`
	Alpha  *float64 `json:"alpha,omitempty"`
}

type ColorResponse struct {
	Label string        `json:"label"`
	Hue   int           `json:"hue"`
	Color palette.Color `json:"color"`
	RGBA  string        `json:"rgba"`
}

// Colors handles POST /api/v1/colors
func (h *RenderHandler) Colors(w http.ResponseWriter, r *http.Request) {
	var req ColorsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	alpha := 1.0
	if req.Alpha != nil {
		alpha = *req.Alpha
	}

	out := make([]ColorResponse, 0, len(req.Labels))
	for _, label := range req.Labels {
		c := palette.Assign(label, alpha)
		out = append(out, ColorResponse{Label: label, Hue: palette.Hue(label), Color: c, RGBA: c.String()})
	}
	metrics.ColorsAssigned.Add(float64(len(out)))
	writeJSON(w, http.StatusOK, out)
}

type ClassifyRequest struct {
	Points     []pareto.Point    `json:"points"`
	XObjective *pareto.Direction `json:"x_objective,omitempty"`
	YObjective *pareto.Direction `json:"y_objective,omitempty"`
}

type ClassifyResponse struct {
	Frontier      []bool `json:"frontier"`
	FrontierCount int    `json:"frontier_count"`
}

// Classify handles POST /api/v1/pareto/classify
func (h *RenderHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	xDir, yDir := pareto.DefaultXDirection, pareto.DefaultYDirection
	if req.XObjective != nil {
		xDir = *req.XObjective
	}
	if req.YObjective != nil {
		yDir = *req.YObjective
	}

	frontier := pareto.Classify(req.Points, xDir, yDir)
	metrics.ObserveFrontier(frontier)

	resp := ClassifyResponse{Frontier: frontier}
	for _, on := range frontier {
		if on {
			resp.FrontierCount++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type ScatterRequest struct {
	Series []pareto.Series `json:"series"`
}

// Scatter handles POST /api/v1/charts/scatter
func (h *RenderHandler) Scatter(w http.ResponseWriter, r *http.Request) {
	var req ScatterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.scatter(req.Series, ""))
}

// scatter builds the chart and records it; shared with saved comparisons.
func (h *RenderHandler) scatter(series []pareto.Series, comparisonID string) chart.ScatterChart {
	c := h.builder.Scatter(series)

	ev := hermes.ChartRenderedEvent{
		Kind:         "scatter",
		ComparisonID: comparisonID,
		Points:       make(map[string]int, len(c.Datasets)),
		Frontier:     make(map[string]int, len(c.Datasets)),
		Timestamp:    time.Now().UTC(),
	}
	for _, ds := range c.Datasets {
		metrics.ObserveFrontier(ds.Frontier)
		ev.Points[ds.Series] += len(ds.Data)
		ev.Frontier[ds.Series] += ds.FrontierCount()
	}
	metrics.ChartsRendered.WithLabelValues("scatter").Inc()
	hermes.Emit(h.hermes, h.logger, hermes.SubjectChartRendered, ev)
	return c
}

type BarRequest struct {
	Measures          map[string][]chart.GroupDisparity `json:"measures"`
	OnlyUnfair        bool                              `json:"only_unfair"`
	FairnessThreshold *float64                          `json:"fairness_threshold,omitempty"`
}

// Bar handles POST /api/v1/charts/bar
func (h *RenderHandler) Bar(w http.ResponseWriter, r *http.Request) {
	var req BarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c := h.builder.Bar(req.Measures, req.OnlyUnfair, req.FairnessThreshold)
	metrics.ChartsRendered.WithLabelValues("bar").Inc()
	writeJSON(w, http.StatusOK, c)
}

type SortTableRequest struct {
	Columns []table.Column   `json:"columns"`
	Rows    []table.Row      `json:"rows"`
	Sort    table.SortConfig `json:"sort"`
	// Toggle is the key of a clicked column header, applied before sorting.
	Toggle string `json:"toggle,omitempty"`
}

type HeaderCell struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Indicator string `json:"indicator,omitempty"`
}

type SortTableResponse struct {
	Columns []HeaderCell     `json:"columns"`
	Rows    []table.Row      `json:"rows"`
	Sort    table.SortConfig `json:"sort"`
}

// SortTable handles POST /api/v1/tables/sort
func (h *RenderHandler) SortTable(w http.ResponseWriter, r *http.Request) {
	var req SortTableRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	switch req.Sort.Direction {
	case "", table.Asc, table.Desc:
	default:
		writeError(w, http.StatusBadRequest, "invalid sort direction")
		return
	}

	cfg := req.Sort
	if req.Toggle != "" {
		cfg = cfg.Toggle(req.Toggle)
	}

	header := make([]HeaderCell, 0, len(req.Columns))
	for _, c := range req.Columns {
		header = append(header, HeaderCell{Key: c.Key, Label: c.Label, Indicator: cfg.Indicator(c.Key)})
	}
	writeJSON(w, http.StatusOK, SortTableResponse{
		Columns: header,
		Rows:    table.Sort(req.Rows, cfg),
		Sort:    cfg,
	})
}
