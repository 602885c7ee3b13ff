package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/FairEM360/internal/hermes"
	"github.com/MikeSquared-Agency/FairEM360/internal/store"
	"github.com/MikeSquared-Agency/FairEM360/internal/wizard"
)

type WizardHandler struct {
	store  store.Store
	hermes hermes.Client
	logger *slog.Logger
}

func NewWizardHandler(s store.Store, h hermes.Client, logger *slog.Logger) *WizardHandler {
	return &WizardHandler{store: s, hermes: h, logger: logger}
}

type ReduceRequest struct {
	// State defaults to a fresh wizard when omitted.
	State  *wizard.State `json:"state,omitempty"`
	Action wizard.Action `json:"action"`
}

// Reduce handles POST /api/v1/wizard/actions. It applies one action to the
// supplied state and returns the new state without storing anything.
func (h *WizardHandler) Reduce(w http.ResponseWriter, r *http.Request) {
	var req ReduceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	st := wizard.New()
	if req.State != nil {
		st = *req.State
	}
	next, err := wizard.Apply(st, req.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, next)
}

// CreateSession handles POST /api/v1/wizard/sessions
func (h *WizardHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := &store.Session{State: wizard.New()}
	if err := h.store.CreateSession(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.emit(hermes.SubjectSessionCreated(sess.ID.String()), sess, "")
	writeJSON(w, http.StatusCreated, sess)
}

// GetSession handles GET /api/v1/wizard/sessions/{id}
func (h *WizardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// ApplyToSession handles POST /api/v1/wizard/sessions/{id}/actions
func (h *WizardHandler) ApplyToSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	var action wizard.Action
	if err := decodeJSON(w, r, &action); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	next, err := wizard.Apply(sess.State, action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess.State = next
	if err := h.store.UpdateSession(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.emit(hermes.SubjectSessionUpdated(sess.ID.String()), sess, string(action.Type))
	writeJSON(w, http.StatusOK, sess)
}

func (h *WizardHandler) loadSession(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return nil, false
	}
	sess, err := h.store.GetSession(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if sess == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

func (h *WizardHandler) emit(subject string, sess *store.Session, action string) {
	hermes.Emit(h.hermes, h.logger, subject, hermes.SessionEvent{
		SessionID: sess.ID.String(),
		Step:      sess.State.Step.String(),
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}
