package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/services"
	"go.uber.org/zap"
)

type SessionHandler struct {
	wizard   *services.Wizard
	sessions *services.WizardSessions
	log      *zap.Logger
}

func NewSessionHandler(wizard *services.Wizard, sessions *services.WizardSessions, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		wizard:   wizard,
		sessions: sessions,
		log:      log,
	}
}

type sessionResponse struct {
	SessionID     uuid.UUID             `json:"session_id"`
	State         domain.WizardState    `json:"state"`
	Fare          *domain.FareBreakdown `json:"fare,omitempty"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

type selectBusRequest struct {
	BusID string `json:"bus_id" binding:"required"`
}

func newSessionResponse(id uuid.UUID, out services.Outcome) sessionResponse {
	resp := sessionResponse{
		SessionID:     id,
		State:         out.State,
		Notifications: out.Notifications,
	}
	if out.State.TotalAmount > 0 {
		fare := services.Quote(out.State)
		resp.Fare = &fare
	}
	return resp
}

// POST /api/v1/sessions
func (h *SessionHandler) Start(c *gin.Context) {
	id, state := h.sessions.Start()
	c.JSON(http.StatusCreated, newSessionResponse(id, services.Outcome{State: state}))
}

// GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.sessions.Get(id)
	if err != nil {
		respondError(c, h.log, err, nil)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(id, services.Outcome{State: state}))
}

// DELETE /api/v1/sessions/:id
func (h *SessionHandler) Drop(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.sessions.Drop(id)
	c.Status(http.StatusNoContent)
}

// POST /api/v1/sessions/:id/search
func (h *SessionHandler) Search(c *gin.Context) {
	var req domain.SearchCriteria
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.apply(c, func(s domain.WizardState) (services.Outcome, error) {
		return h.wizard.Search(c.Request.Context(), s, req)
	})
}

// POST /api/v1/sessions/:id/bus
func (h *SessionHandler) SelectBus(c *gin.Context) {
	var req selectBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bus_id is required"})
		return
	}

	h.apply(c, func(s domain.WizardState) (services.Outcome, error) {
		return h.wizard.SelectBus(c.Request.Context(), s, req.BusID)
	})
}

// POST /api/v1/sessions/:id/seats/:seat/toggle
func (h *SessionHandler) ToggleSeat(c *gin.Context) {
	seat := c.Param("seat")
	h.apply(c, func(s domain.WizardState) (services.Outcome, error) {
		return h.wizard.ToggleSeat(c.Request.Context(), s, seat)
	})
}

// POST /api/v1/sessions/:id/seats/proceed
func (h *SessionHandler) Proceed(c *gin.Context) {
	h.apply(c, func(s domain.WizardState) (services.Outcome, error) {
		return h.wizard.ProceedToPassengers(c.Request.Context(), s)
	})
}

// POST /api/v1/sessions/:id/confirm
func (h *SessionHandler) Confirm(c *gin.Context) {
	var req services.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.apply(c, func(s domain.WizardState) (services.Outcome, error) {
		return h.wizard.Confirm(c.Request.Context(), s, req)
	})
}

// POST /api/v1/sessions/:id/back
func (h *SessionHandler) Back(c *gin.Context) {
	h.apply(c, func(s domain.WizardState) (services.Outcome, error) {
		return h.wizard.Back(c.Request.Context(), s)
	})
}

// POST /api/v1/sessions/:id/reset
func (h *SessionHandler) Reset(c *gin.Context) {
	h.apply(c, func(s domain.WizardState) (services.Outcome, error) {
		return h.wizard.Reset(c.Request.Context(), s)
	})
}

func (h *SessionHandler) apply(c *gin.Context, fn func(domain.WizardState) (services.Outcome, error)) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	out, err := h.sessions.Apply(id, fn)
	if err != nil {
		respondError(c, h.log, err, out.Notifications)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(id, out))
}

func (h *SessionHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.log, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, c.Param("id")), nil)
		return uuid.Nil, false
	}
	return id, true
}
