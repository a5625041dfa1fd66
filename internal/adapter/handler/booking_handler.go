package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/apsrtc_booking/internal/adapter/ticket"
	"github.com/srgjo27/apsrtc_booking/internal/core/services"
	"go.uber.org/zap"
)

type BookingHandler struct {
	history *services.HistoryService
	log     *zap.Logger
}

func NewBookingHandler(history *services.HistoryService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{history: history, log: log}
}

// GET /api/v1/bookings?q=&status=
func (h *BookingHandler) List(c *gin.Context) {
	page, err := h.history.List(c.Request.Context(), c.Query("q"), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	entry, err := h.history.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, nil)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// POST /api/v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	res, err := h.history.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, res.Notifications)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/v1/bookings/:id/ticket?format=txt|pdf
func (h *BookingHandler) Ticket(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", ticket.FormatText))
	if format != ticket.FormatText && format != ticket.FormatPDF {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported ticket format %q", format)})
		return
	}

	entry, err := h.history.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, nil)
		return
	}

	doc, err := ticket.Render(entry.BookingRecord, format, time.Local)
	if err != nil {
		respondError(c, h.log, err, nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

// DELETE /api/v1/bookings
func (h *BookingHandler) ClearAll(c *gin.Context) {
	if err := h.history.ClearAll(c.Request.Context()); err != nil {
		respondError(c, h.log, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
