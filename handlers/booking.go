package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medibook/services/booking"
)

// BookingHandler exposes the slot-selection session flow over HTTP.
type BookingHandler struct {
	service booking.BookingSessionService
	logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// InitiateSession starts a session for a doctor and consultation type.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		DoctorID         string `json:"doctorId"`
		ConsultationType string `json:"consultationType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.service.InitiateSession(c.Request.Context(), input.DoctorID, input.ConsultationType)
	if err != nil {
		h.abortWithSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectDay moves the session's day tab.
func (h *BookingHandler) SelectDay(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		DayIndex int `json:"dayIndex"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.service.SelectDay(c.Request.Context(), sessionID, input.DayIndex)
	if err != nil {
		h.abortWithSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSlot records the chosen slot time label.
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.service.SelectSlot(c.Request.Context(), sessionID, input.Time)
	if err != nil {
		h.abortWithSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking hands back the redirect payload for the external
// confirmation flow.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	redirect, err := h.service.ConfirmBooking(c.Request.Context(), sessionID)
	if err != nil {
		h.abortWithSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, redirect)
}

// CancelSession drops a session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.service.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.abortWithSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "cancelled": true})
}

func (h *BookingHandler) abortWithSessionError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch booking.ErrorCode(err) {
	case booking.CodeMissingParameter:
		status = http.StatusBadRequest
	case booking.CodeFetchFailure:
		status = http.StatusBadGateway
	case booking.CodeSessionNotFound:
		status = http.StatusNotFound
	case booking.CodeDayOutOfRange, booking.CodeSlotNotFound, booking.CodeSlotNotSelected:
		status = http.StatusBadRequest
	case booking.CodeAlreadySubmitting:
		status = http.StatusConflict
	}
	h.logger.Warn("booking request failed", zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
