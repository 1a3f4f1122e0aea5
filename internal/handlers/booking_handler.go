package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"barberhub/internal/httperr"
	"barberhub/internal/httpresp"
	"barberhub/internal/middleware"
	ucbooking "barberhub/internal/usecase/booking"
)

type BookingHandler struct {
	create        *ucbooking.CreateBooking
	cancel        *ucbooking.CancelBooking
	updateStatus  *ucbooking.UpdateStatus
	listForClient *ucbooking.ListForClient
	listForBarber *ucbooking.ListForBarber
}

func NewBookingHandler(
	create *ucbooking.CreateBooking,
	cancel *ucbooking.CancelBooking,
	updateStatus *ucbooking.UpdateStatus,
	listForClient *ucbooking.ListForClient,
	listForBarber *ucbooking.ListForBarber,
) *BookingHandler {
	return &BookingHandler{
		create:        create,
		cancel:        cancel,
		updateStatus:  updateStatus,
		listForClient: listForClient,
		listForBarber: listForBarber,
	}
}

type CreateBookingRequest struct {
	BarberID    uint   `json:"barberId" binding:"required"`
	ServiceID   uint   `json:"serviceId" binding:"required"`
	ScheduledAt string `json:"scheduledAt" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_scheduled_at", "scheduledAt must be RFC3339.")
		return
	}

	view, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		ClientID:    c.GetUint(middleware.ContextUserID),
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, view)
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	views, err := h.listForClient.Execute(c.Request.Context(), c.GetUint(middleware.ContextUserID))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, views)
}

func (h *BookingHandler) BarberBookings(c *gin.Context) {
	views, err := h.listForBarber.Execute(c.Request.Context(), c.GetUint(middleware.ContextUserID))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, views)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	view, err := h.cancel.Execute(c.Request.Context(), bookingID, c.GetUint(middleware.ContextUserID))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	view, err := h.updateStatus.Execute(
		c.Request.Context(),
		c.GetUint(middleware.ContextUserID),
		bookingID,
		req.Status,
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, view)
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return 0, false
	}
	return uint(id), true
}
