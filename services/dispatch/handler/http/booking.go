package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/internal/utils"
)

// RequestBooking handles POST /bookings
func (h *DispatchHandler) RequestBooking(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.dispatchUC.RequestBooking(c.Request().Context(), req)
	if err != nil {
		return h.handleDomainError(c, err)
	}

	message := "Booking matched"
	if !resp.Matched {
		message = "Booking queued"
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, message, resp)
}

// GetBooking handles GET /bookings/:bookingID
func (h *DispatchHandler) GetBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.dispatchUC.GetBooking(c.Request().Context(), bookingID)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Booking retrieved", b)
}

// ListBookings handles GET /bookings
func (h *DispatchHandler) ListBookings(c echo.Context) error {
	bookings, err := h.dispatchUC.ListBookings(c.Request().Context())
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Bookings retrieved", bookings)
}

// ListBookingsByRequester handles GET /bookings/requester/:requesterID
func (h *DispatchHandler) ListBookingsByRequester(c echo.Context) error {
	requesterID, err := uuid.Parse(c.Param("requesterID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid requester ID")
	}

	bookings, err := h.dispatchUC.ListBookingsByRequester(c.Request().Context(), requesterID)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Bookings retrieved", bookings)
}

// ListBookingsByDriver handles GET /bookings/driver/:driverID
func (h *DispatchHandler) ListBookingsByDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	bookings, err := h.dispatchUC.ListBookingsByDriver(c.Request().Context(), driverID)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Bookings retrieved", bookings)
}

// CompleteBooking handles POST /bookings/:bookingID/complete
func (h *DispatchHandler) CompleteBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.dispatchUC.CompleteJob(c.Request().Context(), bookingID)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Booking completed", b)
}
