package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/logicraft/dispatch/internal/utils"
)

// BookingStats handles GET /analytics/bookings
func (h *DispatchHandler) BookingStats(c echo.Context) error {
	stats, err := h.dispatchUC.BookingStats(c.Request().Context())
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Booking stats retrieved", stats)
}

// VehicleStats handles GET /analytics/vehicles
func (h *DispatchHandler) VehicleStats(c echo.Context) error {
	stats, err := h.dispatchUC.VehicleStats(c.Request().Context())
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Vehicle stats retrieved", stats)
}

// DriverStats handles GET /analytics/drivers
func (h *DispatchHandler) DriverStats(c echo.Context) error {
	stats, err := h.dispatchUC.DriverStats(c.Request().Context())
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Driver stats retrieved", stats)
}
