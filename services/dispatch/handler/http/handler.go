package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/logger"
	"github.com/logicraft/dispatch/internal/utils"
	"github.com/logicraft/dispatch/services/dispatch"
)

// DispatchHandler exposes the dispatch usecase over HTTP
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// RegisterRoutes registers all dispatch routes on the echo instance
func (h *DispatchHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/bookings")
	bookings.POST("", h.RequestBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:bookingID", h.GetBooking)
	bookings.GET("/requester/:requesterID", h.ListBookingsByRequester)
	bookings.GET("/driver/:driverID", h.ListBookingsByDriver)
	bookings.POST("/:bookingID/complete", h.CompleteBooking)

	drivers := e.Group("/drivers")
	drivers.POST("", h.RegisterDriver)
	drivers.DELETE("/:driverID", h.RemoveDriver)
	drivers.PUT("/:driverID/vehicle", h.AssignVehicle)
	drivers.GET("/:driverID/assignment", h.GetAssignment)

	e.GET("/assignments", h.ListAssignments)

	vehicles := e.Group("/vehicles")
	vehicles.POST("", h.AddVehicle)
	vehicles.GET("", h.ListVehicles)
	vehicles.PUT("/location", h.ReportLocation)
	vehicles.GET("/nearby", h.NearbyVehicles)
	vehicles.GET("/:vehicleNo", h.GetVehicle)
	vehicles.GET("/:vehicleNo/coordinate", h.GetVehicleCoordinate)
	vehicles.GET("/:vehicleNo/assignment", h.GetVehicleAssignment)

	analytics := e.Group("/analytics")
	analytics.GET("/bookings", h.BookingStats)
	analytics.GET("/vehicles", h.VehicleStats)
	analytics.GET("/drivers", h.DriverStats)
}

// handleDomainError maps domain errors to HTTP responses
func (h *DispatchHandler) handleDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound),
		errors.Is(err, pkgerrors.ErrUnknownVehicle),
		errors.Is(err, pkgerrors.ErrNoActiveAssignment),
		errors.Is(err, pkgerrors.ErrNoCoordinateYet):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, pkgerrors.ErrDuplicateVehicle),
		errors.Is(err, pkgerrors.ErrVehicleAlreadyAssigned),
		errors.Is(err, pkgerrors.ErrInvalidTransition):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, pkgerrors.ErrInvalidCoordinate),
		errors.Is(err, pkgerrors.ErrUnknownVehicleClass):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, pkgerrors.ErrDriverNotVerified):
		return utils.ForbiddenResponse(c, err.Error())
	default:
		logger.Error("Unhandled dispatch error",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
