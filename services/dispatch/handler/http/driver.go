package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/internal/utils"
)

// RegisterDriver handles POST /drivers
func (h *DispatchHandler) RegisterDriver(c echo.Context) error {
	var req models.RegisterDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	driver, err := h.dispatchUC.RegisterDriver(c.Request().Context(), req)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Driver registered", driver)
}

// RemoveDriver handles DELETE /drivers/:driverID
func (h *DispatchHandler) RemoveDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	if err := h.dispatchUC.RemoveDriver(c.Request().Context(), driverID); err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Driver removed", nil)
}

// AssignVehicle handles PUT /drivers/:driverID/vehicle
func (h *DispatchHandler) AssignVehicle(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req models.AssignVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	assigned, err := h.dispatchUC.AssignVehicleToDriver(c.Request().Context(), driverID, req.VehicleNo)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Vehicle assigned", assigned)
}

// GetAssignment handles GET /drivers/:driverID/assignment
func (h *DispatchHandler) GetAssignment(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	assigned, err := h.dispatchUC.GetAssignmentByDriver(c.Request().Context(), driverID)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Assignment retrieved", assigned)
}

// ListAssignments handles GET /assignments
func (h *DispatchHandler) ListAssignments(c echo.Context) error {
	assignments, err := h.dispatchUC.ListAssignments(c.Request().Context())
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Assignments retrieved", assignments)
}
