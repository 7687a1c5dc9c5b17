package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/internal/utils"
)

const defaultNearbyRadiusKm = 5.0

// AddVehicle handles POST /vehicles
func (h *DispatchHandler) AddVehicle(c echo.Context) error {
	var req models.AddVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	v, err := h.dispatchUC.AddVehicle(c.Request().Context(), req)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Vehicle registered", v)
}

// GetVehicle handles GET /vehicles/:vehicleNo
func (h *DispatchHandler) GetVehicle(c echo.Context) error {
	v, err := h.dispatchUC.GetVehicle(c.Request().Context(), c.Param("vehicleNo"))
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Vehicle retrieved", v)
}

// ListVehicles handles GET /vehicles, optionally filtered to free vehicles
// of a class with ?free=true&class=<class>.
func (h *DispatchHandler) ListVehicles(c echo.Context) error {
	ctx := c.Request().Context()

	var vehicles []*models.Vehicle
	var err error
	if c.QueryParam("free") == "true" {
		class := models.VehicleClass(c.QueryParam("class"))
		vehicles, err = h.dispatchUC.ListFreeVehicles(ctx, class)
	} else {
		vehicles, err = h.dispatchUC.ListVehicles(ctx)
	}
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Vehicles retrieved", vehicles)
}

// ReportLocation handles PUT /vehicles/location
func (h *DispatchHandler) ReportLocation(c echo.Context) error {
	var req models.ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	update, err := h.dispatchUC.ReportLocation(c.Request().Context(), req)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Location recorded", update)
}

// GetVehicleAssignment handles GET /vehicles/:vehicleNo/assignment
func (h *DispatchHandler) GetVehicleAssignment(c echo.Context) error {
	a, err := h.dispatchUC.GetAssignmentByVehicle(c.Request().Context(), c.Param("vehicleNo"))
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Assignment retrieved", a)
}

// NearbyVehicles handles GET /vehicles/nearby?latitude=&longitude=&radius_km=
func (h *DispatchHandler) NearbyVehicles(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radiusKm := defaultNearbyRadiusKm
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			return utils.BadRequestResponse(c, "Invalid radius_km")
		}
	}

	vehicleNos, err := h.dispatchUC.NearbyVehicles(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Nearby vehicles retrieved", vehicleNos)
}

// GetVehicleCoordinate handles GET /vehicles/:vehicleNo/coordinate
func (h *DispatchHandler) GetVehicleCoordinate(c echo.Context) error {
	coordinate, err := h.dispatchUC.VehicleCoordinate(c.Request().Context(), c.Param("vehicleNo"))
	if err != nil {
		return h.handleDomainError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Coordinate retrieved", coordinate)
}
