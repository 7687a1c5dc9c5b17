package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/internal/pkg/server"
	"github.com/logicraft/dispatch/services/dispatch/mocks"
)

func setupHandlerTest(t *testing.T) (*echo.Echo, *mocks.MockDispatchUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDispatchUC(ctrl)

	e := echo.New()
	e.Validator = server.NewRequestValidator()
	NewDispatchHandler(mockUC).RegisterRoutes(e)

	return e, mockUC, ctrl
}

func TestRequestBooking_Created(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	body := `{
		"requester_id": "` + requesterID.String() + `",
		"pickup": {"latitude": 28.6139, "longitude": 77.2090},
		"dropoff": {"latitude": 28.4595, "longitude": 77.0266},
		"vehicle_class": "small"
	}`

	mockUC.EXPECT().
		RequestBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
			assert.Equal(t, requesterID.String(), req.RequesterID)
			assert.Equal(t, "small", req.VehicleClass)
			return &models.BookingResponse{
				Booking: &models.Booking{ID: uuid.New(), Status: models.BookingStatusPending},
				Matched: false,
			}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Booking queued", resp.Message)
}

func TestRequestBooking_UnknownClassRejectedByValidator(t *testing.T) {
	e, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	body := `{
		"requester_id": "` + uuid.NewString() + `",
		"pickup": {"latitude": 28.6139, "longitude": 77.2090},
		"dropoff": {"latitude": 28.4595, "longitude": 77.0266},
		"vehicle_class": "bus"
	}`

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBooking_NotFound(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	id := uuid.New()
	mockUC.EXPECT().
		GetBooking(gomock.Any(), id).
		Return(nil, pkgerrors.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/bookings/"+id.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBooking_InvalidID(t *testing.T) {
	e, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/bookings/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteBooking_Conflict(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	id := uuid.New()
	mockUC.EXPECT().
		CompleteJob(gomock.Any(), id).
		Return(nil, pkgerrors.ErrInvalidTransition)

	req := httptest.NewRequest(http.MethodPost, "/bookings/"+id.String()+"/complete", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddVehicle_Duplicate(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		AddVehicle(gomock.Any(), gomock.Any()).
		Return(nil, pkgerrors.ErrDuplicateVehicle)

	body := `{"vehicle_no": "KA01AB1234", "vehicle_class": "small"}`
	req := httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAssignVehicle_DriverNotVerified(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUC.EXPECT().
		AssignVehicleToDriver(gomock.Any(), driverID, "KA01AB1234").
		Return(nil, pkgerrors.ErrDriverNotVerified)

	body := `{"vehicle_no": "KA01AB1234"}`
	req := httptest.NewRequest(http.MethodPut, "/drivers/"+driverID.String()+"/vehicle", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReportLocation_NoActiveAssignment(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUC.EXPECT().
		ReportLocation(gomock.Any(), gomock.Any()).
		Return(nil, pkgerrors.ErrNoActiveAssignment)

	body := `{"driver_id": "` + driverID.String() + `", "latitude": 28.6139, "longitude": 77.2090}`
	req := httptest.NewRequest(http.MethodPut, "/vehicles/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVehicleCoordinate_NoCoordinateYet(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		VehicleCoordinate(gomock.Any(), "KA01AB1234").
		Return(nil, pkgerrors.ErrNoCoordinateYet)

	req := httptest.NewRequest(http.MethodGet, "/vehicles/KA01AB1234/coordinate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListVehicles_FreeFilter(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ListFreeVehicles(gomock.Any(), models.VehicleClassSmall).
		Return([]*models.Vehicle{{VehicleNo: "KA01AB1234", Class: models.VehicleClassSmall}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/vehicles?free=true&class=small", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "KA01AB1234")
}

func TestListVehicles_FreeFilterUnknownClass(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ListFreeVehicles(gomock.Any(), models.VehicleClass("bus")).
		Return(nil, pkgerrors.ErrUnknownVehicleClass)

	req := httptest.NewRequest(http.MethodGet, "/vehicles?free=true&class=bus", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveDriver_BusyConflict(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUC.EXPECT().
		RemoveDriver(gomock.Any(), driverID).
		Return(pkgerrors.ErrInvalidTransition)

	req := httptest.NewRequest(http.MethodDelete, "/drivers/"+driverID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetVehicleAssignment_Found(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	vehicleNo := "KA01AB1234"
	mockUC.EXPECT().
		GetAssignmentByVehicle(gomock.Any(), vehicleNo).
		Return(&models.Assignment{DriverID: driverID, VehicleNo: &vehicleNo}, nil)

	req := httptest.NewRequest(http.MethodGet, "/vehicles/KA01AB1234/assignment", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), driverID.String())
}

func TestNearbyVehicles_DefaultRadius(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		NearbyVehicles(gomock.Any(), 28.6139, 77.2090, 5.0).
		Return([]string{"KA01AB1234", "KA02CD5678"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/vehicles/nearby?latitude=28.6139&longitude=77.2090", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "KA01AB1234")
}

func TestNearbyVehicles_InvalidLatitude(t *testing.T) {
	e, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/vehicles/nearby?latitude=north&longitude=77.2090", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingStatsEndpoint(t *testing.T) {
	e, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		BookingStats(gomock.Any()).
		Return(&models.BookingStats{Total: 4, Completed: 2, Revenue: 500}, nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics/bookings", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":4`)
}
