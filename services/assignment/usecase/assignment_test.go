package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/services/assignment"
	"github.com/logicraft/dispatch/services/assignment/mocks"
)

func TestRegisterDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockRepo.EXPECT().
		CreateDriver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, driver *models.Driver) error {
			assert.NotEqual(t, uuid.Nil, driver.ID)
			assert.Equal(t, "Asha", driver.Name)
			assert.True(t, driver.Verified)
			return nil
		})

	uc := NewAssignmentService(mockRepo)

	driver, err := uc.RegisterDriver(context.Background(), "Asha", true)

	assert.NoError(t, err)
	require.NotNil(t, driver)
	assert.True(t, driver.Verified)
}

func TestAttachVehicle_NormalizesVehicleNo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockRepo.EXPECT().
		AttachVehicle(gomock.Any(), driverID, "KA01AB1234").
		Return(nil)

	uc := NewAssignmentService(mockRepo)

	err := uc.AttachVehicle(context.Background(), driverID, " ka01ab1234 ")

	assert.NoError(t, err)
}

func TestAttachVehicle_EmptyVehicleNo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAssignmentService(mocks.NewMockAssignmentRepo(ctrl))

	err := uc.AttachVehicle(context.Background(), uuid.New(), "  ")

	assert.ErrorIs(t, err, pkgerrors.ErrUnknownVehicle)
}

func TestAttachVehicle_DriverNotVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockRepo.EXPECT().
		AttachVehicle(gomock.Any(), driverID, "KA01AB1234").
		Return(pkgerrors.ErrDriverNotVerified)

	uc := NewAssignmentService(mockRepo)

	err := uc.AttachVehicle(context.Background(), driverID, "KA01AB1234")

	assert.ErrorIs(t, err, pkgerrors.ErrDriverNotVerified)
}

func TestMatchBooking_ReturnsMatchResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	driverID := uuid.New()
	vehicleNo := "KA01AB1234"

	mockRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockRepo.EXPECT().
		MatchBooking(gomock.Any(), bookingID).
		Return(&assignment.MatchResult{
			Booking: &models.Booking{ID: bookingID, Status: models.BookingStatusInTransit},
			Assignment: &models.Assignment{
				DriverID:  driverID,
				VehicleNo: &vehicleNo,
				BookingID: &bookingID,
			},
		}, nil)

	uc := NewAssignmentService(mockRepo)

	result, err := uc.MatchBooking(context.Background(), bookingID)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BookingStatusInTransit, result.Booking.Status)
	assert.Equal(t, models.AssignmentStateBusy, result.Assignment.State())
}

func TestMatchBooking_NoVehicleAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	mockRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockRepo.EXPECT().
		MatchBooking(gomock.Any(), bookingID).
		Return(nil, pkgerrors.ErrNoVehicleAvailable)

	uc := NewAssignmentService(mockRepo)

	result, err := uc.MatchBooking(context.Background(), bookingID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, pkgerrors.ErrNoVehicleAvailable)
}

func TestCompleteBooking_ResetsAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	driverID := uuid.New()
	vehicleNo := "KA01AB1234"

	mockRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockRepo.EXPECT().
		CompleteBooking(gomock.Any(), bookingID).
		Return(&assignment.MatchResult{
			Booking: &models.Booking{ID: bookingID, Status: models.BookingStatusCompleted},
			Assignment: &models.Assignment{
				DriverID:  driverID,
				VehicleNo: &vehicleNo,
			},
		}, nil)

	uc := NewAssignmentService(mockRepo)

	result, err := uc.CompleteBooking(context.Background(), bookingID)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BookingStatusCompleted, result.Booking.Status)
	// The assignment keeps its vehicle and goes back to idle.
	assert.Equal(t, models.AssignmentStateIdle, result.Assignment.State())
}

func TestGetAssignmentByVehicle_NormalizesLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vehicleNo := "KA01AB1234"
	mockRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockRepo.EXPECT().
		GetByVehicle(gomock.Any(), vehicleNo).
		Return(&models.Assignment{DriverID: uuid.New(), VehicleNo: &vehicleNo}, nil)

	uc := NewAssignmentService(mockRepo)

	assigned, err := uc.GetAssignmentByVehicle(context.Background(), "ka01ab1234")

	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentStateIdle, assigned.State())
}
