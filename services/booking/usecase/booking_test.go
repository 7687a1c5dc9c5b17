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
	"github.com/logicraft/dispatch/services/booking/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			SmallRatePerKm:  5,
			MediumRatePerKm: 10,
			LargeRatePerKm:  20,
			Currency:        "INR",
		},
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		RequesterID:  uuid.NewString(),
		Pickup:       models.CoordinateRequest{Latitude: 28.6139, Longitude: 77.2090},
		Dropoff:      models.CoordinateRequest{Latitude: 28.4595, Longitude: 77.0266},
		VehicleClass: "small",
	}
}

func TestCreateBooking_ComputesDistanceAndCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, b *models.Booking) error {
			assert.Equal(t, models.BookingStatusPending, b.Status)
			assert.Greater(t, b.DistanceKm, 20.0)
			assert.Less(t, b.DistanceKm, 35.0)
			assert.InDelta(t, b.DistanceKm*5, b.Cost, 1e-9)
			assert.Nil(t, b.VehicleNo)
			assert.Nil(t, b.DriverID)
			return nil
		})

	uc := NewBookingService(testConfig(), mockRepo)

	b, err := uc.CreateBooking(context.Background(), validRequest())

	assert.NoError(t, err)
	require.NotNil(t, b)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, models.VehicleClassSmall, b.VehicleClass)
}

func TestCreateBooking_ZeroDistanceIsFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewBookingService(testConfig(), mockRepo)

	req := validRequest()
	req.Dropoff = req.Pickup

	b, err := uc.CreateBooking(context.Background(), req)

	assert.NoError(t, err)
	assert.InDelta(t, 0, b.DistanceKm, 1e-9)
	assert.InDelta(t, 0, b.Cost, 1e-9)
}

func TestCreateBooking_UnknownClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewBookingService(testConfig(), mocks.NewMockBookingRepo(ctrl))

	req := validRequest()
	req.VehicleClass = "rickshaw"

	_, err := uc.CreateBooking(context.Background(), req)

	assert.ErrorIs(t, err, pkgerrors.ErrUnknownVehicleClass)
}

func TestCreateBooking_InvalidCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewBookingService(testConfig(), mocks.NewMockBookingRepo(ctrl))

	req := validRequest()
	req.Pickup.Latitude = 95

	_, err := uc.CreateBooking(context.Background(), req)

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidCoordinate)
}

func TestCreateBooking_InvalidRequesterID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewBookingService(testConfig(), mocks.NewMockBookingRepo(ctrl))

	req := validRequest()
	req.RequesterID = "nope"

	_, err := uc.CreateBooking(context.Background(), req)

	assert.Error(t, err)
}
