package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/services/vehicle/mocks"
)

func TestAddVehicle_NormalizesVehicleNo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	mockRepo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, v *models.Vehicle) error {
			assert.Equal(t, "KA01AB1234", v.VehicleNo)
			assert.False(t, v.Busy)
			assert.False(t, v.RegisteredAt.IsZero())
			return nil
		})

	uc := NewVehicleService(mockRepo)

	v, err := uc.AddVehicle(context.Background(), "  ka01ab1234 ", models.VehicleClassSmall)

	assert.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "KA01AB1234", v.VehicleNo)
	assert.Nil(t, v.Coordinate)
}

func TestAddVehicle_UnknownClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewVehicleService(mocks.NewMockVehicleRepo(ctrl))

	_, err := uc.AddVehicle(context.Background(), "KA01AB1234", models.VehicleClass("bus"))

	assert.ErrorIs(t, err, pkgerrors.ErrUnknownVehicleClass)
}

func TestAddVehicle_EmptyVehicleNo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewVehicleService(mocks.NewMockVehicleRepo(ctrl))

	_, err := uc.AddVehicle(context.Background(), "   ", models.VehicleClassSmall)

	assert.Error(t, err)
}

func TestAddVehicle_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	mockRepo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(pkgerrors.ErrDuplicateVehicle)

	uc := NewVehicleService(mockRepo)

	_, err := uc.AddVehicle(context.Background(), "KA01AB1234", models.VehicleClassSmall)

	assert.ErrorIs(t, err, pkgerrors.ErrDuplicateVehicle)
}

func TestGetVehicle_NormalizesLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), "KA01AB1234").
		Return(&models.Vehicle{VehicleNo: "KA01AB1234", Class: models.VehicleClassSmall}, nil)

	uc := NewVehicleService(mockRepo)

	v, err := uc.GetVehicle(context.Background(), "ka01ab1234")

	assert.NoError(t, err)
	assert.Equal(t, "KA01AB1234", v.VehicleNo)
}

func TestListFree_RejectsUnknownClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewVehicleService(mocks.NewMockVehicleRepo(ctrl))

	_, err := uc.ListFree(context.Background(), models.VehicleClass("tractor"))

	assert.ErrorIs(t, err, pkgerrors.ErrUnknownVehicleClass)
}
