package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

func setupBookingRepoTest(t *testing.T) (*BookingRepository, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewBookingRepository(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func bookingRows(b *models.Booking) *sqlmock.Rows {
	dto := b.ToDTO()
	return sqlmock.NewRows([]string{
		"id", "requester_id",
		"pickup_latitude", "pickup_longitude",
		"dropoff_latitude", "dropoff_longitude",
		"vehicle_class", "distance_km", "cost", "status",
		"vehicle_no", "driver_id",
		"created_at", "updated_at",
	}).AddRow(
		dto.ID, dto.RequesterID,
		dto.PickupLatitude, dto.PickupLongitude,
		dto.DropoffLatitude, dto.DropoffLongitude,
		dto.VehicleClass, dto.DistanceKm, dto.Cost, dto.Status,
		dto.VehicleNo, dto.DriverID,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func pendingBooking() *models.Booking {
	now := time.Now().Truncate(time.Second)
	return &models.Booking{
		ID:           uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		RequesterID:  uuid.MustParse("550e8400-e29b-41d4-a716-446655440002"),
		Pickup:       models.Location{Latitude: 28.6139, Longitude: 77.2090},
		Dropoff:      models.Location{Latitude: 28.4595, Longitude: 77.0266},
		VehicleClass: models.VehicleClassSmall,
		DistanceKm:   26.2,
		Cost:         131,
		Status:       models.BookingStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	b := pendingBooking()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), b)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_DatabaseError(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(errors.New("database error"))

	err := repo.Create(context.Background(), pendingBooking())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert booking")
}

func TestGetBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	b := pendingBooking()
	mock.ExpectQuery("SELECT(.+)FROM bookings WHERE id").
		WithArgs(b.ID).
		WillReturnRows(bookingRows(b))

	got, err := repo.Get(context.Background(), b.ID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, models.BookingStatusPending, got.Status)
	assert.Nil(t, got.VehicleNo)
	assert.Nil(t, got.DriverID)
}

func TestGetBooking_NotFound(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("SELECT(.+)FROM bookings WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), id)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestListByRequester(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	b := pendingBooking()
	mock.ExpectQuery("SELECT(.+)FROM bookings WHERE requester_id(.+)ORDER BY created_at ASC").
		WithArgs(b.RequesterID).
		WillReturnRows(bookingRows(b))

	bookings, err := repo.ListByRequester(context.Background(), b.RequesterID)

	assert.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, b.ID, bookings[0].ID)
}

func TestMarkInTransit(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	id := uuid.New()
	driverID := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusInTransit, "KA01AB1234", driverID, id, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkInTransit(context.Background(), id, "KA01AB1234", driverID)

	assert.NoError(t, err)
}

func TestMarkInTransit_NotPending(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	id := uuid.New()
	driverID := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusInTransit, "KA01AB1234", driverID, id, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkInTransit(context.Background(), id, "KA01AB1234", driverID)

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidTransition)
}

func TestMarkCompleted_DoubleCompletionRejected(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusCompleted, id, models.BookingStatusInTransit).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkCompleted(context.Background(), id)

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidTransition)
}

func TestOldestPendingByClass(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	b := pendingBooking()
	mock.ExpectQuery("SELECT(.+)FROM bookings(.+)WHERE status(.+)ORDER BY created_at ASC(.+)LIMIT 1").
		WithArgs(models.BookingStatusPending, models.VehicleClassSmall).
		WillReturnRows(bookingRows(b))

	got, err := repo.OldestPendingByClass(context.Background(), models.VehicleClassSmall)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.ID)
}

func TestOldestPendingByClass_EmptyBacklog(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT(.+)FROM bookings").
		WithArgs(models.BookingStatusPending, models.VehicleClassLarge).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.OldestPendingByClass(context.Background(), models.VehicleClassLarge)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestBookingStats(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"total", "pending", "in_transit", "completed", "revenue"}).
		AddRow(10, 3, 2, 5, 1250.5)
	mock.ExpectQuery("SELECT(.+)FROM bookings").
		WillReturnRows(rows)

	stats, err := repo.Stats(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 2, stats.InTransit)
	assert.Equal(t, 5, stats.Completed)
	assert.InDelta(t, 1250.5, stats.Revenue, 1e-9)
}
