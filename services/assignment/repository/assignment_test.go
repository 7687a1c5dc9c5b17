package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

func setupAssignmentRepoTest(t *testing.T) (*AssignmentRepository, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewAssignmentRepository(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func pendingBookingRows(id, requesterID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "requester_id",
		"pickup_latitude", "pickup_longitude",
		"dropoff_latitude", "dropoff_longitude",
		"vehicle_class", "distance_km", "cost", "status",
		"vehicle_no", "driver_id",
		"created_at", "updated_at",
	}).AddRow(
		id, requesterID,
		28.6139, 77.2090,
		28.4595, 77.0266,
		"small", 26.2, 131.0, "pending",
		nil, nil,
		now, now,
	)
}

func TestCreateDriver_InsertsAssignmentSlot(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	driver := &models.Driver{
		ID:        uuid.New(),
		Name:      "Asha",
		Verified:  true,
		CreatedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO drivers").
		WithArgs(driver.ID, driver.Name, driver.Verified, driver.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO assignments").
		WithArgs(driver.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateDriver(context.Background(), driver)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachVehicle_DriverNotVerified(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT verified FROM drivers").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"verified"}).AddRow(false))
	mock.ExpectRollback()

	err := repo.AttachVehicle(context.Background(), driverID, "KA01AB1234")

	assert.ErrorIs(t, err, pkgerrors.ErrDriverNotVerified)
}

func TestAttachVehicle_UnknownVehicle(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT verified FROM drivers").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"verified"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("XX00XX0000").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	err := repo.AttachVehicle(context.Background(), driverID, "XX00XX0000")

	assert.ErrorIs(t, err, pkgerrors.ErrUnknownVehicle)
}

func TestAttachVehicle_VehicleHeldByAnotherDriver(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	driverID := uuid.New()
	holderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT verified FROM drivers").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"verified"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("KA01AB1234").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT driver_id FROM assignments").
		WithArgs("KA01AB1234").
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}).AddRow(holderID))
	mock.ExpectRollback()

	err := repo.AttachVehicle(context.Background(), driverID, "KA01AB1234")

	assert.ErrorIs(t, err, pkgerrors.ErrVehicleAlreadyAssigned)
}

func TestAttachVehicle_Success(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT verified FROM drivers").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"verified"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("KA01AB1234").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT driver_id FROM assignments").
		WithArgs("KA01AB1234").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("UPDATE assignments SET vehicle_no").
		WithArgs("KA01AB1234", driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AttachVehicle(context.Background(), driverID, "KA01AB1234")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachVehicle_WhileCarryingBooking(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT verified FROM drivers").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"verified"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("KA02CD5678").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT driver_id FROM assignments").
		WithArgs("KA02CD5678").
		WillReturnError(sql.ErrNoRows)
	// The assignment's booking slot is occupied, so the guarded update
	// misses and the swap is refused.
	mock.ExpectExec("UPDATE assignments SET vehicle_no(.+)booking_id IS NULL").
		WithArgs("KA02CD5678", driverID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AttachVehicle(context.Background(), driverID, "KA02CD5678")

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachVehicle_RivalWinsUniqueConstraint(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT verified FROM drivers").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"verified"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("KA01AB1234").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT driver_id FROM assignments").
		WithArgs("KA01AB1234").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("UPDATE assignments SET vehicle_no").
		WithArgs("KA01AB1234", driverID).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "assignments_vehicle_no_key"})
	mock.ExpectRollback()

	err := repo.AttachVehicle(context.Background(), driverID, "KA01AB1234")

	assert.ErrorIs(t, err, pkgerrors.ErrVehicleAlreadyAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchBooking_Success(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	requesterID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)FROM bookings WHERE id(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(pendingBookingRows(bookingID, requesterID))
	mock.ExpectQuery("SELECT a.driver_id, a.vehicle_no").
		WithArgs(models.VehicleClassSmall).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "vehicle_no"}).
			AddRow(driverID, "KA01AB1234"))
	mock.ExpectExec("UPDATE assignments SET booking_id").
		WithArgs(bookingID, driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE vehicles SET busy = TRUE").
		WithArgs("KA01AB1234").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusInTransit, "KA01AB1234", driverID, bookingID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.MatchBooking(context.Background(), bookingID)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BookingStatusInTransit, result.Booking.Status)
	require.NotNil(t, result.Booking.VehicleNo)
	assert.Equal(t, "KA01AB1234", *result.Booking.VehicleNo)
	assert.Equal(t, models.AssignmentStateBusy, result.Assignment.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchBooking_ClaimRace_TriesNextCandidate(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	requesterID := uuid.New()
	firstDriver := uuid.New()
	secondDriver := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)FROM bookings WHERE id(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(pendingBookingRows(bookingID, requesterID))
	mock.ExpectQuery("SELECT a.driver_id, a.vehicle_no").
		WithArgs(models.VehicleClassSmall).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "vehicle_no"}).
			AddRow(firstDriver, "KA01AB1111").
			AddRow(secondDriver, "KA01AB2222"))
	// First candidate already claimed by a rival transaction.
	mock.ExpectExec("UPDATE assignments SET booking_id").
		WithArgs(bookingID, firstDriver).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE assignments SET booking_id").
		WithArgs(bookingID, secondDriver).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE vehicles SET busy = TRUE").
		WithArgs("KA01AB2222").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusInTransit, "KA01AB2222", secondDriver, bookingID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.MatchBooking(context.Background(), bookingID)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, secondDriver, result.Assignment.DriverID)
}

func TestMatchBooking_NoIdleAssignment(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	requesterID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)FROM bookings WHERE id(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(pendingBookingRows(bookingID, requesterID))
	mock.ExpectQuery("SELECT a.driver_id, a.vehicle_no").
		WithArgs(models.VehicleClassSmall).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "vehicle_no"}))
	mock.ExpectRollback()

	result, err := repo.MatchBooking(context.Background(), bookingID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, pkgerrors.ErrNoVehicleAvailable)
}

func TestMatchBooking_BookingNotPending(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	requesterID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "requester_id",
		"pickup_latitude", "pickup_longitude",
		"dropoff_latitude", "dropoff_longitude",
		"vehicle_class", "distance_km", "cost", "status",
		"vehicle_no", "driver_id",
		"created_at", "updated_at",
	}).AddRow(
		bookingID, requesterID,
		28.6139, 77.2090, 28.4595, 77.0266,
		"small", 26.2, 131.0, "completed",
		"KA01AB1234", uuid.New(),
		now, now,
	)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)FROM bookings WHERE id(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(rows)
	mock.ExpectRollback()

	result, err := repo.MatchBooking(context.Background(), bookingID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidTransition)
}

func TestCompleteBooking_Success(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	requesterID := uuid.New()
	driverID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "requester_id",
		"pickup_latitude", "pickup_longitude",
		"dropoff_latitude", "dropoff_longitude",
		"vehicle_class", "distance_km", "cost", "status",
		"vehicle_no", "driver_id",
		"created_at", "updated_at",
	}).AddRow(
		bookingID, requesterID,
		28.6139, 77.2090, 28.4595, 77.0266,
		"small", 26.2, 131.0, "in-transit",
		"KA01AB1234", driverID,
		now, now,
	)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)FROM bookings WHERE id(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(rows)
	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusCompleted, bookingID, models.BookingStatusInTransit).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE vehicles SET busy = FALSE").
		WithArgs("KA01AB1234").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE assignments SET booking_id = NULL").
		WithArgs(bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.CompleteBooking(context.Background(), bookingID)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BookingStatusCompleted, result.Booking.Status)
	require.NotNil(t, result.Assignment)
	assert.Equal(t, driverID, result.Assignment.DriverID)
	assert.Equal(t, models.AssignmentStateIdle, result.Assignment.State())
}

func TestCompleteBooking_NotInTransit(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	requesterID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)FROM bookings WHERE id(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(pendingBookingRows(bookingID, requesterID))
	mock.ExpectRollback()

	result, err := repo.CompleteBooking(context.Background(), bookingID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidTransition)
}

func TestDeleteDriver_BusyAssignmentRejected(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	driverID := uuid.New()
	bookingID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)FROM assignments WHERE driver_id(.+)FOR UPDATE").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "vehicle_no", "booking_id", "attached_at"}).
			AddRow(driverID, "KA01AB1234", bookingID, now))
	mock.ExpectRollback()

	err := repo.DeleteDriver(context.Background(), driverID)

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidTransition)
}
