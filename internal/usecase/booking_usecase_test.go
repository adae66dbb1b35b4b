package usecase

import (
	"context"
	"testing"

	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"
	"go-doctors-portal/internal/infrastructure/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingUsecase(t *testing.T) (BookingUsecase, *fakeBookingRepo) {
	t.Helper()
	services := &fakeServiceRepo{services: []entity.Service{
		{Name: "Cleaning", Slots: entity.SlotList{"9am", "10am"}},
	}}
	bookings := &fakeBookingRepo{}
	return NewBookingUsecase(newTestDB(t), quietLogger(), bookings, services, metrics.NewMetrics()), bookings
}

func cleaningRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{Treatment: "Cleaning", Date: "2024-01-01", Slot: "9am", Patient: "a@x.com"}
}

func TestCreateBooking_DuplicateReturnsExisting(t *testing.T) {
	uc, repo := newBookingUsecase(t)
	ctx := context.Background()

	first, err := uc.CreateBooking(ctx, cleaningRequest())
	require.NoError(t, err)
	assert.True(t, first.Success)
	require.NotNil(t, first.Result)
	assert.True(t, first.Result.Acknowledged)
	assert.NotEmpty(t, first.Result.InsertedID)
	assert.Nil(t, first.Booking)

	again := cleaningRequest()
	again.Slot = "10am"
	second, err := uc.CreateBooking(ctx, again)
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Nil(t, second.Result)
	require.NotNil(t, second.Booking)
	assert.Equal(t, first.Result.InsertedID, second.Booking.ID.String())
	assert.Equal(t, "9am", second.Booking.Slot)

	assert.Len(t, repo.bookings, 1)
}

func TestCreateBooking_ConcurrentDuplicateResolvedByIndex(t *testing.T) {
	uc, repo := newBookingUsecase(t)

	winner := entity.Booking{Patient: "a@x.com", Treatment: "Cleaning", Date: "2024-01-01", Slot: "10am"}
	repo.beforeCreate = func(f *fakeBookingRepo) { f.insert(winner) }

	resp, err := uc.CreateBooking(context.Background(), cleaningRequest())
	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "10am", resp.Booking.Slot)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBooking_DifferentDateOrTreatmentIsNotDuplicate(t *testing.T) {
	uc, repo := newBookingUsecase(t)
	ctx := context.Background()

	_, err := uc.CreateBooking(ctx, cleaningRequest())
	require.NoError(t, err)

	otherDay := cleaningRequest()
	otherDay.Date = "2024-01-02"
	resp, err := uc.CreateBooking(ctx, otherDay)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	otherPatient := cleaningRequest()
	otherPatient.Patient = "b@x.com"
	resp, err = uc.CreateBooking(ctx, otherPatient)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	assert.Len(t, repo.bookings, 3)
}

func TestCreateBooking_RejectsSlotOfKnownService(t *testing.T) {
	uc, repo := newBookingUsecase(t)

	req := cleaningRequest()
	req.Slot = "midnight"
	_, err := uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Empty(t, repo.bookings)
}

func TestCreateBooking_DuplicateWithUnofferedSlotReturnsExisting(t *testing.T) {
	uc, repo := newBookingUsecase(t)
	ctx := context.Background()

	first, err := uc.CreateBooking(ctx, cleaningRequest())
	require.NoError(t, err)
	require.True(t, first.Success)

	again := cleaningRequest()
	again.Slot = "3pm"
	second, err := uc.CreateBooking(ctx, again)
	require.NoError(t, err)
	assert.False(t, second.Success)
	require.NotNil(t, second.Booking)
	assert.Equal(t, first.Result.InsertedID, second.Booking.ID.String())
	assert.Equal(t, "9am", second.Booking.Slot)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBooking_UnknownTreatmentPassesThrough(t *testing.T) {
	uc, _ := newBookingUsecase(t)

	req := cleaningRequest()
	req.Treatment = "Surgery"
	req.Slot = "any"
	resp, err := uc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestCreateBooking_StoreFailure(t *testing.T) {
	uc, repo := newBookingUsecase(t)
	repo.err = errStore

	_, err := uc.CreateBooking(context.Background(), cleaningRequest())
	assert.ErrorIs(t, err, errStore)
}

func TestGetPatientBookings(t *testing.T) {
	uc, repo := newBookingUsecase(t)
	repo.insert(entity.Booking{Patient: "a@x.com", Treatment: "Cleaning", Date: "2024-01-01", Slot: "9am"})
	repo.insert(entity.Booking{Patient: "b@x.com", Treatment: "Cleaning", Date: "2024-01-01", Slot: "10am"})

	bookings, err := uc.GetPatientBookings(context.Background(), "a@x.com", "a@x.com")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "a@x.com", bookings[0].Patient)

	_, err = uc.GetPatientBookings(context.Background(), "a@x.com", "b@x.com")
	assert.ErrorIs(t, err, ErrPatientMismatch)
}
