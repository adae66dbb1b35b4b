package usecase

import (
	"context"
	"errors"

	"go-doctors-portal/internal/converter"
	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"
	"go-doctors-portal/internal/domain/repository"
	"go-doctors-portal/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientMismatch = errors.New("patient does not match the authenticated user")
	ErrInvalidSlot     = errors.New("slot is not offered for this treatment")
)

type BookingUsecase interface {
	GetPatientBookings(ctx context.Context, requester, patient string) ([]dto.BookingResponse, error)
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
}

type bookingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	serviceRepo repository.ServiceRepository
	metrics     *metrics.Metrics
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	m *metrics.Metrics,
) BookingUsecase {
	return &bookingUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		metrics:     m,
	}
}

// GetPatientBookings only lets a user read their own bookings.
func (u *bookingUsecase) GetPatientBookings(ctx context.Context, requester, patient string) ([]dto.BookingResponse, error) {
	if requester != patient {
		return nil, ErrPatientMismatch
	}

	bookings, err := u.bookingRepo.FindByPatient(u.db.WithContext(ctx), patient)
	if err != nil {
		u.log.Warnf("Failed to find bookings for patient %s: %+v", patient, err)
		return nil, err
	}

	return converter.BookingsToResponses(bookings), nil
}

// CreateBooking stores at most one booking per patient, treatment and date.
//
// Flow:
// 1. An existing booking for the triple is returned with success=false,
//    whatever slot the request names
// 2. If the treatment is a known service, the slot must be one of its slots
// 3. Insert; the unique index rejects a concurrent duplicate that slipped
//    past step 1, which is answered like step 1
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.bookingRepo.FindByPatientTreatmentDate(db, req.Patient, req.Treatment, req.Date)
	if err != nil {
		u.log.Warnf("Failed to check existing booking: %+v", err)
		return nil, err
	}
	if existing != nil {
		return u.duplicate(existing), nil
	}

	svc, err := u.serviceRepo.FindByName(db, req.Treatment)
	if err != nil {
		u.log.Warnf("Failed to find service %q: %+v", req.Treatment, err)
		return nil, err
	}
	if svc != nil && !svc.HasSlot(req.Slot) {
		return nil, ErrInvalidSlot
	}

	booking := converter.CreateBookingRequestToEntity(req)
	if err := u.bookingRepo.Create(db, booking); err != nil {
		if isDuplicateKeyError(err, entity.BookingUniqueIndex) {
			return u.resolveConcurrentDuplicate(ctx, req)
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	u.metrics.ObserveBooking(metrics.BookingCreated)
	result := converter.InsertResult(booking.ID)
	return &dto.CreateBookingResponse{Success: true, Result: &result}, nil
}

func (u *bookingUsecase) resolveConcurrentDuplicate(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	u.log.Debugf("Concurrent duplicate booking for %s/%s/%s", req.Patient, req.Treatment, req.Date)

	existing, err := u.bookingRepo.FindByPatientTreatmentDate(u.db.WithContext(ctx), req.Patient, req.Treatment, req.Date)
	if err != nil {
		u.log.Warnf("Failed to load conflicting booking: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("conflicting booking vanished")
	}
	return u.duplicate(existing), nil
}

func (u *bookingUsecase) duplicate(existing *entity.Booking) *dto.CreateBookingResponse {
	u.metrics.ObserveBooking(metrics.BookingDuplicate)
	return &dto.CreateBookingResponse{Success: false, Booking: converter.BookingToResponse(existing)}
}
