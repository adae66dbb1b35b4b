package usecase

import (
	"context"

	"go-doctors-portal/internal/availability"
	"go-doctors-portal/internal/converter"
	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"
	"go-doctors-portal/internal/domain/repository"
	"go-doctors-portal/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CatalogUsecase interface {
	ListServices(ctx context.Context) ([]dto.ServiceSummaryResponse, error)
	GetAvailability(ctx context.Context, date string) ([]dto.AvailableServiceResponse, error)
}

type catalogUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
	bookingRepo repository.BookingRepository
	cache       *service.CatalogCache
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	bookingRepo repository.BookingRepository,
	cache *service.CatalogCache,
) CatalogUsecase {
	return &catalogUsecase{
		db:          db,
		log:         log,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

func (u *catalogUsecase) ListServices(ctx context.Context) ([]dto.ServiceSummaryResponse, error) {
	services, err := u.loadServices(ctx)
	if err != nil {
		return nil, err
	}
	return converter.ServicesToSummaries(services), nil
}

// GetAvailability removes the slots booked on date from every service. The
// date is not parsed; an unknown format just matches no bookings.
func (u *catalogUsecase) GetAvailability(ctx context.Context, date string) ([]dto.AvailableServiceResponse, error) {
	services, err := u.loadServices(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := u.bookingRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to find bookings for date %q: %+v", date, err)
		return nil, err
	}

	return converter.ServicesToAvailable(availability.Compute(services, bookings, date)), nil
}

// loadServices reads the catalog through the Redis cache when one is
// configured. Bookings are never cached.
func (u *catalogUsecase) loadServices(ctx context.Context) ([]entity.Service, error) {
	if services, ok := u.cache.GetServices(ctx); ok {
		return services, nil
	}

	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	u.cache.SetServices(ctx, services)
	return services, nil
}
