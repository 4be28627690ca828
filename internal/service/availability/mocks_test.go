package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubScheduleRepo struct {
	barber     *domain.BarberSchedule
	barberErr  error
	service    *domain.BarberService
	serviceErr error
	offers     bool
	offersErr  error
}

func (s *stubScheduleRepo) GetBarberSchedule(_ context.Context, _ int64) (*domain.BarberSchedule, error) {
	return s.barber, s.barberErr
}

func (s *stubScheduleRepo) GetService(_ context.Context, _ int64) (*domain.BarberService, error) {
	return s.service, s.serviceErr
}

func (s *stubScheduleRepo) BarberOffersService(_ context.Context, _, _ int64) (bool, error) {
	return s.offers, s.offersErr
}

type stubReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	lastFilter   domain.ReservationRangeFilter
}

func (s *stubReservationRepo) GetByBarberAndRange(_ context.Context, filter domain.ReservationRangeFilter) ([]*domain.Reservation, error) {
	s.lastFilter = filter
	return s.reservations, s.err
}

type stubBlockRepo struct {
	blocks []*domain.Block
	err    error
}

func (s *stubBlockRepo) GetByBarberOverlappingRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Block, error) {
	return s.blocks, s.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// newTestService собирает сервис на стабах с фиксированным временем
func newTestService(
	schedule *stubScheduleRepo,
	reservations *stubReservationRepo,
	blocks *stubBlockRepo,
	now time.Time,
) *Service {
	svc := NewService(schedule, reservations, blocks, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}
