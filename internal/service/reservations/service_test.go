package reservations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/notifservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubReservationRepo struct {
	byID         map[int64]*domain.Reservation
	byUser       []*domain.Reservation
	cancelErr    error
	cancelled    []int64
	cancelReason string
}

func (s *stubReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if r, ok := s.byID[id]; ok {
		return r, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (s *stubReservationRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Reservation, error) {
	return s.byUser, nil
}

func (s *stubReservationRepo) Cancel(_ context.Context, id int64, reason string) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.cancelled = append(s.cancelled, id)
	s.cancelReason = reason
	return nil
}

type stubCache struct {
	invalidated []int64
}

func (s *stubCache) InvalidateBarber(barberID int64) int {
	s.invalidated = append(s.invalidated, barberID)
	return 1
}

type stubNotifier struct {
	events []*notifservice.ReservationEvent
}

func (s *stubNotifier) SendReservationEventWithGracefulDegradation(_ context.Context, event *notifservice.ReservationEvent) error {
	s.events = append(s.events, event)
	return nil
}

func testReservation(id, userID int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		UserID:       userID,
		BarberID:     3,
		ServiceID:    2,
		Date:         time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "10:45",
		Status:       status,
		ServiceName:  "Corte de pelo",
		ServicePrice: 25.0,
	}
}

func newTestService(repo *stubReservationRepo) (*Service, *stubCache, *stubNotifier) {
	cache := &stubCache{}
	notifier := &stubNotifier{}
	return NewService(repo, cache, notifier, nopLogger{}), cache, notifier
}

func TestGetByID_Success(t *testing.T) {
	repo := &stubReservationRepo{
		byID: map[int64]*domain.Reservation{5: testReservation(5, 10, domain.StatusConfirmed)},
	}
	svc, _, _ := newTestService(repo)

	got, err := svc.GetByID(context.Background(), 5, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "2026-09-16", got.Date)
	assert.Equal(t, "10:00", got.StartTime)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestService(&stubReservationRepo{})

	_, err := svc.GetByID(context.Background(), 5, 10)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByID_ForeignReservationDenied(t *testing.T) {
	repo := &stubReservationRepo{
		byID: map[int64]*domain.Reservation{5: testReservation(5, 10, domain.StatusConfirmed)},
	}
	svc, _, _ := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 5, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserReservations_StatusFilter(t *testing.T) {
	repo := &stubReservationRepo{
		byUser: []*domain.Reservation{
			testReservation(1, 10, domain.StatusConfirmed),
			testReservation(2, 10, domain.StatusCancelled),
			testReservation(3, 10, domain.StatusConfirmed),
		},
	}
	svc, _, _ := newTestService(repo)

	status := string(domain.StatusConfirmed)
	got, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 10,
		Status: &status,
	})

	require.NoError(t, err)
	require.Len(t, got.Reservations, 2)
	assert.Equal(t, int64(1), got.Reservations[0].ID)
	assert.Equal(t, int64(3), got.Reservations[1].ID)
}

func TestGetUserReservations_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(&stubReservationRepo{})

	status := "unknown"
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 10,
		Status: &status,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserReservations_EmptyHistory(t *testing.T) {
	svc, _, _ := newTestService(&stubReservationRepo{})

	got, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 10})

	require.NoError(t, err)
	assert.Empty(t, got.Reservations)
	assert.NotNil(t, got.Reservations, "empty list serializes as [], not null")
}

func TestCancel_Success(t *testing.T) {
	repo := &stubReservationRepo{
		byID: map[int64]*domain.Reservation{5: testReservation(5, 10, domain.StatusPending)},
	}
	svc, cache, notifier := newTestService(repo)

	err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{
		UserID:             10,
		CancellationReason: "planes cambiados",
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.cancelled)
	assert.Equal(t, "planes cambiados", repo.cancelReason)
	assert.Equal(t, []int64{3}, cache.invalidated, "cancelling frees time, cache must be invalidated")

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notifservice.EventTypeCancelled, notifier.events[0].Type)
	require.NotNil(t, notifier.events[0].Reason)
	assert.Equal(t, "planes cambiados", *notifier.events[0].Reason)
}

func TestCancel_ForeignReservationDenied(t *testing.T) {
	repo := &stubReservationRepo{
		byID: map[int64]*domain.Reservation{5: testReservation(5, 10, domain.StatusPending)},
	}
	svc, cache, _ := newTestService(repo)

	err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{UserID: 99})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
	assert.Empty(t, cache.invalidated)
}

func TestCancel_TerminalStatusesRejected(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &stubReservationRepo{
				byID: map[int64]*domain.Reservation{5: testReservation(5, 10, status)},
			}
			svc, _, notifier := newTestService(repo)

			err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{UserID: 10})

			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.Empty(t, notifier.events)
		})
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &stubReservationRepo{
		byID: map[int64]*domain.Reservation{5: testReservation(5, 10, domain.StatusPending)},
	}
	svc, _, _ := newTestService(repo)

	err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{
		UserID:             10,
		CancellationReason: strings.Repeat("a", domain.MaxCancelReasonLength+1),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _, _ := newTestService(&stubReservationRepo{})

	err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{UserID: 10})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}
