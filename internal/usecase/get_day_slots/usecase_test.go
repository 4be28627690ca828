package get_day_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubEngine struct {
	slots []domain.DaySlot
	err   error
}

func (s *stubEngine) DaySlots(_ context.Context, _ int64, _ time.Time, _ int) ([]domain.DaySlot, error) {
	return s.slots, s.err
}

func validDaySlotsRequest() *Request {
	return &Request{
		BarberID:        1,
		Date:            time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
	}
}

func TestExecute_ReturnsEngineGrid(t *testing.T) {
	engine := &stubEngine{
		slots: []domain.DaySlot{
			{StartTime: "10:00", Available: false},
			{StartTime: "10:15", Available: true},
		},
	}
	uc := NewUseCase(engine, nopLogger{})

	got, err := uc.Execute(context.Background(), validDaySlotsRequest())

	require.NoError(t, err)
	assert.Equal(t, engine.slots, got)
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(&stubEngine{err: availability.ErrNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), validDaySlotsRequest())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecute_EngineFailureIsInternal(t *testing.T) {
	uc := NewUseCase(&stubEngine{err: errors.New("db down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), validDaySlotsRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr bool
	}{
		{name: "valid", mutate: func(req *Request) {}},
		{name: "zero barber", mutate: func(req *Request) { req.BarberID = 0 }, wantErr: true},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }, wantErr: true},
		{name: "duration below minimum", mutate: func(req *Request) { req.DurationMinutes = 4 }, wantErr: true},
		{name: "duration at minimum", mutate: func(req *Request) { req.DurationMinutes = domain.MinServiceDurationMinutes }},
		{name: "duration at maximum", mutate: func(req *Request) { req.DurationMinutes = domain.MaxServiceDurationMinutes }},
		{name: "duration above maximum", mutate: func(req *Request) { req.DurationMinutes = domain.MaxServiceDurationMinutes + 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validDaySlotsRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
