package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
)

func activeBarber(workingDaysRaw string) *domain.BarberSchedule {
	return &domain.BarberSchedule{
		BarberID:       1,
		Name:           "Diego",
		Active:         true,
		WorkingDaysRaw: workingDaysRaw,
		StartTime:      "10:00",
		EndTime:        "20:00",
	}
}

func activeService() *domain.BarberService {
	return &domain.BarberService{
		ID:              1,
		Name:            "Corte de pelo",
		DurationMinutes: 45,
		Price:           25.0,
		Active:          true,
	}
}

func TestResolveConfig_Success(t *testing.T) {
	schedule := &stubScheduleRepo{
		barber:  activeBarber(`["lunes","martes","miercoles","jueves","viernes","sabado"]`),
		service: activeService(),
		offers:  true,
	}
	svc := newTestService(schedule, &stubReservationRepo{}, &stubBlockRepo{}, time.Now())

	cfg, err := svc.ResolveConfig(context.Background(), 1, 1)

	require.NoError(t, err)
	assert.Equal(t, 600, cfg.WorkStartMinutes)
	assert.Equal(t, 1200, cfg.WorkEndMinutes)
	assert.Equal(t, 45, cfg.DurationMinutes)
	assert.Equal(t, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
	}, cfg.WorkingDays)
}

func TestResolveConfig_BarberNotFound(t *testing.T) {
	schedule := &stubScheduleRepo{barberErr: scheduleRepo.ErrBarberNotFound}
	svc := newTestService(schedule, &stubReservationRepo{}, &stubBlockRepo{}, time.Now())

	_, err := svc.ResolveConfig(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveConfig_ServiceNotFound(t *testing.T) {
	schedule := &stubScheduleRepo{
		barber:     activeBarber(`["lunes"]`),
		serviceErr: scheduleRepo.ErrServiceNotFound,
	}
	svc := newTestService(schedule, &stubReservationRepo{}, &stubBlockRepo{}, time.Now())

	_, err := svc.ResolveConfig(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveConfig_ServiceNotOffered(t *testing.T) {
	schedule := &stubScheduleRepo{
		barber:  activeBarber(`["lunes"]`),
		service: activeService(),
		offers:  false,
	}
	svc := newTestService(schedule, &stubReservationRepo{}, &stubBlockRepo{}, time.Now())

	_, err := svc.ResolveConfig(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveConfig_InvalidWorkingWindow(t *testing.T) {
	barber := activeBarber(`["lunes"]`)
	barber.StartTime = "20:00"
	barber.EndTime = "10:00"
	schedule := &stubScheduleRepo{barber: barber, service: activeService(), offers: true}
	svc := newTestService(schedule, &stubReservationRepo{}, &stubBlockRepo{}, time.Now())

	_, err := svc.ResolveConfig(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestParseWorkingDays(t *testing.T) {
	svc := newTestService(&stubScheduleRepo{}, &stubReservationRepo{}, &stubBlockRepo{}, time.Now())

	tests := []struct {
		name     string
		raw      string
		expected []time.Weekday
	}{
		{
			name:     "json array",
			raw:      `["lunes","miercoles","viernes"]`,
			expected: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:     "json array with accents",
			raw:      `["miércoles","sábado","domingo"]`,
			expected: []time.Weekday{time.Sunday, time.Wednesday, time.Saturday},
		},
		{
			name:     "legacy comma separated",
			raw:      "lunes, martes",
			expected: []time.Weekday{time.Monday, time.Tuesday},
		},
		{
			name:     "mixed case",
			raw:      `["Lunes","MARTES"]`,
			expected: []time.Weekday{time.Monday, time.Tuesday},
		},
		{
			name:     "unknown names are skipped",
			raw:      `["lunes","funkytown","martes"]`,
			expected: []time.Weekday{time.Monday, time.Tuesday},
		},
		{
			name:     "duplicates collapse",
			raw:      `["lunes","lunes","lunes"]`,
			expected: []time.Weekday{time.Monday},
		},
		{
			name:     "empty degrades to no working days",
			raw:      "",
			expected: []time.Weekday{},
		},
		{
			name:     "garbage degrades to no working days",
			raw:      "{{{",
			expected: []time.Weekday{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.parseWorkingDays(1, tt.raw))
		})
	}
}
