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

// Фикстура: сентябрь 2026, сегодня вторник 15-е, полдень.
// Барбер работает 10:00-20:00 кроме воскресений, услуга 45 минут
func monthFixture() (*stubScheduleRepo, *stubReservationRepo, *stubBlockRepo, time.Time) {
	schedule := &stubScheduleRepo{
		barber:  activeBarber(`["lunes","martes","miercoles","jueves","viernes","sabado"]`),
		service: activeService(),
		offers:  true,
	}
	reservations := &stubReservationRepo{
		reservations: []*domain.Reservation{
			// 22-е полностью занято
			{ID: 1, Date: date(2026, 9, 22), StartTime: "10:00", EndTime: "20:00", Status: domain.StatusConfirmed},
		},
	}
	blocks := &stubBlockRepo{
		blocks: []*domain.Block{
			// 23-е закрыто блокировкой на весь день
			{ID: 1, BarberID: 1, StartDate: date(2026, 9, 23), EndDate: date(2026, 9, 23)},
		},
	}
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	return schedule, reservations, blocks, now
}

func dayByNumber(t *testing.T, month *domain.MonthAvailability, day int) domain.DayAvailability {
	t.Helper()
	require.True(t, day >= 1 && day <= len(month.Days))
	got := month.Days[day-1]
	require.Equal(t, day, got.Day)
	return got
}

func TestComputeMonth_DayClassification(t *testing.T) {
	svc := newTestService(monthFixture())

	month, err := svc.ComputeMonth(context.Background(), 1, 1, 2026, time.September)

	require.NoError(t, err)
	require.Len(t, month.Days, 30)

	// Прошедшие дни
	past := dayByNumber(t, month, 5)
	assert.False(t, past.Available)
	assert.Equal(t, domain.ReasonPast, past.Reason)

	// Прошедшее воскресенье остается past, а не not_working_day
	pastSunday := dayByNumber(t, month, 13)
	assert.Equal(t, domain.ReasonPast, pastSunday.Reason)

	// Будущие воскресенья - нерабочие дни
	for _, sunday := range []int{20, 27} {
		got := dayByNumber(t, month, sunday)
		assert.Equal(t, domain.ReasonNotWorkingDay, got.Reason, "day %d", sunday)
	}

	// Полнодневная блокировка
	blocked := dayByNumber(t, month, 23)
	assert.Equal(t, domain.ReasonBlocked, blocked.Reason)

	// Полностью занятый день
	noSlots := dayByNumber(t, month, 22)
	assert.Equal(t, domain.ReasonNoSlots, noSlots.Reason)

	// Обычный будущий рабочий день: вся сетка свободна
	free := dayByNumber(t, month, 16)
	assert.True(t, free.Available)
	assert.Equal(t, 38, free.SlotCount)
	assert.Equal(t, "10:00", free.FirstSlot.String())
	assert.Equal(t, "19:15", free.LastSlot.String())
}

func TestComputeMonth_TodayRespectsLeadTime(t *testing.T) {
	svc := newTestService(monthFixture())

	month, err := svc.ComputeMonth(context.Background(), 1, 1, 2026, time.September)

	require.NoError(t, err)

	// Сейчас 12:00, запас 120 минут: первый слот сегодня - 14:00
	today := dayByNumber(t, month, 15)
	require.True(t, today.Available)
	assert.Equal(t, "14:00", today.FirstSlot.String())
	assert.Equal(t, "19:15", today.LastSlot.String())
	assert.Equal(t, 22, today.SlotCount)
}

func TestComputeMonth_OffGridNowAlignsTodayFirstSlot(t *testing.T) {
	schedule, reservations, blocks, _ := monthFixture()
	now := time.Date(2026, 9, 15, 12, 7, 0, 0, time.UTC)
	svc := newTestService(schedule, reservations, blocks, now)

	month, err := svc.ComputeMonth(context.Background(), 1, 1, 2026, time.September)

	require.NoError(t, err)

	// Сырая граница 14:07 выравнивается до 14:15: объявленные времена
	// обязаны лежать на сетке, иначе путь записи их отклонит
	today := dayByNumber(t, month, 15)
	require.True(t, today.Available)
	assert.Equal(t, "14:15", today.FirstSlot.String())
	assert.Equal(t, "19:15", today.LastSlot.String())
	assert.Equal(t, 21, today.SlotCount)

	first, err := today.FirstSlot.MinuteOfDay()
	require.NoError(t, err)
	assert.Zero(t, (first-600)%domain.SlotStepMinutes)
}

func TestComputeMonth_Deterministic(t *testing.T) {
	svc := newTestService(monthFixture())

	first, err := svc.ComputeMonth(context.Background(), 1, 1, 2026, time.September)
	require.NoError(t, err)
	second, err := svc.ComputeMonth(context.Background(), 1, 1, 2026, time.September)
	require.NoError(t, err)

	assert.Equal(t, first.Days, second.Days)
	assert.Equal(t, first.AvailableCount(), second.AvailableCount())
}

func TestComputeMonth_CancelledContext(t *testing.T) {
	svc := newTestService(monthFixture())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ComputeMonth(ctx, 1, 1, 2026, time.September)

	assert.Error(t, err)
}

func TestComputeMonth_NotFound(t *testing.T) {
	schedule := &stubScheduleRepo{barberErr: scheduleRepo.ErrBarberNotFound}
	svc := newTestService(schedule, &stubReservationRepo{}, &stubBlockRepo{}, time.Now())

	_, err := svc.ComputeMonth(context.Background(), 1, 1, 2026, time.September)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDaySlots_GridKeepsUnavailableCandidates(t *testing.T) {
	schedule, _, _, now := monthFixture()
	reservations := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 1, Date: date(2026, 9, 16), StartTime: "10:00", EndTime: "10:45", Status: domain.StatusConfirmed},
		},
	}
	svc := newTestService(schedule, reservations, &stubBlockRepo{}, now)

	slots, err := svc.DaySlots(context.Background(), 1, date(2026, 9, 16), 45)

	require.NoError(t, err)
	require.Len(t, slots, 38)

	byTime := make(map[string]bool, len(slots))
	for _, slot := range slots {
		byTime[slot.StartTime.String()] = slot.Available
	}

	assert.False(t, byTime["10:00"], "occupied candidate stays in grid as unavailable")
	assert.False(t, byTime["10:30"], "overlapping candidate is unavailable")
	assert.True(t, byTime["10:45"])
	assert.True(t, byTime["19:15"])
}

func TestDaySlots_TodayLeadTimeFlagsMorning(t *testing.T) {
	svc := newTestService(monthFixture())

	slots, err := svc.DaySlots(context.Background(), 1, date(2026, 9, 15), 45)

	require.NoError(t, err)
	require.Len(t, slots, 38)

	byTime := make(map[string]bool, len(slots))
	for _, slot := range slots {
		byTime[slot.StartTime.String()] = slot.Available
	}

	assert.False(t, byTime["10:00"], "morning candidates present but unavailable")
	assert.False(t, byTime["13:45"])
	assert.True(t, byTime["14:00"])
}

func TestDaySlots_OffGridNowKeepsAfternoonBookable(t *testing.T) {
	schedule, reservations, blocks, _ := monthFixture()
	now := time.Date(2026, 9, 15, 12, 7, 0, 0, time.UTC)
	svc := newTestService(schedule, reservations, blocks, now)

	slots, err := svc.DaySlots(context.Background(), 1, date(2026, 9, 15), 45)

	require.NoError(t, err)
	require.Len(t, slots, 38)

	byTime := make(map[string]bool, len(slots))
	for _, slot := range slots {
		byTime[slot.StartTime.String()] = slot.Available
	}

	assert.False(t, byTime["14:00"], "candidate before the aligned lead-time floor")
	assert.True(t, byTime["14:15"], "first grid candidate after lead time must stay bookable")
	assert.True(t, byTime["19:15"])
}

func TestDaySlots_EmptyGridCases(t *testing.T) {
	svc := newTestService(monthFixture())

	tests := []struct {
		name string
		day  time.Time
	}{
		{name: "past date", day: date(2026, 9, 1)},
		{name: "non working day", day: date(2026, 9, 20)},
		{name: "fully blocked day", day: date(2026, 9, 23)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := svc.DaySlots(context.Background(), 1, tt.day, 45)
			require.NoError(t, err)
			assert.Empty(t, slots)
		})
	}
}

func TestDaySlots_BarberNotFound(t *testing.T) {
	schedule := &stubScheduleRepo{barberErr: scheduleRepo.ErrBarberNotFound}
	svc := newTestService(schedule, &stubReservationRepo{}, &stubBlockRepo{}, time.Now())

	_, err := svc.DaySlots(context.Background(), 1, date(2026, 9, 16), 45)

	assert.ErrorIs(t, err, ErrNotFound)
}
