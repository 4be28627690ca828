package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Рабочее окно 10:00-20:00, услуга 45 минут
func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		BarberID:         1,
		ServiceID:        1,
		WorkStartMinutes: 600,
		WorkEndMinutes:   1200,
		DurationMinutes:  45,
	}
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	slots := GenerateSlots(testConfig(), nil, 0)

	// Кандидаты 10:00..19:15 с шагом 15 минут
	require.Len(t, slots, 38)
	assert.Equal(t, "10:00", slots[0].StartTime.String())
	assert.Equal(t, "19:15", slots[len(slots)-1].StartTime.String())
}

func TestGenerateSlots_OccupiedInterval(t *testing.T) {
	occupied := []domain.OccupiedInterval{
		{StartMinute: 600, EndMinute: 645, Source: domain.SourceReservation}, // 10:00-10:45
	}

	slots := GenerateSlots(testConfig(), occupied, 0)

	// 10:00, 10:15 и 10:30 пересекаются с записью, первый допустимый - 10:45
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:45", slots[0].StartTime.String())
	assert.Len(t, slots, 35)
}

func TestGenerateSlots_AdjacentIntervalsDoNotBlock(t *testing.T) {
	// Запись заканчивается ровно в 10:45: слот с началом 10:45 допустим,
	// граничное касание не является пересечением
	occupied := []domain.OccupiedInterval{
		{StartMinute: 600, EndMinute: 645, Source: domain.SourceReservation},
		{StartMinute: 690, EndMinute: 735, Source: domain.SourceReservation}, // 11:30-12:15
	}

	slots := GenerateSlots(testConfig(), occupied, 0)

	starts := make(map[string]bool)
	for _, s := range slots {
		starts[s.StartTime.String()] = true
	}

	assert.True(t, starts["10:45"], "slot adjacent to reservation end must be available")
	assert.False(t, starts["11:00"], "slot overlapping next reservation must be blocked")
	assert.True(t, starts["12:15"])
}

func TestGenerateSlots_LeadTimeCutoff(t *testing.T) {
	// Сейчас 11:30, запас 120 минут: кандидаты раньше 13:30 отсеиваются
	minAllowed := 690 + domain.SameDayLeadTimeMinutes

	slots := GenerateSlots(testConfig(), nil, minAllowed)

	require.NotEmpty(t, slots)
	assert.Equal(t, "13:30", slots[0].StartTime.String())
}

func TestGenerateSlots_LeadTimeFloorAlignsToGrid(t *testing.T) {
	// Сейчас 12:07, запас 120 минут: сырая граница 14:07 не лежит на сетке
	// рабочего окна, первый кандидат выравнивается вверх до 14:15
	minAllowed := 727 + domain.SameDayLeadTimeMinutes

	slots := GenerateSlots(testConfig(), nil, minAllowed)

	require.NotEmpty(t, slots)
	assert.Equal(t, "14:15", slots[0].StartTime.String())
	assert.Len(t, slots, 21)
	for _, s := range slots {
		assert.Zerof(t, (s.StartMinute-600)%domain.SlotStepMinutes,
			"slot %s must lie on the working window grid", s.StartTime)
	}
}

func TestGenerateSlots_FullDayBlock(t *testing.T) {
	occupied := []domain.OccupiedInterval{
		{StartMinute: 0, EndMinute: domain.MinutesPerDay, FullDay: true, Source: domain.SourceBlock},
	}

	slots := GenerateSlots(testConfig(), occupied, 0)

	assert.Empty(t, slots)
}

func TestGenerateSlots_DurationMustFitWorkingWindow(t *testing.T) {
	cfg := testConfig()
	cfg.DurationMinutes = 480

	slots := GenerateSlots(cfg, nil, 0)

	// start+480 <= 1200 допускает старты 10:00..12:00
	require.Len(t, slots, 9)
	assert.Equal(t, "10:00", slots[0].StartTime.String())
	assert.Equal(t, "12:00", slots[len(slots)-1].StartTime.String())
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	cfg := testConfig()
	cfg.DurationMinutes = 0

	assert.Empty(t, GenerateSlots(cfg, nil, 0))
}

func TestGenerateSlots_FullyBookedDay(t *testing.T) {
	occupied := []domain.OccupiedInterval{
		{StartMinute: 600, EndMinute: 1200, Source: domain.SourceReservation},
	}

	assert.Empty(t, GenerateSlots(testConfig(), occupied, 0))
}

func TestGenerateSlots_OverlappingIntervals(t *testing.T) {
	// Пересекающиеся интервалы (запись и частичный блок) не ломают расчет
	occupied := []domain.OccupiedInterval{
		{StartMinute: 600, EndMinute: 700, Source: domain.SourceReservation},
		{StartMinute: 650, EndMinute: 780, Source: domain.SourceBlock}, // 13:00
	}

	slots := GenerateSlots(testConfig(), occupied, 0)

	require.NotEmpty(t, slots)
	assert.Equal(t, "13:00", slots[0].StartTime.String())
}
