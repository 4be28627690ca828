package availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// GenerateSlots генерирует допустимые времена начала записи на один день.
//
// Алгоритм:
//  1. Полнодневный блок в занятости дня -> сразу пустой список
//  2. Занятость дня разворачивается в булев массив из 1440 минут;
//     каждый интервал помечает минуты [start, end)
//  3. Кандидаты идут с шагом domain.SlotStepMinutes по сетке от workingStart;
//     нижняя граница max(workingStart, minAllowedStartMinutes) выравнивается
//     вверх по той же сетке; генерация пока start+duration <= workingEnd
//  4. Кандидат допустим, если каждая минута [start, start+duration) свободна
//
// Минутный массив дает корректность при любых пересекающихся и смежных
// интервалах за O(1440) на день, без слияния интервалов.
//
// minAllowedStartMinutes считает вызывающая сторона: 0 для будущих дат,
// nowMinutes+SameDayLeadTimeMinutes для сегодняшней
func GenerateSlots(cfg *domain.ScheduleConfig, occupied []domain.OccupiedInterval, minAllowedStartMinutes int) []domain.Slot {
	if cfg.DurationMinutes <= 0 {
		return []domain.Slot{}
	}

	for _, interval := range occupied {
		if interval.FullDay {
			return []domain.Slot{}
		}
	}

	var occupiedMinutes [domain.MinutesPerDay]bool
	for _, interval := range occupied {
		start := interval.StartMinute
		end := interval.EndMinute
		if start < 0 {
			start = 0
		}
		if end > domain.MinutesPerDay {
			end = domain.MinutesPerDay
		}
		for m := start; m < end; m++ {
			occupiedMinutes[m] = true
		}
	}

	beginAt := cfg.WorkStartMinutes
	if minAllowedStartMinutes > beginAt {
		// Нижняя граница выравнивается вверх по сетке, заякоренной на начало
		// рабочего окна: кандидаты всегда лежат на шаге от WorkStartMinutes,
		// иначе сегодняшние времена съезжают с сетки и их нельзя забронировать
		offset := minAllowedStartMinutes - cfg.WorkStartMinutes
		steps := (offset + domain.SlotStepMinutes - 1) / domain.SlotStepMinutes
		beginAt = cfg.WorkStartMinutes + steps*domain.SlotStepMinutes
	}

	slots := make([]domain.Slot, 0)
	for start := beginAt; start+cfg.DurationMinutes <= cfg.WorkEndMinutes; start += domain.SlotStepMinutes {
		if isFree(&occupiedMinutes, start, start+cfg.DurationMinutes) {
			ts, err := types.NewTimeStringFromMinutes(start)
			if err != nil {
				// start < WorkEndMinutes <= 1440, сюда не попадаем
				continue
			}
			slots = append(slots, domain.Slot{
				StartMinute: start,
				StartTime:   ts,
			})
		}
	}

	return slots
}

func isFree(occupied *[domain.MinutesPerDay]bool, from, to int) bool {
	for m := from; m < to; m++ {
		if occupied[m] {
			return false
		}
	}
	return true
}
