package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Block период недоступности барбера (отпуск, перерыв, личный блок)
// Может покрывать несколько календарных дат (fecha_inicio..fecha_fin включительно)
type Block struct {
	ID        int64
	BarberID  int64
	StartDate time.Time
	EndDate   time.Time
	StartTime *types.TimeString // nil = с начала дня
	EndTime   *types.TimeString // nil = до конца дня
	Reason    *string

	CreatedAt time.Time
}

// IsFullDay returns true if the block disables the whole day regardless of
// the requested service duration.
// Полнодневным считается блок без времени, либо записанный как 00:00-23:59
// (так UI сохраняет отпуска)
func (b *Block) IsFullDay() bool {
	if b.StartTime == nil || *b.StartTime == "" {
		return true
	}
	if string(*b.StartTime) != FullDayBlockStart {
		return false
	}
	if b.EndTime == nil || *b.EndTime == "" {
		return true
	}
	return string(*b.EndTime) == FullDayBlockEnd
}

// CoversDate returns true if the block covers the given calendar date
func (b *Block) CoversDate(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(b.StartDate)) && !d.After(truncateToDate(b.EndDate))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
