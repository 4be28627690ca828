package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func TestBlock_IsFullDay(t *testing.T) {
	tests := []struct {
		name  string
		start *types.TimeString
		end   *types.TimeString
		want  bool
	}{
		{name: "no times", want: true},
		{name: "empty start", start: ptr.Ptr(types.TimeString("")), want: true},
		{name: "midnight to midnight markers", start: ptr.Ptr(types.TimeString("00:00")), end: ptr.Ptr(types.TimeString("23:59")), want: true},
		{name: "midnight start without end", start: ptr.Ptr(types.TimeString("00:00")), want: true},
		{name: "partial block", start: ptr.Ptr(types.TimeString("14:00")), end: ptr.Ptr(types.TimeString("16:00")), want: false},
		{name: "starts at midnight but ends early", start: ptr.Ptr(types.TimeString("00:00")), end: ptr.Ptr(types.TimeString("12:00")), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := &Block{StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, tt.want, block.IsFullDay())
		})
	}
}

func TestBlock_CoversDate(t *testing.T) {
	block := &Block{
		StartDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, block.CoversDate(time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)))
	assert.True(t, block.CoversDate(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)))
	assert.True(t, block.CoversDate(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, block.CoversDate(time.Date(2026, 9, 16, 23, 30, 0, 0, time.UTC)), "time of day is ignored")
	assert.False(t, block.CoversDate(time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)))
}

func TestReservation_Lifecycle(t *testing.T) {
	active := []ReservationStatus{StatusPending, StatusConfirmed, StatusInProgress}
	for _, status := range active {
		r := &Reservation{Status: status}
		assert.True(t, r.IsActive(), string(status))
	}

	terminal := []ReservationStatus{StatusCompleted, StatusCancelled, StatusNoShow}
	for _, status := range terminal {
		r := &Reservation{Status: status}
		assert.False(t, r.IsActive(), string(status))
		assert.False(t, r.CanBeCancelled(), string(status))
	}

	assert.True(t, (&Reservation{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusInProgress}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: StatusCancelled}).IsCancelled())
}
