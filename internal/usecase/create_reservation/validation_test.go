package create_reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		UserID:    10,
		BarberID:  1,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr bool
	}{
		{name: "valid", mutate: func(req *Request) {}},
		{name: "zero user", mutate: func(req *Request) { req.UserID = 0 }, wantErr: true},
		{name: "negative barber", mutate: func(req *Request) { req.BarberID = -1 }, wantErr: true},
		{name: "zero service", mutate: func(req *Request) { req.ServiceID = 0 }, wantErr: true},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }, wantErr: true},
		{name: "empty time", mutate: func(req *Request) { req.StartTime = "" }, wantErr: true},
		{name: "malformed time", mutate: func(req *Request) { req.StartTime = "25:70" }, wantErr: true},
		{name: "notes at limit", mutate: func(req *Request) {
			req.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength))
		}},
		{name: "notes too long", mutate: func(req *Request) {
			req.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1))
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
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

func TestValidateTimeWindow(t *testing.T) {
	cfg := &domain.ScheduleConfig{
		WorkStartMinutes: 600, // 10:00
		WorkEndMinutes:   1200,
		DurationMinutes:  45,
	}

	tests := []struct {
		name        string
		startMinute int
		wantErr     error
	}{
		{name: "at window start", startMinute: 600},
		{name: "last fitting slot", startMinute: 1155},
		{name: "before window", startMinute: 585, wantErr: ErrOutsideWorkingHours},
		{name: "does not fit before close", startMinute: 1170, wantErr: ErrOutsideWorkingHours},
		{name: "not aligned to grid", startMinute: 607, wantErr: ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTimeWindow(cfg, tt.startMinute)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLeadTime(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	// Завтра запас не применяется
	assert.NoError(t, validateLeadTime(tomorrow, now, 600))

	// Сегодня 13:45 - меньше 120 минут от полудня
	assert.ErrorIs(t, validateLeadTime(today, now, 825), ErrTooLateToBook)

	// Сегодня 14:00 - ровно на границе запаса
	assert.NoError(t, validateLeadTime(today, now, 840))
}

func TestHasOverlap(t *testing.T) {
	occupied := []domain.OccupiedInterval{
		{StartMinute: 600, EndMinute: 645},
		{StartMinute: 720, EndMinute: 780},
	}

	assert.True(t, hasOverlap(occupied, 630, 675), "partial overlap")
	assert.True(t, hasOverlap(occupied, 590, 800), "covering interval")
	assert.False(t, hasOverlap(occupied, 645, 690), "adjacent start is free")
	assert.False(t, hasOverlap(occupied, 555, 600), "adjacent end is free")
	assert.False(t, hasOverlap(nil, 600, 645), "no occupancy")
}
