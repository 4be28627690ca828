package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIndexOccupancy_Reservations(t *testing.T) {
	reservations := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 1, Date: date(2026, 9, 10), StartTime: "10:00", EndTime: "10:45", Status: domain.StatusConfirmed},
			{ID: 2, Date: date(2026, 9, 10), StartTime: "12:00", EndTime: "12:45", Status: domain.StatusPending},
			{ID: 3, Date: date(2026, 9, 11), StartTime: "15:00", EndTime: "16:00", Status: domain.StatusInProgress},
		},
	}
	svc := newTestService(&stubScheduleRepo{}, reservations, &stubBlockRepo{}, time.Now())

	index, err := svc.IndexOccupancy(context.Background(), 1, date(2026, 9, 1), date(2026, 9, 30))

	require.NoError(t, err)
	require.Len(t, index["2026-09-10"], 2)
	assert.Equal(t, 600, index["2026-09-10"][0].StartMinute)
	assert.Equal(t, 645, index["2026-09-10"][0].EndMinute)
	assert.Equal(t, domain.SourceReservation, index["2026-09-10"][0].Source)
	require.Len(t, index["2026-09-11"], 1)
	assert.Empty(t, index["2026-09-12"])
}

func TestIndexOccupancy_FullDayBlockSpansDates(t *testing.T) {
	blocks := &stubBlockRepo{
		blocks: []*domain.Block{
			{ID: 1, BarberID: 1, StartDate: date(2026, 9, 14), EndDate: date(2026, 9, 16)},
		},
	}
	svc := newTestService(&stubScheduleRepo{}, &stubReservationRepo{}, blocks, time.Now())

	index, err := svc.IndexOccupancy(context.Background(), 1, date(2026, 9, 1), date(2026, 9, 30))

	require.NoError(t, err)
	for _, key := range []string{"2026-09-14", "2026-09-15", "2026-09-16"} {
		require.Len(t, index[key], 1, key)
		assert.True(t, index[key][0].FullDay, key)
		assert.Equal(t, domain.SourceBlock, index[key][0].Source)
	}
	assert.Empty(t, index["2026-09-13"])
	assert.Empty(t, index["2026-09-17"])
}

func TestIndexOccupancy_BlockClampedToRange(t *testing.T) {
	// Блок выходит за границы запрошенного периода: в индекс попадают
	// только даты внутри [from, to]
	blocks := &stubBlockRepo{
		blocks: []*domain.Block{
			{ID: 1, BarberID: 1, StartDate: date(2026, 8, 28), EndDate: date(2026, 9, 3)},
		},
	}
	svc := newTestService(&stubScheduleRepo{}, &stubReservationRepo{}, blocks, time.Now())

	index, err := svc.IndexOccupancy(context.Background(), 1, date(2026, 9, 1), date(2026, 9, 30))

	require.NoError(t, err)
	assert.Len(t, index, 3)
	assert.NotEmpty(t, index["2026-09-01"])
	assert.NotEmpty(t, index["2026-09-03"])
	assert.Empty(t, index["2026-08-31"])
}

func TestIndexOccupancy_PartialBlock(t *testing.T) {
	blocks := &stubBlockRepo{
		blocks: []*domain.Block{
			{
				ID:        1,
				BarberID:  1,
				StartDate: date(2026, 9, 10),
				EndDate:   date(2026, 9, 10),
				StartTime: ptr.Ptr(types.TimeString("14:00")),
				EndTime:   ptr.Ptr(types.TimeString("16:00")),
			},
		},
	}
	svc := newTestService(&stubScheduleRepo{}, &stubReservationRepo{}, blocks, time.Now())

	index, err := svc.IndexOccupancy(context.Background(), 1, date(2026, 9, 1), date(2026, 9, 30))

	require.NoError(t, err)
	require.Len(t, index["2026-09-10"], 1)
	interval := index["2026-09-10"][0]
	assert.False(t, interval.FullDay)
	assert.Equal(t, 840, interval.StartMinute)
	assert.Equal(t, 960, interval.EndMinute)
}

func TestIndexOccupancy_PartialBlockWithoutEndLastsUntilMidnight(t *testing.T) {
	blocks := &stubBlockRepo{
		blocks: []*domain.Block{
			{
				ID:        1,
				BarberID:  1,
				StartDate: date(2026, 9, 10),
				EndDate:   date(2026, 9, 10),
				StartTime: ptr.Ptr(types.TimeString("18:00")),
			},
		},
	}
	svc := newTestService(&stubScheduleRepo{}, &stubReservationRepo{}, blocks, time.Now())

	index, err := svc.IndexOccupancy(context.Background(), 1, date(2026, 9, 1), date(2026, 9, 30))

	require.NoError(t, err)
	require.Len(t, index["2026-09-10"], 1)
	assert.Equal(t, 1080, index["2026-09-10"][0].StartMinute)
	assert.Equal(t, domain.MinutesPerDay, index["2026-09-10"][0].EndMinute)
}

func TestIndexOccupancy_MalformedReservationTimeFails(t *testing.T) {
	// Кривое время записи не должно молча превращаться в свободный слот
	reservations := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 1, Date: date(2026, 9, 10), StartTime: "25:99", EndTime: "26:00"},
		},
	}
	svc := newTestService(&stubScheduleRepo{}, reservations, &stubBlockRepo{}, time.Now())

	_, err := svc.IndexOccupancy(context.Background(), 1, date(2026, 9, 1), date(2026, 9, 30))

	assert.ErrorIs(t, err, ErrInternal)
}
