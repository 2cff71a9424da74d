//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(t *testing.T, startHour, startMin, endHour, endMin int) booking.TimeSlot {
	t.Helper()
	base := time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)
	ts, err := booking.NewTimeSlot(
		base.Add(time.Duration(startHour)*time.Hour+time.Duration(startMin)*time.Minute),
		base.Add(time.Duration(endHour)*time.Hour+time.Duration(endMin)*time.Minute),
	)
	require.NoError(t, err)
	return ts
}

func reserved(t *testing.T, ts booking.TimeSlot, kind booking.Kind) *booking.Reservation {
	t.Helper()
	r, err := booking.NewReservation(uuid.New(), nil, ts, kind, 2)
	require.NoError(t, err)
	return r
}

func TestTimeSlotOverlaps(t *testing.T) {
	testCases := []struct {
		name string
		a, b booking.TimeSlot
		want bool
	}{
		{name: "完全一致は重なる", a: slot(t, 10, 0, 11, 0), b: slot(t, 10, 0, 11, 0), want: true},
		{name: "部分重複は重なる", a: slot(t, 10, 0, 11, 0), b: slot(t, 10, 30, 11, 30), want: true},
		{name: "内包は重なる", a: slot(t, 10, 0, 12, 0), b: slot(t, 10, 30, 11, 0), want: true},
		{name: "終端と始端が接するだけなら重ならない", a: slot(t, 10, 0, 11, 0), b: slot(t, 11, 0, 12, 0), want: false},
		{name: "離れていれば重ならない", a: slot(t, 9, 0, 10, 0), b: slot(t, 12, 0, 13, 0), want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// 対称性
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestHasConflict(t *testing.T) {
	existing := []*booking.Reservation{
		reserved(t, slot(t, 10, 0, 11, 0), booking.KindNormal),
		reserved(t, slot(t, 14, 0, 15, 0), booking.KindBlocked),
	}

	t.Run("通常予約との重複は衝突", func(t *testing.T) {
		assert.True(t, booking.HasConflict(slot(t, 10, 30, 11, 30), existing, uuid.Nil))
	})

	t.Run("隣接は衝突しない", func(t *testing.T) {
		assert.False(t, booking.HasConflict(slot(t, 11, 0, 12, 0), existing, uuid.Nil))
	})

	t.Run("ブロック枠は衝突判定から除外", func(t *testing.T) {
		assert.False(t, booking.HasConflict(slot(t, 14, 0, 15, 0), existing, uuid.Nil))
	})

	t.Run("編集中の予約自身は除外", func(t *testing.T) {
		assert.True(t, booking.HasConflict(slot(t, 10, 0, 11, 0), existing, uuid.New()))
		assert.False(t, booking.HasConflict(slot(t, 10, 0, 11, 0), existing, existing[0].ID()))
	})

	t.Run("壊れたレコードは無視", func(t *testing.T) {
		broken := booking.ReconstructReservation(
			uuid.New(), uuid.New(), nil,
			booking.TimeSlot{}, booking.KindNormal, 1,
			time.Now(), time.Now(),
		)
		assert.False(t, booking.HasConflict(slot(t, 10, 0, 11, 0), []*booking.Reservation{broken}, uuid.Nil))
	})
}

func TestNewReservationValidation(t *testing.T) {
	ts := slot(t, 10, 0, 11, 0)

	_, err := booking.NewReservation(uuid.New(), nil, ts, booking.Kind("weird"), 1)
	assert.ErrorIs(t, err, booking.ErrInvalidKind)

	_, err = booking.NewReservation(uuid.New(), nil, ts, booking.KindNormal, 0)
	assert.ErrorIs(t, err, booking.ErrInvalidDuration)

	_, err = booking.NewTimeSlot(ts.End(), ts.Start())
	assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
}
