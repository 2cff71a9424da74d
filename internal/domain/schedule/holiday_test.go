//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustSet(t *testing.T, patterns ...string) schedule.HolidaySet {
	t.Helper()
	set, err := schedule.NewHolidaySet(patterns...)
	require.NoError(t, err)
	return set
}

func TestNewHolidayPattern(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "第n週パターンOK", input: "2-tue"},
		{name: "最終週パターンOK", input: "L1-sun"},
		{name: "最終前週パターンOK", input: "L2-sat"},
		{name: "第5週パターンOK", input: "5-fri"},
		{name: "週トークン不正NG", input: "6-mon", wantErr: true},
		{name: "曜日トークン不正NG", input: "1-monday", wantErr: true},
		{name: "区切りなしNG", input: "L1mon", wantErr: true},
		{name: "空文字NG", input: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schedule.NewHolidayPattern(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidHolidayPattern)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsRegularHoliday_NthWeek(t *testing.T) {
	set := mustSet(t, "2-tue")

	// 2026-06: Tuesdays are 2, 9, 16, 23, 30
	assert.True(t, set.IsRegularHoliday(day(2026, time.June, 9)))
	assert.False(t, set.IsRegularHoliday(day(2026, time.June, 2)))
	assert.False(t, set.IsRegularHoliday(day(2026, time.June, 16)))
	// 同じ週の別曜日は対象外
	assert.False(t, set.IsRegularHoliday(day(2026, time.June, 10)))
}

func TestIsRegularHoliday_LastOccurrence(t *testing.T) {
	set := mustSet(t, "L1-mon")

	// 月曜が5回ある月(2026-03: 2,9,16,23,30)でも4回の月(2026-02: 2,9,16,23)でも最終のみ
	for _, tc := range []struct {
		name string
		d    time.Time
		want bool
	}{
		{name: "5回ある月の最終月曜", d: day(2026, time.March, 30), want: true},
		{name: "5回ある月の第4月曜", d: day(2026, time.March, 23), want: false},
		{name: "4回の月の最終月曜", d: day(2026, time.February, 23), want: true},
		{name: "4回の月の第3月曜", d: day(2026, time.February, 16), want: false},
		{name: "最終週でも別曜日", d: day(2026, time.March, 31), want: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, set.IsRegularHoliday(tc.d))
		})
	}
}

func TestIsRegularHoliday_SecondToLast(t *testing.T) {
	set := mustSet(t, "L2-mon")

	assert.True(t, set.IsRegularHoliday(day(2026, time.March, 23)))
	assert.False(t, set.IsRegularHoliday(day(2026, time.March, 30)))
	assert.True(t, set.IsRegularHoliday(day(2026, time.February, 16)))
	assert.False(t, set.IsRegularHoliday(day(2026, time.February, 23)))
}

func TestIsRegularHoliday_FifthWeekMatchesBothKeys(t *testing.T) {
	// 5回ある月の最終月曜は "5-mon" と "L1-mon" のどちらでも休み
	assert.True(t, mustSet(t, "5-mon").IsRegularHoliday(day(2026, time.March, 30)))
	assert.True(t, mustSet(t, "L1-mon").IsRegularHoliday(day(2026, time.March, 30)))
}

func TestIsRegularHoliday_RedundantConfig(t *testing.T) {
	// "4-mon" と "L1-mon" を重複設定しても単に休みになるだけ
	set := mustSet(t, "4-mon", "L1-mon")
	assert.True(t, set.IsRegularHoliday(day(2026, time.February, 23)))
	assert.False(t, set.IsRegularHoliday(day(2026, time.February, 16)))
}

func TestIsRegularHoliday_EmptySet(t *testing.T) {
	assert.False(t, schedule.HolidaySet{}.IsRegularHoliday(day(2026, time.March, 30)))
}
