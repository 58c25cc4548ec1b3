package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTimeToPeriod_24Hour(t *testing.T) {
	for h := 0; h < 24; h++ {
		s := fmt.Sprintf("%d:00", h)
		p, ok := MapTimeToPeriod(s)
		if h >= 9 && h <= 17 {
			assert.True(t, ok, s)
			assert.Equal(t, h-9, p, s)
		} else {
			assert.False(t, ok, s)
		}
	}
}

func TestMapTimeToPeriod_AMPM(t *testing.T) {
	cases := []struct {
		in     string
		period int
		ok     bool
	}{
		{"10:00 AM", 1, true},
		{"10:00", 1, true},
		{"10:00 PM", 0, false},
		{"22:00", 0, false},
		{"9:00 am", 0, true},
		{"12:00 PM", 3, true},
		{"12:30 AM", 0, false},
		{"1:15 PM", 4, true},
		{"5:00 PM", 8, true},
		{"6:00 PM", 0, false},
		{"  11:00 AM  ", 2, true},
		{"09:30", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, ok := MapTimeToPeriod(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.period, p)
			}
		})
	}
}

func TestParseHour_Errors(t *testing.T) {
	assert.ErrorIs(t, ParseHour("").Err, ErrEmptyTime)
	assert.ErrorIs(t, ParseHour("   ").Err, ErrEmptyTime)
	assert.ErrorIs(t, ParseHour("ten").Err, ErrNoSeparator)
	assert.ErrorIs(t, ParseHour("10.00").Err, ErrNoSeparator)
	assert.ErrorIs(t, ParseHour("xx:00").Err, ErrInvalidHour)
	assert.ErrorIs(t, ParseHour(":30 PM").Err, ErrInvalidHour)

	for _, s := range []string{"", "ten", "xx:00", ":30"} {
		_, ok := MapTimeToPeriod(s)
		assert.False(t, ok, s)
	}
}

func TestParseHour_Ok(t *testing.T) {
	r := ParseHour("3:45 pm")
	assert.True(t, r.Ok())
	assert.Equal(t, 15, r.Hour)

	r = ParseHour("12:05 am")
	assert.True(t, r.Ok())
	assert.Equal(t, 0, r.Hour)
}
