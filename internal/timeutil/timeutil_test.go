package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFloorSeconds(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int
	}{
		{0, 0},
		{999 * time.Millisecond, 0},
		{1999 * time.Millisecond, 1},
		{5 * time.Minute, 300},
		{-3 * time.Second, 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FloorSeconds(c.in), c.in.String())
	}
}

func TestFloorMinutes(t *testing.T) {
	assert.Equal(t, 0, FloorMinutes(59*time.Second))
	assert.Equal(t, 5, FloorMinutes(5*time.Minute+59*time.Second))
	assert.Equal(t, 0, FloorMinutes(-time.Hour))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "25:00", Clock(1500))
	assert.Equal(t, "04:05", Clock(245))
	assert.Equal(t, "00:00", Clock(-1))
	assert.Equal(t, "60:00", Clock(3600))
}

func TestMinsToHoursAndMins(t *testing.T) {
	h, m := MinsToHoursAndMins(135)

	assert.Equal(t, 2, h)
	assert.Equal(t, 15, m)
}
