package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledChimeIsSilent(t *testing.T) {
	c := NewChime(false, 880, 60*time.Millisecond, nil)
	assert.False(t, c.Enabled())
	c.Play()
}

func TestToneLastsConfiguredDuration(t *testing.T) {
	c := &Chime{sr: sampleRate, freq: 880, dur: 10 * time.Millisecond}

	s, err := c.tone()
	require.NoError(t, err)

	buf := make([][2]float64, 128)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			peak = max(peak, frame[0])
		}
		total += n
		if !ok {
			break
		}
	}

	assert.Equal(t, sampleRate.N(10*time.Millisecond), total)
	assert.Greater(t, peak, 0.0)
	assert.Less(t, peak, 1.0, "volume is attenuated")
}
