// Package audio plays the short chime that accompanies every automatic
// increment.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate beep.SampleRate = 44100

// Chime plays a short sine tone through the speaker. A disabled Chime is
// silent; Play on it does nothing.
type Chime struct {
	log     *zap.SugaredLogger
	sr      beep.SampleRate
	freq    float64
	dur     time.Duration
	enabled bool

	speakerLock sync.Mutex
}

// NewChime initializes the speaker when enabled is true. If the speaker
// cannot be initialized the chime stays disabled and a warning is logged.
func NewChime(enabled bool, freqHz float64, dur time.Duration, log *zap.SugaredLogger) *Chime {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	c := &Chime{log: log, sr: sampleRate, freq: freqHz, dur: dur}
	if !enabled {
		log.Infof("Chime disabled by configuration")
		return c
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warnf("Audio disabled: Failed to initialize speaker: %v", err)
		return c
	}
	if _, err := c.tone(); err != nil {
		log.Warnf("Audio disabled: %v", err)
		return c
	}
	c.enabled = true
	return c
}

// Enabled reports whether Play produces sound.
func (c *Chime) Enabled() bool {
	return c.enabled
}

// Play starts the chime and returns immediately.
func (c *Chime) Play() {
	if !c.enabled {
		return
	}
	s, err := c.tone()
	if err != nil {
		c.log.Warnf("Failed to build chime: %v", err)
		return
	}

	c.speakerLock.Lock()
	defer c.speakerLock.Unlock()

	speaker.Play(s)
}

func (c *Chime) tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(c.sr, c.freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone at %.0f Hz: %w", c.freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(c.sr.N(c.dur), sine),
		Base:     2,
		Volume:   -2,
	}, nil
}
