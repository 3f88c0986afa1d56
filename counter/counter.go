// Package counter contains the domain logic of the application: the Counter
// state holder with its count, auto mode and interval, and the background
// task that increments the count while auto mode is on.
//
// Maintenance notes:
//   - All state lives in observable.Value fields. Every mutation goes through
//     Value.Update or Value.Set, so a read-modify-write such as Increment is
//     atomic even when the background task and the UI race on it.
//   - Subscribers are called on the goroutine that performed the mutation.
//     For the background task that is not the Fyne main goroutine, so UI
//     subscribers must hop through fyne.Do.
//   - The background task reads the interval when it arms its timer. A later
//     SetInterval only affects the following wait.
package counter

import (
	"AutoCounter/observable"
	"context"
	"math"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Counter owns the count, the auto mode flag and the interval, and runs the
// auto-increment loop for its whole lifetime.
type Counter struct {
	clock clock.Clock
	log   *zap.SugaredLogger

	count    *observable.Value[int64]
	autoMode *observable.Value[bool]
	interval *observable.Value[int64] // milliseconds, always > 0
	nextTick *observable.Value[time.Time]

	// called after each increment made by the background task
	onAutoTick func(count int64)

	done chan struct{}
}

// Option configures a Counter.
type Option func(*Counter)

// WithClock makes the counter use c for its background task.
func WithClock(c clock.Clock) Option {
	return func(k *Counter) {
		if c != nil {
			k.clock = c
		}
	}
}

// WithLogger sets the logger used by the counter.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(k *Counter) {
		if l != nil {
			k.log = l
		}
	}
}

// WithAutoTickHook registers fn to run after every auto increment.
func WithAutoTickHook(fn func(count int64)) Option {
	return func(k *Counter) { k.onAutoTick = fn }
}

// New creates a counter with the configured initial interval and starts its
// background task. The task runs until ctx is cancelled.
func New(ctx context.Context, cfg *Config, opts ...Option) *Counter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	initial := cfg.InitialIntervalMs
	if initial <= 0 {
		initial = DefaultIntervalMillis
	}

	c := &Counter{
		clock:    clock.New(),
		log:      zap.NewNop().Sugar(),
		count:    observable.NewValue[int64](0),
		autoMode: observable.NewValue(false),
		interval: observable.NewValue(initial),
		nextTick: observable.NewValue(time.Time{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	go c.run(ctx)
	return c
}

// Increment adds one to the count.
func (c *Counter) Increment() {
	c.add(1)
}

// Decrement subtracts one from the count. The count may go negative.
func (c *Counter) Decrement() {
	c.add(-1)
}

func (c *Counter) add(delta int64) int64 {
	return c.count.Update(func(n int64) int64 { return n + delta })
}

// Reset sets the count back to zero.
func (c *Counter) Reset() {
	c.count.Set(0)
}

// ToggleAuto flips auto mode.
func (c *Counter) ToggleAuto() {
	on := c.autoMode.Update(func(b bool) bool { return !b })
	c.log.Debugf("Auto mode toggled: %t", on)
}

// SetInterval sets the auto-increment interval in milliseconds. Values that
// are not positive are ignored.
func (c *Counter) SetInterval(ms int64) {
	if ms <= 0 {
		c.log.Debugf("Ignoring non-positive interval %d", ms)
		return
	}
	c.interval.Set(ms)
}

// Count returns the current count.
func (c *Counter) Count() int64 { return c.count.Get() }

// AutoMode reports whether auto mode is on.
func (c *Counter) AutoMode() bool { return c.autoMode.Get() }

// IntervalMillis returns the interval in milliseconds.
func (c *Counter) IntervalMillis() int64 { return c.interval.Get() }

// Interval returns the interval as a duration. Intervals too long for a
// time.Duration saturate at the largest duration.
func (c *Counter) Interval() time.Duration {
	return millisToDuration(c.interval.Get())
}

// maxDurationMillis is the largest millisecond count a time.Duration holds.
const maxDurationMillis = int64(math.MaxInt64 / int64(time.Millisecond))

func millisToDuration(ms int64) time.Duration {
	if ms > maxDurationMillis {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

// NextTick returns when the background task will next wake. It is the zero
// time before the task has armed its first timer.
func (c *Counter) NextTick() time.Time { return c.nextTick.Get() }

// Now returns the current time of the counter's clock.
func (c *Counter) Now() time.Time { return c.clock.Now() }

func (c *Counter) CountValue() observable.Observable[int64]        { return c.count }
func (c *Counter) AutoModeValue() observable.Observable[bool]      { return c.autoMode }
func (c *Counter) IntervalValue() observable.Observable[int64]     { return c.interval }
func (c *Counter) NextTickValue() observable.Observable[time.Time] { return c.nextTick }

// Done is closed once the background task has exited.
func (c *Counter) Done() <-chan struct{} { return c.done }

// Snapshot is a copy of the counter fields the UI needs to render a view.
type Snapshot struct {
	Count          int64
	AutoMode       bool
	IntervalMillis int64
	NextTick       time.Time
}

// GetSnapshot returns the current state for UI use.
func (c *Counter) GetSnapshot() Snapshot {
	return Snapshot{
		Count:          c.count.Get(),
		AutoMode:       c.autoMode.Get(),
		IntervalMillis: c.interval.Get(),
		NextTick:       c.nextTick.Get(),
	}
}

// run is the background task: wait one interval, increment if auto mode is
// on, repeat.
func (c *Counter) run(ctx context.Context) {
	defer close(c.done)

	for {
		d := c.Interval()
		t := c.clock.Timer(d)
		c.nextTick.Set(c.clock.Now().Add(d))

		select {
		case <-ctx.Done():
			t.Stop()
			c.log.Debugf("Background task stopped")
			return
		case <-t.C:
		}

		if c.autoMode.Get() {
			n := c.add(1)
			if c.onAutoTick != nil {
				c.onAutoTick(n)
			}
		}
	}
}
