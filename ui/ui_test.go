package ui

import (
	"AutoCounter/control"
	"AutoCounter/counter"
	"AutoCounter/i18n"
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeApp struct {
	c       *counter.Counter
	dialogs []string
}

func (a *fakeApp) Counter() *counter.Counter { return a.c }

func (a *fakeApp) Execute(cmd control.Command) { control.Dispatch(a.c, cmd) }

func (a *fakeApp) HandleKeyRune(r rune) {
	if cmd, ok := control.CommandForRune(r); ok {
		a.Execute(cmd)
	}
}

func (a *fakeApp) ShowInfoDialog(title, contentFile string, _ fyne.Size) {
	a.dialogs = append(a.dialogs, contentFile)
}

func newTestScreen(t *testing.T) (*CounterScreen, *fakeApp, *clock.Mock) {
	t.Helper()
	test.NewTempApp(t)
	prev := i18n.GetLang()
	i18n.SetLang("en")
	t.Cleanup(func() { i18n.SetLang(prev) })

	mock := clock.NewMock()
	a := &fakeApp{c: counter.New(testContext(t), nil, counter.WithClock(mock))}
	s := NewCounterScreen(a, nil)
	t.Cleanup(s.Close)
	return s, a, mock
}

func eventuallyText(t *testing.T, want string, get func() string) {
	t.Helper()
	require.Eventually(t, func() bool { return get() == want }, time.Second, 5*time.Millisecond,
		"want %q, last %q", want, get())
}

func TestInitialReadouts(t *testing.T) {
	s, _, _ := newTestScreen(t)

	eventuallyText(t, "Count: 0", func() string { return s.countText.Text })
	eventuallyText(t, "Auto mode: OFF", func() string { return s.autoLabel.Text })
	eventuallyText(t, "Interval: 3000 ms", func() string { return s.intervalLabel.Text })
	assert.Equal(t, "3000", s.intervalEntry.Text)
	assert.False(t, s.countdownLabel.Visible())
}

func TestButtonsMutateCounter(t *testing.T) {
	s, a, _ := newTestScreen(t)

	test.Tap(s.incButton)
	test.Tap(s.incButton)
	test.Tap(s.incButton)
	assert.Equal(t, int64(3), a.c.Count())
	eventuallyText(t, "Count: 3", func() string { return s.countText.Text })

	test.Tap(s.decButton)
	assert.Equal(t, int64(2), a.c.Count())

	test.Tap(s.resetButton)
	assert.Equal(t, int64(0), a.c.Count())
	eventuallyText(t, "Count: 0", func() string { return s.countText.Text })

	test.Tap(s.decButton)
	eventuallyText(t, "Count: -1", func() string { return s.countText.Text })
}

func TestAutoButtonToggles(t *testing.T) {
	s, a, _ := newTestScreen(t)

	test.Tap(s.autoButton)
	assert.True(t, a.c.AutoMode())
	eventuallyText(t, "Auto mode: ON", func() string { return s.autoLabel.Text })

	test.Tap(s.autoButton)
	assert.False(t, a.c.AutoMode())
	eventuallyText(t, "Auto mode: OFF", func() string { return s.autoLabel.Text })
}

func TestRejectedIntervalInputIsLoggedAtDebug(t *testing.T) {
	s, a, _ := newTestScreen(t)
	core, logs := observer.New(zap.DebugLevel)
	s.log = zap.New(core).Sugar().Named("ui")

	s.intervalEntry.SetText("12ms")
	test.Tap(s.applyButton)
	assert.Equal(t, int64(3000), a.c.IntervalMillis())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "ui", entries[0].LoggerName)
	assert.Contains(t, entries[0].Message, `"12ms"`)
}

func TestApplyInterval(t *testing.T) {
	s, a, _ := newTestScreen(t)

	s.intervalEntry.SetText("")
	test.Type(s.intervalEntry, "abc")
	test.Tap(s.applyButton)
	assert.Equal(t, int64(3000), a.c.IntervalMillis())

	s.intervalEntry.SetText("")
	test.Tap(s.applyButton)
	assert.Equal(t, int64(3000), a.c.IntervalMillis())

	s.intervalEntry.SetText("-5")
	test.Tap(s.applyButton)
	assert.Equal(t, int64(3000), a.c.IntervalMillis())

	s.intervalEntry.SetText("")
	test.Type(s.intervalEntry, "500")
	test.Tap(s.applyButton)
	assert.Equal(t, int64(500), a.c.IntervalMillis())
	eventuallyText(t, "Interval: 500 ms", func() string { return s.intervalLabel.Text })
}

func TestEntrySubmitApplies(t *testing.T) {
	s, a, _ := newTestScreen(t)

	s.intervalEntry.SetText("750")
	s.intervalEntry.OnSubmitted(s.intervalEntry.Text)
	assert.Equal(t, int64(750), a.c.IntervalMillis())
}

func TestEntryBufferIsLocal(t *testing.T) {
	s, a, _ := newTestScreen(t)

	s.intervalEntry.SetText("")
	test.Type(s.intervalEntry, "1234")
	assert.Equal(t, int64(3000), a.c.IntervalMillis(), "typing alone does not apply")
}

func TestCountdownShownInAutoMode(t *testing.T) {
	s, a, mock := newTestScreen(t)
	require.Eventually(t, func() bool { return !a.c.NextTick().IsZero() }, time.Second, 5*time.Millisecond)

	test.Tap(s.autoButton)
	require.Eventually(t, func() bool { return s.countdownLabel.Visible() }, time.Second, 5*time.Millisecond)

	mock.Add(600 * time.Millisecond)
	fyne.Do(s.UpdateCountdown)
	eventuallyText(t, "Next tick in 2.4 s", func() string { return s.countdownLabel.Text })

	test.Tap(s.autoButton)
	require.Eventually(t, func() bool { return !s.countdownLabel.Visible() }, time.Second, 5*time.Millisecond)
}

func TestHelpOpensDialog(t *testing.T) {
	s, a, _ := newTestScreen(t)

	test.Tap(s.helpButton)
	assert.Equal(t, []string{"assets/counter_help.json"}, a.dialogs)
}

func TestKeyRunesReachApp(t *testing.T) {
	_, a, _ := newTestScreen(t)
	w, screen := CreateMainWindow(a, fyne.CurrentApp(), fyne.NewSize(360, 440), zap.NewNop().Sugar())
	defer w.Close()
	defer screen.Close()

	test.TypeOnCanvas(w.Canvas(), "++-a")
	assert.Equal(t, int64(1), a.c.Count())
	assert.True(t, a.c.AutoMode())
}

// testContext returns a context that is canceled when the test finishes.
func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
