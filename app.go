// Package main contains the application wiring and the AppManager which
// connects the counter, the chime and the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: the counter runs its own background goroutine that
//     increments the count while auto mode is on. UI commands are applied
//     synchronously on the Fyne main goroutine through Execute. Both paths
//     go through the counter's observable values, which serialize writes.
//   - Readouts are refreshed by subscriptions (see ui.CounterScreen.bind).
//     The only polled element is the countdown to the next tick, refreshed
//     by `tick`.
//   - The lifetime context passed to NewAppManager is cancelled when the
//     main window closes, which stops both background goroutines.
package main

import (
	"AutoCounter/audio"
	"AutoCounter/control"
	"AutoCounter/counter"
	"AutoCounter/i18n"
	"AutoCounter/logger"
	"AutoCounter/ui"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

const countdownRefresh = 200 * time.Millisecond

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	screen     *ui.CounterScreen

	counter *counter.Counter
	chime   *audio.Chime
	log     *zap.SugaredLogger
	content counter.AppContentReader // Embedded file system for assets
}

// NewAppManager creates the application manager and starts the counter. The
// counter's background task stops when ctx is cancelled. Extra options are
// applied after the defaults.
func NewAppManager(ctx context.Context, content counter.AppContentReader, cfg *counter.Config, log *zap.SugaredLogger, opts ...counter.Option) *AppManager {
	a := &AppManager{log: log.Named(logger.ComponentApp), content: content}

	a.chime = audio.NewChime(cfg.Chime, cfg.ChimeFrequencyHz,
		time.Duration(cfg.ChimeDurationMs)*time.Millisecond, log.Named(logger.ComponentAudio))

	opts = append([]counter.Option{
		counter.WithLogger(log.Named(logger.ComponentCounter)),
		counter.WithAutoTickHook(a.onAutoTick),
	}, opts...)
	a.counter = counter.New(ctx, cfg, opts...)

	a.log.Infof("Counter started with interval %s", counter.FormatInterval(a.counter.IntervalMillis()))
	return a
}

// Counter returns the state holder.
func (a *AppManager) Counter() *counter.Counter {
	return a.counter
}

// Execute applies a command to the counter.
func (a *AppManager) Execute(cmd control.Command) {
	a.log.Debugw("Executing command", "command", cmd.Type.String(), "interval", cmd.Interval)
	control.Dispatch(a.counter, cmd)
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	if cmd, ok := control.CommandForRune(r); ok {
		a.Execute(cmd)
	}
}

func (a *AppManager) onAutoTick(count int64) {
	a.log.Debugf("Auto increment, count is now %d", count)
	a.chime.Play()
}

// ShowInfoDialog shows a dialog with the given title and the localized text
// stored in contentFile.
func (a *AppManager) ShowInfoDialog(title, contentFile string, minSize fyne.Size) {
	contentText, err := a.localizedText(contentFile)
	if err != nil {
		a.log.Warnf("Failed to load %s: %v", contentFile, err)
		dialog.ShowError(err, a.mainWindow)
		return
	}

	text := widget.NewLabel(contentText)
	text.Wrapping = fyne.TextWrapWord

	scrollableContent := container.NewVScroll(text)
	scrollableContent.SetMinSize(minSize)

	dialog.ShowCustom(title, i18n.T("Close"), scrollableContent, a.mainWindow)
}

// localizedText reads a JSON object keyed by language and returns the entry
// for the current language, falling back to English.
func (a *AppManager) localizedText(contentFile string) (string, error) {
	bytes, err := a.content.ReadFile(contentFile)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", contentFile, err)
	}

	var texts map[string]string
	if err := json.Unmarshal(bytes, &texts); err != nil {
		return "", fmt.Errorf("unmarshal %s: %w", contentFile, err)
	}
	if s, ok := texts[i18n.GetLang()]; ok {
		return s, nil
	}
	if s, ok := texts["en"]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%s has no text for %q", contentFile, i18n.GetLang())
}

// tick refreshes the countdown readout until ctx is cancelled.
func (a *AppManager) tick(ctx context.Context) {
	ticker := time.NewTicker(countdownRefresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if a.screen != nil {
				fyne.Do(a.screen.UpdateCountdown)
			}
		}
	}
}
