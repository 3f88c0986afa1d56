package ui

import (
	"AutoCounter/control"
	"AutoCounter/counter"
	"AutoCounter/i18n"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

type App interface {
	Counter() *counter.Counter
	Execute(cmd control.Command)
	HandleKeyRune(rune)
	ShowInfoDialog(title, contentFile string, minSize fyne.Size)
}

// CounterScreen renders the counter state and offers the controls that
// mutate it. The only local state is the interval entry buffer.
type CounterScreen struct {
	app App
	log *zap.SugaredLogger

	countText      *canvas.Text
	autoLabel      *widget.Label
	intervalLabel  *widget.Label
	countdownLabel *widget.Label

	incButton     *widget.Button
	decButton     *widget.Button
	resetButton   *widget.Button
	autoButton    *widget.Button
	intervalEntry *widget.Entry
	applyButton   *widget.Button
	helpButton    *TappableContainer

	content     fyne.CanvasObject
	unsubscribe []func()
}

func NewCounterScreen(a App, log *zap.SugaredLogger) *CounterScreen {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &CounterScreen{app: a, log: log}
	c := a.Counter()

	s.countText = canvas.NewText("", AccentColor)
	s.countText.TextStyle.Bold = true
	s.countText.TextSize = FontSizeCount

	s.autoLabel = widget.NewLabel("")
	s.intervalLabel = widget.NewLabel("")
	s.countdownLabel = widget.NewLabel("")
	s.countdownLabel.Hide()

	s.incButton = widget.NewButton("+", func() {
		a.Execute(control.Command{Type: control.CmdIncrement})
	})
	s.decButton = widget.NewButton("-", func() {
		a.Execute(control.Command{Type: control.CmdDecrement})
	})
	s.resetButton = widget.NewButton(i18n.T("Reset"), func() {
		a.Execute(control.Command{Type: control.CmdReset})
	})
	s.autoButton = widget.NewButton(i18n.T("Auto"), func() {
		a.Execute(control.Command{Type: control.CmdToggleAuto})
	})
	s.incButton.Importance = widget.HighImportance
	s.decButton.Importance = widget.HighImportance

	s.intervalEntry = widget.NewEntry()
	s.intervalEntry.SetPlaceHolder(i18n.T("Interval in milliseconds"))
	s.intervalEntry.SetText(fmt.Sprint(c.IntervalMillis()))
	s.intervalEntry.OnSubmitted = func(string) { s.ApplyInterval() }
	s.applyButton = widget.NewButton(i18n.T("Apply Interval"), s.ApplyInterval)

	s.helpButton = NewTappableContainer(widget.NewIcon(theme.QuestionIcon()), func() {
		a.ShowInfoDialog(i18n.T("Help"), "assets/counter_help.json", fyne.NewSize(360, 240))
	}, nil)

	s.content = s.build()
	s.bind(c)
	return s
}

func (s *CounterScreen) build() fyne.CanvasObject {
	readouts := container.NewVBox(
		container.New(layout.NewCenterLayout(), s.countText),
		container.New(layout.NewCenterLayout(), s.autoLabel),
		container.New(layout.NewCenterLayout(), s.intervalLabel),
		container.New(layout.NewCenterLayout(), s.countdownLabel),
	)

	buttonRow := func(left, right fyne.CanvasObject) fyne.CanvasObject {
		gap := canvas.NewRectangle(color.Transparent)
		gap.SetMinSize(fyne.NewSize(ButtonGap, 0))
		return container.NewHBox(layout.NewSpacer(), left, gap, right, layout.NewSpacer())
	}
	buttons := container.NewVBox(
		buttonRow(s.incButton, s.decButton),
		buttonRow(s.resetButton, s.autoButton),
	)

	entrySize := canvas.NewRectangle(color.Transparent)
	entrySize.SetMinSize(fyne.NewSize(EntryMinWidth, 0))
	settings := container.NewVBox(
		container.New(layout.NewCenterLayout(), widget.NewLabelWithStyle(i18n.T("Set Interval (ms)"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})),
		container.New(layout.NewCenterLayout(), container.NewStack(entrySize, s.intervalEntry)),
		container.New(layout.NewCenterLayout(), s.applyButton),
	)

	sectionGap := func() fyne.CanvasObject {
		r := canvas.NewRectangle(color.Transparent)
		r.SetMinSize(fyne.NewSize(0, SectionGap))
		return r
	}

	body := container.NewVBox(
		layout.NewSpacer(),
		readouts,
		sectionGap(),
		buttons,
		sectionGap(),
		settings,
		layout.NewSpacer(),
	)

	footer := container.New(
		layout.NewBorderLayout(nil, nil, s.helpButton, nil),
		s.helpButton,
	)

	return container.NewBorder(nil, footer, nil, nil, container.NewPadded(body))
}

// bind subscribes the readouts to the counter. Subscribers may run on the
// counter's background goroutine, so every widget update goes through fyne.Do.
func (s *CounterScreen) bind(c *counter.Counter) {
	s.unsubscribe = append(s.unsubscribe,
		c.CountValue().Subscribe(func(n int64) {
			fyne.Do(func() {
				s.countText.Text = countLine(n)
				s.countText.Refresh()
			})
		}),
		c.AutoModeValue().Subscribe(func(on bool) {
			fyne.Do(func() {
				s.autoLabel.SetText(autoLine(on))
				s.UpdateCountdown()
			})
		}),
		c.IntervalValue().Subscribe(func(ms int64) {
			fyne.Do(func() {
				s.intervalLabel.SetText(intervalLine(ms))
			})
		}),
	)
}

// ApplyInterval parses the entry and asks the counter to use it. Text that
// is not a number is ignored, and so is a non-positive number.
func (s *CounterScreen) ApplyInterval() {
	ms, ok := counter.ParseInterval(s.intervalEntry.Text)
	if !ok {
		s.log.Debugf("Ignoring interval input %q", s.intervalEntry.Text)
		return
	}
	s.app.Execute(control.Command{Type: control.CmdSetInterval, Interval: ms})
}

// UpdateCountdown refreshes the time-to-next-tick readout. It must run on
// the Fyne main goroutine.
func (s *CounterScreen) UpdateCountdown() {
	c := s.app.Counter()
	snap := c.GetSnapshot()
	if !snap.AutoMode || snap.NextTick.IsZero() {
		s.countdownLabel.Hide()
		return
	}
	s.countdownLabel.SetText(fmt.Sprintf("%s %s", i18n.T("Next tick in"), counter.FormatCountdown(snap.NextTick.Sub(c.Now()))))
	s.countdownLabel.Show()
}

// GetCanvasObject returns the root object of the screen.
func (s *CounterScreen) GetCanvasObject() fyne.CanvasObject {
	return s.content
}

// Close removes the screen's subscriptions.
func (s *CounterScreen) Close() {
	for _, cancel := range s.unsubscribe {
		cancel()
	}
	s.unsubscribe = nil
}

func countLine(n int64) string {
	return fmt.Sprintf("%s: %d", i18n.T("Count"), n)
}

func autoLine(on bool) string {
	state := i18n.T("OFF")
	if on {
		state = i18n.T("ON")
	}
	return fmt.Sprintf("%s: %s", i18n.T("Auto mode"), state)
}

func intervalLine(ms int64) string {
	return fmt.Sprintf("%s: %s", i18n.T("Interval"), counter.FormatInterval(ms))
}

func CreateMainWindow(a App, fyneApp fyne.App, size fyne.Size, log *zap.SugaredLogger) (fyne.Window, *CounterScreen) {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "AutoCounter"
	}
	w := fyneApp.NewWindow(title)

	screen := NewCounterScreen(a, log)
	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	w.SetContent(screen.GetCanvasObject())
	w.Resize(size)
	return w, screen
}

type TappableContainer struct {
	widget.BaseWidget
	Content           fyne.CanvasObject
	OnTappedPrimary   func()
	OnTappedSecondary func(e *fyne.PointEvent)
}

func NewTappableContainer(c fyne.CanvasObject, onP func(), onS func(e *fyne.PointEvent)) *TappableContainer {
	t := &TappableContainer{
		Content:           c,
		OnTappedPrimary:   onP,
		OnTappedSecondary: onS,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(t.Content, layout.NewSpacer()))
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func (t *TappableContainer) TappedSecondary(e *fyne.PointEvent) {
	if t.OnTappedSecondary != nil {
		t.OnTappedSecondary(e)
	}
}
