package main

import (
	"AutoCounter/counter"
	"AutoCounter/i18n"
	"AutoCounter/logger"
	"AutoCounter/ui"
	"context"
	"embed"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

//go:embed assets/*
var content embed.FS

func main() {
	log := logger.FromEnv()
	defer func() { _ = log.Sync() }()

	cfg, err := counter.LoadConfig(content)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Infof("Language set to: %s", i18n.GetLang())

	fyneApp := app.New()

	if iconBytes, err := content.ReadFile("assets/icon.svg"); err == nil {
		fyneApp.SetIcon(fyne.NewStaticResource("icon.svg", iconBytes))
	} else {
		log.Warnf("Failed to load icon. %v", err)
	}

	fyneApp.Settings().SetTheme(ui.NewCustomTheme(ui.AccentColor))

	ctx, cancel := context.WithCancel(context.Background())
	a := NewAppManager(ctx, content, cfg, log)

	w, screen := ui.CreateMainWindow(a, fyneApp, fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight), log.Named(logger.ComponentUI))
	a.mainWindow = w
	a.screen = screen

	w.SetOnClosed(func() {
		screen.Close()
		cancel()
	})

	go a.tick(ctx)

	w.ShowAndRun()
}
