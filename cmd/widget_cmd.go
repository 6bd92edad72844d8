package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pomodoro/internal/platform"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/widget"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"
)

const dialOpacity = 235

func runWidget(cmd *cobra.Command, opts *options) error {
	settings, err := opts.settings(cmd.Flags())
	if err != nil {
		return err
	}

	rt, err := newRuntime(settings)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return err
	}

	fyneApp := app.NewWithID(appID)

	dialWindow := widget.New(fyneApp, widget.Config{Title: appName, Opacity: dialOpacity}, widget.Callbacks{
		OnPress:   rt.post(rt.keeper.Press),
		OnPointer: rt.monitor.OnPointerActivity,
		OnKey:     rt.monitor.OnKeyActivity,
		OnFocus:   rt.monitor.OnFocusActivity,
	})
	go dialWindow.Watch(rt.keeper.Subscribe(64))

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, appName, tray.Callbacks{
			OnToggle: rt.post(rt.keeper.Press),
			OnReset:  rt.post(rt.keeper.Reset),
			OnShow:   dialWindow.Show,
			OnQuit:   fyneApp.Quit,
		})
		go trayManager.Watch(rt.keeper.Subscribe(16))
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	go func() {
		for range rt.guard.Activations() {
			fyne.Do(dialWindow.Show)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	rt.start()
	dialWindow.Apply(rt.snapshot())
	dialWindow.Show()

	fyneApp.Run()
	stop()
	rt.shutdown()
	return nil
}
