package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"pomodoro/internal/activity"
	"pomodoro/internal/core/eventloop"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

const shutdownTimeout = 2 * time.Second

// runtime wires the TimeKeeper to its loop, log, alarm and input sources.
// Every surface (widget or terminal) drives the same runtime.
type runtime struct {
	settings   model.Settings
	runner     *eventloop.Runner
	keeper     *timekeeper.TimeKeeper
	monitor    *activity.Monitor
	sessionLog *storage.SessionLog
	guard      *platform.InstanceGuard

	cancel  context.CancelFunc
	stopped chan struct{}
}

func newRuntime(settings model.Settings) (*runtime, error) {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			if activateErr := platform.ActivateRunningInstance(appName); activateErr != nil {
				log.Printf("single instance: %v", activateErr)
			}
		}
		return nil, err
	}

	runner := eventloop.NewRunner()
	keeper := timekeeper.New(settings.PomodoroConfig(), runner)
	sessionLog := storage.NewSessionLog(settings.LogFile)
	keeper.SetRecorder(sessionLog)
	keeper.SetAlarm(platform.NewAlarmPlayer())

	return &runtime{
		settings:   settings,
		runner:     runner,
		keeper:     keeper,
		monitor:    activity.NewMonitor(runner, keeper.NotifyActivity),
		sessionLog: sessionLog,
		guard:      guard,
		stopped:    make(chan struct{}),
	}, nil
}

// start runs the loop, arms the watchdog and begins idle polling. Subscribe
// observers before calling start so no event is missed.
func (rt *runtime) start() {
	ctx, cancel := context.WithCancel(context.Background())
	rt.cancel = cancel

	go func() {
		defer close(rt.stopped)
		if err := rt.runner.Run(ctx); err != nil {
			log.Printf("event loop: %v", err)
		}
	}()
	rt.runner.Post(rt.keeper.Attach)

	go rt.notifyOnFinish(rt.keeper.Subscribe(8), platform.NewNotifier(appName))

	if rt.settings.IdleDetection {
		go func() {
			err := rt.monitor.Poll(ctx, platform.NewIdleProvider(), activity.DefaultPollInterval)
			if err != nil {
				log.Printf("activity: idle polling stopped, only in-app input counts as activity")
			}
		}()
	}

	log.Printf("pomodoro: %s sessions, pause after %s idle, log %s",
		rt.settings.PomodoroDuration, rt.settings.InactivityThreshold, rt.sessionLog.Path())
}

// post returns a callback that runs fn on the loop.
func (rt *runtime) post(fn func()) func() {
	return func() {
		rt.runner.Post(fn)
	}
}

// snapshot reads the current state from the loop.
func (rt *runtime) snapshot() timekeeper.Event {
	result := make(chan timekeeper.Event, 1)
	rt.runner.Post(func() {
		result <- rt.keeper.Snapshot()
	})
	select {
	case event := <-result:
		return event
	case <-time.After(shutdownTimeout):
		return timekeeper.Event{Phase: timekeeper.PhaseIdle}
	}
}

// shutdown closes the TimeKeeper on its loop, stops the loop and releases
// the instance lock. An open session is discarded, as on app exit.
func (rt *runtime) shutdown() {
	closed := make(chan struct{})
	rt.runner.Post(func() {
		rt.keeper.Close()
		close(closed)
	})
	select {
	case <-closed:
	case <-time.After(shutdownTimeout):
		log.Printf("pomodoro: timed out closing timer")
	}

	if rt.cancel != nil {
		rt.cancel()
		<-rt.stopped
	}
	if err := rt.guard.Release(); err != nil {
		log.Printf("single instance: release: %v", err)
	}
}

func (rt *runtime) notifyOnFinish(events <-chan timekeeper.Event, notifier platform.Notifier) {
	for event := range events {
		if event.Type != timekeeper.EventFinished {
			continue
		}
		body := fmt.Sprintf("%s focus block finished. Click the timer to go again.", rt.settings.PomodoroDuration)
		if err := notifier.Notify("Time's up!", body); err != nil {
			log.Printf("notify: %v", err)
		}
	}
}
