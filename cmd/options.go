package main

import (
	"fmt"
	"log"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/storage"

	flag "github.com/spf13/pflag"
)

// options are the persistent command-line overrides shared by every command.
type options struct {
	configPath        string
	minutes           int
	inactivitySeconds int
	alarmSound        string
	logFile           string
	noIdle            bool
}

func (opts *options) bind(flags *flag.FlagSet) {
	flags.StringVar(&opts.configPath, "config", "", "path to settings.yaml")
	flags.IntVarP(&opts.minutes, "minutes", "m", model.DefaultPomodoroMinutes, "pomodoro length in minutes")
	flags.IntVar(&opts.inactivitySeconds, "inactivity", model.DefaultInactivitySeconds, "seconds without input before pausing")
	flags.StringVar(&opts.alarmSound, "sound", model.DefaultAlarmSound, "alarm sound name or file")
	flags.StringVar(&opts.logFile, "log-file", "", "session log path (default ~/pomodoro_log.txt)")
	flags.BoolVar(&opts.noIdle, "no-idle", false, "disable system-wide idle detection")
}

// resolveConfigPath returns the --config value or the per-user default.
func (opts *options) resolveConfigPath() (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return storage.ResolveConfigPath(appName)
}

// settings loads the YAML file and applies the flags explicitly set in flags
// on top. A broken file is reported and replaced by defaults.
func (opts *options) settings(flags *flag.FlagSet) (model.Settings, error) {
	configPath, err := opts.resolveConfigPath()
	if err != nil {
		return model.Settings{}, err
	}

	settings, err := storage.LoadSettingsFile(configPath)
	if err != nil {
		log.Printf("settings: %v; using defaults", err)
		settings = model.DefaultSettings()
	}

	if err := opts.apply(flags, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func (opts *options) apply(flags *flag.FlagSet, settings *model.Settings) error {
	if flags.Changed("minutes") {
		if opts.minutes <= 0 || opts.minutes > 24*60 {
			return fmt.Errorf("invalid --minutes %d: want 1..1440", opts.minutes)
		}
		settings.PomodoroDuration = time.Duration(opts.minutes) * time.Minute
	}
	if flags.Changed("inactivity") {
		if opts.inactivitySeconds <= 0 {
			return fmt.Errorf("invalid --inactivity %d: must be positive", opts.inactivitySeconds)
		}
		settings.InactivityThreshold = time.Duration(opts.inactivitySeconds) * time.Second
	}
	if flags.Changed("sound") {
		settings.AlarmSound = opts.alarmSound
	}
	if flags.Changed("log-file") && opts.logFile != "" {
		settings.LogFile = opts.logFile
	}
	if opts.noIdle {
		settings.IdleDetection = false
	}
	return nil
}
