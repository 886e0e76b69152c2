package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"jordanella.com/autoscape-go/internal/bot"
	"jordanella.com/autoscape-go/internal/config"
	"jordanella.com/autoscape-go/internal/cv"
	"jordanella.com/autoscape-go/internal/database"
	"jordanella.com/autoscape-go/internal/gui"
	"jordanella.com/autoscape-go/internal/input"
	"jordanella.com/autoscape-go/internal/logging"
	"jordanella.com/autoscape-go/internal/profile"
	"jordanella.com/autoscape-go/internal/sound"
)

const banner = `
    _         _        ____
   / \  _   _| |_ ___ / ___|  ___ __ _ _ __   ___
  / _ \| | | | __/ _ \ ___ \ / __/ _' | '_ \ / _ \
 / ___ \ |_| | || (_) |___) | (_| (_| | |_) |  __/
/_/   \_\__,_|\__\___/|____/ \___\__,_| .__/ \___|
                                      |_|
`

func main() {
	fmt.Print(banner)

	logger := logging.NewLogger("autoscape")

	if err := run(logger); err != nil {
		if errors.Is(err, gui.ErrSetupCancelled) {
			logger.Info("Setup closed, exiting")
			return
		}
		logger.Fatal("AutoScape stopped", err)
		os.Exit(1)
	}
}

func run(logger *logging.Logger) error {
	cfg, err := config.LoadFromINI(config.DefaultPath)
	if err != nil {
		logger.Warn(fmt.Sprintf("Failed to load %s, using defaults: %v", config.DefaultPath, err))
		cfg = config.NewDefaultConfig()
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetMinLevel(level)

	if cfg.LogFile != "" {
		f, err := logging.OpenLogFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logger.AddOutput(f)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	capturer, err := cv.NewPrimaryDisplayCapturer()
	if err != nil {
		return err
	}
	frames := cv.NewSource(capturer).WithRetryDelay(cfg.FrameRetry)
	frameWidth, frameHeight := frames.GetDimensions()

	injector, err := input.NewRobotgoInjector()
	if err != nil {
		return err
	}
	actuationWidth, _ := injector.ScreenSize()

	choices, err := gui.RunSetup(catalog)
	if err != nil {
		return err
	}

	settings, err := bot.NewSettings(cfg, catalog, choices, frameWidth, frameHeight, actuationWidth)
	if err != nil {
		return err
	}

	logger.InfoWithContext("Display measured", map[string]interface{}{
		"frame":  fmt.Sprintf("%dx%d", frameWidth, frameHeight),
		"center": settings.Center,
		"scale":  settings.Scale,
		"aspect": choices.Aspect,
		"target": choices.Target,
	})

	cues, err := sound.LoadCues(cfg.ActivateSound, cfg.DeactivateSound)
	if err != nil {
		return err
	}
	defer cues.Close()

	trigger, err := input.StartKeyTrigger(cfg.ToggleKey)
	if err != nil {
		return err
	}
	defer trigger.Stop()

	pointer := input.NewDriver(injector, settings.Scale).WithStepDelay(cfg.StepDelay)
	loop := bot.NewLoop(settings, frames, pointer, trigger, cues, logger.Named("loop"))

	var db *database.DB
	var session *database.Session
	if cfg.DatabasePath != "" {
		db, session, err = openJournal(cfg.DatabasePath, choices, settings, frameWidth, frameHeight)
		if err != nil {
			return err
		}
		defer db.Close()
		loop.WithRecorder(bot.NewJournal(db, session.ID))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("All set! Hold >%s< to start running!\n", keyName(trigger.Key()))

	runErr := loop.Run(ctx)

	if session != nil {
		if runErr != nil {
			err = db.FailSession(session.ID, runErr.Error())
		} else {
			err = db.CompleteSession(session.ID)
		}
		if err != nil {
			logger.Warn(fmt.Sprintf("Failed to close journal session: %v", err))
		}
		logTotals(logger, db, session.ID)
	}

	if runErr == nil {
		logger.Info("Shutting down")
	}
	return runErr
}

func logTotals(logger *logging.Logger, db *database.DB, sessionID string) {
	counts, err := db.CountOutcomes(sessionID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Failed to count session outcomes: %v", err))
		return
	}

	totals := make(map[string]interface{}, len(counts)+1)
	for outcome, n := range counts {
		totals[outcome] = n
	}
	totals["session"] = sessionID
	logger.InfoWithContext("Session totals", totals)
}

func keyName(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

func loadCatalog(cfg *config.Config) (*profile.Catalog, error) {
	if cfg.ProfilesFile == "" {
		return profile.LoadDefault()
	}
	return profile.LoadFile(cfg.ProfilesFile)
}

func openJournal(path string, choices profile.Choices, settings *bot.Settings, frameWidth, frameHeight int) (*database.DB, *database.Session, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, nil, err
	}

	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, nil, err
	}

	session, err := db.StartSession(database.Session{
		Aspect:      choices.Aspect.String(),
		Target:      choices.Target.String(),
		AutoEmpty:   choices.AutoEmpty,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Scale:       settings.Scale,
	})
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, session, nil
}
