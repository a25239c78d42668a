package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/observer/core/config"
	"github.com/dmitrymomot/observer/core/logger"
	"github.com/dmitrymomot/observer/core/observer"
	"github.com/dmitrymomot/observer/pkg/windowevent"
)

// Config is read from the environment, or from a .env file in the working directory.
type Config struct {
	AppName      string `env:"APP_NAME" envDefault:"windowevent"`
	AppEnv       string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	WindowWidth  int    `env:"WINDOW_WIDTH" envDefault:"128"`
	WindowHeight int    `env:"WINDOW_HEIGHT" envDefault:"96"`
}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	if err := run(cfg, log); err != nil {
		log.Error("window demo failed", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(
			slog.String("service", cfg.AppName),
			slog.String("env", cfg.AppEnv),
		),
	}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}

func run(cfg Config, log *slog.Logger) error {
	app := windowevent.NewApp(os.Stdout,
		windowevent.WithAppLogger(log),
		windowevent.WithObserverOptions(observer.WithLogger(log), observer.WithID("app")))
	defer app.Close()

	window := windowevent.NewWindow(observer.WithLogger(log), observer.WithID("window"))
	defer window.Destroy()

	if err := window.Attach(app.Observer); err != nil {
		return err
	}

	steps := []func() error{
		window.Open,
		window.Close,
		func() error { return window.Resize(cfg.WindowWidth, cfg.WindowHeight) },
		func() error { return window.SetFocus(true) },
		func() error { return window.SetFocus(false) },
		window.Minimize,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}
