package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/passtrain/internal/config"
	"github.com/robalobadob/passtrain/internal/drill"
	"github.com/robalobadob/passtrain/internal/messages"
	"github.com/robalobadob/passtrain/internal/terminal"
	"github.com/robalobadob/passtrain/internal/trainer"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Every return path goes through the
// deferred console.Close, so the terminal mode is always restored.
func run() int {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	setupLogging(cfg.LogLevel)

	printer, err := messages.Load(cfg.Locale)
	if err != nil {
		log.Error().Err(err).Msg("failed to load messages")
		return 1
	}

	console := terminal.NewStdio()
	console.HideSecret = cfg.HideSecretEntry
	if cfg.HideSecretEntry && !console.IsTerminal() {
		log.Warn().Msg("input is not a terminal, secret entry will be visible")
	}
	log.Debug().
		Stringer("locale", printer.Tag()).
		Bool("tty", console.IsTerminal()).
		Msg("console ready")
	defer console.Close()
	stop := restoreOnSignal(console)
	defer stop()

	console.Render(printer.Sprintf(messages.KeyTitle))
	secret, err := trainer.CaptureSecret(console, console, printer)
	if err != nil {
		log.Error().Err(err).Msg("failed to capture secret")
		return 1
	}

	rng, err := drill.NewRand()
	if err != nil {
		log.Error().Err(err).Msg("failed to seed random source")
		return 1
	}
	sess, err := trainer.New(secret, console, console, trainer.Options{
		Config:      cfg.Drill(),
		Rand:        rng,
		Printer:     printer,
		ClearScreen: cfg.ClearScreen,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to start session")
		return 1
	}

	if _, err := sess.Run(); err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("session aborted")
		return 1
	}
	sess.RenderSummary()
	console.Render(printer.Sprintf(messages.KeyGoodbye))
	return 0
}

// setupLogging writes human-readable logs to stderr at the given level.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", level).Msg("unknown log level, using warn")
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// restoreOnSignal restores the terminal and exits when the process is
// interrupted or terminated outside of the normal loop.
func restoreOnSignal(console *terminal.Console) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigs:
			_ = console.Close()
			log.Warn().Stringer("signal", sig).Msg("interrupted")
			os.Exit(130)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
