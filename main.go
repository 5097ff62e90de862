package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/olivier-w/dotstar/internal/config"
	"github.com/olivier-w/dotstar/internal/runner"
	"github.com/olivier-w/dotstar/internal/show"
	"github.com/olivier-w/dotstar/internal/strip"
	"github.com/olivier-w/dotstar/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg := opts.cfg

	log, closeLog, err := newLogger(cfg, cfg.Sink == config.SinkTUI)
	if err != nil {
		return err
	}
	defer closeLog()

	demo := show.NewDemo()
	demo.SetMode(uint8(cfg.InitialMode()))

	if cfg.Sink == config.SinkTUI {
		var mirror strip.Sink
		if opts.mirror {
			spi, err := strip.OpenSPI(cfg.SPI.Port, cfg.SPI.Hz)
			if err != nil {
				return err
			}
			defer spi.Close()
			d := strip.NewDotstar(spi)
			defer blank(d, cfg.Lights)
			mirror = d
		}
		model := ui.New(demo, cfg.Lights, mirror, log)
		final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		if m, ok := final.(ui.Model); ok && m.Err() != nil {
			return m.Err()
		}
		return nil
	}

	sink, closeSink, err := openSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{"sink": cfg.Sink, "lights": cfg.Lights, "mode": demo.Mode()}).Info("starting")
	err = runner.Run(ctx, demo, sink, readEvents(os.Stdin, log), runner.Options{Lights: cfg.Lights, Log: log})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
