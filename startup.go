package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/olivier-w/dotstar/internal/color"
	"github.com/olivier-w/dotstar/internal/config"
	"github.com/olivier-w/dotstar/internal/show"
	"github.com/olivier-w/dotstar/internal/strip"
	"github.com/olivier-w/dotstar/internal/ui"
)

type options struct {
	cfg    config.Config
	mirror bool
}

// parseFlags loads the config file named by -config, if any, and applies
// the remaining flags on top of it.
func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("dotstar", flag.ContinueOnError)
	var (
		path    = fs.String("config", "", "YAML config file")
		sink    = fs.String("sink", "", "output: tui, ansi or spi")
		lights  = fs.Int("lights", 0, "number of LEDs on the strip")
		mode    = fs.String("mode", "", "initial mode: off, solid, circle, wave or strobe")
		port    = fs.String("spi-port", "", "SPI port name (default first port)")
		hz      = fs.Int64("spi-hz", 0, "SPI clock in Hz")
		level   = fs.String("log-level", "", "log level")
		logFile = fs.String("log-file", "", "append logs to this file")
		mirror  = fs.Bool("mirror", false, "with -sink tui, also drive the SPI strip")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			return options{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sink":
			cfg.Sink = *sink
		case "lights":
			cfg.Lights = *lights
		case "mode":
			cfg.Mode = *mode
		case "spi-port":
			cfg.SPI.Port = *port
		case "spi-hz":
			cfg.SPI.Hz = *hz
		case "log-level":
			cfg.LogLevel = *level
		case "log-file":
			cfg.LogFile = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	return options{cfg: cfg, mirror: *mirror}, nil
}

// newLogger builds the process logger. The TUI owns the terminal, so
// without a log file its logs are discarded.
func newLogger(cfg config.Config, tui bool) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		return log, func() { f.Close() }, nil
	case tui:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return log, func() {}, nil
}

// openSink opens the non-interactive output. The returned close func
// blanks the strip before releasing it.
func openSink(cfg config.Config) (strip.Sink, func(), error) {
	switch cfg.Sink {
	case config.SinkANSI:
		a := strip.NewANSI(os.Stdout)
		return a, func() { a.Close() }, nil
	case config.SinkSPI:
		spi, err := strip.OpenSPI(cfg.SPI.Port, cfg.SPI.Hz)
		if err != nil {
			return nil, nil, err
		}
		d := strip.NewDotstar(spi)
		return d, func() {
			blank(d, cfg.Lights)
			spi.Close()
		}, nil
	}
	return nil, nil, fmt.Errorf("sink %q is not a line-mode sink", cfg.Sink)
}

func blank(s strip.Sink, lights int) {
	s.Show(make([]color.RGB, lights))
}

// readEvents turns typed characters on r into control events, using the
// same keys as the TUI. At EOF the channel stays open so a strip started
// without a terminal keeps running until it is signalled.
func readEvents(r io.Reader, log logrus.FieldLogger) <-chan show.Event {
	events := make(chan show.Event)
	go func() {
		br := bufio.NewReader(r)
		for {
			c, _, err := br.ReadRune()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					log.WithError(err).Warn("reading commands")
				}
				return
			}
			if unicode.IsSpace(c) {
				continue
			}
			ev, ok := ui.EventForRune(c)
			if !ok {
				log.WithField("key", string(c)).Debug("ignoring unbound key")
				continue
			}
			events <- ev
		}
	}()
	return events
}
