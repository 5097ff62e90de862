// Package runner drives a Demo against a Sink: it renders a frame, waits for
// the delay the active show asked for, and forwards control events as they
// arrive.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/olivier-w/dotstar/internal/color"
	"github.com/olivier-w/dotstar/internal/show"
	"github.com/olivier-w/dotstar/internal/strip"
)

// Options configures Run.
type Options struct {
	// Lights is the strip length. Defaults to 30.
	Lights int
	// Log receives mode changes, frame timing and sink failures. Defaults
	// to a discarding logger.
	Log logrus.FieldLogger
}

const defaultLights = 30

// Run loops until ctx is cancelled, the event channel is closed, or the
// sink fails. A closed event channel ends the run with a nil error.
//
// Each iteration calls demo.Next and shows the frame, then waits for the
// returned delay. Events received while waiting are applied with
// demo.Handle and shown immediately; a mode change starts the next
// iteration at once. A delay of show.Forever waits for events only.
func Run(ctx context.Context, demo *show.Demo, sink strip.Sink, events <-chan show.Event, opts Options) error {
	if opts.Lights <= 0 {
		opts.Lights = defaultLights
	}
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}

	frame := make([]color.RGB, opts.Lights)
	for {
		delay := demo.Next(frame)
		fields := logrus.Fields{"mode": demo.Mode(), "lights": len(frame), "delay": delay}
		log.WithFields(fields).Debug("frame")
		if err := sink.Show(frame); err != nil {
			log.WithFields(fields).WithError(err).Error("sink failed")
			return fmt.Errorf("showing frame: %w", err)
		}

		next, err := wait(ctx, demo, sink, frame, events, delay, log)
		if err != nil || !next {
			return err
		}
	}
}

// wait blocks until the next tick is due. It returns next=false when the
// run should stop without error.
func wait(ctx context.Context, demo *show.Demo, sink strip.Sink, frame []color.RGB,
	events <-chan show.Event, delay time.Duration, log logrus.FieldLogger) (next bool, err error) {
	var tick <-chan time.Time
	if delay != show.Forever {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		tick = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-tick:
			return true, nil
		case ev, ok := <-events:
			if !ok {
				log.Debug("event source closed")
				return false, nil
			}
			changed := demo.Handle(frame, ev)
			if err := sink.Show(frame); err != nil {
				log.WithFields(logrus.Fields{"mode": demo.Mode(), "event": ev}).WithError(err).Error("sink failed")
				return false, fmt.Errorf("showing frame after %v: %w", ev, err)
			}
			if changed {
				log.WithField("mode", demo.Mode()).Info("mode changed")
				return true, nil
			}
		}
	}
}
