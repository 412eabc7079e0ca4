package driver

import (
	"context"
	"time"
)

const (
	DefaultTickLength = time.Minute
)

// Manager is a component that wants periodic attention from the driver.
type Manager interface {
	Tick(context.Context) error
}

// GameDriver runs the server's background heartbeat, fanning each tick out
// to its managers in order.
type GameDriver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewGameDriver(managers []Manager, opts ...GameDriverOpt) *GameDriver {
	d := &GameDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *GameDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *GameDriver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		err := m.Tick(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
