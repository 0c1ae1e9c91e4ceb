package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/five82/motodash/internal/moto"
	"github.com/five82/motodash/internal/state"
)

const defaultPollInterval = 2 * time.Second

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, api moto.API, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh(ctx, store, api)
			}
		}
	}()
}

// refresh reads every subsystem and the GPS fix once. Successful readings
// are stored even when others fail.
func refresh(ctx context.Context, store *state.Store, api moto.API) error {
	statuses := make(map[moto.Subsystem]moto.StatusMap, len(moto.Subsystems))
	var errs []error
	for _, sub := range moto.Subsystems {
		m, err := api.FetchStatus(ctx, sub)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s status: %w", sub, err))
			log.Printf("%s status poll failed (%s): %v", sub, moto.Kind(err), err)
			continue
		}
		statuses[sub] = m
	}

	var gps *moto.GPSFix
	fix, err := api.FetchGPS(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("gps: %w", err))
		log.Printf("gps poll failed (%s): %v", moto.Kind(err), err)
	} else {
		gps = &fix
	}

	joined := errors.Join(errs...)
	store.Update(statuses, gps, joined)
	return joined
}
