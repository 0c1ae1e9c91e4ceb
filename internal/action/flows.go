package action

import (
	"context"
	"strings"

	"github.com/five82/motodash/internal/moto"
)

// Fixed operator-facing messages.
const (
	StatusFailure  = "Error fetching status"
	ActionFailure  = "Something went wrong"
	DefaultSuccess = "Success"
)

// NewStatus returns a controller for status-map reads.
func NewStatus() *Controller[moto.StatusMap] {
	return New[moto.StatusMap](StatusFailure, nil)
}

// NewGPS returns a controller for location reads.
func NewGPS() *Controller[moto.GPSFix] {
	return New[moto.GPSFix](StatusFailure, nil)
}

// NewAction returns a controller for triggered commands. An empty server
// message becomes DefaultSuccess.
func NewAction() *Controller[string] {
	return New[string](ActionFailure, func(msg string) string {
		if strings.TrimSpace(msg) == "" {
			return DefaultSuccess
		}
		return msg
	})
}

// ReadStatus adapts a status fetch into a Request.
func ReadStatus(api moto.API, s moto.Subsystem) Request[moto.StatusMap] {
	return func(ctx context.Context) (moto.StatusMap, error) {
		return api.FetchStatus(ctx, s)
	}
}

// ReadGPS adapts a location fetch into a Request.
func ReadGPS(api moto.API) Request[moto.GPSFix] {
	return func(ctx context.Context) (moto.GPSFix, error) {
		return api.FetchGPS(ctx)
	}
}

// Trigger adapts an action post into a Request yielding the server message.
func Trigger(api moto.API, a moto.Action) Request[string] {
	return func(ctx context.Context) (string, error) {
		resp, err := api.Trigger(ctx, a)
		if err != nil {
			return "", err
		}
		return resp.Message, nil
	}
}
