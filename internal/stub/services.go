package stub

import (
	"fmt"

	"github.com/five82/motodash/internal/moto"
)

// HALService reports the I/O board status.
type HALService interface {
	Status() map[string]any
}

// NetworkService reports link status.
type NetworkService interface {
	Status() map[string]any
}

// MotorcycleService reports vehicle status and location and accepts commands.
type MotorcycleService interface {
	Status() map[string]any
	GPS() moto.GPSFix
	Trigger(a moto.Action) (string, error)
}

// StubHAL returns canned HAL readings.
type StubHAL struct{}

func (StubHAL) Status() map[string]any {
	return map[string]any{
		"status": "online",
		"temp":   42,
	}
}

// StubNetwork returns canned network readings.
type StubNetwork struct{}

func (StubNetwork) Status() map[string]any {
	return map[string]any{"status": "online"}
}

// StubMotorcycle returns canned vehicle readings and accepts every command.
type StubMotorcycle struct{}

func (StubMotorcycle) Status() map[string]any {
	return map[string]any{"status": "online"}
}

func (StubMotorcycle) GPS() moto.GPSFix {
	return moto.GPSFix{Lat: "1.111", Lng: "2.222"}
}

func (StubMotorcycle) Trigger(a moto.Action) (string, error) {
	return fmt.Sprintf("%s command accepted", a.Title()), nil
}
