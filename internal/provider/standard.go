package provider

import (
	"time"

	"github.com/jamesprial/i3bar-info/internal/system"
)

// Options carries the process-wide inputs of the standard provider set.
type Options struct {
	Host        system.Host
	Processors  int
	BatteryPath string
	ThermalPath string
	Location    *time.Location
}

// Standard returns the fixed provider sequence, left to right on the bar.
func Standard(opts Options) []Provider {
	return []Provider{
		NewAddress(opts.Host),
		NewTemperature(opts.ThermalPath),
		NewLoad(opts.Host, opts.Processors),
		NewBattery(opts.BatteryPath),
		NewClock(opts.Location),
	}
}
