// Package system provides the host queries the status line is built from:
// load averages, the logical processor count, network interface enumeration
// and bounded reads of sysfs pseudo-files.
package system

import "context"

// Interface describes one network interface as reported by the OS.
type Interface struct {
	// Name is the kernel interface name (e.g. "eth0", "wlan0").
	Name string

	// Flags are the lower-case operational flags, e.g. "up", "running",
	// "loopback".
	Flags []string

	// Addrs are the interface addresses in CIDR notation (e.g. "10.0.0.5/24").
	Addrs []string
}

// HasFlag reports whether flag is among the interface's flags.
func (i Interface) HasFlag(flag string) bool {
	for _, f := range i.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Host defines the read-only OS queries used by the metric providers.
type Host interface {
	// LoadAverage returns the 1, 5 and 15 minute load averages.
	LoadAverage(ctx context.Context) ([]float64, error)

	// ProcessorCount returns the number of logical processors.
	ProcessorCount(ctx context.Context) (int, error)

	// Interfaces returns every network interface in OS enumeration order.
	Interfaces(ctx context.Context) ([]Interface, error)
}
