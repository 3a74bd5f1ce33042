package system

import (
	"context"
	"fmt"
	"net"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
)

// GopsutilHost implements Host on top of gopsutil and the net package.
type GopsutilHost struct{}

// NewGopsutilHost returns a Host backed by the running kernel.
func NewGopsutilHost() *GopsutilHost {
	return &GopsutilHost{}
}

// LoadAverage reads the three load averages.
func (h *GopsutilHost) LoadAverage(ctx context.Context) ([]float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("read load average: %w", err)
	}
	return []float64{avg.Load1, avg.Load5, avg.Load15}, nil
}

// ProcessorCount returns the number of logical processors.
func (h *GopsutilHost) ProcessorCount(ctx context.Context) (int, error) {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("count processors: %w", err)
	}
	return n, nil
}

// Interfaces enumerates network interfaces with their flags and addresses.
// gopsutil's interface list drops the running flag, so this goes through the
// net package directly.
func (h *GopsutilHost) Interfaces(_ context.Context) ([]Interface, error) {
	nifs, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	ifaces := make([]Interface, 0, len(nifs))
	for _, ifi := range nifs {
		addrs, err := ifi.Addrs()
		if err != nil {
			return nil, fmt.Errorf("list addresses of %s: %w", ifi.Name, err)
		}
		ifaces = append(ifaces, toInterface(ifi, addrs))
	}
	return ifaces, nil
}

// interfaceFlags pairs each net flag with the name Interface.HasFlag expects.
var interfaceFlags = []struct {
	flag net.Flags
	name string
}{
	{net.FlagUp, "up"},
	{net.FlagBroadcast, "broadcast"},
	{net.FlagLoopback, "loopback"},
	{net.FlagPointToPoint, "pointtopoint"},
	{net.FlagMulticast, "multicast"},
	{net.FlagRunning, "running"},
}

func flagNames(f net.Flags) []string {
	var names []string
	for _, fl := range interfaceFlags {
		if f&fl.flag != 0 {
			names = append(names, fl.name)
		}
	}
	return names
}

func toInterface(ifi net.Interface, addrs []net.Addr) Interface {
	iface := Interface{
		Name:  ifi.Name,
		Flags: flagNames(ifi.Flags),
	}
	for _, a := range addrs {
		iface.Addrs = append(iface.Addrs, a.String())
	}
	return iface
}
