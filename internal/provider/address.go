package provider

import (
	"context"
	"fmt"
	"net/netip"
	"strings"

	"github.com/jamesprial/i3bar-info/internal/section"
	"github.com/jamesprial/i3bar-info/internal/system"
)

// loopbackPrefix is matched case-insensitively against the interface name.
// It also matches names such as "lowpan0"; i3status makes the same check.
const loopbackPrefix = "lo"

// Address renders the IPv4 address of the first running, non-loopback
// interface.
type Address struct {
	host system.Host
}

// NewAddress returns an Address provider enumerating interfaces through host.
func NewAddress(host system.Host) *Address {
	return &Address{host: host}
}

func (a *Address) Name() string { return "ip" }

func (a *Address) Produce(ctx context.Context, rec *section.Record) error {
	ifaces, err := a.host.Interfaces(ctx)
	if err != nil {
		return err
	}

	for _, iface := range ifaces {
		if isLoopbackName(iface.Name) || !iface.HasFlag("running") {
			continue
		}
		for _, raw := range iface.Addrs {
			if !isIPv4(raw) {
				continue
			}
			addr, err := numericHost(raw)
			if err != nil {
				return fmt.Errorf("interface %s: %w", iface.Name, err)
			}
			rec.Name = a.Name()
			rec.FullText = addr
			return nil
		}
	}
	return ErrNoAddress
}

func (a *Address) Release(rec *section.Record) { releaseText(rec) }

func isLoopbackName(name string) bool {
	return len(name) >= len(loopbackPrefix) &&
		strings.EqualFold(name[:len(loopbackPrefix)], loopbackPrefix)
}

// isIPv4 reports whether raw looks like an IPv4 address, with or without a
// prefix length. It does not validate the address.
func isIPv4(raw string) bool {
	host, _, _ := strings.Cut(raw, "/")
	return strings.Contains(host, ".") && !strings.Contains(host, ":")
}

// numericHost returns the dotted-quad form of an address given in CIDR or
// plain notation.
func numericHost(raw string) (string, error) {
	host, _, _ := strings.Cut(raw, "/")
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", raw, err)
	}
	if !addr.Is4() {
		return "", fmt.Errorf("resolve %q: %w", raw, ErrMalformed)
	}
	return addr.String(), nil
}
