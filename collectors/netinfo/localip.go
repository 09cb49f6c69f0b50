// Package netinfo looks up the address of the host's primary outbound
// network interface.
package netinfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"

	psnet "github.com/shirou/gopsutil/v3/net"
)

// DefaultProbeTarget is a TEST-NET-1 address. Connecting a UDP socket to
// it selects the outbound route without sending any packet.
const DefaultProbeTarget = "192.0.2.1:80"

// ErrNoAddress is returned when no usable IPv4 address was found.
var ErrNoAddress = errors.New("netinfo: no local address")

// Resolver finds the local address of the primary outbound interface.
type Resolver struct {
	target string
	logger *slog.Logger

	// Overridable for testing.
	dial       func(ctx context.Context, network, address string) (net.Conn, error)
	interfaces func(ctx context.Context) (psnet.InterfaceStatList, error)
}

// NewResolver creates a Resolver that routes towards target. An empty
// target uses DefaultProbeTarget. If logger is nil, a no-op logger is used.
func NewResolver(target string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if target == "" {
		target = DefaultProbeTarget
	}

	var d net.Dialer
	return &Resolver{
		target:     target,
		logger:     logger,
		dial:       d.DialContext,
		interfaces: psnet.InterfacesWithContext,
	}
}

// LocalIP returns the local address as text. It asks the routing table
// first and falls back to the first up, non-loopback IPv4 interface
// address. It is a single best-effort attempt with no retries.
func (r *Resolver) LocalIP(ctx context.Context) (string, error) {
	ip, routeErr := r.routeAddress(ctx)
	if routeErr == nil {
		return ip, nil
	}
	r.logger.Debug("route lookup failed, scanning interfaces", "error", routeErr)

	ip, scanErr := r.interfaceAddress(ctx)
	if scanErr == nil {
		return ip, nil
	}
	return "", fmt.Errorf("%w: route: %v; interfaces: %v", ErrNoAddress, routeErr, scanErr)
}

// routeAddress connects a UDP socket to the probe target and reports the
// local end. UDP connect only consults the routing table.
func (r *Resolver) routeAddress(ctx context.Context) (string, error) {
	conn, err := r.dial(ctx, "udp4", r.target)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil || addr.IP.IsUnspecified() {
		return "", fmt.Errorf("unexpected local address %v", conn.LocalAddr())
	}
	return addr.IP.String(), nil
}

// interfaceAddress scans interfaces in system order for an IPv4 address.
func (r *Resolver) interfaceAddress(ctx context.Context) (string, error) {
	ifaces, err := r.interfaces(ctx)
	if err != nil {
		return "", err
	}

	for _, iface := range ifaces {
		if !hasFlag(iface.Flags, "up") || hasFlag(iface.Flags, "loopback") {
			continue
		}
		for _, a := range iface.Addrs {
			ip, _, err := net.ParseCIDR(a.Addr)
			if err != nil {
				ip = net.ParseIP(a.Addr)
			}
			if ip == nil || ip.To4() == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
				continue
			}
			return ip.String(), nil
		}
	}
	return "", ErrNoAddress
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, want) {
			return true
		}
	}
	return false
}
