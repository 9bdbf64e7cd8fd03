package service

import (
	"fmt"
	"os"
	"strconv"

	"myrendezvous/domain"
)

// HostnameFunc resolves the local machine's network name.
type HostnameFunc func() (string, error)

// LocalHostname is the default HostnameFunc.
func LocalHostname() (string, error) {
	return os.Hostname()
}

// ResolvePort returns the override as a port, or domain.DefaultPort when the override is empty.
// A present but malformed override is a configuration error.
func ResolvePort(override string) (domain.PortConfig, error) {
	if override == "" {
		return domain.PortConfig{Port: domain.DefaultPort}, nil
	}
	port, err := strconv.Atoi(override)
	if err != nil {
		return domain.PortConfig{}, NewConfigurationError(fmt.Sprintf("port override %q is not an integer", override), err)
	}
	if port <= 0 || port > 65535 {
		return domain.PortConfig{}, NewConfigurationError(fmt.Sprintf("port override must be 1-65535, got %d", port), nil)
	}
	return domain.PortConfig{Port: port}, nil
}

// ResolveHostname returns the override unchanged when it is non-empty, otherwise asks lookup.
func ResolveHostname(override string, lookup HostnameFunc) (domain.HostnameConfig, error) {
	if override != "" {
		return domain.HostnameConfig{Hostname: override}, nil
	}
	if lookup == nil {
		lookup = LocalHostname
	}
	hostname, err := lookup()
	if err != nil {
		return domain.HostnameConfig{}, NewHostResolutionError("cannot resolve local hostname", err)
	}
	if hostname == "" {
		return domain.HostnameConfig{}, NewHostResolutionError("local hostname is empty", nil)
	}
	return domain.HostnameConfig{Hostname: hostname}, nil
}
