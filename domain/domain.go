// Package domain holds the plain types shared by the rendezvous agent, its registry,
// its connector and the monitoring client.
package domain

import "time"

// PortConfig is the single TCP port used by both the registry and the connector.
type PortConfig struct {
	Port int
}

// HostnameConfig is the hostname advertised to remote clients in both halves of the service address.
type HostnameConfig struct {
	Hostname string
}

// Environment is the capability map handed to the export-service factory.
type Environment map[string]string

// Recognised capability keys.
const (
	// EnvRegistryRebind makes the connector replace an existing registry binding instead of failing.
	EnvRegistryRebind = "registry.rebind"
)

// AgentConfig is the configuration injected into the rendezvous activation.
// Overrides are raw strings; empty means "use the default".
type AgentConfig struct {
	PortOverride     string
	HostnameOverride string
	RandomIDs        bool
	Environment      Environment
	PublishTTL       time.Duration
}

// Publication is what gets advertised to the shared store once the agent is reachable.
type Publication struct {
	ServiceURL  string    `json:"service_url"`
	Hostname    string    `json:"hostname"`
	Port        int       `json:"port"`
	PublishedAt time.Time `json:"published_at"`
}
