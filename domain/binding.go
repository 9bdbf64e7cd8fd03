package domain

import "time"

// Binding is a registry entry: a name mapped to the live address of an exported connector.
type Binding struct {
	Name     string
	Address  string // host:port of the export endpoint
	ExportID string // identity of the exported object, checked on every call
	BoundAt  time.Time
}
