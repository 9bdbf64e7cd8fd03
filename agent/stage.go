package agent

// Stage is a step of the activation state machine.
type Stage int

const (
	Unstarted Stage = iota
	PortResolved
	HostnameResolved
	RegistryListening
	AddressComposed
	ExportServiceListening
	Failed
)

func (s Stage) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case PortResolved:
		return "port_resolved"
	case HostnameResolved:
		return "hostname_resolved"
	case RegistryListening:
		return "registry_listening"
	case AddressComposed:
		return "address_composed"
	case ExportServiceListening:
		return "export_service_listening"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
