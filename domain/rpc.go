package domain

// gRPC service names mounted on the shared port, and the metadata key that carries
// the export identity on connector calls.
const (
	RegistryService  = "myrendezvous.v1.Registry"
	ConnectorService = "myrendezvous.v1.Connector"
	ExportIDHeader   = "x-export-id"
)

// FullMethod returns the gRPC method path for service and method, e.g. "/myrendezvous.v1.Registry/Lookup".
func FullMethod(service, method string) string {
	return "/" + service + "/" + method
}
