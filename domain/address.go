package domain

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Address scheme constants. A service address nests the registry locator inside the
// export locator so one host:port pair is enough to reach both services.
const (
	MgmtScheme    = "mgmt"
	ExportScheme  = "grpc"
	RegistryPath  = "registry"
	LookupScheme  = "grpc"
	WellKnownName = "jmxrmi"
	DefaultPort   = 62277
)

const servicePrefix = "service:" + MgmtScheme + ":" + ExportScheme + "://"

// ErrMalformedAddress is returned by ParseServiceAddress for input that does not follow the nested shape.
var ErrMalformedAddress = errors.New("malformed service address")

// Locator is a host:port pair.
type Locator struct {
	Host string
	Port int
}

// String returns host:port, bracketing IPv6 hosts.
func (l Locator) String() string {
	return net.JoinHostPort(l.Host, strconv.Itoa(l.Port))
}

// ServiceAddress is the connection string a monitoring client uses:
// service:mgmt:grpc://<export>/registry/grpc://<lookup>/<name>.
type ServiceAddress struct {
	Export Locator
	Lookup Locator
	Name   string
}

// NewServiceAddress builds the single-port address: both locators use hostname and port.
func NewServiceAddress(hostname string, port int) ServiceAddress {
	loc := Locator{Host: hostname, Port: port}
	return ServiceAddress{Export: loc, Lookup: loc, Name: WellKnownName}
}

// LookupLocator returns the embedded registry locator, e.g. grpc://host:port/jmxrmi.
func (a ServiceAddress) LookupLocator() string {
	return LookupScheme + "://" + a.Lookup.String() + "/" + a.Name
}

// String renders the full service address.
func (a ServiceAddress) String() string {
	return servicePrefix + a.Export.String() + "/" + RegistryPath + "/" + a.LookupLocator()
}

// SinglePort reports whether the export and the lookup locators are the same endpoint.
func (a ServiceAddress) SinglePort() bool {
	return a.Export == a.Lookup
}

// ParseServiceAddress is the inverse of ServiceAddress.String.
func ParseServiceAddress(s string) (ServiceAddress, error) {
	rest, ok := strings.CutPrefix(s, servicePrefix)
	if !ok {
		return ServiceAddress{}, fmt.Errorf("%w: expected prefix %q", ErrMalformedAddress, servicePrefix)
	}

	exportAuth, rest, ok := strings.Cut(rest, "/")
	if !ok {
		return ServiceAddress{}, fmt.Errorf("%w: missing registry path", ErrMalformedAddress)
	}
	export, err := parseLocator(exportAuth)
	if err != nil {
		return ServiceAddress{}, fmt.Errorf("export locator: %w", err)
	}

	lookupPrefix := RegistryPath + "/" + LookupScheme + "://"
	rest, ok = strings.CutPrefix(rest, lookupPrefix)
	if !ok {
		return ServiceAddress{}, fmt.Errorf("%w: expected %q after export locator", ErrMalformedAddress, lookupPrefix)
	}

	lookupAuth, name, ok := strings.Cut(rest, "/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return ServiceAddress{}, fmt.Errorf("%w: missing or invalid registry name", ErrMalformedAddress)
	}
	lookup, err := parseLocator(lookupAuth)
	if err != nil {
		return ServiceAddress{}, fmt.Errorf("lookup locator: %w", err)
	}

	return ServiceAddress{Export: export, Lookup: lookup, Name: name}, nil
}

func parseLocator(authority string) (Locator, error) {
	host, portStr, err := net.SplitHostPort(authority)
	if err != nil {
		return Locator{}, fmt.Errorf("%w: %v", ErrMalformedAddress, err)
	}
	if host == "" {
		return Locator{}, fmt.Errorf("%w: empty host in %q", ErrMalformedAddress, authority)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Locator{}, fmt.Errorf("%w: invalid port %q", ErrMalformedAddress, portStr)
	}
	return Locator{Host: host, Port: port}, nil
}
