package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceAddress_String(t *testing.T) {
	addr := NewServiceAddress("myhost", 9000)
	assert.Equal(t, "service:mgmt:grpc://myhost:9000/registry/grpc://myhost:9000/jmxrmi", addr.String())
	assert.Equal(t, 2, strings.Count(addr.String(), "myhost:9000"))
	assert.Equal(t, 1, strings.Count(addr.String(), WellKnownName))
	assert.True(t, addr.SinglePort())
}

func TestNewServiceAddress_IPv6(t *testing.T) {
	addr := NewServiceAddress("::1", DefaultPort)
	assert.Equal(t, "service:mgmt:grpc://[::1]:62277/registry/grpc://[::1]:62277/jmxrmi", addr.String())
}

func TestServiceAddress_LookupLocator(t *testing.T) {
	addr := NewServiceAddress("worker-1", DefaultPort)
	assert.Equal(t, "grpc://worker-1:62277/jmxrmi", addr.LookupLocator())
}

func TestParseServiceAddress_RoundTrip(t *testing.T) {
	cases := []struct {
		host string
		port int
	}{
		{"myhost", 9000},
		{"worker-1", DefaultPort},
		{"127.0.0.1", 1},
		{"::1", 65535},
		{"fe80::1%eth0", 4242},
		{"mgmt.example.internal", 62277},
	}
	for _, tc := range cases {
		t.Run(tc.host, func(t *testing.T) {
			addr := NewServiceAddress(tc.host, tc.port)
			parsed, err := ParseServiceAddress(addr.String())
			require.NoError(t, err)
			assert.Equal(t, addr, parsed)
			assert.Equal(t, tc.host, parsed.Export.Host)
			assert.Equal(t, tc.port, parsed.Export.Port)
		})
	}
}

func TestParseServiceAddress_SplitEndpoints(t *testing.T) {
	parsed, err := ParseServiceAddress("service:mgmt:grpc://a:1000/registry/grpc://b:2000/other")
	require.NoError(t, err)
	assert.Equal(t, Locator{Host: "a", Port: 1000}, parsed.Export)
	assert.Equal(t, Locator{Host: "b", Port: 2000}, parsed.Lookup)
	assert.Equal(t, "other", parsed.Name)
	assert.False(t, parsed.SinglePort())
}

func TestParseServiceAddress_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"service:jmx:rmi://h:1/jndi/rmi://h:1/jmxrmi",
		"service:mgmt:grpc://h:1",
		"service:mgmt:grpc://h:1/jndi/grpc://h:1/jmxrmi",
		"service:mgmt:grpc://h:1/registry/grpc://h:1/",
		"service:mgmt:grpc://h:1/registry/grpc://h:1/a/b",
		"service:mgmt:grpc://h/registry/grpc://h:1/jmxrmi",
		"service:mgmt:grpc://:1/registry/grpc://h:1/jmxrmi",
		"service:mgmt:grpc://h:0/registry/grpc://h:1/jmxrmi",
		"service:mgmt:grpc://h:1/registry/grpc://h:70000/jmxrmi",
		"service:mgmt:grpc://h:x/registry/grpc://h:1/jmxrmi",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseServiceAddress(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedAddress))
		})
	}
}
