package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"myrendezvous/adapters/mgmtclient"
	"myrendezvous/adapters/platform"
	"myrendezvous/domain"
	"myrendezvous/interfaces"
	"myrendezvous/interfaces/mock"
	"myrendezvous/service"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())
	return port
}

func activate(t *testing.T, r *Rendezvous, port int, randomIDs bool) *Agent {
	t.Helper()
	a, err := r.Activate(context.Background(), "", domain.AgentConfig{
		PortOverride:     strconv.Itoa(port),
		HostnameOverride: "127.0.0.1",
		RandomIDs:        randomIDs,
	}, platform.NewProvider(log.NewNopLogger()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a
}

func TestActivate_EndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	port := freePort(t)
	a := activate(t, New(log.NewNopLogger()), port, true)

	_, err := uuid.Parse(a.ExportID())
	require.NoError(t, err, "random export ids are UUIDs")

	binding, err := a.Registry().Lookup(ctx, domain.WellKnownName)
	require.NoError(t, err)
	assert.Equal(t, net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), binding.Address, "connector shares the registry port")

	client, err := mgmtclient.Connect(ctx, a.Address().String())
	require.NoError(t, err)
	defer client.Close()

	version, err := client.Attribute(ctx, "runtime.version")
	require.NoError(t, err)
	assert.NotEmpty(t, version.Value)

	result, err := client.Invoke(ctx, "runtime.num_goroutine", nil)
	require.NoError(t, err)
	assert.Greater(t, result.(float64), 0.0)

	_, err = client.Attribute(ctx, "nope")
	assert.True(t, service.IsEntityNotFound(err))

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	resp, err := http.Get(base + "/v1/address")
	require.NoError(t, err)
	var addr struct {
		ServiceURL string `json:"service_url"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&addr))
	_ = resp.Body.Close()
	assert.Equal(t, a.Address().String(), addr.ServiceURL, "REST view is served on the same port")

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Contains(t, string(body), "go_goroutines")

	require.NoError(t, a.Close(ctx))
	_, err = mgmtclient.Connect(ctx, a.Address().String())
	assert.Error(t, err, "nothing listens after close")
}

func TestActivate_SequentialIDs(t *testing.T) {
	a := activate(t, New(log.NewNopLogger()), freePort(t), false)
	assert.Equal(t, "1", a.ExportID())
}

func TestActivate_TwiceOnSamePort(t *testing.T) {
	port := freePort(t)
	r := New(log.NewNopLogger())
	first := activate(t, r, port, false)

	_, err := r.Activate(context.Background(), "", domain.AgentConfig{
		PortOverride:     strconv.Itoa(port),
		HostnameOverride: "127.0.0.1",
	}, platform.NewProvider(log.NewNopLogger()))
	require.Error(t, err)
	assert.True(t, service.IsBind(err))
	assert.Equal(t, Failed, r.Stage(), "the rendezvous reports its latest attempt")
	assert.Equal(t, ExportServiceListening, first.Stage(), "the first agent is still live")

	other := New(log.NewNopLogger())
	_, err = other.Activate(context.Background(), "", domain.AgentConfig{
		PortOverride:     strconv.Itoa(port),
		HostnameOverride: "127.0.0.1",
	}, platform.NewProvider(log.NewNopLogger()))
	assert.True(t, service.IsBind(err), "a second rendezvous in the same process can't reuse the port either")
}

func TestActivate_RegistryReleasedOnFailure(t *testing.T) {
	port := freePort(t)
	failing := &mock.ExportServiceFactoryMock{
		CreateFunc: func(domain.ServiceAddress, domain.Environment, interfaces.Provider) (interfaces.ExportService, error) {
			return &mock.ExportServiceMock{StartFunc: func(context.Context) error { return errors.New("refused") }}, nil
		},
	}
	r := New(log.NewNopLogger(), WithExportServiceFactory(failing))

	_, err := r.Activate(context.Background(), "", domain.AgentConfig{
		PortOverride:     strconv.Itoa(port),
		HostnameOverride: "127.0.0.1",
	}, platform.NewProvider(log.NewNopLogger()))
	require.True(t, service.IsBind(err))

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	require.NoError(t, err, "registry port is released after a failed activation")
	require.NoError(t, lis.Close())

	activate(t, New(log.NewNopLogger()), port, false)
}
