package registryclient

import (
	"context"
	"testing"
	"time"

	"myrendezvous/domain"
	"myrendezvous/handlers"
	"myrendezvous/helpers"
	"myrendezvous/interfaces"
	"myrendezvous/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func startRegistry(t *testing.T) (interfaces.RegistryHandle, domain.Locator) {
	t.Helper()
	binder := service.NewRegistryServiceBinder(func(r interfaces.Registry) grpc.StreamHandler {
		return handlers.NewRegistryHandler(r, log.NewNopLogger())
	}, log.NewNopLogger())
	handle, err := binder.Bind(context.Background(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = handle.Close() })
	return handle, domain.Locator{Host: "127.0.0.1", Port: handle.Port()}
}

func TestClient_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	handle, loc := startRegistry(t)

	registry, err := Locator{}.Locate(ctx, loc)
	require.NoError(t, err)
	client := registry.(*Client)
	defer client.Close()

	b := domain.Binding{Name: domain.WellKnownName, Address: "myhost:9000", ExportID: "1", BoundAt: helpers.TestNow()}
	require.NoError(t, client.Bind(ctx, b))
	assert.True(t, service.IsBind(client.Bind(ctx, b)))

	local, err := handle.Registry().Lookup(ctx, domain.WellKnownName)
	require.NoError(t, err)
	assert.Equal(t, b, local, "remote bind lands in the served table")

	got, err := client.Lookup(ctx, domain.WellKnownName)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	b.ExportID = "2"
	require.NoError(t, client.Rebind(ctx, b))
	list, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2", list[0].ExportID)

	require.NoError(t, client.Unbind(ctx, domain.WellKnownName))
	_, err = client.Lookup(ctx, domain.WellKnownName)
	assert.True(t, service.IsEntityNotFound(err))
	assert.True(t, service.IsEntityNotFound(client.Unbind(ctx, domain.WellKnownName)))
}

func TestClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	handle, loc := startRegistry(t)
	require.NoError(t, handle.Close())

	client, err := Dial(loc)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Lookup(ctx, domain.WellKnownName)
	require.Error(t, err)
	assert.NotEmpty(t, service.ErrorCode(err))
}
