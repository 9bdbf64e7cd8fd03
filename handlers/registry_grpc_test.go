package handlers

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"myrendezvous/domain"
	"myrendezvous/helpers"
	"myrendezvous/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// serve mounts handler as serviceName on a fresh endpoint and returns a client connection to it.
func serve(t *testing.T, serviceName string, handler grpc.StreamHandler) *grpc.ClientConn {
	t.Helper()
	ep, err := service.Listen(0, log.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = ep.Close() })
	require.NoError(t, ep.Mount(serviceName, handler))

	conn, err := grpc.NewClient(net.JoinHostPort("127.0.0.1", strconv.Itoa(ep.Port())), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestRegistryHandler_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	table := service.NewNameTable()
	conn := serve(t, domain.RegistryService, NewRegistryHandler(table, log.NewNopLogger()))
	method := func(name string) string { return domain.FullMethod(domain.RegistryService, name) }

	b := domain.Binding{Name: domain.WellKnownName, Address: "myhost:9000", ExportID: "7", BoundAt: helpers.TestNow()}
	require.NoError(t, conn.Invoke(ctx, method(RegistryBind), ToBindingStruct(b), &emptypb.Empty{}))

	err := conn.Invoke(ctx, method(RegistryBind), ToBindingStruct(b), &emptypb.Empty{})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	got := &structpb.Struct{}
	require.NoError(t, conn.Invoke(ctx, method(RegistryLookup), wrapperspb.String(domain.WellKnownName), got))
	binding, err := FromBindingStruct(got)
	require.NoError(t, err)
	assert.Equal(t, b, binding)

	b.Address = "myhost:9001"
	require.NoError(t, conn.Invoke(ctx, method(RegistryRebind), ToBindingStruct(b), &emptypb.Empty{}))

	list := &structpb.ListValue{}
	require.NoError(t, conn.Invoke(ctx, method(RegistryList), &emptypb.Empty{}, list))
	bindings, err := FromBindingList(list)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "myhost:9001", bindings[0].Address)

	require.NoError(t, conn.Invoke(ctx, method(RegistryUnbind), wrapperspb.String(domain.WellKnownName), &emptypb.Empty{}))
	err = conn.Invoke(ctx, method(RegistryLookup), wrapperspb.String(domain.WellKnownName), &structpb.Struct{})
	assert.Equal(t, codes.NotFound, status.Code(err))

	err = conn.Invoke(ctx, method(RegistryLookup), wrapperspb.String(""), &structpb.Struct{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	err = conn.Invoke(ctx, method("Nope"), &emptypb.Empty{}, &emptypb.Empty{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestRequireLoopback(t *testing.T) {
	remote := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("10.1.2.3"), Port: 5000}})
	local := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 5000}})

	assert.True(t, service.IsAccessDenied(requireLoopback(remote)))
	assert.True(t, service.IsAccessDenied(requireLoopback(context.Background())))
	assert.NoError(t, requireLoopback(local))

	s := newRegistryServer(service.NewNameTable(), log.NewNopLogger())
	_, err := s.Bind(remote, ToBindingStruct(domain.Binding{Name: "x", Address: "h:1"}))
	assert.True(t, service.IsAccessDenied(err))
	_, err = s.Unbind(remote, wrapperspb.String("x"))
	assert.True(t, service.IsAccessDenied(err))
}

func TestIsLoopback(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"127.0.0.1:5000", true},
		{"[::1]:5000", true},
		{"[::ffff:127.0.0.1]:5000", true},
		{"10.0.0.1:5000", false},
		{"192.168.1.1", false},
		{"::1", true},
		{"not-an-ip:80", false},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, isLoopback(tt.addr))
		})
	}
}
