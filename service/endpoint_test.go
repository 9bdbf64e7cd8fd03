package service

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// freePort returns a port that was free a moment ago.
func freePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())
	return port
}

func dial(t *testing.T, port int) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient(fmt.Sprintf("127.0.0.1:%d", port), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// echoHandler answers one request by sending back prefix+value.
func echoHandler(prefix string) grpc.StreamHandler {
	return func(_ any, stream grpc.ServerStream) error {
		in := &wrapperspb.StringValue{}
		if err := stream.RecvMsg(in); err != nil {
			return err
		}
		if in.GetValue() == "fail" {
			return NewEntityNotFoundError("no such object", nil)
		}
		return stream.SendMsg(wrapperspb.String(prefix + in.GetValue()))
	}
}

func say(ctx context.Context, conn *grpc.ClientConn, method, value string) (string, error) {
	out := &wrapperspb.StringValue{}
	err := conn.Invoke(ctx, method, wrapperspb.String(value), out)
	return out.GetValue(), err
}

func TestSharedEndpoint_GRPCAndHTTPOnOnePort(t *testing.T) {
	ep, err := Listen(0, log.NewNopLogger())
	require.NoError(t, err)
	defer ep.Close()

	require.NoError(t, ep.Mount("test.Echo", echoHandler("echo:")))
	ep.SetHTTPHandler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "plain http")
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn := dial(t, ep.Port())

	got, err := say(ctx, conn, "/test.Echo/Say", "hi")
	require.NoError(t, err)
	assert.Equal(t, "echo:hi", got)

	health, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: "test.Echo"})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, health.GetStatus())

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/anything", ep.Port()))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "plain http", string(body))
}

func TestSharedEndpoint_Dispatch(t *testing.T) {
	ep, err := Listen(0, log.NewNopLogger())
	require.NoError(t, err)
	defer ep.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn := dial(t, ep.Port())

	_, err = say(ctx, conn, "/test.Echo/Say", "hi")
	assert.Equal(t, codes.Unimplemented, status.Code(err), "nothing mounted yet")

	require.NoError(t, ep.Mount("test.Echo", echoHandler("")))
	err = ep.Mount("test.Echo", echoHandler(""))
	assert.True(t, IsBind(err))

	_, err = say(ctx, conn, "/test.Echo/Say", "fail")
	assert.Equal(t, codes.NotFound, status.Code(err), "coded errors are mapped by the interceptor")

	ep.Unmount("test.Echo")
	ep.Unmount("test.Echo")
	_, err = say(ctx, conn, "/test.Echo/Say", "hi")
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	assert.True(t, IsBadParameter(ep.Mount("", echoHandler(""))))
}

func TestSharedEndpoint_NoHTTPHandler(t *testing.T) {
	ep, err := Listen(0, log.NewNopLogger())
	require.NoError(t, err)
	defer ep.Close()

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/v1/address", ep.Port()))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListen_PortTaken(t *testing.T) {
	ep, err := Listen(0, log.NewNopLogger())
	require.NoError(t, err)

	_, err = Listen(ep.Port(), log.NewNopLogger())
	require.Error(t, err)
	assert.True(t, IsBind(err))

	require.NoError(t, ep.Close())
	require.NoError(t, ep.Close())
}

func TestSplitMethod(t *testing.T) {
	tests := []struct {
		in      string
		service string
		method  string
		ok      bool
	}{
		{"/myrendezvous.v1.Registry/Lookup", "myrendezvous.v1.Registry", "Lookup", true},
		{"/svc/", "", "", false},
		{"/svc", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, m, ok := splitMethod(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.service, s)
			assert.Equal(t, tt.method, m)
		})
	}
}
