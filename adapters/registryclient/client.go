// Package registryclient talks to a registry service on another port or host.
package registryclient

import (
	"context"
	"fmt"

	"myrendezvous/domain"
	"myrendezvous/handlers"
	"myrendezvous/interfaces"
	"myrendezvous/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is a remote interfaces.Registry. Close releases the connection.
type Client struct {
	conn *grpc.ClientConn
}

var _ interfaces.Registry = (*Client)(nil)

// Dial creates a client for the registry at loc. The connection is established lazily,
// so an unreachable registry surfaces on the first call.
func Dial(loc domain.Locator, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(loc.String(), opts...)
	if err != nil {
		return nil, service.NewBadParameterError("can't create registry client for "+loc.String(), err)
	}
	return &Client{conn: conn}, nil
}

// Locator is an interfaces.RegistryLocator that always dials.
type Locator struct {
	Options []grpc.DialOption
}

func (l Locator) Locate(_ context.Context, loc domain.Locator) (interfaces.Registry, error) {
	return Dial(loc, l.Options...)
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	if err := c.conn.Invoke(ctx, domain.FullMethod(domain.RegistryService, method), in, out); err != nil {
		return service.GRPCToAgentError(err)
	}
	return nil
}

func (c *Client) Bind(ctx context.Context, binding domain.Binding) error {
	return c.invoke(ctx, handlers.RegistryBind, handlers.ToBindingStruct(binding), &emptypb.Empty{})
}

func (c *Client) Rebind(ctx context.Context, binding domain.Binding) error {
	return c.invoke(ctx, handlers.RegistryRebind, handlers.ToBindingStruct(binding), &emptypb.Empty{})
}

func (c *Client) Unbind(ctx context.Context, name string) error {
	return c.invoke(ctx, handlers.RegistryUnbind, wrapperspb.String(name), &emptypb.Empty{})
}

func (c *Client) Lookup(ctx context.Context, name string) (domain.Binding, error) {
	out := &structpb.Struct{}
	if err := c.invoke(ctx, handlers.RegistryLookup, wrapperspb.String(name), out); err != nil {
		return domain.Binding{}, err
	}
	b, err := handlers.FromBindingStruct(out)
	if err != nil {
		return domain.Binding{}, fmt.Errorf("malformed lookup response: %w", err)
	}
	return b, nil
}

func (c *Client) List(ctx context.Context) ([]domain.Binding, error) {
	out := &structpb.ListValue{}
	if err := c.invoke(ctx, handlers.RegistryList, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return handlers.FromBindingList(out)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
