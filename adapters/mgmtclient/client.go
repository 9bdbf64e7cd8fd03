// Package mgmtclient is the monitoring side of the rendezvous: it takes a service URL,
// asks the registry in it where the connector lives and then talks to the connector.
package mgmtclient

import (
	"context"

	"myrendezvous/adapters/registryclient"
	"myrendezvous/domain"
	"myrendezvous/handlers"
	"myrendezvous/interfaces"
	"myrendezvous/service"

	"go.uber.org/multierr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is a connection to one exported connector. It is a remote interfaces.Provider.
type Client struct {
	address domain.ServiceAddress
	binding domain.Binding
	conn    *grpc.ClientConn
}

var _ interfaces.Provider = (*Client)(nil)

// Connect parses serviceURL, looks up its name in the registry at the lookup locator,
// connects to the bound address and checks the export answers.
//
// Returns: bad_parameter for a malformed URL; entity_not_found when the name isn't bound or the
// export is gone; the registry or connector error otherwise.
func Connect(ctx context.Context, serviceURL string, opts ...grpc.DialOption) (*Client, error) {
	address, err := domain.ParseServiceAddress(serviceURL)
	if err != nil {
		return nil, service.NewBadParameterError("invalid service url", err)
	}

	registry, err := registryclient.Dial(address.Lookup, opts...)
	if err != nil {
		return nil, err
	}
	binding, err := registry.Lookup(ctx, address.Name)
	err = multierr.Append(err, registry.Close())
	if err != nil {
		return nil, err
	}

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(binding.Address, opts...)
	if err != nil {
		return nil, service.NewBadParameterError("can't create connector client for "+binding.Address, err)
	}
	c := &Client{address: address, binding: binding, conn: conn}
	if _, err := c.Operations(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

// Address is the parsed service URL.
func (c *Client) Address() domain.ServiceAddress { return c.address }

// Binding is the registry entry the client connected through.
func (c *Client) Binding() domain.Binding { return c.binding }

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	ctx = metadata.AppendToOutgoingContext(ctx, domain.ExportIDHeader, c.binding.ExportID)
	if err := c.conn.Invoke(ctx, domain.FullMethod(domain.ConnectorService, method), in, out); err != nil {
		return service.GRPCToAgentError(err)
	}
	return nil
}

func (c *Client) Attributes(ctx context.Context) ([]domain.Attribute, error) {
	out := &structpb.ListValue{}
	if err := c.invoke(ctx, handlers.ConnectorListAttributes, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return handlers.FromAttributeList(out), nil
}

func (c *Client) Attribute(ctx context.Context, name string) (domain.Attribute, error) {
	out := &structpb.Struct{}
	if err := c.invoke(ctx, handlers.ConnectorGetAttribute, wrapperspb.String(name), out); err != nil {
		return domain.Attribute{}, err
	}
	return handlers.FromAttributeStruct(out), nil
}

func (c *Client) SetAttribute(ctx context.Context, name string, value any) error {
	req, err := handlers.ToSetAttributeRequest(name, value)
	if err != nil {
		return err
	}
	return c.invoke(ctx, handlers.ConnectorSetAttribute, req, &emptypb.Empty{})
}

func (c *Client) Operations(ctx context.Context) ([]domain.Operation, error) {
	out := &structpb.ListValue{}
	if err := c.invoke(ctx, handlers.ConnectorListOperations, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return handlers.FromOperationList(out), nil
}

// Invoke runs a remote operation. Numbers in the result come back as float64.
func (c *Client) Invoke(ctx context.Context, name string, args []any) (any, error) {
	req, err := handlers.ToInvokeRequest(name, args)
	if err != nil {
		return nil, err
	}
	out := &structpb.Value{}
	if err := c.invoke(ctx, handlers.ConnectorInvoke, req, out); err != nil {
		return nil, err
	}
	return out.AsInterface(), nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
