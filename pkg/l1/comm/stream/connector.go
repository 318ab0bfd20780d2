package stream

import (
	"context"
	"io"
	"net"

	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/comm"
)

// Connector implements l1.Connector over a TCP address. The address
// identifies a single controller.
type Connector struct {
	Addr string
}

// Discover implements Connector.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return nil, err
	}
	conn.Close()
	return []l1.ControllerInfo{{Ref: l1.ControllerRef{Type: "tcp", ID: c.Addr}}}, nil
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return nil, err
	}
	return NewControllerConn(conn), nil
}

// NewControllerConn starts a ControllerConn over a stream.
func NewControllerConn(s io.ReadWriter) *comm.ControllerConn {
	conn := &comm.ControllerConn{}
	conn.Init(New(s))
	conn.Start()
	return conn
}
