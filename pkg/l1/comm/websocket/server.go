package websocket

import (
	"context"
	"net"
	"net/http"
	"net/url"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/comm"
)

// Handler serves websocket connections with a Server.
func Handler(ctx context.Context, server *comm.Server) http.Handler {
	return websocket.Handler(func(ws *websocket.Conn) {
		ws.PayloadType = websocket.BinaryFrame
		if err := server.Serve(ctx, New(ws)); err != nil {
			glog.Warningf("websocket %s: %v", ws.Request().RemoteAddr, err)
		}
	})
}

// Listener serves websocket connections on an HTTP address.
type Listener struct {
	Addr   string
	Path   string
	Server *comm.Server
}

// DefaultPath is the HTTP path of the websocket endpoint.
const DefaultPath = "/l1"

// SendEvent implements l1.Registrar.
func (l *Listener) SendEvent(ctx context.Context, msg fx.Message) error {
	return l.Server.SendEvent(ctx, msg)
}

// Run implements Runnable.
func (l *Listener) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", l.Addr)
	if err != nil {
		return err
	}
	path := l.Path
	if path == "" {
		path = DefaultPath
	}
	mux := http.NewServeMux()
	mux.Handle(path, Handler(ctx, l.Server))
	srv := &http.Server{Handler: mux}
	err = fx.RunWithContextCloser(ctx, srv, func() error {
		return srv.Serve(ln)
	})
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Connector implements l1.Connector for a websocket URL.
type Connector struct {
	URL string
}

// Discover implements Connector.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return nil, err
	}
	return []l1.ControllerInfo{{Ref: l1.ControllerRef{Type: "ws", ID: u.Host}}}, nil
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return nil, err
	}
	if u.Path == "" {
		u.Path = DefaultPath
	}
	origin := "http://" + u.Host + "/"
	cfg, err := websocket.NewConfig(u.String(), origin)
	if err != nil {
		return nil, err
	}
	ws, err := websocket.DialConfig(cfg)
	if err != nil {
		return nil, err
	}
	ws.PayloadType = websocket.BinaryFrame
	conn := &comm.ControllerConn{}
	conn.Init(New(ws))
	conn.Start()
	return conn, nil
}
