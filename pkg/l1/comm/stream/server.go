package stream

import (
	"context"
	"net"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l1/comm"
)

// Listener accepts stream connections and serves them with a Server.
type Listener struct {
	Listener net.Listener
	Server   *comm.Server
}

// Listen listens on a TCP address.
func Listen(addr string, server *comm.Server) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Listener{Listener: ln, Server: server}, nil
}

// SendEvent implements l1.Registrar.
func (l *Listener) SendEvent(ctx context.Context, msg fx.Message) error {
	return l.Server.SendEvent(ctx, msg)
}

// Run implements Runnable.
func (l *Listener) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	defer wg.Wait()
	return fx.RunWithContextCloser(ctx, l.Listener, func() error {
		for {
			conn, err := l.Listener.Accept()
			if err != nil {
				return err
			}
			glog.V(2).Infof("accepted %s", conn.RemoteAddr())
			wg.Add(1)
			go func(conn net.Conn) {
				defer wg.Done()
				if err := l.Server.Serve(ctx, New(conn)); err != nil {
					glog.Warningf("%s: %v", conn.RemoteAddr(), err)
				}
				glog.V(2).Infof("closed %s", conn.RemoteAddr())
			}(conn)
		}
	})
}
