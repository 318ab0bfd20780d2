package comm

import (
	"context"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/msgs"
)

// Registrar implements l1.Registrar with Pipe and dispatches received
// commands to a CommandHandler.
type Registrar struct {
	Handler l1.CommandHandler

	pipe Pipe
}

// NewRegistrar creates a Registrar.
func NewRegistrar(rw PacketReadWriter, handler l1.CommandHandler) *Registrar {
	r := &Registrar{}
	r.Init(rw, handler)
	return r
}

// Init initializes the Registrar with defaults.
func (r *Registrar) Init(rw PacketReadWriter, handler l1.CommandHandler) {
	r.Handler = handler
	r.pipe.ReadWriter = rw
	r.pipe.Handler = msgs.HandleTypedMsgFunc(r.handleTypedMsg)
}

func (r *Registrar) handleTypedMsg(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
	if !typed.IsCommand() {
		glog.V(2).Infof("ignore event %x", typed.TypeId)
		return nil
	}
	var reply fx.Message
	err := msgs.ErrUnsupportedCommand
	if h := r.Handler; h != nil {
		reply, err = h.HandleCommand(ctx, msg)
	}
	switch {
	case err != nil:
		reply = msgs.NewCommandErr(err)
	case reply == nil:
		reply = msgs.NewCommandOK()
	}
	return r.pipe.SendCommandMsg(reply, typed.Sequence)
}

// SendEvent implements Registrar.
func (r *Registrar) SendEvent(ctx context.Context, msg fx.Message) error {
	return r.pipe.SendEventMsg(msg)
}

// Run implements Runnable.
func (r *Registrar) Run(ctx context.Context) error {
	return r.pipe.Run(ctx)
}

// Close closes the underlying ReadWriter.
func (r *Registrar) Close() error {
	return r.pipe.Close()
}

// RegistrarMux registers L1 controller with multiple Registrars.
type RegistrarMux struct {
	Registrars []l1.Registrar
}

// SendEvent implements Registrar.
func (r *RegistrarMux) SendEvent(ctx context.Context, msg fx.Message) error {
	var errs fx.AggregatedError
	for _, reg := range r.Registrars {
		errs.Add(reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// Run runs all Registrars which are Runnable.
func (r *RegistrarMux) Run(ctx context.Context) error {
	runner := fx.NewRunnerWith(ctx)
	for _, reg := range r.Registrars {
		if runnable, ok := reg.(fx.Runnable); ok {
			runner.Go(runnable)
		}
	}
	return runner.Wait()
}

// Add adds more registrars.
func (r *RegistrarMux) Add(regs ...l1.Registrar) {
	r.Registrars = append(r.Registrars, regs...)
}

// Server serves a CommandHandler to every connection of a connection
// oriented transport, each with its own Registrar.
type Server struct {
	Handler l1.CommandHandler

	lock     sync.Mutex
	sessions map[*Registrar]struct{}
}

// Serve runs a Registrar on the connection until it's closed.
func (s *Server) Serve(ctx context.Context, rw PacketReadWriter) error {
	reg := NewRegistrar(rw, s.Handler)
	s.lock.Lock()
	if s.sessions == nil {
		s.sessions = make(map[*Registrar]struct{})
	}
	s.sessions[reg] = struct{}{}
	s.lock.Unlock()
	defer func() {
		s.lock.Lock()
		delete(s.sessions, reg)
		s.lock.Unlock()
	}()
	return reg.Run(ctx)
}

// SendEvent implements Registrar by broadcasting to all connections.
func (s *Server) SendEvent(ctx context.Context, msg fx.Message) error {
	s.lock.Lock()
	sessions := make([]*Registrar, 0, len(s.sessions))
	for reg := range s.sessions {
		sessions = append(sessions, reg)
	}
	s.lock.Unlock()
	var errs fx.AggregatedError
	for _, reg := range sessions {
		errs.Add(reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// Sessions returns the number of connections.
func (s *Server) Sessions() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.sessions)
}
