package l1

import (
	"context"

	fx "github.com/robotalks/tmc.go/pkg/framework"
)

// Registrar registers an L1 controller to a registry and
// delivers its events to the connected clients.
type Registrar interface {
	// SendEvent sends an event to clients.
	SendEvent(context.Context, fx.Message) error
}

// CommandHandler executes commands received by an L1 controller.
// A nil reply with nil error is replied as CommandOK.
type CommandHandler interface {
	HandleCommand(context.Context, fx.Message) (fx.Message, error)
}

// HandleCommandFunc is the func form of CommandHandler.
type HandleCommandFunc func(context.Context, fx.Message) (fx.Message, error)

// HandleCommand implements CommandHandler.
func (f HandleCommandFunc) HandleCommand(ctx context.Context, msg fx.Message) (fx.Message, error) {
	return f(ctx, msg)
}

// ControllerRef is a reference to an L1 controller.
type ControllerRef struct {
	// Type is controller type.
	Type string
	// ID is unique ID of the device.
	ID string
}

// Name retrieves the name from ref.
func (r ControllerRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates ControllerRef is valid.
func (r ControllerRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// ControllerMeta provides metadata for L1 controller.
type ControllerMeta struct {
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ControllerInfo provides information of an L1 controller.
type ControllerInfo struct {
	Ref  ControllerRef
	Meta ControllerMeta
}

// Connector is used by clients to connect to an L1 controller.
type Connector interface {
	// Discover enumerates registered controllers.
	Discover(context.Context) ([]ControllerInfo, error)
	// Connect connects to the specified controller.
	Connect(context.Context, ControllerRef) (ControllerConn, error)
}

// ControllerConn is the connection to a controller.
type ControllerConn interface {
	// DoCommand executes a command.
	DoCommand(fx.Message) CommandFuture
	// Close disconnects.
	Close() error
}

// Result represents result of a command.
type Result struct {
	Msg fx.Message
	Err error
}

// CommandFuture is the future of sent command.
type CommandFuture interface {
	ResultChan() <-chan Result
}

// Do executes a command and waits for the result.
func Do(ctx context.Context, conn ControllerConn, msg fx.Message) (fx.Message, error) {
	select {
	case result := <-conn.DoCommand(msg).ResultChan():
		return result.Msg, result.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
