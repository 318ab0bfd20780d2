package comm

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/msgs"
)

// ErrConnClosed fails commands pending when the connection is closed.
var ErrConnClosed = errors.New("connection closed")

// ControllerConn provides base implementation for l1.ControllerConn using Pipe.
type ControllerConn struct {
	Expiration time.Duration
	// EventHandler receives events from the controller.
	EventHandler fx.MessageHandler

	pipe     Pipe
	seq      uint32
	commands list.List
	seqMap   map[uint32]*commandFuture
	lock     sync.Mutex

	cancel func()
	done   chan struct{}
}

// DefaultCommandExpiration is the default expiration expecting a result.
const DefaultCommandExpiration = 1 * time.Second

// Init initializes ControllerConn with defaults.
func (c *ControllerConn) Init(rw PacketReadWriter) {
	c.Expiration = DefaultCommandExpiration
	c.pipe.ReadWriter = rw
	c.pipe.Handler = msgs.HandleTypedMsgFunc(c.handleTypedMsg)
	c.seqMap = make(map[uint32]*commandFuture)
}

// DoCommand implements ControllerConn.
func (c *ControllerConn) DoCommand(msg fx.Message) l1.CommandFuture {
	c.lock.Lock()
	c.seq++
	if c.seq == 0 {
		c.seq++
	}
	f := &commandFuture{
		seq:      c.seq,
		expireAt: time.Now().Add(c.Expiration),
		result:   make(chan l1.Result, 1),
	}
	f.elem = c.commands.PushBack(f)
	c.seqMap[f.seq] = f
	c.lock.Unlock()

	if err := c.pipe.SendCommandMsg(msg, f.seq); err != nil {
		c.complete(f.seq, l1.Result{Err: err})
	}
	return f
}

// complete delivers the result if the command is still pending.
func (c *ControllerConn) complete(seq uint32, result l1.Result) {
	c.lock.Lock()
	defer c.lock.Unlock()
	f := c.seqMap[seq]
	if f == nil {
		return
	}
	c.commands.Remove(f.elem)
	delete(c.seqMap, seq)
	f.result <- result
	close(f.result)
}

// Run runs the pipe and expires commands without results. Commands still
// pending when the pipe stops fail with ErrConnClosed.
func (c *ControllerConn) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.purgeLoop(ctx)
	err := c.pipe.Run(ctx)
	c.abort()
	return err
}

// Start runs the connection in background until Close.
func (c *ControllerConn) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel, c.done = cancel, make(chan struct{})
	go func() {
		defer close(c.done)
		c.Run(ctx)
	}()
}

// Close implements ControllerConn.
func (c *ControllerConn) Close() error {
	if c.cancel == nil {
		return c.pipe.Close()
	}
	c.cancel()
	<-c.done
	return nil
}

func (c *ControllerConn) handleTypedMsg(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
	if typed.IsEvent() {
		if h := c.EventHandler; h != nil {
			h.HandleMessage(ctx, msg)
		}
		return nil
	}
	result := l1.Result{Msg: msg}
	if cmdErr, ok := msg.(*msgs.CommandErr); ok {
		result.Err = cmdErr
	}
	c.complete(typed.Sequence, result)
	return nil
}

func (c *ControllerConn) purgeLoop(ctx context.Context) {
	interval := c.Expiration / 4
	if interval <= 0 {
		interval = DefaultCommandExpiration / 4
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.purgeExpired(now)
		}
	}
}

func (c *ControllerConn) purgeExpired(now time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for c.commands.Len() > 0 {
		elem := c.commands.Front()
		f := elem.Value.(*commandFuture)
		if f.expireAt.After(now) {
			break
		}
		c.commands.Remove(elem)
		delete(c.seqMap, f.seq)
		f.result <- l1.Result{Err: context.DeadlineExceeded}
		close(f.result)
	}
}

func (c *ControllerConn) abort() {
	c.lock.Lock()
	defer c.lock.Unlock()
	for elem := c.commands.Front(); elem != nil; elem = c.commands.Front() {
		f := elem.Value.(*commandFuture)
		c.commands.Remove(elem)
		delete(c.seqMap, f.seq)
		f.result <- l1.Result{Err: ErrConnClosed}
		close(f.result)
	}
}

type commandFuture struct {
	seq      uint32
	expireAt time.Time
	elem     *list.Element
	result   chan l1.Result
}

func (c *commandFuture) ResultChan() <-chan l1.Result {
	return c.result
}
