package service

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l0/comm"
	"github.com/robotalks/tmc.go/pkg/l0/driver"
	"github.com/robotalks/tmc.go/pkg/l0/regs"
	"github.com/robotalks/tmc.go/pkg/l0/sim"
	"github.com/robotalks/tmc.go/pkg/l1"
	l1comm "github.com/robotalks/tmc.go/pkg/l1/comm"
	"github.com/robotalks/tmc.go/pkg/l1/comm/stream"
	"github.com/robotalks/tmc.go/pkg/l1/msgs"
)

type testEnv struct {
	link   *sim.Link
	server *l1comm.Server
	conn   *l1comm.ControllerConn
	events chan *msgs.RegisterChanged
	done   chan error
	cancel func()
}

func newTestEnv(t *testing.T, nodes ...uint8) *testEnv {
	link := sim.New(nodes...)
	devs := driver.NewDevices(comm.NewBus(link), nodes...)
	svc := New(devs)
	env := &testEnv{
		link:   link,
		server: &l1comm.Server{Handler: svc},
		events: make(chan *msgs.RegisterChanged, 16),
		done:   make(chan error, 1),
	}
	svc.Events = env.server

	serverSide, clientSide := net.Pipe()
	ctx, cancel := context.WithCancel(context.Background())
	env.cancel = cancel
	go func() {
		env.done <- env.server.Serve(ctx, stream.New(serverSide))
	}()
	env.conn = &l1comm.ControllerConn{}
	env.conn.Init(stream.New(clientSide))
	env.conn.EventHandler = fx.HandleMessageFunc(func(_ context.Context, msg fx.Message) {
		if ev, ok := msg.(*msgs.RegisterChanged); ok {
			select {
			case env.events <- ev:
			default:
			}
		}
	})
	env.conn.Start()
	t.Cleanup(env.close)
	return env
}

func (e *testEnv) close() {
	e.conn.Close()
	e.cancel()
	<-e.done
}

func (e *testEnv) do(t *testing.T, msg fx.Message) (fx.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return l1.Do(ctx, e.conn, msg)
}

func TestServiceNodes(t *testing.T) {
	env := newTestEnv(t, 2, 0, 1)
	reply, err := env.do(t, &msgs.NodesQuery{})
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 1, 2}, reply.(*msgs.Nodes).GetNodes())
	require.Equal(t, 1, env.server.Sessions())
}

func TestServiceReadWrite(t *testing.T) {
	env := newTestEnv(t, 0, 1)
	write := &msgs.RegisterWrite{}
	write.Node, write.Name, write.Value = 1, "x_target", 0x12345678
	reply, err := env.do(t, write)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), reply.(*msgs.RegisterValue).Value)

	select {
	case ev := <-env.events:
		require.Equal(t, uint32(1), ev.Node)
		require.Equal(t, "x_target", ev.Name)
		require.Equal(t, uint32(0x12345678), ev.Value)
	case <-time.After(time.Second):
		t.Fatal("no event")
	}

	read := &msgs.RegisterRead{}
	read.Node, read.Name = 1, "x_target"
	reply, err = env.do(t, read)
	require.NoError(t, err)
	value := reply.(*msgs.RegisterValue)
	require.Equal(t, "x_target", value.Name)
	require.Equal(t, uint32(0x12345678), value.Value)

	v, err := env.link.Chip(1).Value("x_target")
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), v)
}

func TestServiceVerifiedWrite(t *testing.T) {
	env := newTestEnv(t, 0)
	write := &msgs.RegisterWrite{}
	write.Name, write.Value, write.Verify = "v_max", 0x1000, true
	_, err := env.do(t, write)
	require.NoError(t, err)

	env.link.DropWrites(true)
	_, err = env.do(t, write)
	require.True(t, errors.Is(err, comm.ErrTimeout))
	var cmdErr *msgs.CommandErr
	require.True(t, errors.As(err, &cmdErr))
	require.Equal(t, msgs.CodeTimeout, cmdErr.Code)
}

func TestServiceErrors(t *testing.T) {
	env := newTestEnv(t, 0)

	read := &msgs.RegisterRead{}
	read.Node, read.Name = 0, "bogus"
	_, err := env.do(t, read)
	require.True(t, errors.Is(err, regs.ErrUnknownRegister))

	read.Node, read.Name = 300, "gconf"
	_, err = env.do(t, read)
	require.True(t, errors.Is(err, driver.ErrUnknownNode))

	write := &msgs.RegisterWrite{}
	write.Name, write.Value = "ifcnt", 1
	_, err = env.do(t, write)
	require.True(t, errors.Is(err, regs.ErrAccessDenied))

	write.Name, write.Value = "gconf", 0xFFFFFFFF
	_, err = env.do(t, write)
	require.True(t, errors.Is(err, regs.ErrValueOutOfRange))

	env.link.CorruptNextReply()
	read.Node, read.Name = 0, "gconf"
	_, err = env.do(t, read)
	require.True(t, errors.Is(err, comm.ErrChecksumMismatch))

	_, err = env.do(t, &msgs.RegisterValue{})
	require.True(t, errors.Is(err, msgs.ErrUnsupportedCommand))
}

func TestServiceList(t *testing.T) {
	env := newTestEnv(t, 0)
	write := &msgs.RegisterWrite{}
	write.Name, write.Value = "gconf", 4
	_, err := env.do(t, write)
	require.NoError(t, err)

	query := &msgs.RegisterListQuery{}
	reply, err := env.do(t, query)
	require.NoError(t, err)
	list := reply.(*msgs.RegisterList)
	require.Len(t, list.Entries, len(regs.Table()))
	gconf := list.Entries[0]
	require.Equal(t, "gconf", gconf.Name)
	require.Equal(t, "RW", gconf.Access)
	require.Equal(t, uint32(0x001FF196), gconf.Mask)
	require.Equal(t, uint32(4), gconf.Value)
	require.True(t, gconf.Touched)
	require.False(t, list.Entries[1].Touched)
}

func TestServiceConcurrentClients(t *testing.T) {
	env := newTestEnv(t, 0, 1, 2)
	var wg sync.WaitGroup
	for node := uint32(0); node < 3; node++ {
		wg.Add(1)
		go func(node uint32) {
			defer wg.Done()
			for n := uint32(1); n <= 5; n++ {
				write := &msgs.RegisterWrite{}
				write.Node, write.Name, write.Value, write.Verify = node, "x_target", n*node, true
				_, err := env.do(t, write)
				require.NoError(t, err)
			}
		}(node)
	}
	wg.Wait()
	for node := uint8(0); node < 3; node++ {
		v, err := env.link.Chip(node).Value("x_target")
		require.NoError(t, err)
		require.Equal(t, uint32(5)*uint32(node), v)
	}
}

func TestConnClosedFailsPending(t *testing.T) {
	serverSide, clientSide := net.Pipe()
	defer serverSide.Close()
	conn := stream.NewControllerConn(clientSide)
	go func() {
		// swallow the request without replying
		buf := make([]byte, 64)
		serverSide.Read(buf)
		serverSide.Close()
	}()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := l1.Do(ctx, conn, &msgs.NodesQuery{})
	require.True(t, errors.Is(err, l1comm.ErrConnClosed) || errors.Is(err, context.DeadlineExceeded), "%v", err)
	require.NoError(t, conn.Close())
}
