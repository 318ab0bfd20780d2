package hw

import (
	"testing"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi"

	"github.com/robotalks/tmc.go/pkg/l0/comm"
)

func TestPinLine(t *testing.T) {
	io := &gpiotest.Pin{N: "GPIO4", L: gpio.Low}
	p := &Pin{IO: io, Pull: gpio.PullUp}
	var line comm.Line = p

	require.NoError(t, line.Request("tmc", comm.Output))
	require.Equal(t, gpio.High, io.L)
	require.Equal(t, "GPIO4(tmc)", p.String())

	require.NoError(t, line.SetValue(false))
	require.Equal(t, gpio.Low, io.L)
	require.NoError(t, line.SetValue(true))
	require.Equal(t, gpio.High, io.L)

	require.NoError(t, line.SetDirection(comm.Input))
	require.Equal(t, gpio.PullUp, io.P)
	io.L = gpio.Low
	v, err := line.Value()
	require.NoError(t, err)
	require.False(t, v)
}

type echoConn struct{}

func (echoConn) String() string               { return "echo" }
func (echoConn) Duplex() conn.Duplex          { return conn.Full }
func (echoConn) TxPackets([]spi.Packet) error { return nil }
func (echoConn) Tx(w, r []byte) error         { copy(r, w); return nil }

func TestSPITransfer(t *testing.T) {
	s := &SPI{Conn: echoConn{}}
	r, err := s.Transfer([]byte{0xa9, 0x00, 0x00, 0x69})
	require.NoError(t, err)
	require.Equal(t, []byte{0xa9, 0x00, 0x00, 0x69}, r)
}
