package comm

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) SleepUntil(t time.Time) {
	if t.After(c.now) {
		c.now = t
	}
}

type lineEvent struct {
	at    time.Duration
	op    string
	dir   Direction
	value bool
}

type recordingLine struct {
	clk    *fakeClock
	start  time.Time
	events []lineEvent
	dir    Direction
	level  bool

	rx       []bool
	rxPos    int
	stallAt  int
	stallFor time.Duration
	failSet  int
	failGet  int
	failDir  int
}

func newRecordingLine(clk *fakeClock) *recordingLine {
	return &recordingLine{clk: clk, start: clk.now, level: true, stallAt: -1, failSet: -1, failGet: -1}
}

func (l *recordingLine) record(op string, value bool) {
	l.events = append(l.events, lineEvent{at: l.clk.now.Sub(l.start), op: op, dir: l.dir, value: value})
}

func (l *recordingLine) Request(consumer string, dir Direction) error {
	l.dir = dir
	return nil
}

func (l *recordingLine) SetDirection(dir Direction) error {
	if l.failDir > 0 {
		l.failDir--
		return errors.New("direction failed")
	}
	l.dir = dir
	l.record("dir", dir == Input)
	return nil
}

func (l *recordingLine) SetValue(v bool) error {
	if l.failSet >= 0 && l.countOps("set") == l.failSet {
		l.failSet = -1
		return errors.New("set failed")
	}
	l.level = v
	l.record("set", v)
	return nil
}

func (l *recordingLine) Value() (bool, error) {
	if l.failGet >= 0 && l.rxPos == l.failGet {
		return false, errors.New("get failed")
	}
	if l.rxPos == l.stallAt {
		l.clk.now = l.clk.now.Add(l.stallFor)
	}
	v := true
	if l.rxPos < len(l.rx) {
		v = l.rx[l.rxPos]
	}
	l.rxPos++
	l.record("get", v)
	return v, nil
}

func (l *recordingLine) countOps(op string) int {
	n := 0
	for _, ev := range l.events {
		if ev.op == op {
			n++
		}
	}
	return n
}

func (l *recordingLine) ops(op string) (evs []lineEvent) {
	for _, ev := range l.events {
		if ev.op == op {
			evs = append(evs, ev)
		}
	}
	return
}

func frameBits(f Frame) []bool {
	bits := make([]bool, f.Len)
	for n := range bits {
		bits[n] = f.Bit(n)
	}
	return bits
}

func newTestBitBang(line Line, clk Clock) *BitBang {
	b := NewBitBang(line)
	b.Clock = clk
	b.Baud = 1 * physic.KiloHertz
	return b
}

func TestBitBangTransmitTiming(t *testing.T) {
	for _, f := range []Frame{EncodeRead(0, 0), EncodeWrite(1, 0x2d, 0x12345678)} {
		clk := newFakeClock()
		line := newRecordingLine(clk)
		b := newTestBitBang(line, clk)
		require.Equal(t, time.Millisecond, b.Interval())
		require.NoError(t, b.Transmit(f))

		require.Equal(t, "dir", line.events[0].op)
		require.Equal(t, Output, line.events[0].dir)
		sets := line.ops("set")
		require.Len(t, sets, f.Len+1)
		for n, bit := range frameBits(f) {
			require.Equalf(t, bit, sets[n].value, "bit %d", n)
			require.Equalf(t, time.Duration(n)*time.Millisecond, sets[n].at, "bit %d", n)
		}
		idle := sets[f.Len]
		require.True(t, idle.value)
		require.Equal(t, time.Duration(f.Len)*time.Millisecond, idle.at)
		// L bits plus one idle bit.
		require.Equal(t, time.Duration(f.Len+1)*time.Millisecond, clk.now.Sub(line.start))
	}
}

func TestBitBangReceive(t *testing.T) {
	reply := EncodeReply(0, 0x02, 0x2a)
	clk := newFakeClock()
	line := newRecordingLine(clk)
	line.rx = frameBits(reply)
	b := newTestBitBang(line, clk)

	bits, err := b.Receive(ReplyFrameBits)
	require.NoError(t, err)
	require.Equal(t, reply.Bits, bits)

	require.Equal(t, "dir", line.events[0].op)
	require.Equal(t, Input, line.events[0].dir)
	gets := line.ops("get")
	require.Len(t, gets, ReplyFrameBits)
	for n, ev := range gets {
		require.Equal(t, time.Duration(DefaultTurnaround+n)*time.Millisecond, ev.at)
		require.Equal(t, Input, ev.dir)
	}
	last := line.events[len(line.events)-1]
	require.Equal(t, "set", last.op)
	require.True(t, last.value)
	require.Equal(t, Output, line.dir)
}

func TestBitBangReceiveTimeout(t *testing.T) {
	clk := newFakeClock()
	line := newRecordingLine(clk)
	line.rx = frameBits(EncodeReply(0, 0, 0))
	line.stallAt = 10
	line.stallFor = 5 * time.Millisecond
	b := newTestBitBang(line, clk)

	_, err := b.Receive(ReplyFrameBits)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTimeout))
	require.Equal(t, Output, line.dir)
	require.True(t, line.level)
}

func TestBitBangReceiveLineError(t *testing.T) {
	clk := newFakeClock()
	line := newRecordingLine(clk)
	line.failGet = 3
	b := newTestBitBang(line, clk)

	_, err := b.Receive(ReplyFrameBits)
	require.EqualError(t, err, "bit 3 of 64: get failed")
	require.Equal(t, Output, line.dir)
	require.True(t, line.level)
}

func TestBitBangTransmitLineError(t *testing.T) {
	clk := newFakeClock()
	line := newRecordingLine(clk)
	line.failSet = 5
	b := newTestBitBang(line, clk)

	err := b.Transmit(EncodeRead(0, 0))
	require.EqualError(t, err, "bit 5 of 32: set failed")
	require.True(t, line.level)
}

func TestBitBangTransmitDirectionError(t *testing.T) {
	clk := newFakeClock()
	line := newRecordingLine(clk)
	line.dir, line.level = Input, false
	line.failDir = 1
	b := newTestBitBang(line, clk)

	err := b.Transmit(EncodeRead(0, 0))
	require.EqualError(t, err, "set direction out: direction failed")
	require.Equal(t, Output, line.dir)
	require.True(t, line.level)
	require.Len(t, line.ops("set"), 1)
}

func TestBitBangReceiveLength(t *testing.T) {
	b := newTestBitBang(newRecordingLine(newFakeClock()), newFakeClock())
	_, err := b.Receive(0)
	require.Equal(t, ErrFrameLength, err)
	_, err = b.Receive(65)
	require.Equal(t, ErrFrameLength, err)
}

type nopLine struct{}

func (nopLine) Request(string, Direction) error { return nil }
func (nopLine) SetDirection(Direction) error    { return nil }
func (nopLine) SetValue(bool) error             { return nil }
func (nopLine) Value() (bool, error)            { return true, nil }

func TestBitBangRealClockDuration(t *testing.T) {
	b := NewBitBang(nopLine{})
	b.Baud = 2 * physic.KiloHertz
	start := time.Now()
	require.NoError(t, b.Transmit(EncodeRead(0, 0)))
	elapsed := time.Since(start)
	expect := time.Duration(ReadFrameBits+1) * b.Interval()
	require.True(t, elapsed >= expect, "elapsed %v < %v", elapsed, expect)
	require.True(t, elapsed < expect+100*time.Millisecond, "elapsed %v", elapsed)
}
