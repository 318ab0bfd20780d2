package comm

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type loopTransfer struct {
	tx    [][]byte
	reply []byte
}

func (t *loopTransfer) Transfer(b []byte) ([]byte, error) {
	t.tx = append(t.tx, append([]byte(nil), b...))
	if len(b) == len(t.reply) {
		return t.reply, nil
	}
	return make([]byte, len(b)), nil
}

func TestSPILink(t *testing.T) {
	reply := EncodeReply(0, 0x02, 0x2a)
	conn := &loopTransfer{reply: reply.Bytes()}
	link := &SPILink{Conn: conn}
	req := EncodeRead(0, 0x02)
	require.NoError(t, link.Transmit(req))
	require.Equal(t, req.Bytes(), conn.tx[0])
	bits, err := link.Receive(ReplyFrameBits)
	require.NoError(t, err)
	require.Equal(t, reply.Bits, bits)

	_, err = link.Receive(12)
	require.Equal(t, ErrFrameLength, err)

	conn.reply = nil
	link.Conn = transferFunc(func(b []byte) ([]byte, error) { return b[:3], nil })
	_, err = link.Receive(ReplyFrameBits)
	require.True(t, errors.Is(err, ErrTimeout))
}

type transferFunc func([]byte) ([]byte, error)

func (f transferFunc) Transfer(b []byte) ([]byte, error) { return f(b) }

// trickleReader returns one byte per Read and (0, nil) once drained.
type trickleReader struct {
	bytes.Buffer
	out bytes.Buffer
}

func (r *trickleReader) Read(p []byte) (int, error) {
	if r.Len() == 0 {
		time.Sleep(time.Millisecond)
		return 0, nil
	}
	return r.Buffer.Read(p[:1])
}

func (r *trickleReader) Write(p []byte) (int, error) {
	return r.out.Write(p)
}

func TestStreamLink(t *testing.T) {
	reply := EncodeReply(0, 0x04, 0x1000)
	rw := &trickleReader{}
	rw.Buffer.Write(reply.Bytes())
	link := &StreamLink{RW: rw}

	req := EncodeWrite(0, 0x04, 0x1000)
	require.NoError(t, link.Transmit(req))
	require.Equal(t, req.Bytes(), rw.out.Bytes())

	bits, err := link.Receive(ReplyFrameBits)
	require.NoError(t, err)
	require.Equal(t, reply.Bits, bits)
}

func TestStreamLinkTimeout(t *testing.T) {
	rw := &trickleReader{}
	rw.Buffer.Write([]byte{0xa9, 0x00})
	link := &StreamLink{RW: rw, Timeout: 10 * time.Millisecond}
	_, err := link.Receive(ReplyFrameBits)
	require.True(t, errors.Is(err, ErrTimeout))
	require.Contains(t, err.Error(), "got 2/8 bytes")
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error)  { return 0, io.EOF }
func (eofReader) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestStreamLinkReadError(t *testing.T) {
	link := &StreamLink{RW: eofReader{}}
	_, err := link.Receive(ReplyFrameBits)
	require.True(t, errors.Is(err, io.EOF))
	require.Error(t, link.Transmit(EncodeRead(0, 0)))
}
