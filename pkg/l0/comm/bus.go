package comm

import (
	"context"
	"fmt"
	"sync"
)

// Bus serialises transactions over a Link shared by all nodes on it.
type Bus struct {
	Link   Link
	Tracer Tracer
	// NonBlocking fails with ErrLineBusy instead of waiting for the line.
	NonBlocking bool

	sem     chan struct{}
	semInit sync.Once
}

// NewBus creates a Bus over a Link.
func NewBus(link Link) *Bus {
	return &Bus{
		Link:   link,
		Tracer: GlogTracer,
	}
}

// Trace reports a frame to the Tracer.
func (b *Bus) Trace(p TracePoint, f Frame) {
	if t := b.Tracer; t != nil {
		t.Trace(p, f)
	}
}

func (b *Bus) acquire(ctx context.Context) error {
	b.semInit.Do(func() { b.sem = make(chan struct{}, 1) })
	if b.NonBlocking {
		select {
		case b.sem <- struct{}{}:
			return nil
		default:
			return ErrLineBusy
		}
	}
	select {
	case b.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		// the slot was held by another exchange all along.
		return fmt.Errorf("%w: %w", ErrLineBusy, ctx.Err())
	}
}

func (b *Bus) release() {
	<-b.sem
}

// Exchange transmits a request and, if replyBits is positive, samples the
// reply. The line is held for the whole exchange. The context is only
// consulted while waiting for the line: once the first bit is out the
// exchange runs to completion.
func (b *Bus) Exchange(ctx context.Context, req Frame, replyBits int) (uint64, error) {
	if req.Len != ReadFrameBits && req.Len != WriteFrameBits {
		return 0, ErrFrameLength
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("exchange not started: %w", err)
	}
	if err := b.acquire(ctx); err != nil {
		return 0, err
	}
	defer b.release()

	if err := b.Link.Transmit(req); err != nil {
		return 0, fmt.Errorf("transmit %s: %w", req, err)
	}
	b.Trace(TraceFrameSent, req)
	if replyBits <= 0 {
		return 0, nil
	}
	reply, err := b.Link.Receive(replyBits)
	if err != nil {
		return 0, fmt.Errorf("receive: %w", err)
	}
	b.Trace(TraceReplyReceived, Frame{Bits: reply, Len: replyBits})
	return reply, nil
}
