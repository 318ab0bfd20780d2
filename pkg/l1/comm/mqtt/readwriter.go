package mqtt

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/robotalks/tmc.go/pkg/l1"
)

// Topic suffixes under <type>/<id>/.
const (
	TopicCmd  = "cmd"
	TopicMsg  = "msg"
	TopicMeta = "meta"
)

// DefaultPublishTimeout bounds the wait for a publish to be acknowledged.
const DefaultPublishTimeout = 2 * time.Second

// ReadWriter implements PacketReadWriter.
type ReadWriter struct {
	Queue          *Queue
	SubTopic       string
	PubTopic       string
	PublishTimeout time.Duration

	packetCh chan []byte
	done     chan struct{}
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:          q,
		PublishTimeout: DefaultPublishTimeout,
		packetCh:       make(chan []byte, 1),
		done:           make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ControllerTopic is the topic of a controller with suffix.
func ControllerTopic(ref l1.ControllerRef, suffix string) string {
	return ref.Name() + "/" + suffix
}

// ForConnector subscribes msg and publishes cmd of the controller.
func (p *ReadWriter) ForConnector(ref l1.ControllerRef) *ReadWriter {
	return p.WithTopics(ControllerTopic(ref, TopicMsg), ControllerTopic(ref, TopicCmd))
}

// ForController subscribes cmd and publishes msg of the controller.
func (p *ReadWriter) ForController(ref l1.ControllerRef) *ReadWriter {
	return p.WithTopics(ControllerTopic(ref, TopicCmd), ControllerTopic(ref, TopicMsg))
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.done:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.PubTopic, pkt)
	if p.PublishTimeout <= 0 {
		token.Wait()
	} else if !token.WaitTimeout(p.PublishTimeout) {
		return fmt.Errorf("publish %s: timeout after %v", p.PubTopic, p.PublishTimeout)
	}
	return token.Error()
}

// Run implements Runnable. Packets are received while it runs.
func (p *ReadWriter) Run(ctx context.Context) error {
	sub := p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	<-ctx.Done()
	close(p.done)
	sub.Close()
	return ctx.Err()
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.done:
	}
}
