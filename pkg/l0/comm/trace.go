package comm

import (
	"github.com/golang/glog"
)

// TracePoint identifies a step of a transaction.
type TracePoint int

// Trace points.
const (
	TraceFrameBuilt TracePoint = iota
	TraceFrameSent
	TraceReplyReceived
)

// String implements fmt.Stringer.
func (p TracePoint) String() string {
	switch p {
	case TraceFrameBuilt:
		return "frame built"
	case TraceFrameSent:
		return "frame sent"
	case TraceReplyReceived:
		return "reply received"
	}
	return "unknown"
}

// Tracer observes frames at the trace points.
type Tracer interface {
	Trace(TracePoint, Frame)
}

// TraceFunc is func form of Tracer.
type TraceFunc func(TracePoint, Frame)

// Trace implements Tracer.
func (f TraceFunc) Trace(p TracePoint, frame Frame) {
	f(p, frame)
}

// GlogTracer logs frames with glog at verbosity 3.
var GlogTracer Tracer = TraceFunc(func(p TracePoint, frame Frame) {
	if glog.V(3) {
		glog.Infof("%s: %s", p, frame)
	}
})
