package framework

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Aggregate())
	errs.Add(nil, io.EOF)
	require.EqualError(t, errs.Aggregate(), "EOF")
	errs.Add(io.ErrUnexpectedEOF)
	err := errs.Aggregate()
	require.EqualError(t, err, "Multiple errors:\nEOF\nunexpected EOF")
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.False(t, errors.Is(err, io.ErrClosedPipe))
}

func TestRunnerWait(t *testing.T) {
	r := NewRunner()
	r.Go(
		RunnableFunc(func(context.Context) error { return nil }),
		NamedRun("failed", RunnableFunc(func(context.Context) error { return io.EOF })),
		RunnableFunc(func(context.Context) error { return context.Canceled }),
	)
	err := r.Wait()
	require.True(t, errors.Is(err, io.EOF))
}

func TestRunWithContextCloser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	closed := make(chan struct{})
	closer := closerFunc(func() error { close(closed); return nil })
	go cancel()
	err := RunWithContextCloser(ctx, closer, func() error {
		<-closed
		return io.EOF
	})
	require.Equal(t, context.Canceled, err)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
