package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/comm/stream"
	"github.com/robotalks/tmc.go/pkg/l1/msgs"
)

var okHandler = l1.HandleCommandFunc(func(context.Context, fx.Message) (fx.Message, error) {
	return nil, nil
})

func TestNewEnvRequiresRegistrar(t *testing.T) {
	conf := NewConfig()
	conf.Info.Ref.ID = "test"
	conf.MQTTBrokerURL, conf.ListenTCP, conf.ListenWS = "", "", ""
	_, err := conf.NewEnv(okHandler)
	require.EqualError(t, err, "at least one registrar is required")

	conf.Info.Ref.Type = ""
	_, err = conf.NewEnv(okHandler)
	require.EqualError(t, err, "controller type and id must be specified")
}

func TestEnvServesTCP(t *testing.T) {
	conf := NewConfig()
	conf.Info.Ref.ID = "test"
	conf.MQTTBrokerURL, conf.ListenTCP, conf.ListenWS = "", "127.0.0.1:0", ""
	e, err := conf.NewEnv(okHandler)
	require.NoError(t, err)
	require.Len(t, e.Registrar.Registrars, 1)
	require.Len(t, e.RegistryURLs, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	ln := e.Registrar.Registrars[0].(*stream.Listener)
	conn, err := (&stream.Connector{Addr: ln.Listener.Addr().String()}).Connect(ctx, conf.Info.Ref)
	require.NoError(t, err)
	reply, err := l1.Do(ctx, conn, &msgs.NodesQuery{})
	require.NoError(t, err)
	_, ok := reply.(*msgs.CommandOK)
	require.True(t, ok)
	require.NoError(t, conn.Close())

	cancel()
	<-done
}
