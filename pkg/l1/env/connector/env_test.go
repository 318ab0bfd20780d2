package connector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tmc.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/tmc.go/pkg/l1/comm/stream"
	"github.com/robotalks/tmc.go/pkg/l1/comm/websocket"
)

func TestNewConnectorBySchema(t *testing.T) {
	conf := NewConfig()

	conf.RegistryURL = "tcp://localhost:7510"
	conn, err := conf.NewConnector()
	require.NoError(t, err)
	require.Equal(t, &stream.Connector{Addr: "localhost:7510"}, conn)

	conf.RegistryURL = "ws://localhost:8080/l1"
	conn, err = conf.NewConnector()
	require.NoError(t, err)
	require.Equal(t, &websocket.Connector{URL: "ws://localhost:8080/l1"}, conn)

	conf.RegistryURL = "mqtt://localhost:1883/tmc/"
	conn, err = conf.NewConnector()
	require.NoError(t, err)
	_, ok := conn.(*mqtt.Connector)
	require.True(t, ok)

	conf.RegistryURL = "http://localhost"
	_, err = conf.NewConnector()
	require.EqualError(t, err, `unknown registry URL scheme: "http"`)
}
