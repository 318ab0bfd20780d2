package websocket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/comm"
	"github.com/robotalks/tmc.go/pkg/l1/msgs"
)

func TestHandlerAndConnector(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	server := &comm.Server{Handler: l1.HandleCommandFunc(func(ctx context.Context, msg fx.Message) (fx.Message, error) {
		reply := &msgs.Nodes{}
		reply.Nodes.Nodes = []uint32{0, 3}
		return reply, nil
	})}
	ts := httptest.NewServer(Handler(ctx, server))
	defer ts.Close()

	connector := &Connector{URL: "ws" + strings.TrimPrefix(ts.URL, "http") + "/"}
	infos, err := connector.Discover(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "ws", infos[0].Ref.Type)

	conn, err := connector.Connect(ctx, infos[0].Ref)
	require.NoError(t, err)
	defer conn.Close()

	reply, err := l1.Do(ctx, conn, &msgs.NodesQuery{})
	require.NoError(t, err)
	nodes, ok := reply.(*msgs.Nodes)
	require.True(t, ok)
	require.Equal(t, []uint32{0, 3}, nodes.Nodes.Nodes)
	require.Equal(t, 1, server.Sessions())
}
