package mqtt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/comm"
)

// Registrar implements l1.Registrar using MQTT.
type Registrar struct {
	Queue *Queue
	Info  l1.ControllerInfo

	metaJSON  string
	registrar comm.Registrar
}

// NewRegistrar creates a Registrar. Commands are dispatched to handler.
func NewRegistrar(brokerURL string, info l1.ControllerInfo, handler l1.CommandHandler) (*Registrar, error) {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		panic(err)
	}
	broker, err := ParseBrokerURL(brokerURL)
	if err != nil {
		return nil, err
	}
	broker.Options.SetBinaryWill(broker.TopicPrefix+ControllerTopic(info.Ref, TopicMeta), nil, 1, true)
	if broker.Options.ClientID == "" {
		broker.Options.SetClientID("tmc:" + info.Ref.Name())
	}
	r := &Registrar{
		Queue:    broker.NewQueue(),
		Info:     info,
		metaJSON: string(meta),
	}
	r.Queue.OnConnect = func(*Queue) { r.onConnected() }
	r.registrar.Init(NewPacketReadWriter(r.Queue).ForController(info.Ref), handler)
	return r, nil
}

// SendEvent implements Registrar.
func (r *Registrar) SendEvent(ctx context.Context, msg fx.Message) error {
	return r.registrar.SendEvent(ctx, msg)
}

// Run implements Runnable. The retained meta is cleared on exit.
func (r *Registrar) Run(ctx context.Context) error {
	r.Queue.Connect()
	err := r.registrar.Run(ctx)
	r.Queue.PubWith(ControllerTopic(r.Info.Ref, TopicMeta), nil, 1, true).WaitTimeout(time.Second)
	r.Queue.Close()
	return err
}

func (r *Registrar) onConnected() {
	glog.Infof("registered %s", r.Info.Ref.Name())
	r.Queue.PubWith(ControllerTopic(r.Info.Ref, TopicMeta), []byte(r.metaJSON), 1, true)
}
