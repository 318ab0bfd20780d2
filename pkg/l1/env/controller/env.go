package controller

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang/glog"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/comm"
	"github.com/robotalks/tmc.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/tmc.go/pkg/l1/comm/stream"
	"github.com/robotalks/tmc.go/pkg/l1/comm/websocket"
	"github.com/robotalks/tmc.go/pkg/l1/env"
)

// Config provides common options to setup an env for L1 controllers.
type Config struct {
	Info l1.ControllerInfo

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// ListenTCP is the address serving length prefixed streams.
	ListenTCP string
	// ListenWS is the address serving websockets.
	ListenWS string
}

var defaultConfig = Config{
	Info: l1.ControllerInfo{
		Ref: l1.ControllerRef{Type: "tmc"},
	},
	ListenTCP: "localhost:7510",
}

func init() {
	if val := os.Getenv("TMC_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val, ok := os.LookupEnv("TMC_LISTEN_TCP"); ok {
		defaultConfig.ListenTCP = val
	}
	if val := os.Getenv("TMC_LISTEN_WS"); val != "" {
		defaultConfig.ListenWS = val
	}
	if val := os.Getenv("TMC_TYPE"); val != "" {
		defaultConfig.Info.Ref.Type = val
	}
	if val := os.Getenv("TMC_ID"); val != "" {
		defaultConfig.Info.Ref.ID = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Info.Ref.Type, "type", defaultConfig.Info.Ref.Type, "Controller type")
	flag.StringVar(&defaultConfig.Info.Ref.ID, "id", defaultConfig.Info.Ref.ID, "Controller ID, default is the machine ID")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.ListenTCP, "listen", defaultConfig.ListenTCP, "TCP listen address")
	flag.StringVar(&defaultConfig.ListenWS, "listen-ws", defaultConfig.ListenWS, "Websocket listen address")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// SetControllerMeta should be called in init with basic info about the controller.
func SetControllerMeta(meta l1.ControllerMeta) {
	defaultConfig.Info.Meta = meta
}

// Env is the env for L1 controllers.
type Env struct {
	Config       *Config
	RegistryURLs []string
	Registrar    *comm.RegistrarMux
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewEnv creates Env from config, serving commands with handler.
func (c *Config) NewEnv(handler l1.CommandHandler) (*Env, error) {
	if c.Info.Ref.ID == "" {
		c.Info.Ref.ID = env.MachineID()
	}
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("controller type and id must be specified")
	}
	e := &Env{
		Config:    c,
		Registrar: &comm.RegistrarMux{},
	}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, c.Info, handler)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar error: %v", err)
		}
		e.Registrar.Add(reg)
		e.RegistryURLs = append(e.RegistryURLs, c.MQTTBrokerURL)
	}
	if c.ListenTCP != "" {
		ln, err := stream.Listen(c.ListenTCP, &comm.Server{Handler: handler})
		if err != nil {
			return nil, fmt.Errorf("listen %s error: %v", c.ListenTCP, err)
		}
		e.Registrar.Add(ln)
		e.RegistryURLs = append(e.RegistryURLs, "tcp://"+ln.Listener.Addr().String())
	}
	if c.ListenWS != "" {
		e.Registrar.Add(&websocket.Listener{Addr: c.ListenWS, Server: &comm.Server{Handler: handler}})
		e.RegistryURLs = append(e.RegistryURLs, "ws://"+c.ListenWS+websocket.DefaultPath)
	}
	if len(e.Registrar.Registrars) == 0 {
		return nil, fmt.Errorf("at least one registrar is required")
	}
	return e, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv(handler l1.CommandHandler) *Env {
	e, err := c.NewEnv(handler)
	if err != nil {
		log.Fatalln(err)
	}
	return e
}

// Run implements Runnable.
func (e *Env) Run(ctx context.Context) error {
	for _, u := range e.RegistryURLs {
		glog.Infof("%s serving on %s", e.Config.Info.Ref.Name(), u)
	}
	return e.Registrar.Run(ctx)
}

// SendEvent implements l1.Registrar.
func (e *Env) SendEvent(ctx context.Context, msg fx.Message) error {
	return e.Registrar.SendEvent(ctx, msg)
}
