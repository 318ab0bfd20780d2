package connector

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/tmc.go/pkg/l1/comm/stream"
	"github.com/robotalks/tmc.go/pkg/l1/comm/websocket"
)

// Config provides common options to setup Connectors.
type Config struct {
	Ref l1.ControllerRef

	// RegistryURL specifies the URL of controller registry.
	// e.g. mqtt://host:port/topic-prefix, tcp://host:port, ws://host:port/l1
	RegistryURL string
}

var defaultConfig = Config{
	Ref:         l1.ControllerRef{Type: "tmc"},
	RegistryURL: "tcp://localhost:7510",
}

func init() {
	if val := os.Getenv("TMC_TYPE"); val != "" {
		defaultConfig.Ref.Type = val
	}
	if val := os.Getenv("TMC_ID"); val != "" {
		defaultConfig.Ref.ID = val
	}
	if val := os.Getenv("TMC_REGISTRY_URL"); val != "" {
		defaultConfig.RegistryURL = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Type, "controller-type", defaultConfig.Ref.Type, "Controller type to connect.")
	flag.StringVar(&defaultConfig.Ref.ID, "controller-id", defaultConfig.Ref.ID, "Controller ID to connect.")
	flag.StringVar(&defaultConfig.RegistryURL, "registry", defaultConfig.RegistryURL, "Controller Registry URL.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewConnector creates a Connector using current config.
func (c *Config) NewConnector() (l1.Connector, error) {
	parsedURL, err := url.Parse(c.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %v", err)
	}
	switch parsedURL.Scheme {
	case "mqtt", "ssl", "tls", "ws+mqtt":
		return mqtt.NewConnector(c.RegistryURL)
	case "tcp":
		return &stream.Connector{Addr: parsedURL.Host}, nil
	case "ws", "wss":
		return &websocket.Connector{URL: c.RegistryURL}, nil
	default:
		return nil, fmt.Errorf("unknown registry URL scheme: %q", parsedURL.Scheme)
	}
}

// MustNewConnector creates a Connector and fails on error.
func (c *Config) MustNewConnector() l1.Connector {
	conn, err := c.NewConnector()
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}

// Connect directly connects to L1 controller.
func (c *Config) Connect(ctx context.Context) (l1.ControllerConn, error) {
	connector, err := c.NewConnector()
	if err != nil {
		return nil, err
	}
	ref := c.Ref
	if !ref.IsValid() {
		infos, err := connector.Discover(ctx)
		if err != nil {
			return nil, err
		}
		if len(infos) != 1 {
			return nil, fmt.Errorf("controller type and id must be specified, %d found", len(infos))
		}
		ref = infos[0].Ref
	}
	return connector.Connect(ctx, ref)
}

// MustConnect connects to L1 controller for fail.
func (c *Config) MustConnect(ctx context.Context) l1.ControllerConn {
	conn, err := c.Connect(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}
