// Package env sets up the devices of a line from flags and environment.
package env

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/physic"

	"github.com/robotalks/tmc.go/pkg/l0/comm"
	"github.com/robotalks/tmc.go/pkg/l0/driver"
	"github.com/robotalks/tmc.go/pkg/l0/hw"
	"github.com/robotalks/tmc.go/pkg/l0/overlay"
	"github.com/robotalks/tmc.go/pkg/l0/regs"
	"github.com/robotalks/tmc.go/pkg/l0/sim"
)

// Config provides the options to open a line.
type Config struct {
	// Line selects the link: gpio:NAME, spi:NAME, uart:PATH or sim.
	Line string
	// Baud is the bit rate for gpio and uart, the clock for spi.
	Baud int
	// Nodes lists the node addresses, comma separated.
	Nodes string
	// Overlays lists overlay files, comma separated.
	Overlays string
	// Permissive applies the valid entries of a bad overlay.
	Permissive bool
	// NonBlocking fails with line busy instead of waiting.
	NonBlocking bool
	// CRCOrder is the bit order of the CRC: lsb or msb.
	CRCOrder string
}

var defaultConfig = Config{
	Line:     "sim",
	Baud:     9600,
	Nodes:    "0",
	CRCOrder: "lsb",
}

func init() {
	if val := os.Getenv("TMC_LINE"); val != "" {
		defaultConfig.Line = val
	}
	if val := os.Getenv("TMC_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.Baud = baud
		}
	}
	if val := os.Getenv("TMC_NODES"); val != "" {
		defaultConfig.Nodes = val
	}
	if val := os.Getenv("TMC_OVERLAY"); val != "" {
		defaultConfig.Overlays = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Line, "line", defaultConfig.Line, "Line: gpio:NAME, spi:NAME, uart:PATH or sim")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Bit rate")
	flag.StringVar(&defaultConfig.Nodes, "nodes", defaultConfig.Nodes, "Node addresses, comma separated")
	flag.StringVar(&defaultConfig.Overlays, "overlay", defaultConfig.Overlays, "Overlay files, comma separated")
	flag.BoolVar(&defaultConfig.Permissive, "permissive", defaultConfig.Permissive, "Skip bad overlay entries")
	flag.BoolVar(&defaultConfig.NonBlocking, "nonblocking", defaultConfig.NonBlocking, "Fail when the line is busy")
	flag.StringVar(&defaultConfig.CRCOrder, "crc-order", defaultConfig.CRCOrder, "CRC bit order: lsb or msb")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Env holds the opened line and its devices.
type Env struct {
	Config  *Config
	Link    comm.Link
	Devices *driver.Devices
	// Sim is set when the line is simulated.
	Sim *sim.Link

	closer io.Closer
}

// ParseNodes parses a comma separated list of node addresses.
func ParseNodes(s string) ([]uint8, error) {
	var nodes []uint8
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		n, err := strconv.ParseUint(item, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid node %q: %w", item, err)
		}
		nodes = append(nodes, uint8(n))
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("no nodes")
	}
	return nodes, nil
}

func (c *Config) codec() (comm.Codec, error) {
	codec := comm.DefaultCodec
	switch strings.ToLower(c.CRCOrder) {
	case "", "lsb":
	case "msb":
		codec.CRC.Order = comm.MSBFirst
	default:
		return codec, fmt.Errorf("unknown crc order %q", c.CRCOrder)
	}
	return codec, nil
}

// OpenLink opens the link selected by Line.
func (c *Config) OpenLink(nodes []uint8) (comm.Link, io.Closer, error) {
	kind, arg := c.Line, ""
	if pos := strings.IndexByte(c.Line, ':'); pos >= 0 {
		kind, arg = c.Line[:pos], c.Line[pos+1:]
	}
	switch kind {
	case "sim":
		return sim.New(nodes...), nil, nil
	case "gpio":
		pin, err := hw.OpenPin(arg)
		if err != nil {
			return nil, nil, err
		}
		if err := pin.Request("tmc", comm.Output); err != nil {
			return nil, nil, err
		}
		link := comm.NewBitBang(pin)
		link.Baud = physic.Frequency(c.Baud) * physic.Hertz
		return link, nil, nil
	case "spi":
		port, err := hw.OpenSPI(arg, physic.Frequency(c.Baud)*physic.Hertz)
		if err != nil {
			return nil, nil, err
		}
		return &comm.SPILink{Conn: port}, port, nil
	case "uart":
		port, err := hw.OpenSerial(arg, c.Baud)
		if err != nil {
			return nil, nil, err
		}
		return &comm.StreamLink{RW: port}, port, nil
	}
	return nil, nil, fmt.Errorf("unknown line %q", c.Line)
}

// LoadOverlays loads and merges the overlay files.
func (c *Config) LoadOverlays() (regs.Overlay, error) {
	var overlays []regs.Overlay
	for _, fn := range strings.Split(c.Overlays, ",") {
		if fn = strings.TrimSpace(fn); fn == "" {
			continue
		}
		o, err := overlay.Load(fn)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, o)
	}
	return overlay.Merge(overlays...), nil
}

// NewEnv opens the line and creates the devices with overlays queued.
func (c *Config) NewEnv() (*Env, error) {
	nodes, err := ParseNodes(c.Nodes)
	if err != nil {
		return nil, err
	}
	codec, err := c.codec()
	if err != nil {
		return nil, err
	}
	o, err := c.LoadOverlays()
	if err != nil {
		return nil, err
	}
	link, closer, err := c.OpenLink(nodes)
	if err != nil {
		return nil, err
	}
	bus := comm.NewBus(link)
	bus.NonBlocking = c.NonBlocking
	env := &Env{
		Config:  c,
		Link:    link,
		Devices: driver.NewDevices(bus, nodes...),
		closer:  closer,
	}
	if s, ok := link.(*sim.Link); ok {
		s.Codec = codec
		env.Sim = s
	}
	for _, node := range nodes {
		dev, _ := env.Devices.Device(node)
		dev.Codec = codec
	}
	if len(o) > 0 {
		if err := env.Devices.ApplyOverlay(o, c.Permissive); err != nil {
			env.Close()
			return nil, err
		}
	}
	glog.Infof("line %s: nodes %v", c.Line, nodes)
	return env, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	env, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return env
}

// Close releases the line.
func (e *Env) Close() error {
	if e.closer != nil {
		return e.closer.Close()
	}
	return nil
}
