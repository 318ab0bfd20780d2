package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"

	"github.com/golang/glog"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	l0 "github.com/robotalks/tmc.go/pkg/l0/env"
	"github.com/robotalks/tmc.go/pkg/l1"
	env "github.com/robotalks/tmc.go/pkg/l1/env/controller"
	"github.com/robotalks/tmc.go/pkg/l1/service"
)

var syncOverlays = true

func init() {
	env.SetControllerMeta(l1.ControllerMeta{Description: "TMC5240 Register Controller"})
	env.SetupFlags()
	l0.SetupFlags()
	flag.BoolVar(&syncOverlays, "sync", syncOverlays, "Write overlay registers on startup")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	line := l0.NewConfig().MustNewEnv()
	defer line.Close()

	conf := env.NewConfig()
	conf.Info.Meta.Labels = map[string]string{
		"line":  line.Config.Line,
		"nodes": line.Config.Nodes,
	}
	svc := service.New(line.Devices)
	ctl := conf.MustNewEnv(svc)
	svc.Events = ctl

	runner := fx.NewRunner().HandleSignals()
	if syncOverlays {
		if err := line.Devices.Sync(context.Background()); err != nil {
			glog.Exitf("sync overlays: %v", err)
		}
	}
	runner.Go(ctl).RunOrFail()
}
