package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// MachineID retrieves the unique ID identifying the machine. It falls back
// to the host name where no machine ID is available.
func MachineID() string {
	id, err := machineid.ProtectedID("tmc")
	if err == nil {
		return id
	}
	glog.Warningf("machine id: %v", err)
	if host, err := os.Hostname(); err == nil {
		return host
	}
	return "unknown"
}
