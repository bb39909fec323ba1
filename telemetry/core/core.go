package core

import (
	"github.com/probekit/buildprobes/telemetry"
)

func GetVersion() string {
	return "core-" + telemetry.RootVersion
}
