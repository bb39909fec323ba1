package trace

import (
	"github.com/probekit/buildprobes/telemetry"
	"github.com/probekit/buildprobes/telemetry/core"
)

func StartSpan() string {
	return "trace-" + telemetry.RootVersion + "-" + core.GetVersion()
}
