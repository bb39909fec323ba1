package metric

import (
	"github.com/probekit/buildprobes/telemetry/core"
)

func RecordMetric() string {
	return "metric-" + core.GetVersion()
}
