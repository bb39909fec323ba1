package sdk

import (
	"github.com/probekit/buildprobes/telemetry"
	"github.com/probekit/buildprobes/telemetry/core"
	"github.com/probekit/buildprobes/telemetry/metric"
	"github.com/probekit/buildprobes/telemetry/trace"
)

func Initialize() string {
	return telemetry.RootVersion + ":" + core.GetVersion() + ":" + trace.StartSpan() + ":" + metric.RecordMetric()
}
