// Package telemetry is the root of a layered package tree
// (core, metric, trace, sdk) whose only job is to exercise
// intra-module dependency resolution across layers.
package telemetry

// RootVersion is the version every layer derives its identity from.
const RootVersion = "1.0.0"
