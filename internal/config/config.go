// Package config holds the pipeline's only externally-tunable knobs
// (spec.md §6 "Configuration"). No other runtime configuration surface is
// exposed by the core, matching the teacher's checker.Context: a plain
// struct of options threaded by value through the phases rather than a
// global or a config-file library (internal/checker/checker.go).
package config

// Config is the full set of options the core pipeline accepts.
type Config struct {
	WidenOverloadReturns       bool
	TreatNamespaceCycleAsError bool
	MaxOverloadReturnUnion     int
	EmitInternalInterfaces     bool
}

// Default returns the configuration spec.md §6 specifies as default.
func Default() Config {
	return Config{
		WidenOverloadReturns:       true,
		TreatNamespaceCycleAsError: false,
		MaxOverloadReturnUnion:     4,
		EmitInternalInterfaces:     false,
	}
}
