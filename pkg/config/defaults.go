package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/koute/bytehound-replay/internal/bytesize"
	"github.com/koute/bytehound-replay/pkg/malloc"
	"github.com/koute/bytehound-replay/pkg/replay"
)

// DefaultArenaSize is the arena capacity used when none is configured.
const DefaultArenaSize = bytesize.ByteSize(512 * 1024 * 1024)

// defaultProfileTypes are the Pyroscope profile types collected when
// profiling is enabled without an explicit list.
var defaultProfileTypes = []string{
	"cpu",
	"alloc_objects",
	"alloc_space",
	"inuse_objects",
	"inuse_space",
	"goroutines",
}

// GetDefaultConfig returns the configuration used when nothing is set:
// single-threaded replay against the arena allocator, logs to stderr, all
// observability off.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// setViperDefaults registers every key with viper so that environment
// variable overrides resolve even without a config file.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "INFO")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4317")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("telemetry.sample_rate", 1.0)
	v.SetDefault("telemetry.profiling.enabled", false)
	v.SetDefault("telemetry.profiling.endpoint", "http://localhost:4040")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen_address", ":9090")

	v.SetDefault("allocator.kind", malloc.KindArena)
	v.SetDefault("allocator.arena_size", uint64(DefaultArenaSize))

	v.SetDefault("benchmark.workers", replay.DefaultBenchmarkWorkers)

	v.SetDefault("hooks.plugin", "")
}

// ApplyDefaults sets default values for any unspecified configuration
// fields and normalizes values.
//
// Zero values (0, "", false, nil) are replaced with defaults; explicit
// values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyMetricsDefaults(&cfg.Metrics)
	applyAllocatorDefaults(&cfg.Allocator)
	applyBenchmarkDefaults(&cfg.Benchmark)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
	applyProfilingDefaults(&cfg.Profiling)
}

func applyProfilingDefaults(cfg *ProfilingConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:4040"
	}
	if len(cfg.ProfileTypes) == 0 {
		cfg.ProfileTypes = append([]string(nil), defaultProfileTypes...)
	}
}

func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = ":9090"
	}
}

func applyAllocatorDefaults(cfg *AllocatorConfig) {
	if cfg.Kind == "" {
		cfg.Kind = malloc.KindArena
	}
	if cfg.ArenaSize == 0 {
		cfg.ArenaSize = DefaultArenaSize
	}
}

func applyBenchmarkDefaults(cfg *BenchmarkConfig) {
	if cfg.Workers == 0 {
		cfg.Workers = replay.DefaultBenchmarkWorkers
	}
}
