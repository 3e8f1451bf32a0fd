package config

import "github.com/spf13/viper"

// Build defaults.
const (
	DefaultOutputDir    = "dist"
	DefaultSvglBasename = "svgl"
	DefaultWorkers      = 0
	DefaultCompress     = false
	DefaultManifest     = true
)

// Codegen defaults.
const (
	DefaultFramework  = "react"
	DefaultTypeScript = false
	DefaultSnippet    = false
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatText
)

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("build.iconsets_dir", "")
	viperCfg.SetDefault("build.svgl_dir", "")
	viperCfg.SetDefault("build.output_dir", DefaultOutputDir)
	viperCfg.SetDefault("build.svgl_basename", DefaultSvglBasename)
	viperCfg.SetDefault("build.workers", DefaultWorkers)
	viperCfg.SetDefault("build.compress", DefaultCompress)
	viperCfg.SetDefault("build.manifest", DefaultManifest)

	viperCfg.SetDefault("codegen.framework", DefaultFramework)
	viperCfg.SetDefault("codegen.typescript", DefaultTypeScript)
	viperCfg.SetDefault("codegen.snippet", DefaultSnippet)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_headers", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", false)
	viperCfg.SetDefault("telemetry.sample_ratio", 0.0)
	viperCfg.SetDefault("telemetry.environment", "")
}
