// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/bundler/internal/config"
	"github.com/opmodel/bundler/internal/output"
)

var (
	// Global flags
	configFlag     string
	webRootFlag    string
	manifestFlag   string
	hashFlag       string
	pipelineFlag   bool
	noPipelineFlag bool
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	bundlerConfig  *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the bundler CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bundler",
		Short: "Render script references for asset bundles",
		Long: `bundler renders <script> references for named bundle routes.

With the pipeline enabled, each route becomes a single reference to the
combined artifact. With it disabled, each route expands into one reference
per source file. Every reference carries a content version token.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: BUNDLER_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&webRootFlag, "web-root", "", "Content root for version tokens (env: BUNDLER_WEBROOT)")
	rootCmd.PersistentFlags().StringVar(&manifestFlag, "manifest", "", "Bundle manifest file (env: BUNDLER_MANIFEST)")
	rootCmd.PersistentFlags().StringVar(&hashFlag, "hash", "", "Version token algorithm: sha256, xxhash (env: BUNDLER_HASH)")
	rootCmd.PersistentFlags().BoolVar(&pipelineFlag, "pipeline", true, "Reference combined bundles (env: BUNDLER_PIPELINE_ENABLED)")
	rootCmd.PersistentFlags().BoolVar(&noPipelineFlag, "no-pipeline", false, "Reference each source file instead of the combined bundle")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	rootCmd.MarkFlagsMutuallyExclusive("pipeline", "no-pipeline")

	rootCmd.AddCommand(NewRenderCmd())
	rootCmd.AddCommand(NewRoutesCmd())
	rootCmd.AddCommand(NewFingerprintCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands fall back to defaults
	}
	bundlerConfig = loaded

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:   configFlag,
		WebRootFlag:  webRootFlag,
		ManifestFlag: manifestFlag,
		HashFlag:     hashFlag,
		PipelineFlag: pipelineOverride(cmd),
		Config:       bundlerConfig,
	})
	if err != nil {
		return reportError("invalid configuration", err)
	}
	resolvedConfig = resolved

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if bundlerConfig != nil && bundlerConfig.Log.Timestamps != nil {
		logCfg.Timestamps = bundlerConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		config.LogResolvedValues(resolvedConfig.Values())
	}

	return nil
}

// pipelineOverride returns the mode requested on the command line, or nil.
func pipelineOverride(cmd *cobra.Command) *bool {
	switch {
	case cmd.Flags().Changed("no-pipeline"):
		return output.BoolPtr(!noPipelineFlag)
	case cmd.Flags().Changed("pipeline"):
		return output.BoolPtr(pipelineFlag)
	default:
		return nil
	}
}

// GetConfig returns the loaded configuration file values.
func GetConfig() *config.Config {
	return bundlerConfig
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	return resolvedConfig
}
