package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/bundler/internal/config"
	oerrors "github.com/opmodel/bundler/internal/errors"
	"github.com/opmodel/bundler/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage bundler configuration",
		Long: `Manage bundler configuration.

Settings resolve with precedence flag > BUNDLER_* environment > bundler.yaml > default.`,
	}

	c.AddCommand(NewConfigInitCmd())
	c.AddCommand(NewConfigShowCmd())

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a bundler configuration file",
		Long: `Create a bundler configuration file with default values.

The file is created at ./bundler.yaml by default.
Use --config to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(c *cobra.Command, force bool) error {
	configFile := configFlag
	if configFile == "" {
		configFile = config.GetConfigFile()
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.ExitError{
			Code: ExitGeneralError,
			Err:  fmt.Errorf("config file already exists at %s (use --force to overwrite)", expandedPath),
		}
	}

	if dir := filepath.Dir(expandedPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	header := []byte("# bundler configuration\n# Environment variables BUNDLER_* and command-line flags take precedence.\n\n")
	data = append(header, data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+expandedPath))
	return nil
}

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Show each configuration value with the source it was taken from.
Values from lower-precedence sources that were overridden are listed as shadowed.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
}

func runConfigShow(c *cobra.Command, _ []string) error {
	rc := GetResolvedConfig()
	if rc == nil {
		return &oerrors.ExitError{Code: ExitGeneralError, Err: fmt.Errorf("configuration not resolved")}
	}

	tbl := output.NewTable("KEY", "VALUE", "SOURCE", "SHADOWED")
	for _, v := range rc.Values() {
		tbl.Row(v.Key, v.Value, string(v.Source), formatShadowed(v.Shadowed))
	}
	tbl.Row("parallelism", fmt.Sprint(rc.Parallelism), "", "")

	fmt.Fprintln(c.OutOrStdout(), tbl.String())
	return nil
}

// formatShadowed renders shadowed values in precedence order.
func formatShadowed(shadowed map[config.ConfigSource]string) string {
	order := map[config.ConfigSource]int{
		config.SourceFlag:    0,
		config.SourceEnv:     1,
		config.SourceConfig:  2,
		config.SourceDefault: 3,
	}
	sources := make([]config.ConfigSource, 0, len(shadowed))
	for s := range shadowed {
		sources = append(sources, s)
	}
	sort.Slice(sources, func(i, j int) bool { return order[sources[i]] < order[sources[j]] })

	out := ""
	for i, s := range sources {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%s", s, shadowed[s])
	}
	return out
}
