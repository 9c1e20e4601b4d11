package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/config"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/engine"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/engine/pmd"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "astscan",
	Short: "Flatten source ASTs into queryable node lists",
	Long: `astscan runs a source-analysis engine over a piece of code, flattens the
engine's XML AST dump into an ordered, ancestry-annotated node list, and
enriches it with per-node-type metadata for downstream rule generation.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+config.DefaultPath+")")
}

// setup loads configuration and builds the logger and engine registry for
// a command invocation.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, *engine.Registry, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logging.New(os.Stderr, verbose)

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	reg := engine.NewRegistry().Register(
		pmd.NewStrategy(cfg.PMD.Binary, cfg.PMD.MaxOutputBytes),
	)
	return cfg, log, reg, nil
}
