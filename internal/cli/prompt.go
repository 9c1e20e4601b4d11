package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/engine"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/model"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/pipeline"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Run the AST pipeline and print the rule-generation prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, reg, err := setup(cmd)
		if err != nil {
			return err
		}

		engineName, _ := cmd.Flags().GetString("engine")
		if engineName == "" {
			engineName = cfg.Engine
		}
		language, _ := cmd.Flags().GetString("language")
		file, _ := cmd.Flags().GetString("file")

		strategy, err := reg.Lookup(engineName)
		if err != nil {
			return err
		}
		if strategy.Prompts == nil {
			return fmt.Errorf("engine '%s' has no prompt builder", engineName)
		}

		code, err := readSource(file)
		if err != nil {
			return err
		}

		pl, err := pipeline.New(strategy, log)
		if err != nil {
			return err
		}
		out, err := pl.Run(cmd.Context(), model.PipelineInput{Code: code, Language: language})
		if err != nil {
			return err
		}

		text, err := strategy.Prompts.Build(engine.PromptInput{
			Engine:   engineName,
			Language: language,
			Nodes:    out.Nodes,
			Metadata: out.Metadata,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	promptCmd.Flags().String("engine", "", "Analysis engine to use (default from config)")
	promptCmd.Flags().String("language", "apex", "Source language identifier")
	promptCmd.Flags().String("file", "-", "Source file to analyze, or - for stdin")
	rootCmd.AddCommand(promptCmd)
}
