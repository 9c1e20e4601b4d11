package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/model"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/pipeline"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/stream"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Run the AST pipeline over a source file and emit its nodes",
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
		outPath, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")

		strategy, err := reg.Lookup(engineName)
		if err != nil {
			return err
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

		w, closer, err := openOut(outPath)
		if err != nil {
			return err
		}
		defer closer()

		return writeOutput(w, format, out)
	},
}

func init() {
	inspectCmd.Flags().String("engine", "", "Analysis engine to use (default from config)")
	inspectCmd.Flags().String("language", "apex", "Source language identifier")
	inspectCmd.Flags().String("file", "-", "Source file to analyze, or - for stdin")
	inspectCmd.Flags().String("out", "", "Output path (default stdout)")
	inspectCmd.Flags().String("format", "jsonl", "Output format: jsonl or json")
	rootCmd.AddCommand(inspectCmd)
}

func readSource(file string) (string, error) {
	if file == "" || file == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(b), nil
}

func openOut(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func writeOutput(w io.Writer, format string, out model.PipelineOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "jsonl":
		if err := stream.NewJSONLEmitter[model.AstNode](w, nil).Emit(out.Nodes); err != nil {
			return err
		}
		return stream.NewJSONLEmitter[model.NodeMetadata](w, nil).Emit(out.Metadata)
	default:
		return fmt.Errorf("unknown format '%s': want jsonl or json", format)
	}
}
