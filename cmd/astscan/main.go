package main

import (
	"os"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
