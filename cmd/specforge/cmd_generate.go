package main

import (
	"fmt"

	"specforge/internal/codegen"
	"specforge/internal/config"
	"specforge/internal/steps"
	"specforge/internal/table"

	"github.com/spf13/cobra"
)

var (
	genStepsFile  string
	genConfigFile string
	genFramework  string
	genOutput     string
	genLanguage   string
	genStyle      string
)

// generateCmd parses a table, loads steps, and writes test modules.
var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate test code from a decision table and a steps file",
	Long: `Parses a decision table, joins its test cases with the step sequences from
--steps, and writes one test module per tag bucket to the output directory.

Test cases without a matching step sequence are skipped and reported as
warnings; they still count toward the reported total.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genStepsFile, "steps", "", "YAML or JSON file with test step sequences (required)")
	generateCmd.Flags().StringVar(&genConfigFile, "config", "", "YAML generation config file")
	generateCmd.Flags().StringVar(&genFramework, "framework", "", "target framework: playwright, api or both")
	generateCmd.Flags().StringVar(&genOutput, "out", "", "output directory")
	generateCmd.Flags().StringVar(&genLanguage, "language", "", "generated language: typescript or javascript")
	generateCmd.Flags().StringVar(&genStyle, "style", "", "code style: standard, page-object or screenplay")
	_ = generateCmd.MarkFlagRequired("steps")
}

// generationConfig merges the config file (when given) with flag overrides.
func generationConfig() (config.Generation, error) {
	cfg := config.Default()
	if genConfigFile != "" {
		loaded, err := config.Load(genConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if genFramework != "" {
		cfg.Framework = config.Framework(genFramework)
	}
	if genOutput != "" {
		cfg.OutputPath = genOutput
	}
	if genLanguage != "" {
		cfg.Language = config.Language(genLanguage)
	}
	if genStyle != "" {
		cfg.Style = config.Style(genStyle)
	}
	return cfg, cfg.Validate()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := generationConfig()
	if err != nil {
		return err
	}

	tbl, err := table.NewParser(logger).ParseFile(args[0])
	if err != nil {
		return err
	}
	stepSets, err := steps.LoadFile(genStepsFile)
	if err != nil {
		return err
	}

	res := codegen.New(cfg, logger).Generate(tbl, stepSets)
	printResult(res)
	if !res.Success {
		return fmt.Errorf("generation finished with %d error(s)", len(res.Errors))
	}
	return nil
}

func printResult(res *codegen.Result) {
	for _, f := range res.Files {
		fmt.Printf("wrote %s (%s, %d tests)\n", f.Path, f.Framework, f.TestCount)
	}
	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, e := range res.Errors {
		fmt.Printf("error: %s\n", e)
	}
	fmt.Printf("%d of %d test cases generated across %d file(s)\n", generatedCount(res), res.TotalTests, len(res.Files))
}

func generatedCount(res *codegen.Result) int {
	n := 0
	for _, f := range res.Files {
		n += f.TestCount
	}
	return n
}
