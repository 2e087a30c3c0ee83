package main

import (
	"encoding/json"
	"fmt"
	"os"

	"specforge/internal/table"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var parseJSONOut bool

// parseCmd normalizes a decision table file and prints a summary.
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a decision table file into the canonical model",
	Long: `Parses a CSV, JSON or Markdown decision table and prints a summary of the
resulting test cases. With --json the full canonical document is printed
instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSONOut, "json", false, "print the canonical JSON document")
}

func runParse(cmd *cobra.Command, args []string) error {
	tbl, err := table.NewParser(logger).ParseFile(args[0])
	if err != nil {
		return err
	}

	if parseJSONOut {
		data, err := json.MarshalIndent(tbl, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Feature: %s\n", tbl.Feature)
	if tbl.Description != "" {
		fmt.Printf("Description: %s\n", tbl.Description)
	}
	fmt.Printf("Source: %s (%s), %d test cases\n\n", tbl.Metadata.Source, tbl.Metadata.Format, len(tbl.TestCases))

	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"ID", "NAME", "PRIORITY", "CONDITIONS", "ACTIONS", "EXPECTED", "TAGS"})
	for _, tc := range tbl.TestCases {
		tw.Append([]string{
			tc.ID,
			tc.Name,
			string(tc.Priority),
			fmt.Sprintf("%d", len(tc.Conditions)),
			fmt.Sprintf("%d", len(tc.Actions)),
			fmt.Sprintf("%d", len(tc.ExpectedResults)),
			fmt.Sprintf("%d", len(tc.Tags)),
		})
	}
	tw.Render()
	return nil
}
