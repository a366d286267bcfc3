package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"wordtree/internal/taxonomy"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the taxonomy loads and summarize its shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := GetAppFromContext(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get app instance: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking taxonomy...")

			root, err := appInstance.LoadTaxonomy()
			if err != nil {
				return fmt.Errorf("taxonomy check failed: %w", err)
			}
			stats := taxonomy.Collect(root)

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Metric", "Value"})
			table.SetBorder(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.AppendBulk([][]string{
				{"Top-level categories", strconv.Itoa(stats.Categories)},
				{"Branches", strconv.Itoa(stats.Branches)},
				{"Leaves", strconv.Itoa(stats.Leaves)},
				{"Words", strconv.Itoa(stats.Words)},
				{"Ignored values", strconv.Itoa(stats.Other)},
				{"Max depth", strconv.Itoa(stats.MaxDepth)},
			})
			table.Render()

			fmt.Fprintln(out, "Taxonomy loaded successfully.")
			return nil
		},
	}
}
