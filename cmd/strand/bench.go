package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/strand/internal/app"
)

func (c *cli) newBenchCmd() *cobra.Command {
	var (
		format   string
		trials   int
		enzyme   string
		variants []string
	)

	cmd := &cobra.Command{
		Use:   "bench [file|-]",
		Short: "Benchmark splice and scan across variants",
		Long: `Runs CutAndSplice with doubling splicee lengths and a sequential
CharAt scan for each variant, then prints a report.

The report is a table on a terminal and JSON otherwise, unless --format
or bench.format says differently.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]any{}
			if cmd.Flags().Changed("trials") {
				overrides["bench.trials"] = trials
			}
			if cmd.Flags().Changed("enzyme") {
				overrides["bench.enzyme"] = enzyme
			}
			if cmd.Flags().Changed("variants") {
				overrides["bench.variants"] = variants
			}

			a, err := c.newApp(overrides)
			if err != nil {
				return err
			}
			_, err = a.Bench(cmd.Context(), app.BenchRequest{
				Source: sourceArg(args, 0),
				Format: format,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "report format (text, json, yaml)")
	cmd.Flags().IntVarP(&trials, "trials", "n", 0, "trials per measurement")
	cmd.Flags().StringVarP(&enzyme, "enzyme", "e", "", "restriction enzyme to cut at")
	cmd.Flags().StringSliceVar(&variants, "variants", nil, "variants to benchmark (default all)")
	return cmd
}
