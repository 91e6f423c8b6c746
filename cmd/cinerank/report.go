package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/rewired-gh/cinerank/internal/report"
)

var (
	reportTop   int
	reportYears int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Extract the chart once and print the aggregates as tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := loadTable(cmd.Context(), cfg.Source)
		if err != nil {
			return err
		}

		opts := report.Options{TopN: reportTop, Years: reportYears}
		if !cmd.Flags().Changed("top") {
			opts.TopN = cfg.Dashboard.TopNDefault
		}
		if !cmd.Flags().Changed("years") {
			opts.Years = cfg.Dashboard.YearDefault
		}

		if err := report.Write(cmd.OutOrStdout(), table, opts); err != nil {
			return eris.Wrap(err, "report")
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportTop, "top", 10, "number of top rated movies to list")
	reportCmd.Flags().IntVar(&reportYears, "years", 5, "number of busiest release years to list")
	rootCmd.AddCommand(reportCmd)
}
