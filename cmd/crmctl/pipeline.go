package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/policy"
)

func newPipelineCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Settlement ledger and capital funnel",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ledger",
		Short: "Show the settlement ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := e.report.Ledger(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Active mandates\t%d\n", l.ActiveCount)
			fmt.Fprintf(tw, "Closed mandates\t%d\n", l.ClosedCount)
			fmt.Fprintf(tw, "Total opportunity\t%d\n", l.TotalOpportunityValue)
			fmt.Fprintf(tw, "Weighted pipeline revenue\t%.0f\n", l.WeightedPipelineRevenue)
			fmt.Fprintf(tw, "Total settled\t%d\n", l.TotalSettledValue)
			fmt.Fprintf(tw, "Commission\t%.0f\n", l.TotalCommission)
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "funnel",
		Short: "Show the capital funnel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := e.report.Funnel(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STAGE\tCOUNT\tPROBABILITY\tWEIGHTED")
			for _, s := range f.Stages {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%.0f\n", s.Level, s.Count, s.ProbabilityLabel, s.WeightedValue)
			}
			return tw.Flush()
		},
	})

	return cmd
}

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "roles",
		Short:       "List desk roles and their views",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"offline": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ROLE\tLANDING\tVIEWS")
			for _, r := range entity.Roles() {
				views := policy.Views(r)
				labels := make([]string, 0, len(views))
				for _, v := range views {
					labels = append(labels, v.Label())
				}
				fmt.Fprintf(tw, "%s\t%s\t%v\n", r, policy.DefaultView(r).Label(), labels)
			}
			return tw.Flush()
		},
	}
}
