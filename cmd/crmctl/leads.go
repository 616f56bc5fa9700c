package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/usecase"
)

func newLeadsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "List, register and move mandates",
	}
	cmd.AddCommand(newLeadsListCmd(e), newLeadsAddCmd(e), newLeadsStatusCmd(e))
	return cmd
}

func newLeadsListCmd(e *env) *cobra.Command {
	var query, residency, scope, role string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := e.report.Search(cmd.Context(), usecase.SearchInput{
				Role:      entity.Role(role),
				Query:     query,
				Residency: residency,
				Scope:     scope,
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCLIENT\tRESIDENCY\tSTAGE\tVALUE")
			for _, l := range out.Leads {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", l.ID, l.FullName(), l.ResidencyStatus, l.Status, l.EstimatedValue)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&query, "q", "", "name contains (case-insensitive)")
	cmd.Flags().StringVar(&residency, "residency", "ALL", "ALL, HNI or NRI")
	cmd.Flags().StringVar(&scope, "scope", "", "console view (defaults to the role's landing view)")
	cmd.Flags().StringVar(&role, "role", string(entity.Principal), "desk role")
	return cmd
}

func newLeadsAddCmd(e *env) *cobra.Command {
	var in entity.LeadInput
	var band, residency string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an enquiry as a Prospect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.NetWorthBand = entity.NetWorthBand(band)
			in.ResidencyStatus = entity.Residency(residency)

			out, err := e.capture.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nid=%s status=%s value=%d\n", out.Message, out.ID, out.Status, out.EstimatedValue)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.FirstName, "first", "", "first name")
	f.StringVar(&in.LastName, "last", "", "last name")
	f.StringVar(&in.Email, "email", "", "e-mail")
	f.StringVar(&in.Phone, "phone", "", "phone")
	f.StringVar(&in.InvestmentCeiling, "ceiling", "", `investment ceiling label, e.g. "$20M - $50M"`)
	f.StringVar(&band, "band", "", "net worth band")
	f.StringVar(&residency, "residency", "", "HNI, NRI or Foreign National")
	f.StringVar(&in.PropertyInterest, "interest", "", "property of interest")
	f.StringVar(&in.Message, "message", "", "mandate notes")
	for _, name := range []string{"first", "last", "email", "phone"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newLeadsStatusCmd(e *env) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "status <id> <level>",
		Short: "Move a mandate to another stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := e.status.Execute(cmd.Context(), usecase.UpdateStatusInput{
				LeadID: args[0],
				Status: args[1],
				Role:   entity.Role(role),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", out.LeadID, out.PreviousStatus, out.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "desk role approving the change")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
