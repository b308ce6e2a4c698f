package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cptui.GO/app"
	"cptui.GO/hooks"
	"cptui.GO/service/registration"
)

var (
	listKind        string
	listGraphQLOnly bool
)

var registrationsListCmd = &cobra.Command{
	Use:   "registrations:list",
	Short: "List live post type and taxonomy registrations with their GraphQL settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := hooks.Kinds()
		if listKind != "" {
			kind, err := hooks.ParseKind(listKind)
			if err != nil {
				return err
			}
			kinds = []hooks.Kind{kind}
		}
		a, err := app.New()
		if err != nil {
			return err
		}
		ctx := context.Background()
		var all []registration.Registration
		for _, kind := range kinds {
			regs, err := a.Editor.Registrations(ctx, kind)
			if err != nil {
				return err
			}
			all = append(all, regs...)
		}
		return printRegistrations(cmd, all, listGraphQLOnly)
	},
}

func printRegistrations(cmd *cobra.Command, regs []registration.Registration, graphqlOnly bool) error {
	if graphqlOnly {
		regs = registration.Filter(regs)
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME\tSHOW_IN_GRAPHQL\tSINGLE\tPLURAL")
	for _, r := range regs {
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%s\n", r.Kind, r.Name, r.ShowInGraphQL(), r.SingleName(), r.PluralName())
	}
	return w.Flush()
}

func init() {
	registrationsListCmd.Flags().StringVarP(&listKind, "kind", "k", "", "post_type or taxonomy (default: both)")
	registrationsListCmd.Flags().BoolVar(&listGraphQLOnly, "graphql", false, "only registrations exposed to GraphQL")
	Register(registrationsListCmd)
}
