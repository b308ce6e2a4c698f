package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"cptui.GO/app"
	"cptui.GO/form"
	"cptui.GO/hooks"
	"cptui.GO/service/transfer"
	"cptui.GO/settings"
)

var recordsMigrateCmd = &cobra.Command{
	Use:   "records:migrate",
	Short: "Create or upgrade the content type records schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		if err := a.Migrate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Records schema is up to date.")
		return nil
	},
}

var (
	setShow   string
	setSingle string
	setPlural string
)

var recordsSetGraphQLCmd = &cobra.Command{
	Use:   "records:set-graphql <kind> <name>",
	Short: "Update the GraphQL settings of a stored post type or taxonomy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := hooks.ParseKind(args[0])
		if err != nil {
			return err
		}
		a, err := app.New()
		if err != nil {
			return err
		}
		ctx := context.Background()
		rec, err := a.Records.FindByName(ctx, kind, args[1])
		if err != nil {
			return err
		}
		values := setGraphQLValues(kind, args[1], rec, cmd)
		name, err := a.Editor.Save(ctx, kind, values)
		if err != nil {
			return err
		}
		reg, err := a.Editor.Registration(ctx, kind, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: show_in_graphql=%v graphql_single_name=%q graphql_plural_name=%q\n",
			kind, name, reg.ShowInGraphQL(), reg.SingleName(), reg.PluralName())
		return nil
	},
}

// setGraphQLValues replays the stored record as a form submission with the
// flag overrides applied, so the save runs through the same hooks as the editor.
func setGraphQLValues(kind hooks.Kind, name string, rec hooks.Record, cmd *cobra.Command) url.Values {
	group := kind.FormGroup()
	values := url.Values{}
	set := func(field, v string) { values.Set(form.FieldName(group, field), v) }

	set("name", name)
	for _, field := range []string{"label", "singular_label", "description", "public"} {
		if v := rec.String(field); v != "" {
			set(field, v)
		}
	}
	attrs := settings.FromRecord(rec)
	show := attrs.ShowInGraphQL
	if cmd.Flags().Changed("show") {
		show = settings.Truthy(setShow)
	}
	set(settings.KeyShowInGraphQL, boolValue(show))
	set(settings.KeySingleName, attrs.SingleNameOr(""))
	if cmd.Flags().Changed("single") {
		set(settings.KeySingleName, setSingle)
	}
	set(settings.KeyPluralName, attrs.PluralNameOr(""))
	if cmd.Flags().Changed("plural") {
		set(settings.KeyPluralName, setPlural)
	}
	return values
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

var exportFormat string

var recordsExportCmd = &cobra.Command{
	Use:   "records:export [file]",
	Short: "Export stored records as YAML or JSON (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		var w io.Writer = cmd.OutOrStdout()
		format := transfer.FormatYAML
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
			format = transfer.FormatForPath(args[0])
		}
		if exportFormat != "" {
			if format, err = transfer.ParseFormat(exportFormat); err != nil {
				return err
			}
		}
		return transfer.Export(context.Background(), a.Records, w, format)
	},
}

var recordsImportCmd = &cobra.Command{
	Use:   "records:import <file>",
	Short: "Import records from a YAML or JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		ctx := context.Background()
		n, err := transfer.Import(ctx, a.Records, f, transfer.FormatForPath(args[0]))
		if err != nil {
			return err
		}
		if err := a.Editor.Warm(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records.\n", n)
		return nil
	},
}

func init() {
	recordsSetGraphQLCmd.Flags().StringVar(&setShow, "show", "", "show_in_graphql (true/false/1/0)")
	recordsSetGraphQLCmd.Flags().StringVar(&setSingle, "single", "", "graphql_single_name (empty clears it)")
	recordsSetGraphQLCmd.Flags().StringVar(&setPlural, "plural", "", "graphql_plural_name (empty clears it)")
	recordsExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "yaml or json (default from file extension, else yaml)")

	Register(recordsMigrateCmd, recordsSetGraphQLCmd, recordsExportCmd, recordsImportCmd)
}
