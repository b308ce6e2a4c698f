package custom

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"cptui.GO/api"
	"cptui.GO/cmd"
	gqlregistry "cptui.GO/graphql/registry"
	"cptui.GO/hooks"
	"cptui.GO/settings"
)

var points = []hooks.Point{hooks.PointRenderFields, hooks.PointBeforeUpdate, hooks.PointPreSave, hooks.PointPreRegister}

func init() {
	// GraphQL settings for post types and taxonomies
	settings.New().Init(hooks.Default())

	// GraphQL extension: subscriber counts per extension point
	gqlregistry.Register("extensionPoints", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return subscriberCounts(hooks.Default()), nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:hooks",
		Short: "List extension point subscribers per kind",
		Run: func(c *cobra.Command, args []string) {
			for kind, counts := range subscriberCounts(hooks.Default()) {
				for point, n := range counts {
					fmt.Fprintf(c.OutOrStdout(), "%s\t%s\t%d\n", kind, point, n)
				}
			}
		},
	})

	// HTTP route
	api.RegisterGET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func subscriberCounts(reg *hooks.Registry) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for _, kind := range hooks.Kinds() {
		counts := make(map[string]int, len(points))
		for _, p := range points {
			counts[string(p)] = reg.Count(p, kind)
		}
		out[kind.String()] = counts
	}
	return out
}
