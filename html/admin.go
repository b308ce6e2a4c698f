package html

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"cptui.GO/api"
	"cptui.GO/app"
	"cptui.GO/config"
	"cptui.GO/core/auth"
	apperr "cptui.GO/core/errors"
	"cptui.GO/editor"
	"cptui.GO/hooks"
	"cptui.GO/html/parts"
)

func init() {
	api.RegisterHTMLModule(RegisterAdminHTMLRoutes)
}

type adminPage struct {
	AppName       string
	Title         string
	Label         string
	BasePath      string
	CSS           template.CSS
	Edit          bool
	Names         []string
	Selected      string
	SelectedParam string
	Form          template.HTML
	Error         string
	Saved         string
}

// RegisterAdminHTMLRoutes registers the post type and taxonomy editor pages.
// Both use the same auth as the /api group.
func RegisterAdminHTMLRoutes(e *echo.Echo, a *app.App) {
	g := e.Group("/admin", auth.Middleware())

	g.GET("/:kind", func(c echo.Context) error {
		kind, err := hooks.ParseKind(c.Param("kind"))
		if err != nil {
			return c.String(http.StatusNotFound, err.Error())
		}
		query := c.QueryParams()
		return renderAdmin(c, a.Editor, http.StatusOK, kind, query, "", query.Get("saved"))
	})

	g.POST("/:kind", func(c echo.Context) error {
		kind, err := hooks.ParseKind(c.Param("kind"))
		if err != nil {
			return c.String(http.StatusNotFound, err.Error())
		}
		values, err := c.FormParams()
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid form")
		}
		name, err := a.Editor.Save(c.Request().Context(), kind, values)
		if err != nil {
			status := http.StatusInternalServerError
			if apperr.IsInvalidInput(err) {
				status = http.StatusBadRequest
			} else {
				log.Println("Save error:", err)
			}
			return renderAdmin(c, a.Editor, status, kind, c.QueryParams(), err.Error(), "")
		}
		next := url.Values{}
		next.Set("action", "edit")
		next.Set(kind.SelectedParam(), name)
		next.Set("saved", name)
		return c.Redirect(http.StatusSeeOther, "/admin/"+kind.String()+"?"+next.Encode())
	})
}

func renderAdmin(c echo.Context, ed *editor.Service, status int, kind hooks.Kind, query url.Values, errMsg, saved string) error {
	ctx := c.Request().Context()
	var form bytes.Buffer
	if err := ed.RenderForm(ctx, &form, kind, query); err != nil {
		log.Println("Render error:", err)
		return c.String(http.StatusInternalServerError, "Error rendering form")
	}
	page := adminPage{
		AppName:       config.App().AppName,
		Label:         kind.Label(),
		BasePath:      "/admin/" + kind.String(),
		CSS:           parts.GetCriticalCSS(),
		Edit:          editor.IsEdit(query),
		SelectedParam: kind.SelectedParam(),
		Form:          template.HTML(form.String()),
		Error:         errMsg,
		Saved:         saved,
	}
	page.Title = "Add/Edit " + page.Label + "s"
	if kind == hooks.KindTaxonomy {
		page.Title = "Add/Edit Taxonomies"
	}
	if page.Edit {
		names, err := ed.Names(ctx, kind)
		if err != nil {
			log.Println("Repo error:", err)
			return c.String(http.StatusInternalServerError, "Error loading records")
		}
		page.Names = names
		page.Selected, _ = ed.Current(ctx, kind, query)
	}
	return c.Render(status, "admin.html", page)
}
