package contenttype

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"cptui.GO/api"
	"cptui.GO/app"
	apperr "cptui.GO/core/errors"
	"cptui.GO/hooks"
	"cptui.GO/service/registration"
)

func init() {
	api.RegisterModule(RegisterContentTypeRoutes)
}

// RegistrationResponse is one live registration as served over JSON.
type RegistrationResponse struct {
	Kind              string     `json:"kind"`
	Name              string     `json:"name"`
	ShowInGraphQL     bool       `json:"show_in_graphql"`
	GraphQLSingleName string     `json:"graphql_single_name"`
	GraphQLPluralName string     `json:"graphql_plural_name"`
	Args              hooks.Args `json:"args"`
}

func toResponse(r registration.Registration) RegistrationResponse {
	return RegistrationResponse{
		Kind:              r.Kind.String(),
		Name:              r.Name,
		ShowInGraphQL:     r.ShowInGraphQL(),
		GraphQLSingleName: r.SingleName(),
		GraphQLPluralName: r.PluralName(),
		Args:              r.Args,
	}
}

func RegisterContentTypeRoutes(apiGroup *echo.Group, a *app.App) {
	// GET /api/registrations/:kind – every stored record of kind after pre_register
	apiGroup.GET("/registrations/:kind", func(c echo.Context) error {
		start := time.Now()
		kind, err := hooks.ParseKind(c.Param("kind"))
		if err != nil {
			return errorJSON(c, err)
		}
		regs, err := a.Editor.Registrations(c.Request().Context(), kind)
		if err != nil {
			return errorJSON(c, err)
		}
		if c.QueryParam("graphql") == "1" {
			regs = registration.Filter(regs)
		}
		items := make([]RegistrationResponse, 0, len(regs))
		for _, r := range regs {
			items = append(items, toResponse(r))
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, echo.Map{"items": items, "total_count": len(items)})
	})

	// GET /api/registrations/:kind/:name
	apiGroup.GET("/registrations/:kind/:name", func(c echo.Context) error {
		kind, err := hooks.ParseKind(c.Param("kind"))
		if err != nil {
			return errorJSON(c, err)
		}
		r, err := a.Editor.Registration(c.Request().Context(), kind, c.Param("name"))
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(r))
	})

	// DELETE /api/records/:kind/:name – auth required via /api middleware
	apiGroup.DELETE("/records/:kind/:name", func(c echo.Context) error {
		kind, err := hooks.ParseKind(c.Param("kind"))
		if err != nil {
			return errorJSON(c, err)
		}
		if err := a.Editor.Delete(c.Request().Context(), kind, c.Param("name")); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case apperr.IsNotFound(err):
		status = http.StatusNotFound
	case apperr.IsInvalidInput(err):
		status = http.StatusBadRequest
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
