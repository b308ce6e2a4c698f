package contenttype

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cptui.GO/app"
	"cptui.GO/hooks"
	"cptui.GO/settings"
)

func contentTypeTestServer(t *testing.T) (*echo.Echo, *app.App) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	reg := hooks.NewRegistry()
	settings.New().Init(reg)
	reg.Lock()
	a := app.Assemble(db, reg, nil, nil)
	if err := a.Records.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	e := echo.New()
	RegisterContentTypeRoutes(e.Group("/api"), a)
	return e, a
}

func seed(t *testing.T, a *app.App) {
	t.Helper()
	ctx := context.Background()
	for _, v := range []url.Values{
		{"cpt_custom_post_type[name]": {"book"}, "cpt_custom_post_type[show_in_graphql]": {"1"}, "cpt_custom_post_type[graphql_single_name]": {"Book"}},
		{"cpt_custom_post_type[name]": {"draft"}, "cpt_custom_post_type[show_in_graphql]": {"0"}},
	} {
		if _, err := a.Editor.Save(ctx, hooks.KindPostType, v); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
}

func do(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegistrations_List(t *testing.T) {
	e, a := contentTypeTestServer(t)
	seed(t, a)

	rec := do(e, http.MethodGet, "/api/registrations/post_types")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Items      []RegistrationResponse `json:"items"`
		TotalCount int                    `json:"total_count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.TotalCount != 2 || len(body.Items) != 2 {
		t.Fatalf("total_count = %d, want 2", body.TotalCount)
	}
	if body.Items[0].Name != "book" || !body.Items[0].ShowInGraphQL || body.Items[0].GraphQLSingleName != "Book" {
		t.Errorf("items[0] = %+v", body.Items[0])
	}
	if body.Items[1].Name != "draft" || body.Items[1].ShowInGraphQL {
		t.Errorf("items[1] = %+v", body.Items[1])
	}
	if _, ok := body.Items[1].Args["graphql_plural_name"]; !ok {
		t.Error("args missing graphql_plural_name key")
	}

	rec = do(e, http.MethodGet, "/api/registrations/post_type?graphql=1")
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.TotalCount != 1 {
		t.Errorf("graphql-only total_count = %d, want 1", body.TotalCount)
	}
}

func TestRegistrations_Get(t *testing.T) {
	e, a := contentTypeTestServer(t)
	seed(t, a)

	rec := do(e, http.MethodGet, "/api/registrations/post_type/book")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got RegistrationResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Kind != "post_type" || got.Name != "book" {
		t.Errorf("got = %+v", got)
	}

	if rec := do(e, http.MethodGet, "/api/registrations/post_type/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want 404", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/api/registrations/widgets/book"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad kind status = %d, want 400", rec.Code)
	}
}

func TestRecords_Delete(t *testing.T) {
	e, a := contentTypeTestServer(t)
	seed(t, a)

	if rec := do(e, http.MethodDelete, "/api/records/post_type/draft"); rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/api/registrations/post_type/draft"); rec.Code != http.StatusNotFound {
		t.Errorf("after delete status = %d, want 404", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/api/records/post_type/draft"); rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}
