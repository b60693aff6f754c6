package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"hotelhub-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// buildAdminTestApp wires the admin party with the real role middleware
// and a stub handler, so the RBAC checks run without a database.
func buildAdminTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	ok := func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/dashboard", ok)
	}

	staff := app.Party("/api/staff-area", accessTokenVerifierMiddleware, utils.StaffOnlyMiddleware)
	{
		staff.Get("/ping", ok)
	}

	return app
}

func signTestToken(role string) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(utils.AccessToken{ID: 1, Role: role})
	return string(token)
}

func doRequest(t *testing.T, app *iris.Application, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestAdminPartyRBAC(t *testing.T) {
	app := buildAdminTestApp()
	if err := app.Build(); err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	if resp := doRequest(t, app, "/api/admin/dashboard", ""); resp.Code == http.StatusOK {
		t.Fatalf("expected non-200 without token, got %d", resp.Code)
	}

	if resp := doRequest(t, app, "/api/admin/dashboard", signTestToken("customer")); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer role, got %d", resp.Code)
	}

	if resp := doRequest(t, app, "/api/admin/dashboard", signTestToken("receptionist")); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for receptionist role, got %d", resp.Code)
	}

	if resp := doRequest(t, app, "/api/admin/dashboard", signTestToken("admin")); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin role, got %d", resp.Code)
	}
}

func TestStaffPartyRBAC(t *testing.T) {
	app := buildAdminTestApp()
	if err := app.Build(); err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	if resp := doRequest(t, app, "/api/staff-area/ping", signTestToken("customer")); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer role, got %d", resp.Code)
	}

	for _, role := range []string{"staff", "receptionist", "admin"} {
		if resp := doRequest(t, app, "/api/staff-area/ping", signTestToken(role)); resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s role, got %d", role, resp.Code)
		}
	}
}
