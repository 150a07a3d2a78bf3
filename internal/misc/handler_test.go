package misc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/revivecare/revivecare/internal/auth"
	"github.com/revivecare/revivecare/internal/middleware"
)

// use TestMain(m *testing.M) { ... } for
// global set-up/tear-down for all the tests in a package
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewMiscHandler(t *testing.T) {
	mainRouter := mux.NewRouter()
	handler := NewHandler("dummy", nil, nil)
	handler.SetupRoutes(mainRouter)
	require.NotNil(t, handler)
	require.NotNil(t, mainRouter)

	for caseName, route := range map[string]struct {
		name   string
		path   string
		method string
	}{
		"route-root": {
			name:   "root",
			path:   "/",
			method: "GET",
		},
		"route-version": {
			name:   "version",
			path:   "/version",
			method: "GET",
		},
		"route-health": {
			name:   "health",
			path:   "/health/",
			method: "GET",
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			r := mainRouter.Get(route.name)
			require.NotNil(t, r)
			gotPath, err := r.GetPathTemplate()
			require.NoError(t, err)
			assert.Equal(t, route.path, gotPath)

			gotMethods, err := r.GetMethods()
			require.NoError(t, err)
			assert.Contains(t, gotMethods, route.method)
		})
	}
}

func TestHandler_Root(t *testing.T) {
	mainRouter := mux.NewRouter()
	NewHandler("dummy", nil, nil).SetupRoutes(mainRouter)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	mainRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "I'm OK, thanks ;)", rec.Body.String())
}

func TestHandler_Version(t *testing.T) {
	mainRouter := mux.NewRouter()
	NewHandler("v1.2.3", nil, nil).SetupRoutes(mainRouter)

	req := httptest.NewRequest("GET", "/version", nil)
	rec := httptest.NewRecorder()
	mainRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3", rec.Body.String())
}

func TestHandler_Health_NoDatabase(t *testing.T) {
	loginChecker := auth.NewLoginTestChecker()
	loginChecker.PatientsByToken["patient-token"] = 42
	authMiddleware := middleware.NewAuthMiddlewareHandler(loginChecker)

	mainRouter := mux.NewRouter()
	mainRouter.Use(authMiddleware.AuthCheck())
	NewHandler("dummy", nil, nil).SetupRoutes(mainRouter)

	req := httptest.NewRequest("GET", "/health/", nil)
	rec := httptest.NewRecorder()
	mainRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{
		"success": false,
		"status": "error",
		"db_connected": false,
		"db_error": "database not configured",
		"message": "Database connection error",
		"authenticated": false
	}`, rec.Body.String())

	// with a valid session the authenticated flag flips
	req = httptest.NewRequest("GET", "/health/", nil)
	req.Header.Set("X-REVIVECARE-TOKEN", "patient-token")
	rec = httptest.NewRecorder()
	mainRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
}
