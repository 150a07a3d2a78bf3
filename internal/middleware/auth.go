package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/revivecare/revivecare/internal/auth"
	"github.com/revivecare/revivecare/internal/telemetry/tracing"
	"github.com/revivecare/revivecare/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// AuthMiddlewareHandler resolves the session token into request identity.
// Patient identity is attached to the context and the handlers decide what
// requires it; doctor-only paths are enforced here.
type AuthMiddlewareHandler struct {
	checker        auth.Checker
	publicPaths    map[string]bool
	doctorPrefixes []string
}

func NewAuthMiddlewareHandler(checker auth.Checker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		checker: checker,
		// no session lookup needed for these
		publicPaths: map[string]bool{
			"/":               true,
			"/version":        true,
			"/exercises/":     true,
			"/patient/login/": true,
			"/doctor/login/":  true,
		},
		doctorPrefixes: []string{
			"/patients/",
		},
	}
}

func (h *AuthMiddlewareHandler) isDoctorOnly(path string) bool {
	for _, prefix := range h.doctorPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.publicPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			authToken := r.Header.Get("X-REVIVECARE-TOKEN")

			if h.isDoctorOnly(r.URL.Path) {
				isDoctor, err := h.checker.IsDoctor(ctx, authToken)
				if err != nil && !errors.Is(err, auth.ErrNotLoggedIn) {
					log.Errorf("[auth middleware] doctor check => %s: %s", r.URL.Path, err)
				}
				if !isDoctor {
					log.Tracef("[auth middleware] unauthorized doctor access => %s", r.URL.Path)
					writeNotAuthenticated(w)
					span.SetStatus(codes.Error, "not-doctor")
					return
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if authToken != "" {
				patientID, err := h.checker.PatientID(ctx, authToken)
				switch {
				case err == nil:
					ctx = auth.SetPatientID(ctx, patientID)
				case errors.Is(err, auth.ErrNotLoggedIn):
					log.Tracef("[auth middleware] stale token => %s", r.URL.Path)
				default:
					log.Errorf("[auth middleware] login check => %s: %s", r.URL.Path, err)
				}
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeNotAuthenticated(w http.ResponseWriter) {
	errJson, err := json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Error: "Not authenticated"})
	if err != nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.JSON, string(errJson), http.StatusUnauthorized)
}
