package misc

import (
	"encoding/json"
	"net/http"

	"github.com/revivecare/revivecare/internal/auth"
	"github.com/revivecare/revivecare/internal/telemetry/tracing"
	"github.com/revivecare/revivecare/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type healthResponse struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	DBConnected   bool   `json:"db_connected"`
	DBError       string `json:"db_error,omitempty"`
	Message       string `json:"message"`
	Authenticated bool   `json:"authenticated"`
}

type Handler struct {
	versionInfo string
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
}

func NewHandler(
	versionInfo string,
	dbPool *pgxpool.Pool,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		dbPool:      dbPool,
		redisClient: redisClient,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health/", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	resp := healthResponse{
		Success:     true,
		Status:      "ok",
		DBConnected: true,
		Message:     "ReviveCare API is running",
	}

	if handler.dbPool == nil {
		resp.DBError = "database not configured"
	} else if err := handler.dbPool.Ping(ctx); err != nil {
		resp.DBError = err.Error()
	}
	if resp.DBError != "" {
		resp.Success = false
		resp.Status = "error"
		resp.DBConnected = false
		resp.Message = "Database connection error"
		span.SetStatus(codes.Error, resp.DBError)
	}

	if handler.redisClient != nil {
		if err := handler.redisClient.Ping(ctx).Err(); err != nil {
			log.Errorf("health check, redis ping: %s", err)
		}
	}

	_, resp.Authenticated = auth.PatientIDFromContext(ctx)

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal health response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusOK
	if !resp.DBConnected {
		statusCode = http.StatusServiceUnavailable
	}
	pkg.WriteResponse(w, pkg.ContentType.JSON, string(respJson), statusCode)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
