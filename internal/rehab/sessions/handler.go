package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/revivecare/revivecare/internal/auth"
	"github.com/revivecare/revivecare/internal/telemetry/metrics"
	"github.com/revivecare/revivecare/internal/telemetry/tracing"
	"github.com/revivecare/revivecare/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sampleProcessor interface {
	ProcessSample(ctx context.Context, patientID int, update SampleUpdate) (int, error)
}

type historyAnalyzer interface {
	History(ctx context.Context, patientID int, limit int) ([]HistoryEntry, error)
}

const historyLimit = 10

type updateSessionRequest struct {
	ExerciseID string  `json:"exercise_id"`
	Reps       int     `json:"reps"`
	Angle      float64 `json:"angle"`
	Stage      string  `json:"stage"`
	Completed  bool    `json:"completed"`
}

type updateSessionResponse struct {
	Success bool `json:"success"`
	Reps    int  `json:"reps"`
}

type exerciseListResponse struct {
	Success   bool           `json:"success"`
	Exercises []CatalogEntry `json:"exercises"`
}

type historyResponse struct {
	Success  bool           `json:"success"`
	Workouts []HistoryEntry `json:"workouts"`
}

type Handler struct {
	updateService sampleProcessor
	analyzer      historyAnalyzer
	metrics       *metrics.Manager
}

func NewHandler(
	updateService sampleProcessor,
	analyzer historyAnalyzer,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		updateService: updateService,
		analyzer:      analyzer,
		metrics:       metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises/", handler.handleListExercises).Methods("GET", "OPTIONS").Name("exercise-list")
	router.HandleFunc("/exercises/history/", handler.handleHistory).Methods("GET", "OPTIONS").Name("exercise-history")
	router.HandleFunc("/exercises/update-session/", handler.handleUpdateSession).Methods("POST", "OPTIONS").Name("update-session")
}

func (handler *Handler) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sessionsHandler.updateSession")
	defer span.End()

	patientID, ok := auth.PatientIDFromContext(ctx)
	if !ok {
		writeNotAuthenticated(w)
		return
	}
	span.SetAttributes(attribute.Int("patient.id", patientID))

	// tracker builds omit the stage on the first sample
	req := updateSessionRequest{Stage: "down"}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update session for patient %d, decode: %s", patientID, err)
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	reps, err := handler.updateService.ProcessSample(ctx, patientID, SampleUpdate{
		ExerciseID: req.ExerciseID,
		Reps:       req.Reps,
		Angle:      req.Angle,
		Stage:      req.Stage,
		Completed:  req.Completed,
	})
	if err != nil {
		log.Errorf("update session for patient %d [%s]: %s", patientID, req.ExerciseID, err)
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionUpdates.WithLabelValues(req.ExerciseID).Inc()
	if req.Completed {
		handler.metrics.CounterSessionsCompleted.Inc()
	}

	respJson, err := json.Marshal(updateSessionResponse{Success: true, Reps: reps})
	if err != nil {
		log.Errorf("marshal update session response: %s", err)
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) handleListExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "sessionsHandler.listExercises")
	defer span.End()

	respJson, err := json.Marshal(exerciseListResponse{
		Success:   true,
		Exercises: Catalog(),
	})
	if err != nil {
		log.Errorf("marshal exercise list: %s", err)
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sessionsHandler.history")
	defer span.End()

	patientID, ok := auth.PatientIDFromContext(ctx)
	if !ok {
		writeNotAuthenticated(w)
		return
	}
	span.SetAttributes(attribute.Int("patient.id", patientID))

	workouts, err := handler.analyzer.History(ctx, patientID, historyLimit)
	if err != nil {
		// history is best effort, an empty list beats an error banner
		log.Errorf("get history for patient %d: %s", patientID, err)
		workouts = []HistoryEntry{}
	}

	respJson, err := json.Marshal(historyResponse{
		Success:  true,
		Workouts: workouts,
	})
	if err != nil {
		log.Errorf("marshal history for patient %d: %s", patientID, err)
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func writeNotAuthenticated(w http.ResponseWriter) {
	writeError(w, "Not authenticated", http.StatusUnauthorized)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	errJson, err := json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Error: message})
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"success": false, "error": %q}`, message), statusCode)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.JSON, string(errJson), statusCode)
}
