package patients

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/revivecare/revivecare/internal/auth"
	"github.com/revivecare/revivecare/internal/middleware"
	"github.com/revivecare/revivecare/internal/rehab/sessions"
	"github.com/revivecare/revivecare/internal/telemetry/metrics"
	"github.com/revivecare/revivecare/internal/telemetry/tracing"
	"github.com/revivecare/revivecare/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=patients_test

type patientsRepo interface {
	Add(ctx context.Context, patient Patient) (*Patient, error)
	Get(ctx context.Context, id int) (*Patient, error)
	GetByEmail(ctx context.Context, email string) (*Patient, error)
	List(ctx context.Context) ([]Patient, error)
}

type loginService interface {
	LoginPatient(ctx context.Context, patientID int, createdAt time.Time) (string, error)
	LoginDoctor(ctx context.Context, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type statsProvider interface {
	Stats(ctx context.Context, patientID int) (*sessions.PatientStats, error)
}

// patientView is the patient as served to clients, credentials stripped.
type patientView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Info  string `json:"info,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type doctorLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type addPatientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Info     string `json:"info"`
	Password string `json:"password"`
}

type Handler struct {
	repo        patientsRepo
	authService loginService
	stats       statsProvider
	admin       auth.Admin
	metrics     *metrics.Manager
}

func NewHandler(
	repo patientsRepo,
	authService loginService,
	stats statsProvider,
	admin auth.Admin,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:        repo,
		authService: authService,
		stats:       stats,
		admin:       admin,
		metrics:     metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
) {
	// login endpoints are rate limited to slow down credential guessing
	loginRateLimit := middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, handler.metrics)
	router.Handle("/patient/login/", loginRateLimit(http.HandlerFunc(handler.handleLogin))).
		Methods("POST", "OPTIONS").Name("patient-login")
	router.Handle("/doctor/login/", loginRateLimit(http.HandlerFunc(handler.handleDoctorLogin))).
		Methods("POST", "OPTIONS").Name("doctor-login")

	router.HandleFunc("/patient/logout/", handler.handleLogout).Methods("POST", "OPTIONS").Name("patient-logout")
	router.HandleFunc("/patient/profile/", handler.handleProfile).Methods("GET", "OPTIONS").Name("patient-profile")
	router.HandleFunc("/patient/dashboard/", handler.handleDashboard).Methods("GET", "OPTIONS").Name("patient-dashboard")
	router.HandleFunc("/patients/", handler.handleListPatients).Methods("GET", "OPTIONS").Name("patients-list")
	router.HandleFunc("/patients/add/", handler.handleAddPatient).Methods("POST", "OPTIONS").Name("patients-add")
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "patientsHandler.login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("patient login, decode: %s", err)
		writeError(w, "Invalid JSON data", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		writeError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	patient, err := handler.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			writeError(w, "Doctor has not updated this email yet. Please come back later.", http.StatusNotFound)
			return
		}
		log.Errorf("patient login [%s]: %s", email, err)
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	// opaque credential handed out by the doctor, compared as-is
	if subtle.ConstantTimeCompare([]byte(patient.Password), []byte(password)) != 1 {
		writeError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := handler.authService.LoginPatient(ctx, patient.ID, time.Now())
	if err != nil {
		log.Errorf("patient login [%s], create session: %s", email, err)
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("patient.id", patient.ID))
	handler.metrics.CounterPatientLogins.Inc()

	userIP, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Debugf("patient login, read user ip: %s", err)
		userIP = r.RemoteAddr
	}
	log.Printf("patient %d logged in from %s", patient.ID, userIP)

	writeJSON(w, struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Token   string      `json:"token"`
		Patient patientView `json:"patient"`
	}{
		Success: true,
		Message: fmt.Sprintf("Welcome back, %s!", patient.Name),
		Token:   token,
		Patient: patientView{ID: patient.ID, Name: patient.Name, Email: patient.Email},
	})
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "patientsHandler.logout")
	defer span.End()

	token := r.Header.Get("X-REVIVECARE-TOKEN")
	if token == "" {
		writeError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	if _, err := handler.authService.Logout(ctx, token); err != nil {
		log.Tracef("patient logout: %s", err)
		// logout of an already dead session is still a logout
	}

	writeJSON(w, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{
		Success: true,
		Message: "Logged out successfully",
	})
}

func (handler *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "patientsHandler.profile")
	defer span.End()

	patient, ok := handler.patientFromContext(ctx, w)
	if !ok {
		return
	}

	writeJSON(w, struct {
		Success bool        `json:"success"`
		Patient patientView `json:"patient"`
	}{
		Success: true,
		Patient: patientView{ID: patient.ID, Name: patient.Name, Email: patient.Email, Info: patient.Info},
	})
}

func (handler *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "patientsHandler.dashboard")
	defer span.End()

	patient, ok := handler.patientFromContext(ctx, w)
	if !ok {
		return
	}

	stats, err := handler.stats.Stats(ctx, patient.ID)
	if err != nil {
		// dashboard survives a stats outage with zeroed aggregates
		log.Errorf("dashboard stats for patient %d: %s", patient.ID, err)
		stats = &sessions.PatientStats{}
	}

	writeJSON(w, struct {
		Success bool                  `json:"success"`
		Patient patientView           `json:"patient"`
		Stats   sessions.PatientStats `json:"stats"`
	}{
		Success: true,
		Patient: patientView{ID: patient.ID, Name: patient.Name, Email: patient.Email, Info: patient.Info},
		Stats:   *stats,
	})
}

func (handler *Handler) handleDoctorLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "patientsHandler.doctorLogin")
	defer span.End()

	var req doctorLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("doctor login, decode: %s", err)
		writeError(w, "Invalid JSON data", http.StatusBadRequest)
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(handler.admin.Username)) == 1
	if !usernameOK || !pkg.CheckPasswordHash(req.Password, handler.admin.PasswordHash) {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := handler.authService.LoginDoctor(ctx, time.Now())
	if err != nil {
		log.Errorf("doctor login, create session: %s", err)
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Println("doctor logged in")
	writeJSON(w, struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}{
		Success: true,
		Token:   token,
	})
}

func (handler *Handler) handleListPatients(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "patientsHandler.list")
	defer span.End()

	allPatients, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list patients: %s", err)
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	patientList := make([]patientView, 0, len(allPatients))
	for _, p := range allPatients {
		patientList = append(patientList, patientView{ID: p.ID, Name: p.Name, Email: p.Email, Info: p.Info})
	}

	writeJSON(w, struct {
		Success  bool          `json:"success"`
		Patients []patientView `json:"patients"`
	}{
		Success:  true,
		Patients: patientList,
	})
}

func (handler *Handler) handleAddPatient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "patientsHandler.add")
	defer span.End()

	var req addPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add patient, decode: %s", err)
		writeError(w, "Invalid JSON data", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		writeError(w, "Name and email are required", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, Patient{
		Name:     name,
		Email:    email,
		Info:     strings.TrimSpace(req.Info),
		Password: strings.TrimSpace(req.Password),
	})
	if err != nil {
		if errors.Is(err, ErrPatientExists) {
			writeError(w, "Patient with this email already exists", http.StatusBadRequest)
			return
		}
		log.Errorf("add patient [%s]: %s", email, err)
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("patient.id", added.ID))
	log.Printf("new patient %d added", added.ID)

	writeJSON(w, struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Patient patientView `json:"patient"`
	}{
		Success: true,
		Message: "Patient added successfully",
		Patient: patientView{ID: added.ID, Name: added.Name, Email: added.Email},
	})
}

func (handler *Handler) patientFromContext(ctx context.Context, w http.ResponseWriter) (*Patient, bool) {
	patientID, ok := auth.PatientIDFromContext(ctx)
	if !ok {
		writeError(w, "Not authenticated", http.StatusUnauthorized)
		return nil, false
	}

	patient, err := handler.repo.Get(ctx, patientID)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			writeError(w, "Patient not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get patient %d: %s", patientID, err)
		writeError(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}

	return patient, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	respJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
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
