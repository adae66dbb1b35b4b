package http

import (
	"net/http"

	"go-doctors-portal/internal/delivery/http/handler"
	"go-doctors-portal/internal/delivery/http/middleware"
	"go-doctors-portal/internal/infrastructure/metrics"
	"go-doctors-portal/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router          *mux.Router
	log             *logrus.Logger
	metrics         *metrics.Metrics
	catalogHandler  *handler.CatalogHandler
	bookingHandler  *handler.BookingHandler
	userHandler     *handler.UserHandler
	doctorHandler   *handler.DoctorHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	roleMiddleware  *middleware.RoleMiddleware
	corsMiddleware  *middleware.CORSMiddleware
	rateLimiter     *middleware.RateLimiter
}

func NewRouter(
	log *logrus.Logger,
	m *metrics.Metrics,
	catalogHandler *handler.CatalogHandler,
	bookingHandler *handler.BookingHandler,
	userHandler *handler.UserHandler,
	doctorHandler *handler.DoctorHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		log:             log,
		metrics:         m,
		catalogHandler:  catalogHandler,
		bookingHandler:  bookingHandler,
		userHandler:     userHandler,
		doctorHandler:   doctorHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		roleMiddleware:  roleMiddleware,
		corsMiddleware:  corsMiddleware,
		rateLimiter:     rateLimiter,
	}
}

// Setup registers every route and returns the router wrapped in the global
// middleware: recovery, request logging and CORS. CORS sits outside mux so
// preflight requests never hit method matching.
func (r *Router) Setup() http.Handler {
	authenticated := middleware.NewGuard(r.log, r.metrics, r.authMiddleware.Authenticate)
	adminOnly := middleware.NewGuard(r.log, r.metrics, r.authMiddleware.Authenticate, r.roleMiddleware.RequireAdmin)

	r.router.Use(middleware.Metrics(r.metrics))

	// Operational
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	// Catalog (public)
	r.router.HandleFunc("/services", r.catalogHandler.ListServices).Methods(http.MethodGet)
	r.router.HandleFunc("/available", r.catalogHandler.GetAvailability).Methods(http.MethodGet)

	// Bookings
	r.router.Handle("/booking", authenticated.ThenFunc(r.bookingHandler.GetPatientBookings)).Methods(http.MethodGet)
	r.router.HandleFunc("/booking", r.bookingHandler.CreateBooking).Methods(http.MethodPost)

	// Users
	r.router.Handle("/users", authenticated.ThenFunc(r.userHandler.ListUsers)).Methods(http.MethodGet)
	r.router.Handle("/admin/{email}", authenticated.ThenFunc(r.userHandler.CheckAdmin)).Methods(http.MethodGet)
	r.router.Handle("/users/admin/{email}", adminOnly.ThenFunc(r.userHandler.MakeAdmin)).Methods(http.MethodPut)
	r.router.Handle("/users/{email}", r.rateLimiter.Limit(http.HandlerFunc(r.userHandler.UpsertUser))).Methods(http.MethodPut)

	// Doctors (admin)
	r.router.Handle("/doctors", adminOnly.ThenFunc(r.doctorHandler.ListDoctors)).Methods(http.MethodGet)
	r.router.Handle("/doctor", adminOnly.ThenFunc(r.doctorHandler.CreateDoctor)).Methods(http.MethodPost)
	r.router.Handle("/doctors/{email}", adminOnly.ThenFunc(r.doctorHandler.DeleteDoctor)).Methods(http.MethodDelete)

	// Audit trail (admin)
	r.router.Handle("/audit-logs", adminOnly.ThenFunc(r.auditLogHandler.ListAuditLogs)).Methods(http.MethodGet)

	// mux skips Use middleware for unmatched requests.
	r.router.NotFoundHandler = middleware.Metrics(r.metrics)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	}))

	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = middleware.RequestLogger(r.log)(h)
	h = middleware.Recover(r.log)(h)
	return h
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}
