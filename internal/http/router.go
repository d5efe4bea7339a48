package http

import (
	"net/http"

	"estate-backend/internal/handlers"
	"estate-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	propertyHandler *handlers.PropertyHandler,
	tenantHandler *handlers.TenantHandler,
	leaseHandler *handlers.LeaseHandler,
	paymentHandler *handlers.PaymentHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
	razorpayHandler *handlers.RazorpayHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Public routes
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Razorpay webhook authenticates via HMAC signature, not JWT
	r.HandleFunc("/api/webhooks/razorpay", razorpayHandler.Webhook).Methods("POST")

	manager := authMiddleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager)
	admin := authMiddleware.RequireRole(middleware.RoleAdmin)

	// Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", admin(http.HandlerFunc(userHandler.ListUsers)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("", admin(http.HandlerFunc(userHandler.CreateUser)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/{id}", admin(http.HandlerFunc(userHandler.GetUser)).ServeHTTP).Methods("GET")

	// Properties
	propertiesAPI := r.PathPrefix("/api/properties").Subrouter()
	propertiesAPI.Use(authMiddleware.Authenticate)
	propertiesAPI.HandleFunc("", propertyHandler.List).Methods("GET")
	propertiesAPI.HandleFunc("", manager(http.HandlerFunc(propertyHandler.Create)).ServeHTTP).Methods("POST")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.Get).Methods("GET")
	propertiesAPI.HandleFunc("/{id}", manager(http.HandlerFunc(propertyHandler.Update)).ServeHTTP).Methods("PUT")
	propertiesAPI.HandleFunc("/{id}", admin(http.HandlerFunc(propertyHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Tenants
	tenantsAPI := r.PathPrefix("/api/tenants").Subrouter()
	tenantsAPI.Use(authMiddleware.Authenticate)
	tenantsAPI.HandleFunc("", tenantHandler.List).Methods("GET")
	tenantsAPI.HandleFunc("", manager(http.HandlerFunc(tenantHandler.Create)).ServeHTTP).Methods("POST")
	tenantsAPI.HandleFunc("/{id}", tenantHandler.Get).Methods("GET")
	tenantsAPI.HandleFunc("/{id}", manager(http.HandlerFunc(tenantHandler.Update)).ServeHTTP).Methods("PUT")
	tenantsAPI.HandleFunc("/{id}", admin(http.HandlerFunc(tenantHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Leases
	leasesAPI := r.PathPrefix("/api/leases").Subrouter()
	leasesAPI.Use(authMiddleware.Authenticate)
	leasesAPI.HandleFunc("", leaseHandler.List).Methods("GET")
	leasesAPI.HandleFunc("", manager(http.HandlerFunc(leaseHandler.Create)).ServeHTTP).Methods("POST")
	leasesAPI.HandleFunc("/{id}", leaseHandler.Get).Methods("GET")
	leasesAPI.HandleFunc("/{id}/terminate", manager(http.HandlerFunc(leaseHandler.Terminate)).ServeHTTP).Methods("POST")

	// Payments. Reversal is admin-only: it is the ledger's correction
	// mechanism and every reversal is a permanent audit record.
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.List).Methods("GET")
	paymentsAPI.HandleFunc("", manager(http.HandlerFunc(paymentHandler.Create)).ServeHTTP).Methods("POST")
	paymentsAPI.HandleFunc("/online/order", manager(http.HandlerFunc(razorpayHandler.CreateOrder)).ServeHTTP).Methods("POST")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.Get).Methods("GET")
	paymentsAPI.HandleFunc("/{id}/reverse", admin(http.HandlerFunc(paymentHandler.Reverse)).ServeHTTP).Methods("POST")

	// Dashboard
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/status", dashboardHandler.Status).Methods("GET")
	dashboardAPI.HandleFunc("/summary", dashboardHandler.Summary).Methods("GET")

	// Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/rent-roll.pdf", reportHandler.RentRollPDF).Methods("GET")
	reportsAPI.HandleFunc("/rent-roll.csv", reportHandler.RentRollCSV).Methods("GET")

	return r
}
