package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/agri-market/application/admin"
	listingapp "github.com/muhammadheryan/agri-market/application/listing"
	userapp "github.com/muhammadheryan/agri-market/application/user"
	"github.com/muhammadheryan/agri-market/cmd/config"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config     *config.Config
	UserApp    userapp.UserApp
	AdminApp   adminapp.AdminApp
	ListingApp listingapp.ListingApp
	// Health reports dependency readiness for /health; nil means always healthy.
	Health func(r *http.Request) error
}

func NewTransport(cfg *config.Config, userApp userapp.UserApp, adminApp adminapp.AdminApp, listingApp listingapp.ListingApp, health func(r *http.Request) error) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		Config:     cfg,
		UserApp:    userApp,
		AdminApp:   adminApp,
		ListingApp: listingApp,
		Health:     health,
	}

	// ops
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", rh.HealthCheck).Methods(http.MethodGet)

	// public routes, rate limited per client
	limiter := NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	router.Handle("/register", limiter.Wrap(http.HandlerFunc(rh.Register))).Methods(http.MethodPost)
	router.Handle("/login", limiter.Wrap(http.HandlerFunc(rh.Login))).Methods(http.MethodPost)

	// account
	router.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/me", rh.Me).Methods(http.MethodGet)
	router.HandleFunc("/me", rh.UpdateProfile).Methods(http.MethodPut)
	router.HandleFunc("/me/tags", rh.ListTags).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}", rh.DeleteUser).Methods(http.MethodDelete)

	// admin hierarchy
	router.HandleFunc("/admin/register", rh.RegisterAdmin).Methods(http.MethodPost)
	router.HandleFunc("/admin/request", rh.RequestApproval).Methods(http.MethodPost)
	router.HandleFunc("/admin/requests", rh.PendingRequests).Methods(http.MethodGet)
	router.HandleFunc("/admin/requests/{id:[0-9]+}/approve", rh.ApproveRequest).Methods(http.MethodPost)
	router.HandleFunc("/admin/requests/{id:[0-9]+}/reject", rh.RejectRequest).Methods(http.MethodPost)

	router.HandleFunc("/admins", rh.Roster).Methods(http.MethodGet)
	router.HandleFunc("/admins/export", rh.ExportRoster).Methods(http.MethodGet)
	router.HandleFunc("/admins/super", rh.SuperDirectory).Methods(http.MethodGet)
	router.HandleFunc("/admins/local", rh.LocalDirectory).Methods(http.MethodGet)
	router.HandleFunc("/admins/nearby", rh.NearbyAdmins).Methods(http.MethodGet)
	router.HandleFunc("/admins/audit", rh.AuditLog).Methods(http.MethodGet)
	router.HandleFunc("/admins/{id:[0-9]+}/contact", rh.AdminContact).Methods(http.MethodGet)
	router.HandleFunc("/admins/{id:[0-9]+}/tag", rh.TagAdmin).Methods(http.MethodPost)
	router.HandleFunc("/admins/{id:[0-9]+}/tag", rh.UntagAdmin).Methods(http.MethodDelete)

	// listings
	rh.listingRoutes(router, "/products", constant.ListingTypeSeller)
	rh.listingRoutes(router, "/buyer-requests", constant.ListingTypeBuyer)
	router.HandleFunc("/feed", rh.Feed).Methods(http.MethodGet)

	// called by the audit consumer
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/admin-events", rh.StoreAuditEvent).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(userApp))

	return CORS(cfg.CORS.AllowedOrigins, router)
}

func (s *RestHandler) listingRoutes(router *mux.Router, base string, listingType constant.ListingType) {
	router.HandleFunc(base, s.listListings(listingType)).Methods(http.MethodGet)
	router.HandleFunc(base, s.createListing(listingType)).Methods(http.MethodPost)
	router.HandleFunc(base+"/{id:[0-9]+}", s.getListing(listingType)).Methods(http.MethodGet)
	router.HandleFunc(base+"/{id:[0-9]+}", s.updateListing(listingType)).Methods(http.MethodPut)
	router.HandleFunc(base+"/{id:[0-9]+}", s.deleteListing(listingType)).Methods(http.MethodDelete)
	router.HandleFunc(base+"/{id:[0-9]+}/views", s.incrementViews(listingType)).Methods(http.MethodPost)
	router.HandleFunc(base+"/{id:[0-9]+}/contact", s.contactOwner(listingType)).Methods(http.MethodPost)
	router.HandleFunc("/me"+base, s.myListings(listingType)).Methods(http.MethodGet)
}

// HealthCheck handler
// @Summary Health check
// @Tags Ops
// @Produce json
// @Success 200 {object} Response
// @Failure 500 {object} Response
// @Router /health [get]
func (s *RestHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if s.Health != nil {
		if err := s.Health(r); err != nil {
			writeError(w, err)
			return
		}
	}
	writeSuccess(w, map[string]string{"status": "ok"})
}
