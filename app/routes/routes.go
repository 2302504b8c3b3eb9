package routes

import (
	"net/http"

	"sahayog/app/controllers"
	"sahayog/app/middleware"
	"sahayog/app/repositories"
	"sahayog/app/services"
	"sahayog/app/storage"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// SetupRoutes wires repositories, services and controllers over the given
// store and returns the router.
func SetupRoutes(store storage.Store, logger zerolog.Logger, secureCookies bool) *mux.Router {
	ledgerRepo := repositories.NewStoreLedgerRepository(store)
	blogRepo := repositories.NewStoreBlogRepository(store)
	adminRepo := repositories.NewStoreAdminRepository(store)

	donationService := services.NewDonationService(ledgerRepo)
	blogService := services.NewBlogService(blogRepo)
	authService := services.NewAuthService(adminRepo)

	donationController := controllers.NewDonationController(donationService)
	blogController := controllers.NewBlogController(blogService)
	authController := controllers.NewAuthController(authService, secureCookies)
	storyController := controllers.NewStoryController()

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	api := router.PathPrefix("/api").Subrouter()

	// Donation endpoints
	donations := api.PathPrefix("/donations").Subrouter()
	donations.HandleFunc("/submit", donationController.Submit).Methods("POST")
	donations.HandleFunc("/raised-amount", donationController.RaisedAmount).Methods("GET")

	// Admin-gated donation moderation
	moderation := api.PathPrefix("/donations").Subrouter()
	moderation.Use(middleware.RequireAdminSession)
	moderation.HandleFunc("/pending", donationController.Pending).Methods("GET")
	moderation.HandleFunc("/approve", donationController.Approve).Methods("POST")
	moderation.HandleFunc("/reject", donationController.Reject).Methods("POST")

	// Blog endpoints
	api.HandleFunc("/blog", blogController.Index).Methods("GET")

	blogAdmin := api.PathPrefix("/blog").Subrouter()
	blogAdmin.Use(middleware.RequireBearerToken)
	blogAdmin.HandleFunc("", blogController.Create).Methods("POST")
	blogAdmin.HandleFunc("/{id:[0-9]+}", blogController.Update).Methods("PUT")
	blogAdmin.HandleFunc("/{id:[0-9]+}", blogController.Delete).Methods("DELETE")

	// Admin session endpoints
	api.HandleFunc("/admin/login", authController.Login).Methods("POST")
	api.HandleFunc("/admin/status", authController.Status).Methods("GET")

	// Success stories
	api.HandleFunc("/success-stories", storyController.Index).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
