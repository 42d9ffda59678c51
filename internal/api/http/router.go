package http

import (
	"net/http"

	"camera-rental-backend/internal/security"
	"camera-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handlers bundles all HTTP handlers for router registration.
type Handlers struct {
	Auth     *AuthHandler
	Camera   *CameraHandler
	Rental   *RentalHandler
	User     *UserHandler
	Customer *CustomerHandler
}

func NewHandlers(
	authSvc service.AuthService,
	cameraSvc service.CameraService,
	rentalSvc service.RentalService,
	userSvc service.UserService,
	customerSvc service.CustomerService,
) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(authSvc),
		Camera:   NewCameraHandler(cameraSvc),
		Rental:   NewRentalHandler(rentalSvc),
		User:     NewUserHandler(userSvc),
		Customer: NewCustomerHandler(customerSvc),
	}
}

// NewRouter wires all API routes and the static frontend.
func NewRouter(h *Handlers, tokens security.TokenManager, staticDir string) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID)

	mw := NewMiddleware(tokens)
	api := router.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/auth/me", mw.RequireAuth(h.Auth.Me)).Methods("GET")
	api.HandleFunc("/auth/change-password", mw.RequireAuth(h.Auth.ChangePassword)).Methods("POST")

	// Cameras. Listing stays reachable without credentials; a valid agent
	// token narrows results to the agent's own cameras.
	api.HandleFunc("/cameras", mw.OptionalAuth(h.Camera.List)).Methods("GET")
	api.HandleFunc("/cameras/search", h.Camera.Search).Methods("GET")
	api.HandleFunc("/cameras", mw.RequireAdmin(h.Camera.Create)).Methods("POST")
	api.HandleFunc("/cameras/{id:[0-9]+}", h.Camera.Get).Methods("GET")
	api.HandleFunc("/cameras/{id:[0-9]+}", mw.RequireAdmin(h.Camera.Update)).Methods("PUT")
	api.HandleFunc("/cameras/{id:[0-9]+}/status", mw.RequireAdmin(h.Camera.UpdateStatus)).Methods("PUT")
	api.HandleFunc("/cameras/{id:[0-9]+}", mw.RequireAdmin(h.Camera.Delete)).Methods("DELETE")

	// Rentals
	api.HandleFunc("/rentals", mw.OptionalAuth(h.Rental.List)).Methods("GET")
	api.HandleFunc("/rentals/calendar", h.Rental.Calendar).Methods("GET")
	api.HandleFunc("/rentals/check-conflict", h.Rental.CheckConflict).Methods("GET")
	api.HandleFunc("/rentals", mw.RequireAuth(h.Rental.Create)).Methods("POST")
	api.HandleFunc("/rentals/{id:[0-9]+}/extend", mw.RequireAuth(h.Rental.Extend)).Methods("PUT")
	api.HandleFunc("/rentals/{id:[0-9]+}/dates", mw.RequireAuth(h.Rental.ModifyDates)).Methods("PUT")
	api.HandleFunc("/rentals/{id:[0-9]+}/notes", mw.RequireAuth(h.Rental.UpdateNotes)).Methods("PUT")
	api.HandleFunc("/rentals/{id:[0-9]+}", mw.RequireAdmin(h.Rental.Delete)).Methods("DELETE")

	// Users (admin only)
	api.HandleFunc("/users", mw.RequireAdmin(h.User.List)).Methods("GET")
	api.HandleFunc("/users", mw.RequireAdmin(h.User.Create)).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}", mw.RequireAdmin(h.User.Get)).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}", mw.RequireAdmin(h.User.Update)).Methods("PUT")
	api.HandleFunc("/users/{id:[0-9]+}", mw.RequireAdmin(h.User.Delete)).Methods("DELETE")

	// Customers (legacy)
	api.HandleFunc("/customers", h.Customer.List).Methods("GET")
	api.HandleFunc("/customers", mw.RequireAuth(h.Customer.Create)).Methods("POST")

	// Static frontend
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))

	return router
}
