package routes

import (
	"heartchain_server/controllers"
	"heartchain_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up wallet connect/login under /api/auth. These are
// the only unauthenticated API routes.
func RegisterAuthRoutes(r *mux.Router, authService *services.AuthService) {
	controller := controllers.NewAuthController(authService)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/connect", controller.Connect).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
}
