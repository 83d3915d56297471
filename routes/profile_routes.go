package routes

import (
	"heartchain_server/controllers"
	"heartchain_server/middleware"
	"heartchain_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up profile operations under /api/profiles.
func RegisterProfileRoutes(r *mux.Router, userService *services.UserService, photoService *services.PhotoService, authService *services.AuthService) {
	controller := controllers.NewProfileController(userService, photoService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.Use(middleware.Authenticate(authService))

	profileRouter.HandleFunc("/me", controller.GetMe).Methods("GET")
	profileRouter.HandleFunc("", controller.UpdateProfile).Methods("PUT")
	profileRouter.HandleFunc("/preferences", controller.UpdatePreferences).Methods("PUT")
	profileRouter.HandleFunc("/photo-url", controller.CreateUploadURL).Methods("POST")
	profileRouter.HandleFunc("/photo-url", controller.GetReadURL).Methods("GET")
}
