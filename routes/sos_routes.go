package routes

import (
	"heartchain_server/controllers"
	"heartchain_server/middleware"
	"heartchain_server/services"

	"github.com/gorilla/mux"
)

// RegisterSOSRoutes sets up emergency operations under /api/sos.
func RegisterSOSRoutes(r *mux.Router, sosService *services.SOSService, userService *services.UserService, authService *services.AuthService) {
	controller := controllers.NewSOSController(sosService, userService)

	sosRouter := r.PathPrefix("/api/sos").Subrouter()
	sosRouter.Use(middleware.Authenticate(authService))

	sosRouter.HandleFunc("/trigger", controller.Trigger).Methods("POST")
	sosRouter.HandleFunc("/contacts", controller.AddContact).Methods("POST")
}
