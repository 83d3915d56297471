package routes

import (
	"heartchain_server/controllers"
	"heartchain_server/middleware"
	"heartchain_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up suggestion and like operations under
// /api/matches.
func RegisterMatchRoutes(r *mux.Router, suggestionService *services.SuggestionService, interactionService *services.InteractionService, authService *services.AuthService) {
	controller := controllers.NewMatchController(suggestionService, interactionService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(middleware.Authenticate(authService))

	matchRouter.HandleFunc("/suggestions", controller.GetSuggestions).Methods("GET")
	matchRouter.HandleFunc("/like/{targetUserId}", controller.LikeProfile).Methods("POST")
}
