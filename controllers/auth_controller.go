package controllers

import (
	"encoding/json"
	"net/http"

	"heartchain_server/services"
)

// AuthController handles wallet connect and login.
type AuthController struct {
	Auth *services.AuthService
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type connectRequest struct {
	WalletAddress string `json:"walletAddress"`
	Signature     string `json:"signature"`
	Username      string `json:"username"`
}

type loginRequest struct {
	WalletAddress string `json:"walletAddress"`
	Signature     string `json:"signature"`
}

// Connect registers a new wallet-backed user.
func (c *AuthController) Connect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	token, user, err := c.Auth.Connect(r.Context(), req.WalletAddress, req.Signature, req.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User created successfully",
		"token":   token,
		"user":    user.PublicData(),
	})
}

// Login authenticates an existing wallet.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	token, user, err := c.Auth.Login(r.Context(), req.WalletAddress, req.Signature)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.PublicData(),
	})
}
