package controllers

import (
	"encoding/json"
	"net/http"

	"heartchain_server/middleware"
	"heartchain_server/models"
	"heartchain_server/services"
)

// ProfileController handles the authenticated user's own profile.
type ProfileController struct {
	Users  *services.UserService
	Photos *services.PhotoService
}

// NewProfileController creates a new ProfileController instance.
func NewProfileController(users *services.UserService, photos *services.PhotoService) *ProfileController {
	return &ProfileController{Users: users, Photos: photos}
}

// GetMe returns the caller's full record, including fields the public
// projection hides from other users.
func (c *ProfileController) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := c.Users.GetUser(r.Context(), middleware.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user": map[string]interface{}{
			"userId":            user.UserID,
			"username":          user.Username,
			"walletAddress":     user.WalletAddress,
			"createdAt":         user.CreatedAt,
			"preferences":       user.Preferences,
			"profile":           user.Profile,
			"emergencyContacts": user.EmergencyContacts,
		},
	})
}

// UpdateProfile replaces the caller's profile.
func (c *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	user, err := c.Users.UpdateProfile(r.Context(), middleware.UserID(r), &profile)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile updated successfully",
		"profile": user.Profile,
	})
}

// UpdatePreferences replaces the caller's suggestion preferences.
func (c *ProfileController) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	user, err := c.Users.UpdatePreferences(r.Context(), middleware.UserID(r), prefs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Preferences updated successfully",
		"preferences": user.Preferences,
	})
}

type uploadURLRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

// CreateUploadURL returns a presigned S3 PUT URL for a new profile photo.
func (c *ProfileController) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	url, key, err := c.Photos.GenerateUploadURL(r.Context(), req.FileName, req.FileType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"uploadUrl": url,
		"key":       key,
	})
}

// GetReadURL returns a presigned S3 GET URL for a stored photo key.
func (c *ProfileController) GetReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")

	url, err := c.Photos.GenerateReadURL(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"url":     url,
	})
}
