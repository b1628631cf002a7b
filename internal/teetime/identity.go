package teetime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"teetimealerts/internal/logger"
)

// signInRequest is the password-grant body the Identity Toolkit expects.
type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
	ClientType        string `json:"clientType"`
}

// AuthResponse is the Identity Toolkit sign-in response. IDToken is the
// bearer token presented on subsequent API calls; it is valid for a single
// run and is never cached to disk.
type AuthResponse struct {
	IDToken      string `json:"idToken"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

// Authenticate exchanges email/password credentials for an ID token via the
// Identity Toolkit signInWithPassword endpoint. On success it logs the
// authenticated display name and returns the full provider response.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	url := fmt.Sprintf("%s?key=%s", c.Settings.IdentityURL, c.Settings.IdentityAPIKey)

	payload := signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
		ClientType:        "CLIENT_TYPE_WEB",
	}

	_, body, err := c.doJSON(ctx, http.MethodPost, url, payload, nil)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	var auth AuthResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	name := auth.DisplayName
	if name == "" {
		name = email
	}
	logger.Info("✓ Successfully authenticated as %s\n", name)

	return &auth, nil
}
