package dto

// SwitchUserRequest selects the acting principal. This mirrors the user
// switcher of the original application; there are no credentials involved.
type SwitchUserRequest struct {
	UserID string `json:"userID" binding:"required"`
}

// TokenResponse carries a freshly minted principal token.
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
