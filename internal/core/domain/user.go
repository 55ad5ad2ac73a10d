package domain

// User is an operator account for the backoffice API.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt hash; empty for OAuth-only users
	GoogleID     string `json:"-"` // Google subject claim for OAuth sign-in
	AuditFields
}

// GoogleUserInfo is the subset of the Google identity we consume. The json
// tags match the userinfo endpoint response.
type GoogleUserInfo struct {
	Subject string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}
