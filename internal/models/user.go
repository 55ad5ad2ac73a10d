package models

// User is the users table row.
type User struct {
	UserID       string
	Username     string
	Name         string
	PasswordHash string
	GoogleID     string
	AuditFields
}
