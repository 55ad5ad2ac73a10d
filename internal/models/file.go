package models

// File is the files table row (attachment metadata only).
type File struct {
	FileID     string
	CustomerID string
	Name       string
	Type       string
	URL        string
	AuditFields
}
