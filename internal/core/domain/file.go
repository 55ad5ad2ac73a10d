package domain

// File is the metadata of a document attached to a customer (contract,
// signed statement, ...). The blob itself lives in external storage; only
// the URL is tracked here.
type File struct {
	FileID     string `json:"fileID"` // Primary Key (UUID)
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Type       string `json:"type"` // MIME type or coarse category
	URL        string `json:"url"`
	AuditFields
}
