package domain

import "time"

// AuditFields holds the standard creation/update timestamps embedded in every entity.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
