package models

import "time"

// AuditFields holds the shared row timestamps.
type AuditFields struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}
