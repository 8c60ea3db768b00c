package models

import "time"

// AuditFields holds the audit columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at" bson:"createdAt"`
	CreatedBy     string    `db:"created_by" bson:"createdBy"`
	LastUpdatedAt time.Time `db:"last_updated_at" bson:"lastUpdatedAt"`
	LastUpdatedBy string    `db:"last_updated_by" bson:"lastUpdatedBy"`
}
