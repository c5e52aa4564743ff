package domain

import "time"

// Record is a single row of the records collection. ID and CreatedAt are
// assigned by the database at insertion and never change afterwards.
type Record struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
