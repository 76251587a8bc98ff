package employee

import (
	"time"
)

// Employee is identified by an externally assigned id. The name is
// refreshed on every attendance submission; latest write wins.
type Employee struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
