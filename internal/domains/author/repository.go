package author

import "context"

// Repository defines data access for authors.
// Lookups of a missing row return database.ErrNotFound; constraint
// failures come back classified by database.Classify.
type Repository interface {
	Create(ctx context.Context, a *Author) (*Author, error)
	FindByID(ctx context.Context, id int64) (*Author, error)

	// Update applies changes in a single statement and returns the number
	// of rows affected. An empty change set is a no-op.
	Update(ctx context.Context, id int64, changes ChangeSet) (int64, error)

	// CountByIDs counts how many of ids exist. ids must be distinct.
	CountByIDs(ctx context.Context, ids []int64) (int, error)
}
