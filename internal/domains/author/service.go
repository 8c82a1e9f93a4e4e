package author

import "context"

// Service defines business operations on authors
type Service interface {
	Register(ctx context.Context, a Author) (*Author, error)
	PartialUpdate(ctx context.Context, id int64, changes ChangeSet) (*Author, error)
	Get(ctx context.Context, id int64) (*Author, error)
	GetWithBooks(ctx context.Context, id int64) (*AuthorWithBooks, error)
}
