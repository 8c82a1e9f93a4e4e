package service

import (
	"context"

	"catalog-backend/internal/domains/book/model"
)

// ServiceInterface - business operations on books
type ServiceInterface interface {
	// Register creates a book credited to every id in authorIDs (at least one)
	Register(ctx context.Context, book model.Book, authorIDs []int64) (*model.BookWithAuthors, error)

	// Update applies a sparse change set and, when authorIDs is non-empty,
	// replaces the authorship set; all in one transaction.
	Update(ctx context.Context, id int64, update model.BookUpdate) (*model.BookWithAuthors, error)

	Get(ctx context.Context, id int64) (*model.BookWithAuthors, error)
}

// EventPublisher is told about books that became published after the
// transaction that published them committed.
type EventPublisher interface {
	BookPublished(ctx context.Context, book model.BookWithAuthors) error
}
