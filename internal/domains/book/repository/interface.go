package repository

import (
	"context"

	"catalog-backend/internal/domains/book/model"
)

// RepositoryInterface - data access for the books table.
// Missing rows come back as database.ErrNotFound.
type RepositoryInterface interface {
	CreateBook(ctx context.Context, book *model.Book) (*model.Book, error)
	GetBookByID(ctx context.Context, id int64) (*model.Book, error)
	// UpdateBook applies changes in one statement; returns rows affected
	UpdateBook(ctx context.Context, id int64, changes model.ChangeSet) (int64, error)
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)
}

// AuthorshipRepository - data access for the book_authors join table
type AuthorshipRepository interface {
	ListAuthorIDs(ctx context.Context, bookID int64) ([]int64, error)
	DeleteByBook(ctx context.Context, bookID int64) (int64, error)
	// InsertAll links bookID to every author id; ids must be distinct
	InsertAll(ctx context.Context, bookID int64, authorIDs []int64) error
	// ListUnauthoredBookIDs returns books with no authorship row, ordered by id
	ListUnauthoredBookIDs(ctx context.Context) ([]int64, error)
}

// unauthoredBooksQuery is portable across both backends
const unauthoredBooksQuery = `
    SELECT b.id FROM books b
    WHERE NOT EXISTS (SELECT 1 FROM book_authors ba WHERE ba.book_id = b.id)
    ORDER BY b.id
`
