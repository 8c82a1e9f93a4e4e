package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/database"
)

type sqliteRepository struct {
	db database.SQLQuerier
}

func NewSQLiteRepository(db database.SQLQuerier) RepositoryInterface {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, price, publication_status)
        VALUES (?, ?, ?)
        RETURNING id, title, price, publication_status
    `

	var created model.Book
	err := r.db.QueryRowContext(ctx, query, book.Title, book.Price, int(book.PublicationStatus)).Scan(
		&created.ID,
		&created.Title,
		&created.Price,
		&created.PublicationStatus,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", database.Classify(err))
	}
	return &created, nil
}

func (r *sqliteRepository) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	var b model.Book
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, price, publication_status FROM books WHERE id = ?`, id,
	).Scan(&b.ID, &b.Title, &b.Price, &b.PublicationStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, database.Classify(err))
	}
	return &b, nil
}

func (r *sqliteRepository) UpdateBook(ctx context.Context, id int64, changes model.ChangeSet) (int64, error) {
	if changes.IsEmpty() {
		return 0, nil
	}

	sets := make([]string, 0, changes.Len())
	args := make([]any, 0, changes.Len()+1)
	for _, c := range changes.Changes() {
		switch v := c.(type) {
		case model.SetTitle:
			args = append(args, v.Title)
		case model.SetPrice:
			args = append(args, v.Price)
		case model.SetPublicationStatus:
			args = append(args, int(v.Status))
		default:
			return 0, fmt.Errorf("unsupported book change %T", c)
		}
		sets = append(sets, c.Field()+" = ?")
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE books SET %s WHERE id = ?", utils.JoinWithComma(sets))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update book %d: %w", id, database.Classify(err))
	}
	return res.RowsAffected()
}

func (r *sqliteRepository) ListBooksByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	query := `
        SELECT b.id, b.title, b.price, b.publication_status
        FROM books b
        JOIN book_authors ba ON ba.book_id = b.id
        WHERE ba.author_id = ?
        ORDER BY b.id
    `

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books of author %d: %w", authorID, err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Price, &b.PublicationStatus); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

type sqliteAuthorshipRepository struct {
	db database.SQLQuerier
}

func NewSQLiteAuthorshipRepository(db database.SQLQuerier) AuthorshipRepository {
	return &sqliteAuthorshipRepository{db: db}
}

func (r *sqliteAuthorshipRepository) ListAuthorIDs(ctx context.Context, bookID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT author_id FROM book_authors WHERE book_id = ? ORDER BY author_id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors of book %d: %w", bookID, err)
	}
	return scanIDs(rows)
}

func scanIDs(rows *sql.Rows) ([]int64, error) {
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *sqliteAuthorshipRepository) DeleteByBook(ctx context.Context, bookID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM book_authors WHERE book_id = ?`, bookID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete authorships of book %d: %w", bookID, err)
	}
	return res.RowsAffected()
}

func (r *sqliteAuthorshipRepository) InsertAll(ctx context.Context, bookID int64, authorIDs []int64) error {
	if len(authorIDs) == 0 {
		return nil
	}

	values := make([]string, len(authorIDs))
	args := make([]any, 0, 2*len(authorIDs))
	for i, id := range authorIDs {
		values[i] = "(?, ?)"
		args = append(args, bookID, id)
	}

	query := "INSERT INTO book_authors (book_id, author_id) VALUES " + strings.Join(values, ", ")
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to link authors to book %d: %w", bookID, database.Classify(err))
	}
	return nil
}

func (r *sqliteAuthorshipRepository) ListUnauthoredBookIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, unauthoredBooksQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list unauthored books: %w", err)
	}
	return scanIDs(rows)
}
