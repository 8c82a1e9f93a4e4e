package repository

import (
	"context"
	"fmt"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/database"

	"github.com/jackc/pgx/v5"
)

type postgresRepository struct {
	db database.PgxQuerier
}

func NewPostgresRepository(db database.PgxQuerier) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, price, publication_status)
        VALUES ($1, $2, $3)
        RETURNING id, title, price, publication_status
    `

	var created model.Book
	err := r.db.QueryRow(ctx, query, book.Title, book.Price, int(book.PublicationStatus)).Scan(
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

func (r *postgresRepository) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `
        SELECT id, title, price, publication_status
        FROM books
        WHERE id = $1
    `

	var b model.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Price, &b.PublicationStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, database.Classify(err))
	}

	return &b, nil
}

func (r *postgresRepository) UpdateBook(ctx context.Context, id int64, changes model.ChangeSet) (int64, error) {
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
		sets = append(sets, c.Field()+" = "+utils.PgPlaceholder(len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE books SET %s WHERE id = %s",
		utils.JoinWithComma(sets),
		utils.PgPlaceholder(len(args)),
	)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update book %d: %w", id, database.Classify(err))
	}

	return tag.RowsAffected(), nil
}

func (r *postgresRepository) ListBooksByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	query := `
        SELECT b.id, b.title, b.price, b.publication_status
        FROM books b
        JOIN book_authors ba ON ba.book_id = b.id
        WHERE ba.author_id = $1
        ORDER BY b.id
    `

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books of author %d: %w", authorID, err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Book, error) {
		var b model.Book
		err := row.Scan(&b.ID, &b.Title, &b.Price, &b.PublicationStatus)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan books: %w", err)
	}

	return books, nil
}

type postgresAuthorshipRepository struct {
	db database.PgxQuerier
}

func NewPostgresAuthorshipRepository(db database.PgxQuerier) AuthorshipRepository {
	return &postgresAuthorshipRepository{db: db}
}

func (r *postgresAuthorshipRepository) ListAuthorIDs(ctx context.Context, bookID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT author_id FROM book_authors WHERE book_id = $1 ORDER BY author_id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors of book %d: %w", bookID, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan author ids: %w", err)
	}

	return ids, nil
}

func (r *postgresAuthorshipRepository) DeleteByBook(ctx context.Context, bookID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, bookID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete authorships of book %d: %w", bookID, err)
	}
	return tag.RowsAffected(), nil
}

// InsertAll writes every row in a single statement
func (r *postgresAuthorshipRepository) InsertAll(ctx context.Context, bookID int64, authorIDs []int64) error {
	if len(authorIDs) == 0 {
		return nil
	}

	query := `
        INSERT INTO book_authors (book_id, author_id)
        SELECT $1, UNNEST($2::BIGINT[])
    `

	if _, err := r.db.Exec(ctx, query, bookID, authorIDs); err != nil {
		return fmt.Errorf("failed to link authors to book %d: %w", bookID, database.Classify(err))
	}
	return nil
}

func (r *postgresAuthorshipRepository) ListUnauthoredBookIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, unauthoredBooksQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list unauthored books: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan book ids: %w", err)
	}
	return ids, nil
}
