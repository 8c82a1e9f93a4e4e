package repository

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/database"
)

// postgresRepository implements author.Repository over pgx.
// db is either the pool or the current transaction.
type postgresRepository struct {
	db database.PgxQuerier
}

func NewPostgresRepository(db database.PgxQuerier) author.Repository {
	return &postgresRepository{db: db}
}

// Create inserts a new author and returns the stored row
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, birth_date)
        VALUES ($1, $2)
        RETURNING id, name, birth_date
    `

	var (
		created   author.Author
		birthDate time.Time
	)
	err := r.db.QueryRow(ctx, query, a.Name, a.BirthDate.Time).Scan(
		&created.ID,
		&created.Name,
		&birthDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", database.Classify(err))
	}
	created.BirthDate = shared.DateOf(birthDate)

	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `
        SELECT id, name, birth_date
        FROM authors
        WHERE id = $1
    `

	var (
		a         author.Author
		birthDate time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &birthDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get author %d: %w", id, database.Classify(err))
	}
	a.BirthDate = shared.DateOf(birthDate)

	return &a, nil
}

// Update builds one UPDATE from the typed change set
func (r *postgresRepository) Update(ctx context.Context, id int64, changes author.ChangeSet) (int64, error) {
	if changes.IsEmpty() {
		return 0, nil
	}

	sets := make([]string, 0, changes.Len())
	args := make([]any, 0, changes.Len()+1)
	for _, c := range changes.Changes() {
		switch v := c.(type) {
		case author.SetName:
			args = append(args, v.Name)
		case author.SetBirthDate:
			args = append(args, v.BirthDate.Time)
		default:
			return 0, fmt.Errorf("unsupported author change %T", c)
		}
		sets = append(sets, c.Field()+" = "+utils.PgPlaceholder(len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE authors SET %s WHERE id = %s",
		utils.JoinWithComma(sets),
		utils.PgPlaceholder(len(args)),
	)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update author %d: %w", id, database.Classify(err))
	}

	return tag.RowsAffected(), nil
}

func (r *postgresRepository) CountByIDs(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM authors WHERE id = ANY($1)`, ids).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return count, nil
}
