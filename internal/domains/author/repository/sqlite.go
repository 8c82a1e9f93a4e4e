package repository

import (
	"context"
	"fmt"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/database"
)

// sqliteRepository implements author.Repository over database/sql with
// the embedded SQLite driver. Dates are stored as YYYY-MM-DD text.
type sqliteRepository struct {
	db database.SQLQuerier
}

func NewSQLiteRepository(db database.SQLQuerier) author.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) scan(row interface{ Scan(...any) error }) (*author.Author, error) {
	var (
		a         author.Author
		birthDate string
	)
	if err := row.Scan(&a.ID, &a.Name, &birthDate); err != nil {
		return nil, err
	}
	d, err := shared.ParseDate(birthDate)
	if err != nil {
		return nil, err
	}
	a.BirthDate = d
	return &a, nil
}

func (r *sqliteRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, birth_date)
        VALUES (?, ?)
        RETURNING id, name, birth_date
    `

	created, err := r.scan(r.db.QueryRowContext(ctx, query, a.Name, a.BirthDate.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", database.Classify(err))
	}
	return created, nil
}

func (r *sqliteRepository) FindByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `SELECT id, name, birth_date FROM authors WHERE id = ?`

	a, err := r.scan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get author %d: %w", id, database.Classify(err))
	}
	return a, nil
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, changes author.ChangeSet) (int64, error) {
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
			args = append(args, v.BirthDate.String())
		default:
			return 0, fmt.Errorf("unsupported author change %T", c)
		}
		sets = append(sets, c.Field()+" = ?")
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE authors SET %s WHERE id = ?", utils.JoinWithComma(sets))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update author %d: %w", id, database.Classify(err))
	}
	return res.RowsAffected()
}

func (r *sqliteRepository) CountByIDs(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM authors WHERE id IN (%s)",
		utils.QuestionPlaceholders(len(ids)),
	)

	var count int
	if err := r.db.QueryRowContext(ctx, query, utils.Int64Args(ids)...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}
