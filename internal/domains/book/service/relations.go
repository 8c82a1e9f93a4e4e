package service

import (
	"context"
	"errors"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/store"
	"catalog-backend/pkg/database"
)

// validateAuthorsExist checks every id in one count query. ids must be
// distinct. An empty list passes.
func validateAuthorsExist(ctx context.Context, repos store.Repositories, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := repos.Authors.CountByIDs(ctx, ids)
	if err != nil {
		return apperror.FromStorage(err, apperror.EntityAuthor)
	}
	if found != len(ids) {
		e := apperror.ReferenceNotFound(apperror.EntityAuthor, nil)
		e.Field = model.ParamAuthorIDs
		e.Message = model.ErrMsgAuthorsDoNotExist
		return e
	}
	return nil
}

// linkAuthors inserts authorship rows. A duplicate row is AlreadyExists on
// the authorship, a dangling author id is ReferenceNotFound on the author.
func linkAuthors(ctx context.Context, repos store.Repositories, bookID int64, ids []int64) error {
	err := repos.Authorships.InsertAll(ctx, bookID, ids)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrUniqueViolation):
		return apperror.AlreadyExists(apperror.EntityAuthorship, err)
	case errors.Is(err, database.ErrForeignKeyViolation):
		return apperror.ReferenceNotFound(apperror.EntityAuthor, err)
	default:
		return apperror.FromStorage(err, apperror.EntityAuthorship)
	}
}

// readBookWithAuthors re-reads the book and its current author ids
func readBookWithAuthors(ctx context.Context, repos store.Repositories, id int64) (*model.BookWithAuthors, error) {
	book, err := repos.Books.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ids, err := repos.Authorships.ListAuthorIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.BookWithAuthors{Book: *book, AuthorIDs: ids}, nil
}
