package service

import (
	"context"
	"strings"
	"time"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/store"

	"github.com/rs/zerolog/log"
)

type authorService struct {
	store store.Store
	now   func() time.Time
}

type Option func(*authorService)

// WithClock replaces time.Now when checking that birth dates are in the past
func WithClock(now func() time.Time) Option {
	return func(s *authorService) { s.now = now }
}

func NewAuthorService(st store.Store, opts ...Option) author.Service {
	s := &authorService{store: st, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authorService) Register(ctx context.Context, a author.Author) (*author.Author, error) {
	if strings.TrimSpace(a.Name) == "" {
		return nil, apperror.InvalidArgument(apperror.EntityAuthor, author.ParamName, author.ErrMsgNameBlank)
	}
	if err := s.checkBirthDate(a.BirthDate); err != nil {
		return nil, err
	}

	var created *author.Author
	err := s.store.WithTx(ctx, func(repos store.Repositories) error {
		var err error
		created, err = repos.Authors.Create(ctx, &a)
		return err
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.EntityAuthor)
	}

	log.Info().Int64("author_id", created.ID).Msg("author registered")
	return created, nil
}

// PartialUpdate applies only the fields present in changes. An empty
// change set returns the stored author untouched.
func (s *authorService) PartialUpdate(ctx context.Context, id int64, changes author.ChangeSet) (*author.Author, error) {
	if err := s.validateChanges(changes); err != nil {
		return nil, err
	}

	var result *author.Author
	err := s.store.WithTx(ctx, func(repos store.Repositories) error {
		current, err := repos.Authors.FindByID(ctx, id)
		if err != nil {
			return apperror.FromStorage(err, apperror.EntityAuthor)
		}
		if changes.IsEmpty() {
			result = current
			return nil
		}

		affected, err := repos.Authors.Update(ctx, id, changes)
		if err != nil {
			return apperror.FromStorage(err, apperror.EntityAuthor)
		}
		if affected == 0 {
			return apperror.NotFound(apperror.EntityAuthor)
		}

		result, err = repos.Authors.FindByID(ctx, id)
		if err != nil {
			return apperror.Unexpected(apperror.EntityAuthor, author.ErrMsgReadBackAfterWrite, err)
		}
		return nil
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.EntityAuthor)
	}

	if !changes.IsEmpty() {
		log.Info().Int64("author_id", id).Strs("fields", changes.Fields()).Msg("author updated")
	}
	return result, nil
}

func (s *authorService) Get(ctx context.Context, id int64) (*author.Author, error) {
	a, err := s.store.Repositories().Authors.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.EntityAuthor)
	}
	return a, nil
}

// GetWithBooks reads the author and the books crediting them in one
// transaction so both come from the same snapshot.
func (s *authorService) GetWithBooks(ctx context.Context, id int64) (*author.AuthorWithBooks, error) {
	var result *author.AuthorWithBooks
	err := s.store.WithTx(ctx, func(repos store.Repositories) error {
		a, err := repos.Authors.FindByID(ctx, id)
		if err != nil {
			return apperror.FromStorage(err, apperror.EntityAuthor)
		}

		books, err := repos.Books.ListBooksByAuthor(ctx, id)
		if err != nil {
			return apperror.FromStorage(err, apperror.EntityBook)
		}

		result = &author.AuthorWithBooks{Author: *a, Books: books}
		return nil
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.EntityAuthor)
	}
	return result, nil
}

func (s *authorService) checkBirthDate(d shared.Date) error {
	if !d.Before(shared.DateOf(s.now())) {
		return apperror.InvalidArgument(apperror.EntityAuthor, author.ParamBirthDate, author.ErrMsgBirthDateNotPast)
	}
	return nil
}

func (s *authorService) validateChanges(cs author.ChangeSet) error {
	for _, c := range cs.Changes() {
		switch v := c.(type) {
		case author.SetName:
			if strings.TrimSpace(v.Name) == "" {
				return apperror.InvalidArgument(apperror.EntityAuthor, author.ParamName, author.ErrMsgNameBlank)
			}
		case author.SetBirthDate:
			if err := s.checkBirthDate(v.BirthDate); err != nil {
				return err
			}
		}
	}
	return nil
}
