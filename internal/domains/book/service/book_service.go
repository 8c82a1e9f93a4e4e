package service

import (
	"context"
	"strings"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/internal/store"

	"github.com/rs/zerolog/log"
)

type bookService struct {
	store     store.Store
	publisher EventPublisher
}

type Option func(*bookService)

// WithEventPublisher enables publication events
func WithEventPublisher(p EventPublisher) Option {
	return func(s *bookService) { s.publisher = p }
}

func NewBookService(st store.Store, opts ...Option) ServiceInterface {
	s := &bookService{store: st}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *bookService) Register(ctx context.Context, book model.Book, authorIDs []int64) (*model.BookWithAuthors, error) {
	ids := utils.UniqueInt64(authorIDs)
	if len(ids) == 0 {
		return nil, apperror.InvalidArgument(apperror.EntityBook, model.ParamAuthorIDs, model.ErrMsgAuthorIDsEmpty)
	}
	if err := validateBook(book); err != nil {
		return nil, err
	}

	var result *model.BookWithAuthors
	err := s.store.WithTx(ctx, func(repos store.Repositories) error {
		if err := validateAuthorsExist(ctx, repos, ids); err != nil {
			return err
		}

		created, err := repos.Books.CreateBook(ctx, &book)
		if err != nil {
			return apperror.FromStorage(err, apperror.EntityBook)
		}

		if err := linkAuthors(ctx, repos, created.ID, ids); err != nil {
			return err
		}

		result, err = readBookWithAuthors(ctx, repos, created.ID)
		if err != nil {
			return apperror.Unexpected(apperror.EntityBook, model.ErrMsgReadBackAfterCommit, err)
		}
		return nil
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.EntityBook)
	}

	log.Info().
		Int64("book_id", result.ID).
		Ints64("author_ids", result.AuthorIDs).
		Str("status", result.PublicationStatus.String()).
		Msg("book registered")

	if result.PublicationStatus == model.StatusPublished {
		s.notifyPublished(ctx, *result)
	}

	return result, nil
}

// Update:
//  1. the book must exist
//  2. a published book cannot go back to unpublished
//  3. scalar changes are applied in one statement
//  4. a non-empty author list replaces the authorship set
//  5. the result is re-read inside the transaction
func (s *bookService) Update(ctx context.Context, id int64, update model.BookUpdate) (*model.BookWithAuthors, error) {
	if err := validateChanges(update.Changes); err != nil {
		return nil, err
	}
	ids := utils.UniqueInt64(update.AuthorIDs)

	var (
		result          *model.BookWithAuthors
		becamePublished bool
	)
	err := s.store.WithTx(ctx, func(repos store.Repositories) error {
		current, err := repos.Books.GetBookByID(ctx, id)
		if err != nil {
			return apperror.FromStorage(err, apperror.EntityBook)
		}

		if next, ok := model.RequestedStatus(update.Changes); ok {
			if !current.PublicationStatus.CanTransitionTo(next) {
				return apperror.InvalidStateTransition(apperror.EntityBook, model.ParamPublicationStatus, model.ErrMsgUnpublish)
			}
			becamePublished = current.PublicationStatus == model.StatusUnpublished && next == model.StatusPublished
		}

		if !update.Changes.IsEmpty() {
			affected, err := repos.Books.UpdateBook(ctx, id, update.Changes)
			if err != nil {
				return apperror.FromStorage(err, apperror.EntityBook)
			}
			if affected == 0 {
				return apperror.NotFound(apperror.EntityBook)
			}
		}

		if len(ids) > 0 {
			if err := validateAuthorsExist(ctx, repos, ids); err != nil {
				return err
			}
			if _, err := repos.Authorships.DeleteByBook(ctx, id); err != nil {
				return apperror.FromStorage(err, apperror.EntityAuthorship)
			}
			if err := linkAuthors(ctx, repos, id, ids); err != nil {
				return err
			}
		}

		result, err = readBookWithAuthors(ctx, repos, id)
		if err != nil {
			return apperror.Unexpected(apperror.EntityBook, model.ErrMsgReadBackAfterCommit, err)
		}
		return nil
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.EntityBook)
	}

	log.Info().
		Int64("book_id", id).
		Strs("fields", update.Changes.Fields()).
		Bool("authors_replaced", len(ids) > 0).
		Msg("book updated")

	if becamePublished {
		s.notifyPublished(ctx, *result)
	}

	return result, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*model.BookWithAuthors, error) {
	result, err := readBookWithAuthors(ctx, s.store.Repositories(), id)
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.EntityBook)
	}
	return result, nil
}

// notifyPublished never fails the request; the write is already committed
func (s *bookService) notifyPublished(ctx context.Context, book model.BookWithAuthors) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.BookPublished(ctx, book); err != nil {
		log.Error().Err(err).Int64("book_id", book.ID).Msg("failed to publish book:published event")
	}
}

func validateBook(b model.Book) error {
	if strings.TrimSpace(b.Title) == "" {
		return apperror.InvalidArgument(apperror.EntityBook, model.ParamTitle, model.ErrMsgTitleBlank)
	}
	if err := checkPrice(b.Price); err != nil {
		return err
	}
	if !b.PublicationStatus.Valid() {
		return apperror.InvalidArgument(apperror.EntityBook, model.ParamPublicationStatus, model.ErrMsgInvalidStatus)
	}
	return nil
}

func validateChanges(cs model.ChangeSet) error {
	for _, c := range cs.Changes() {
		switch v := c.(type) {
		case model.SetTitle:
			if strings.TrimSpace(v.Title) == "" {
				return apperror.InvalidArgument(apperror.EntityBook, model.ParamTitle, model.ErrMsgTitleBlank)
			}
		case model.SetPrice:
			if err := checkPrice(v.Price); err != nil {
				return err
			}
		case model.SetPublicationStatus:
			if !v.Status.Valid() {
				return apperror.InvalidArgument(apperror.EntityBook, model.ParamPublicationStatus, model.ErrMsgInvalidStatus)
			}
		}
	}
	return nil
}

func checkPrice(price int) error {
	switch {
	case price < 0:
		return apperror.InvalidArgument(apperror.EntityBook, model.ParamPrice, model.ErrMsgNegativePrice)
	case price > model.MaxPrice:
		return apperror.InvalidArgument(apperror.EntityBook, model.ParamPrice, model.ErrMsgPriceTooLarge)
	}
	return nil
}
