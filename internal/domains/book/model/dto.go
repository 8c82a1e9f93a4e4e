package model

import (
	"catalog-backend/internal/shared/patch"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest - POST /api/v1/books
type CreateBookRequest struct {
	ID                *int64             `json:"id"`
	Title             string             `json:"title"`
	Price             *int               `json:"price"`
	PublicationStatus *PublicationStatus `json:"publicationStatus"`
	AuthorIDs         []int64            `json:"authorIds"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Nil.Error("id must not be set on create")),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Price,
			validation.NotNil.Error("price is required"),
			validation.Min(0).Error(ErrMsgNegativePrice),
			validation.Max(MaxPrice).Error(ErrMsgPriceTooLarge),
		),
		validation.Field(&r.PublicationStatus,
			validation.NotNil.Error("publicationStatus is required"),
			validation.In(StatusUnpublished, StatusPublished).Error("publicationStatus must be 0 or 1"),
		),
		validation.Field(&r.AuthorIDs, validation.Required.Error(ErrMsgAuthorIDsEmpty)),
	)
}

// ToBook assumes Validate passed
func (r CreateBookRequest) ToBook() Book {
	b := Book{Title: r.Title}
	if r.Price != nil {
		b.Price = *r.Price
	}
	if r.PublicationStatus != nil {
		b.PublicationStatus = *r.PublicationStatus
	}
	return b
}

// PatchBookRequest - PATCH /api/v1/books/:id
// Every field is optional; see BuildBookUpdate for how each one is applied.
type PatchBookRequest struct {
	ID                patch.Optional[int64]             `json:"id"`
	Title             patch.Optional[string]            `json:"title"`
	Price             patch.Optional[int]               `json:"price"`
	PublicationStatus patch.Optional[PublicationStatus] `json:"publicationStatus"`
	AuthorIDs         patch.Optional[[]int64]           `json:"authorIds"`
}

func (r PatchBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Price,
			patch.ValueRules[int](
				validation.Min(0).Error(ErrMsgNegativePrice),
				validation.Max(MaxPrice).Error(ErrMsgPriceTooLarge),
			),
		),
		validation.Field(&r.PublicationStatus,
			patch.ValueRules[PublicationStatus](
				validation.In(StatusUnpublished, StatusPublished).Error("publicationStatus must be 0 or 1"),
			),
		),
	)
}

// MatchesPath reports whether the optional body id agrees with the path id.
func (r PatchBookRequest) MatchesPath(id int64) bool {
	bodyID, ok := r.ID.Get()
	return !ok || bodyID == id
}

// BuildBookUpdate turns a sparse request into a typed update.
//
//	title             omitted when absent, null or blank
//	price, status     omitted when absent or null
//	authorIds         carried whenever present; null or [] keeps the current set
func BuildBookUpdate(r PatchBookRequest) BookUpdate {
	var u BookUpdate

	if patch.Include(r.Title, patch.OmitIfBlank) {
		u.Changes.Put(SetTitle{Title: r.Title.Value})
	}
	if patch.Include(r.Price, patch.OmitIfNull) {
		u.Changes.Put(SetPrice{Price: r.Price.Value})
	}
	if patch.Include(r.PublicationStatus, patch.OmitIfNull) {
		u.Changes.Put(SetPublicationStatus{Status: r.PublicationStatus.Value})
	}
	if patch.Include(r.AuthorIDs, patch.IncludeWhenPresent) {
		u.AuthorIDs = r.AuthorIDs.Value
	}

	return u
}

// BookResponse is the wire form of BookWithAuthors
type BookResponse struct {
	ID                int64             `json:"id"`
	Title             string            `json:"title"`
	Price             int               `json:"price"`
	PublicationStatus PublicationStatus `json:"publicationStatus"`
	AuthorIDs         []int64           `json:"authorIds"`
}

func (b BookWithAuthors) ToResponse() BookResponse {
	ids := b.AuthorIDs
	if ids == nil {
		ids = []int64{}
	}
	return BookResponse{
		ID:                b.ID,
		Title:             b.Title,
		Price:             b.Price,
		PublicationStatus: b.PublicationStatus,
		AuthorIDs:         ids,
	}
}
