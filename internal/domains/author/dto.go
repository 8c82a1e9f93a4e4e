package author

import (
	"time"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/patch"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// pastDate rejects dates that are not strictly before today
func pastDate(now func() time.Time) validation.Rule {
	return validation.By(func(v interface{}) error {
		var d shared.Date
		switch val := v.(type) {
		case shared.Date:
			d = val
		case *shared.Date:
			if val == nil {
				return nil
			}
			d = *val
		default:
			return nil
		}
		if !d.Before(shared.DateOf(now())) {
			return validation.NewError("validation_past_date", ErrMsgBirthDateNotPast)
		}
		return nil
	})
}

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	ID        *int64       `json:"id"`
	Name      string       `json:"name"`
	BirthDate *shared.Date `json:"birthDate"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Nil.Error("id must not be set on create")),
		validation.Field(&r.Name, validation.Required.Error(ErrMsgNameBlank)),
		validation.Field(&r.BirthDate,
			validation.NotNil.Error("birthDate is required"),
			pastDate(time.Now),
		),
	)
}

// ToAuthor assumes Validate passed
func (r CreateAuthorRequest) ToAuthor() Author {
	a := Author{Name: r.Name}
	if r.BirthDate != nil {
		a.BirthDate = *r.BirthDate
	}
	return a
}

// PatchAuthorRequest - PATCH /api/v1/authors/:id
type PatchAuthorRequest struct {
	ID        patch.Optional[int64]       `json:"id"`
	Name      patch.Optional[string]      `json:"name"`
	BirthDate patch.Optional[shared.Date] `json:"birthDate"`
}

func (r PatchAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BirthDate, patch.ValueRules[shared.Date](pastDate(time.Now))),
	)
}

func (r PatchAuthorRequest) MatchesPath(id int64) bool {
	bodyID, ok := r.ID.Get()
	return !ok || bodyID == id
}

// BuildAuthorChangeSet: name is omitted when absent, null or blank;
// birth date when absent or null.
func BuildAuthorChangeSet(r PatchAuthorRequest) ChangeSet {
	var cs ChangeSet
	if patch.Include(r.Name, patch.OmitIfBlank) {
		cs.Put(SetName{Name: r.Name.Value})
	}
	if patch.Include(r.BirthDate, patch.OmitIfNull) {
		cs.Put(SetBirthDate{BirthDate: r.BirthDate.Value})
	}
	return cs
}

type AuthorResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	BirthDate shared.Date `json:"birthDate"`
}

// AuthorWithBooksResponse - GET /api/v1/authors/:id/books
type AuthorWithBooksResponse struct {
	AuthorResponse
	Books []model.Book `json:"books"`
}

func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name, BirthDate: a.BirthDate}
}

func (a AuthorWithBooks) ToResponse() AuthorWithBooksResponse {
	books := a.Books
	if books == nil {
		books = []model.Book{}
	}
	return AuthorWithBooksResponse{AuthorResponse: a.Author.ToResponse(), Books: books}
}
