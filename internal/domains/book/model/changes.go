package model

import "catalog-backend/internal/shared/patch"

// Column names touched by a book update
const (
	FieldTitle             = "title"
	FieldPrice             = "price"
	FieldPublicationStatus = "publication_status"
	FieldAuthorIDs         = "author_ids"
)

// Request field names reported on validation errors
const (
	ParamTitle             = "title"
	ParamPrice             = "price"
	ParamPublicationStatus = "publicationStatus"
	ParamAuthorIDs         = "authorIds"
)

// Change is a single typed assignment to a book column.
type Change interface {
	patch.Change
	bookChange()
}

type SetTitle struct{ Title string }

type SetPrice struct{ Price int }

type SetPublicationStatus struct{ Status PublicationStatus }

func (SetTitle) Field() string             { return FieldTitle }
func (SetPrice) Field() string             { return FieldPrice }
func (SetPublicationStatus) Field() string { return FieldPublicationStatus }

func (SetTitle) bookChange()             {}
func (SetPrice) bookChange()             {}
func (SetPublicationStatus) bookChange() {}

type ChangeSet = patch.ChangeSet[Change]

// NewChangeSet is a convenience constructor used by callers outside HTTP
func NewChangeSet(changes ...Change) ChangeSet {
	return patch.NewChangeSet(changes...)
}

// BookUpdate is the input of a book update: scalar changes plus an
// optional replacement authorship set (nil or empty leaves it unchanged).
type BookUpdate struct {
	Changes   ChangeSet
	AuthorIDs []int64
}

// RequestedStatus returns the status the change set would store, if any.
func RequestedStatus(cs ChangeSet) (PublicationStatus, bool) {
	c, ok := cs.Lookup(FieldPublicationStatus)
	if !ok {
		return 0, false
	}
	return c.(SetPublicationStatus).Status, true
}
