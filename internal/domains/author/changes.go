package author

import (
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/patch"
)

const (
	FieldName      = "name"
	FieldBirthDate = "birth_date"
)

// Request field names reported on validation errors
const (
	ParamName      = "name"
	ParamBirthDate = "birthDate"
)

// Change is a single typed assignment to an author column.
type Change interface {
	patch.Change
	authorChange()
}

type SetName struct{ Name string }

type SetBirthDate struct{ BirthDate shared.Date }

func (SetName) Field() string      { return FieldName }
func (SetBirthDate) Field() string { return FieldBirthDate }

func (SetName) authorChange()      {}
func (SetBirthDate) authorChange() {}

type ChangeSet = patch.ChangeSet[Change]

func NewChangeSet(changes ...Change) ChangeSet {
	return patch.NewChangeSet(changes...)
}
