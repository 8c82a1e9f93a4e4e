package author

const (
	ErrMsgNameBlank          = "name must not be blank"
	ErrMsgBirthDateNotPast   = "birthDate must be in the past"
	ErrMsgIDMismatch         = "id in body must be null or match the path id"
	ErrMsgReadBackAfterWrite = "author disappeared after update"
)
