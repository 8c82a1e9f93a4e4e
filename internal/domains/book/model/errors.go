package model

// Messages carried by InvalidArgument / InvalidStateTransition errors
const (
	ErrMsgAuthorIDsEmpty      = "authorIds must contain at least one author"
	ErrMsgUnpublish           = "a published book cannot be set back to unpublished"
	ErrMsgTitleBlank          = "title must not be blank"
	ErrMsgNegativePrice       = "price must be greater than or equal to 0"
	ErrMsgPriceTooLarge       = "price must be no greater than 2147483647"
	ErrMsgInvalidStatus       = "publicationStatus must be 0 or 1"
	ErrMsgIDMismatch          = "id in body must be null or match the path id"
	ErrMsgAuthorsDoNotExist   = "one or more authors do not exist"
	ErrMsgReadBackAfterCommit = "book disappeared after update"
)
