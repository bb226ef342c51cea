package importer

import "errors"

var (
	// ErrOperationNotFound is returned when the document has no operation
	// with the requested id.
	ErrOperationNotFound = errors.New("importer: operation not found")
	// ErrNoRequestBody is returned when the operation declares no usable
	// request body schema.
	ErrNoRequestBody = errors.New("importer: operation has no request body schema")
)
