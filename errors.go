package fabrica

// Error is an implementation of the error interface
// that allows declaring exported globals with the `const` keyword.
//
//	const ErrSomething fabrica.Error = "something is an error"
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

const (
	// ErrStubbed is returned by every persistence operation attempted
	// with the stubs package storage.
	ErrStubbed Error = `stubbed records are not allowed to access the database`

	// ErrIDRequired is returned when an entity lacks an ext:"ID" field
	// but an operation requires one.
	ErrIDRequired Error = `entity doesn't have an ext:"ID" field`

	// ErrNotFound is returned by mutating storage operations
	// when the referenced entity is not stored.
	ErrNotFound Error = `entity not found`
)
