package fabrica

import "context"

// Entity is a business entity struct, or a pointer to one.
// Entities communicate with storages through their ext:"ID" tagged field,
// or a field that is simply named ID.
type Entity = interface{}

// Creator takes a pointer to an entity<T> and stores it into the resource.
// It also updates the entity<T> ext:"ID" field with the associated unique resource id.
// The reason behind linking the id instead of returning it is that in most cases
// the Create error value is the only thing checked for errors,
// and introducing an extra return value would also introduce boilerplate in the handling.
type Creator interface {
	Create(ctx context.Context, ptr Entity) error
}

// Finder reads entities back from the resource.
type Finder interface {
	// FindByID links the entity found in the resource to the received ptr,
	// and reports back whether it succeeded to find the entity in the resource.
	// It was an intentional decision not to use an error to represent the "not found" case,
	// but to tell this explicitly in the form of a return bool value.
	FindByID(ctx context.Context, ptr Entity, id interface{}) (found bool, err error)
	// FindAll returns every stored entity that has <T> type.
	FindAll(ctx context.Context, T Entity) ([]Entity, error)
}

// Updater takes a pointer to an entity and updates the corresponding stored
// entity with the received entity field values.
type Updater interface {
	Update(ctx context.Context, ptr Entity) error
}

// Deleter removes entities from the resource.
type Deleter interface {
	// DeleteByID removes a <T> type entity from the storage by a given id.
	DeleteByID(ctx context.Context, T Entity, id interface{}) error
	// DeleteAll erases every entity from the resource that has <T> type.
	DeleteAll(ctx context.Context, T Entity) error
}

// Storage is the composite persistence port the factory Create strategy
// saves through, and the one the stubs package disables wholesale.
type Storage interface {
	Creator
	Finder
	Updater
	Deleter
}

// ConnectionManager exposes the transaction surface of a storage connection.
type ConnectionManager interface {
	BeginTx(ctx context.Context) (context.Context, error)
	CommitTx(ctx context.Context) error
	RollbackTx(ctx context.Context) error
}
