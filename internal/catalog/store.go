package catalog

import "context"

// Store is the read side the HTTP layer depends on.
type Store interface {
	List() []Product
	GetByID(id int) (Product, error)
	Ping(ctx context.Context) error
}

// Mutator is the write side, reachable from the admin CLI and seed import.
type Mutator interface {
	Add(in Input) (Product, error)
	Update(id int, patch Patch) (Product, error)
	Delete(id int) error
}
