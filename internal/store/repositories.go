package store

import "github.com/MKhiriev/items-api/internal/logger"

// Repositories groups every repository built on top of one [DB].
type Repositories struct {
	ItemRepository ItemRepository
}

// NewRepositories builds all repositories for db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		ItemRepository: NewItemRepository(db, log),
	}
}
