package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// The four error kinds every repository call can fail with. Callers
// inspect them with errors.Is; the wrapped message carries the entity
// name.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate value for unique field")
	ErrForeignKey = errors.New("referential integrity violation")
	ErrInvalid    = errors.New("invalid record")
)

// translate maps storage-layer failures onto the store's error kinds.
func translate(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", entity, ErrDuplicate)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", entity, ErrForeignKey)
	}

	return fmt.Errorf("%s: %w", entity, err)
}
