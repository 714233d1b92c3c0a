package records

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/riteshgharti333/hospital-management-app-sub001/errs"
)

// Descriptor declares the per-entity configuration the engines run on. It is
// declared once per entity, next to the entity's model, and never derived
// from user input.
type Descriptor[T any] struct {
	// Name namespaces cache keys and error messages, e.g. "doctor".
	Name string

	// CursorColumn is the column pages are windowed on. It must be strictly
	// increasing and unique; in practice this is the primary key.
	CursorColumn string

	// PrimaryKey returns a record's primary key. Search uses it to
	// de-duplicate merged strategy results, and the pager reads the next
	// cursor from it, so it must correspond to CursorColumn.
	PrimaryKey func(T) int64
}

// Validate reports an incomplete descriptor declaration.
func (d Descriptor[T]) Validate() error {
	if err := validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.CursorColumn, validation.Required),
	); err != nil {
		return errs.BadInputf("descriptor: %v", err)
	}
	if d.PrimaryKey == nil {
		return errs.BadInputf("descriptor %q: PrimaryKey accessor is required", d.Name)
	}
	return nil
}
