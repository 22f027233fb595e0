package store

import "fmt"

// Shape checks run before any row reaches storage: required fields must
// be present and bounded strings must fit their column width. Width
// checks mirror the schema so oversized values fail loudly instead of
// relying on driver-specific truncation behavior.

func required(entity, field, value string) error {
	if value == "" {
		return fmt.Errorf("%s: %s is required: %w", entity, field, ErrInvalid)
	}

	return nil
}

func requiredID(entity, field string, id uint) error {
	if id == 0 {
		return fmt.Errorf("%s: %s is required: %w", entity, field, ErrInvalid)
	}

	return nil
}

func maxLen(entity, field, value string, limit int) error {
	if len(value) > limit {
		return fmt.Errorf("%s: %s exceeds %d characters: %w", entity, field, limit, ErrInvalid)
	}

	return nil
}

func nonNegative(entity, field string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s: %s must not be negative: %w", entity, field, ErrInvalid)
	}

	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
