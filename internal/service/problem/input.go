package problem

import (
	"github.com/ai4s-oj/lyrio/internal/domain"
)

// LocalizedEntry carries the requested title and content for one locale.
// A nil field in an update means "keep the stored value"; the entry's
// presence alone keeps the locale alive.
type LocalizedEntry struct {
	Title   *string
	Content *string
}

// StatementInput is the localized statement supplied at creation.
type StatementInput struct {
	Localized map[string]LocalizedEntry
	Samples   []domain.SampleData
}

// Validate checks a creation statement: at least one locale, and every
// locale must supply both fields since there is no stored value to keep.
func (in StatementInput) Validate() error {
	if len(in.Localized) == 0 {
		return domain.NewValidationError("localized", "at least one locale is required")
	}
	for locale, entry := range in.Localized {
		if locale == "" {
			return domain.NewValidationError("localized", "empty locale code")
		}
		if entry.Title == nil || entry.Content == nil {
			return domain.NewValidationError("localized",
				"title and content are required for locale "+locale)
		}
	}
	return nil
}

// UpdateStatementRequest describes a statement update. Samples nil means
// "keep the current sample data"; non-nil replaces it wholesale. The
// Localized map is the complete desired locale set: locales absent from it
// are deleted.
type UpdateStatementRequest struct {
	Localized map[string]LocalizedEntry
	Samples   []domain.SampleData
}

// Validate checks an update request.
func (req UpdateStatementRequest) Validate() error {
	if len(req.Localized) == 0 {
		return domain.NewValidationError("localized", "at least one locale is required")
	}
	for locale := range req.Localized {
		if locale == "" {
			return domain.NewValidationError("localized", "empty locale code")
		}
	}
	return nil
}
