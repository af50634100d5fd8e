package domain

// LocalizedContentType is the kind discriminator of a localized text row.
// Rows are keyed by (owner entity ID, type, locale).
type LocalizedContentType string

const (
	LocalizedContentTypeProblemTitle   LocalizedContentType = "PROBLEM_TITLE"
	LocalizedContentTypeProblemContent LocalizedContentType = "PROBLEM_CONTENT"
	LocalizedContentTypeProblemTagName LocalizedContentType = "PROBLEM_TAG_NAME"
)

func (t LocalizedContentType) String() string { return string(t) }

func (t LocalizedContentType) IsValid() bool {
	switch t {
	case LocalizedContentTypeProblemTitle,
		LocalizedContentTypeProblemContent,
		LocalizedContentTypeProblemTagName:
		return true
	}
	return false
}
