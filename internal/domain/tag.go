package domain

// ProblemTag classifies problems. Tags have an independent lifecycle from
// problems; the display name per locale lives in localized storage under
// LocalizedContentTypeProblemTagName.
type ProblemTag struct {
	ID      int64
	Color   string
	Locales []string
}
