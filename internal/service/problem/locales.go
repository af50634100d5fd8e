package problem

import (
	"context"
	"fmt"
	"sort"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// reconcileLocales diffs a problem's current locale set against the
// requested entries. Locales missing from the request lose their title and
// content rows; present locales get only their non-nil fields upserted, so
// a nil field performs a partial update without reading the stored value
// back. Returns the new locale set (sorted) for the caller to persist on
// the problem row. Runs inside the caller's transaction and commits
// nothing itself.
func (s *Service) reconcileLocales(ctx context.Context, ownerID int64, current []string, requested map[string]LocalizedEntry) ([]string, error) {
	for _, locale := range current {
		if _, keep := requested[locale]; keep {
			continue
		}
		if err := s.contents.Delete(ctx, ownerID, domain.LocalizedContentTypeProblemTitle, locale); err != nil {
			return nil, fmt.Errorf("delete title %s: %w", locale, err)
		}
		if err := s.contents.Delete(ctx, ownerID, domain.LocalizedContentTypeProblemContent, locale); err != nil {
			return nil, fmt.Errorf("delete content %s: %w", locale, err)
		}
	}

	newLocales := make([]string, 0, len(requested))
	for locale, entry := range requested {
		if entry.Title != nil {
			if err := s.contents.Upsert(ctx, ownerID, domain.LocalizedContentTypeProblemTitle, locale, *entry.Title); err != nil {
				return nil, fmt.Errorf("upsert title %s: %w", locale, err)
			}
		}
		if entry.Content != nil {
			if err := s.contents.Upsert(ctx, ownerID, domain.LocalizedContentTypeProblemContent, locale, *entry.Content); err != nil {
				return nil, fmt.Errorf("upsert content %s: %w", locale, err)
			}
		}
		newLocales = append(newLocales, locale)
	}

	sort.Strings(newLocales)
	return newLocales, nil
}
