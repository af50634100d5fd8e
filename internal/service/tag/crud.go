package tag

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Create makes a tag with a color and at least one localized name, in one
// transaction.
func (s *Service) Create(ctx context.Context, color string, names map[string]string) (*domain.ProblemTag, error) {
	if len(names) == 0 {
		return nil, domain.NewValidationError("names", "at least one localized name is required")
	}

	var created *domain.ProblemTag
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.tags.Create(txCtx, &domain.ProblemTag{
			Color:   color,
			Locales: sortedLocales(names),
		})
		if err != nil {
			return fmt.Errorf("create tag: %w", err)
		}

		for locale, name := range names {
			if err := s.contents.Upsert(txCtx, created.ID, domain.LocalizedContentTypeProblemTagName, locale, name); err != nil {
				return fmt.Errorf("upsert tag name %s: %w", locale, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag created", slog.Int64("tag_id", created.ID))
	return created, nil
}

// Update replaces a tag's color and its full localized name set: names for
// locales absent from the map are deleted, present ones upserted.
func (s *Service) Update(ctx context.Context, t *domain.ProblemTag, color string, names map[string]string) error {
	if len(names) == 0 {
		return domain.NewValidationError("names", "at least one localized name is required")
	}

	newLocales := sortedLocales(names)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, locale := range t.Locales {
			if _, keep := names[locale]; keep {
				continue
			}
			if err := s.contents.Delete(txCtx, t.ID, domain.LocalizedContentTypeProblemTagName, locale); err != nil {
				return fmt.Errorf("delete tag name %s: %w", locale, err)
			}
		}
		for locale, name := range names {
			if err := s.contents.Upsert(txCtx, t.ID, domain.LocalizedContentTypeProblemTagName, locale, name); err != nil {
				return fmt.Errorf("upsert tag name %s: %w", locale, err)
			}
		}

		return s.tags.Update(txCtx, &domain.ProblemTag{
			ID:      t.ID,
			Color:   color,
			Locales: newLocales,
		})
	})
	if err != nil {
		return err
	}

	t.Color = color
	t.Locales = newLocales
	return nil
}

// Delete removes a tag, its localized names, and every problem
// association, in one transaction.
func (s *Service) Delete(ctx context.Context, t *domain.ProblemTag) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tags.DeleteMapByTag(txCtx, t.ID); err != nil {
			return fmt.Errorf("delete tag associations: %w", err)
		}
		if err := s.contents.DeleteAll(txCtx, t.ID, domain.LocalizedContentTypeProblemTagName); err != nil {
			return fmt.Errorf("delete tag names: %w", err)
		}
		if err := s.tags.Delete(txCtx, t.ID); err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tag deleted", slog.Int64("tag_id", t.ID))
	return nil
}

// List returns all tags in ID order.
func (s *Service) List(ctx context.Context) ([]*domain.ProblemTag, error) {
	return s.tags.List(ctx)
}

// GetByID returns one tag.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ProblemTag, error) {
	return s.tags.GetByID(ctx, id)
}

// ProblemCount returns how many problems carry the tag.
func (s *Service) ProblemCount(ctx context.Context, t *domain.ProblemTag) (int64, error) {
	return s.tags.CountByTag(ctx, t.ID)
}

// GetName returns the tag's name in the requested locale, falling back to
// the tag's first locale when no translation exists.
func (s *Service) GetName(ctx context.Context, t *domain.ProblemTag, locale string) (string, error) {
	resolved := locale
	if !hasLocale(t.Locales, locale) {
		if len(t.Locales) == 0 {
			return "", fmt.Errorf("tag %d has no names: %w", t.ID, domain.ErrNotFound)
		}
		resolved = t.Locales[0]
	}
	return s.contents.Get(ctx, t.ID, domain.LocalizedContentTypeProblemTagName, resolved)
}

func sortedLocales(names map[string]string) []string {
	locales := make([]string, 0, len(names))
	for locale := range names {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

func hasLocale(locales []string, locale string) bool {
	for _, l := range locales {
		if l == locale {
			return true
		}
	}
	return false
}
