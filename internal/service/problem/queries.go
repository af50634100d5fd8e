package problem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Read accessors. These perform no mutation and no authorization: callers
// run the permission resolver before exposing the results.

// GetByID returns a problem by internal ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Problem, error) {
	return s.problems.GetByID(ctx, id)
}

// GetByDisplayID returns a problem by its human-facing number.
func (s *Service) GetByDisplayID(ctx context.Context, displayID int) (*domain.Problem, error) {
	return s.problems.GetByDisplayID(ctx, displayID)
}

// List returns the problems matching the filter together with the total
// match count, for paginated problem-set views. Callers restrict the
// filter (e.g. PublicOnly) according to what the actor may see.
func (s *Service) List(ctx context.Context, filter domain.ProblemFilter) ([]*domain.Problem, int64, error) {
	problems, err := s.problems.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list problems: %w", err)
	}
	count, err := s.problems.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count problems: %w", err)
	}
	return problems, count, nil
}

// Statement is a problem's textual statement in one locale.
type Statement struct {
	Locale  string
	Title   string
	Content string
}

// GetStatement returns the statement in the requested locale, falling back
// to the problem's first available locale when the request has no
// translation.
func (s *Service) GetStatement(ctx context.Context, p *domain.Problem, locale string) (*Statement, error) {
	resolved := locale
	if !containsLocale(p.Locales, locale) {
		if len(p.Locales) == 0 {
			return nil, fmt.Errorf("problem %d has no locales: %w", p.ID, domain.ErrNotFound)
		}
		resolved = p.Locales[0]
	}

	title, err := s.contents.Get(ctx, p.ID, domain.LocalizedContentTypeProblemTitle, resolved)
	if err != nil {
		return nil, fmt.Errorf("get title: %w", err)
	}

	content, err := s.contents.Get(ctx, p.ID, domain.LocalizedContentTypeProblemContent, resolved)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get content: %w", err)
	}

	return &Statement{Locale: resolved, Title: title, Content: content}, nil
}

// GetAllStatements returns every locale's title and content.
func (s *Service) GetAllStatements(ctx context.Context, p *domain.Problem) (map[string]Statement, error) {
	titles, err := s.contents.GetAll(ctx, p.ID, domain.LocalizedContentTypeProblemTitle)
	if err != nil {
		return nil, fmt.Errorf("get titles: %w", err)
	}
	contents, err := s.contents.GetAll(ctx, p.ID, domain.LocalizedContentTypeProblemContent)
	if err != nil {
		return nil, fmt.Errorf("get contents: %w", err)
	}

	statements := make(map[string]Statement, len(titles))
	for locale, title := range titles {
		statements[locale] = Statement{
			Locale:  locale,
			Title:   title,
			Content: contents[locale],
		}
	}
	return statements, nil
}

// GetJudgeInfo returns the evaluation configuration blob.
func (s *Service) GetJudgeInfo(ctx context.Context, p *domain.Problem) (json.RawMessage, error) {
	return s.problems.GetJudgeInfo(ctx, p.ID)
}

// GetSamples returns the ordered sample pairs.
func (s *Service) GetSamples(ctx context.Context, p *domain.Problem) ([]domain.SampleData, error) {
	return s.problems.GetSample(ctx, p.ID)
}

// GetTags returns the tags associated with the problem, in ID order.
func (s *Service) GetTags(ctx context.Context, p *domain.Problem) ([]*domain.ProblemTag, error) {
	ids, err := s.tags.GetTagIDsByProblem(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get tag ids: %w", err)
	}
	return s.tags.GetByIDs(ctx, ids)
}

func containsLocale(locales []string, locale string) bool {
	for _, l := range locales {
		if l == locale {
			return true
		}
	}
	return false
}
