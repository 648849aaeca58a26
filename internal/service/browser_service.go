package service

import (
	"context"

	"plateperfect/internal/model"
	"plateperfect/internal/navigation"

	"github.com/rs/zerolog"
)

// browserService implements BrowserService.
type browserService struct {
	app    *app
	logger zerolog.Logger
}

// Catalog returns every course with its predefined dishes.
func (s *browserService) Catalog(ctx context.Context) []model.CourseDishes {
	out := make([]model.CourseDishes, 0, len(model.Courses()))
	for _, course := range model.Courses() {
		out = append(out, s.ListCourse(ctx, course))
	}
	return out
}

// ListCourse returns the predefined dishes of one course.
func (s *browserService) ListCourse(ctx context.Context, course model.Course) model.CourseDishes {
	return model.CourseDishes{
		Course: course,
		Slug:   course.Slug(),
		Dishes: s.app.catalog.Dishes(course),
	}
}

// OpenCourse moves from the home view to a course's browser.
func (s *browserService) OpenCourse(ctx context.Context, course model.Course) (model.SessionState, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if err := s.app.requireLogin(); err != nil {
		return s.app.nav.State(), err
	}

	screen, ok := navigation.BrowserFor(course)
	if !ok {
		return s.app.nav.State(), s.app.rejectInput(model.ErrInvalidCourse)
	}

	if err := s.app.nav.Navigate(screen, nil); err != nil {
		return s.app.nav.State(), err
	}

	return s.app.nav.State(), nil
}

// SelectDish hands a dish from the open browser back to the home view, which appends it
// once. The dish keeps only its id, name and price.
func (s *browserService) SelectDish(ctx context.Context, course model.Course, id string) (*model.SelectionResponse, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if err := s.app.requireLogin(); err != nil {
		return nil, err
	}

	screen, ok := navigation.BrowserFor(course)
	if !ok {
		return nil, s.app.rejectInput(model.ErrInvalidCourse)
	}
	if s.app.nav.Current() != screen {
		s.logger.Warn().
			Str("screen", string(s.app.nav.Current())).
			Str("course", string(course)).
			Msg("dish selected outside its browser")
		return nil, model.ErrInvalidTransition
	}

	dish, ok := s.app.catalog.Find(course, id)
	if !ok {
		s.logger.Debug().Str("course", string(course)).Str("dish_id", id).Msg("dish not found")
		return nil, model.ErrDishNotFound
	}

	item := dish.MenuItem()
	if err := s.app.nav.Navigate(navigation.ScreenHome, &item); err != nil {
		return nil, err
	}

	if _, err := s.app.applyHandoff(ctx); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("course", string(course)).
		Str("dish_id", id).
		Msg("dish added from browser")

	return &model.SelectionResponse{
		Item:    item,
		Session: s.app.nav.State(),
		Menu:    s.app.summary(ctx),
	}, nil
}
