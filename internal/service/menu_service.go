package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"plateperfect/internal/model"
	"plateperfect/internal/navigation"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	app    *app
	logger zerolog.Logger
}

// Home applies any dish handed back by a browser exactly once, then returns the summary.
func (s *menuService) Home(ctx context.Context) (*model.MenuSummary, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if err := s.app.requireLogin(); err != nil {
		return nil, err
	}

	if _, err := s.app.applyHandoff(ctx); err != nil {
		return nil, err
	}

	summary := s.app.summary(ctx)
	return &summary, nil
}

// Summary returns the menu statistics without touching navigation.
func (s *menuService) Summary(ctx context.Context) model.MenuSummary {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	return s.app.summary(ctx)
}

// OpenEditor moves from the home view to the add/remove form.
func (s *menuService) OpenEditor(ctx context.Context) (model.SessionState, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if err := s.app.requireLogin(); err != nil {
		return s.app.nav.State(), err
	}

	if err := s.app.nav.Navigate(navigation.ScreenAddRemoveForm, nil); err != nil {
		return s.app.nav.State(), err
	}

	return s.app.nav.State(), nil
}

// SaveItem validates the form, appends a new item and returns to the home view.
// Only the price is validated; empty names and descriptions are accepted.
func (s *menuService) SaveItem(ctx context.Context, form model.MenuItemForm) (*model.MenuItem, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if err := s.requireEditor(); err != nil {
		return nil, err
	}

	price, err := parsePrice(form.Price)
	if err != nil {
		s.logger.Debug().Str("price", form.Price).Msg("price rejected")
		return nil, s.app.rejectInput(model.ErrInvalidPrice)
	}

	course, err := model.ParseCourse(form.Course)
	if err != nil {
		s.logger.Debug().Str("course", form.Course).Msg("course rejected")
		return nil, s.app.rejectInput(model.ErrInvalidCourse)
	}

	id, err := s.app.newID(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate menu item id")
		return nil, err
	}

	item := model.MenuItem{
		ID:     id,
		Name:   form.Name,
		Course: course,
		Price:  price,
	}
	if form.Description != "" {
		description := form.Description
		item.Description = &description
	}

	if err := s.app.repo.Append(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("item_id", id).Msg("failed to append menu item")
		return nil, fmt.Errorf("failed to save menu item: %w", err)
	}
	s.app.changed(ctx, "append")

	if err := s.app.nav.Navigate(navigation.ScreenHome, nil); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("item_id", item.ID).
		Int("price", item.Price).
		Msg("menu item saved")

	return &item, nil
}

// RemoveItem deletes an item from the form's list without confirmation.
func (s *menuService) RemoveItem(ctx context.Context, id string) (bool, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if err := s.requireEditor(); err != nil {
		return false, err
	}

	removed, err := s.app.repo.Remove(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", id).Msg("failed to remove menu item")
		return false, fmt.Errorf("failed to remove menu item: %w", err)
	}

	if removed {
		s.app.changed(ctx, "remove")
		s.logger.Info().Str("item_id", id).Msg("menu item removed")
	}

	return removed, nil
}

func (s *menuService) requireEditor() error {
	if err := s.app.requireLogin(); err != nil {
		return err
	}
	if s.app.nav.Current() != navigation.ScreenAddRemoveForm {
		return model.ErrInvalidTransition
	}
	return nil
}

// parsePrice accepts a non-negative base-10 integer, ignoring surrounding whitespace.
func parsePrice(text string) (int, error) {
	price, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, err
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price %d", price)
	}
	return price, nil
}
