package service

import (
	"context"

	"plateperfect/internal/model"
)

// SessionService drives the login gate and screen navigation.
type SessionService interface {
	// Login passes the gate when both fields are non-empty and moves to the home view.
	Login(ctx context.Context, req model.LoginRequest) (model.SessionState, error)

	// State returns the current screen and view stack.
	State(ctx context.Context) model.SessionState

	// Back pops the current screen.
	Back(ctx context.Context) (model.SessionState, error)
}

// MenuService owns the home view and the add/remove form.
type MenuService interface {
	// Home renders the home view, first applying any dish handed back by a browser.
	Home(ctx context.Context) (*model.MenuSummary, error)

	// Summary returns the menu statistics without touching navigation.
	Summary(ctx context.Context) model.MenuSummary

	// OpenEditor moves from the home view to the add/remove form.
	OpenEditor(ctx context.Context) (model.SessionState, error)

	// SaveItem validates the form, appends a new item and returns to the home view.
	SaveItem(ctx context.Context, form model.MenuItemForm) (*model.MenuItem, error)

	// RemoveItem deletes an item from the form's list. Unknown ids are a no-op.
	RemoveItem(ctx context.Context, id string) (bool, error)
}

// BrowserService serves the three category browsers.
type BrowserService interface {
	// Catalog returns every course with its predefined dishes.
	Catalog(ctx context.Context) []model.CourseDishes

	// ListCourse returns the predefined dishes of one course.
	ListCourse(ctx context.Context, course model.Course) model.CourseDishes

	// OpenCourse moves from the home view to a course's browser.
	OpenCourse(ctx context.Context, course model.Course) (model.SessionState, error)

	// SelectDish hands a dish back to the home view, which appends it.
	SelectDish(ctx context.Context, course model.Course, id string) (*model.SelectionResponse, error)
}
