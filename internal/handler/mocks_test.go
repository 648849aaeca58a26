package handler

import (
	"context"

	"plateperfect/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockSessionService is a mock implementation of SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, req model.LoginRequest) (model.SessionState, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.SessionState), args.Error(1)
}

func (m *MockSessionService) State(ctx context.Context) model.SessionState {
	args := m.Called(ctx)
	return args.Get(0).(model.SessionState)
}

func (m *MockSessionService) Back(ctx context.Context) (model.SessionState, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.SessionState), args.Error(1)
}

// MockMenuService is a mock implementation of MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) Home(ctx context.Context) (*model.MenuSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuSummary), args.Error(1)
}

func (m *MockMenuService) Summary(ctx context.Context) model.MenuSummary {
	args := m.Called(ctx)
	return args.Get(0).(model.MenuSummary)
}

func (m *MockMenuService) OpenEditor(ctx context.Context) (model.SessionState, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.SessionState), args.Error(1)
}

func (m *MockMenuService) SaveItem(ctx context.Context, form model.MenuItemForm) (*model.MenuItem, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) RemoveItem(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockBrowserService is a mock implementation of BrowserService.
type MockBrowserService struct {
	mock.Mock
}

func (m *MockBrowserService) Catalog(ctx context.Context) []model.CourseDishes {
	args := m.Called(ctx)
	return args.Get(0).([]model.CourseDishes)
}

func (m *MockBrowserService) ListCourse(ctx context.Context, course model.Course) model.CourseDishes {
	args := m.Called(ctx, course)
	return args.Get(0).(model.CourseDishes)
}

func (m *MockBrowserService) OpenCourse(ctx context.Context, course model.Course) (model.SessionState, error) {
	args := m.Called(ctx, course)
	return args.Get(0).(model.SessionState), args.Error(1)
}

func (m *MockBrowserService) SelectDish(ctx context.Context, course model.Course, id string) (*model.SelectionResponse, error) {
	args := m.Called(ctx, course, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SelectionResponse), args.Error(1)
}
