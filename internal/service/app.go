package service

import (
	"context"
	"fmt"
	"sync"

	"plateperfect/internal/catalog"
	"plateperfect/internal/model"
	"plateperfect/internal/navigation"
	"plateperfect/internal/repository"
	"plateperfect/internal/stream"

	"github.com/rs/zerolog"
)

// Recorder receives metrics about menu activity.
type Recorder interface {
	RecordMenu(operation string, count int, average float64)
	RecordValidationFailure(code string)
	RecordTransition(from, to string)
}

// Options wires the collaborators of the app instance.
type Options struct {
	Repository repository.MenuRepository
	Catalog    catalog.Catalog
	Navigator  *navigation.Navigator
	IDs        IDGenerator
	Recorder   Recorder
	Publisher  stream.Publisher

	// CurrencySymbol prefixes the average price display. Defaults to "R".
	CurrencySymbol string

	// MaxIDAttempts bounds the collision-checked id generation. Defaults to 5.
	MaxIDAttempts int
}

// Services groups the services of one app instance.
type Services struct {
	Session SessionService
	Menu    MenuService
	Browser BrowserService
}

// app is the single app instance. Every exported operation takes mu for its whole
// duration so each request is handled as one user-interaction event.
type app struct {
	mu        sync.Mutex
	repo      repository.MenuRepository
	catalog   catalog.Catalog
	nav       *navigation.Navigator
	ids       IDGenerator
	recorder  Recorder
	publisher stream.Publisher
	currency  string
	maxIDs    int
	logger    zerolog.Logger
}

// New creates the services of a fresh app instance positioned on the login screen.
func New(opts Options, logger zerolog.Logger) *Services {
	a := &app{
		repo:      opts.Repository,
		catalog:   opts.Catalog,
		nav:       opts.Navigator,
		ids:       opts.IDs,
		recorder:  opts.Recorder,
		publisher: opts.Publisher,
		currency:  opts.CurrencySymbol,
		maxIDs:    opts.MaxIDAttempts,
		logger:    logger,
	}

	if a.repo == nil {
		a.repo = repository.NewMenuRepository(logger)
	}
	if a.catalog == nil {
		a.catalog = catalog.Default()
	}
	if a.nav == nil {
		a.nav = navigation.New(logger)
	}
	if a.ids == nil {
		a.ids = NewUUIDGenerator()
	}
	if a.recorder == nil {
		a.recorder = nopRecorder{}
	}
	if a.publisher == nil {
		a.publisher = nopPublisher{}
	}
	if a.currency == "" {
		a.currency = "R"
	}
	if a.maxIDs < 1 {
		a.maxIDs = 5
	}

	a.nav.OnTransition(func(from, to navigation.Screen) {
		a.recorder.RecordTransition(string(from), string(to))
	})

	return &Services{
		Session: &sessionService{app: a, logger: logger.With().Str("service", "session").Logger()},
		Menu:    &menuService{app: a, logger: logger.With().Str("service", "menu").Logger()},
		Browser: &browserService{app: a, logger: logger.With().Str("service", "browser").Logger()},
	}
}

// requireLogin rejects menu operations until the login gate has been passed.
func (a *app) requireLogin() error {
	if !a.nav.LoggedIn() {
		return model.ErrLoginRequired
	}
	return nil
}

// rejectInput counts a validation failure and returns err unchanged.
func (a *app) rejectInput(err *model.DomainError) error {
	a.recorder.RecordValidationFailure(err.Code)
	return err
}

// applyHandoff appends the item handed back to the home view, if any. The navigator
// clears the handoff on read, so re-rendering the home view never appends twice.
func (a *app) applyHandoff(ctx context.Context) (*model.MenuItem, error) {
	if a.nav.Current() != navigation.ScreenHome {
		return nil, nil
	}

	item, ok := a.nav.TakeHandoff()
	if !ok {
		return nil, nil
	}

	if err := a.repo.Append(ctx, item); err != nil {
		a.logger.Warn().
			Err(err).
			Str("item_id", item.ID).
			Msg("handed back item not appended")
		return nil, err
	}

	a.changed(ctx, "select")
	return &item, nil
}

// changed records and publishes the menu after a mutation.
func (a *app) changed(ctx context.Context, operation string) {
	summary := a.summary(ctx)
	a.recorder.RecordMenu(operation, summary.Count, summary.AveragePrice)
	a.publisher.Publish(summary)
}

// newID draws ids until one is free in both the menu and the catalog.
func (a *app) newID(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= a.maxIDs; attempt++ {
		id := a.ids.NewID()
		if id == "" || a.repo.Exists(ctx, id) {
			a.logger.Warn().Int("attempt", attempt).Msg("generated id already in use")
			continue
		}
		if _, taken := a.catalog.CourseOf(id); taken {
			a.logger.Warn().Int("attempt", attempt).Msg("generated id collides with catalog")
			continue
		}
		return id, nil
	}
	return "", model.ErrIDExhausted
}

// summary builds the home view model from the store.
func (a *app) summary(ctx context.Context) model.MenuSummary {
	items := a.repo.List(ctx)
	average := a.repo.AveragePrice(ctx)

	byCourse := make(map[model.Course][]model.MenuItem)
	var unassigned []model.MenuItem
	for _, item := range items {
		course, ok := a.courseOf(item)
		if !ok {
			unassigned = append(unassigned, item)
			continue
		}
		byCourse[course] = append(byCourse[course], item)
	}

	groups := make([]model.CourseGroup, 0, len(model.Courses())+1)
	for _, course := range model.Courses() {
		group := byCourse[course]
		if group == nil {
			group = []model.MenuItem{}
		}
		groups = append(groups, model.CourseGroup{Course: string(course), Items: group})
	}
	if len(unassigned) > 0 {
		groups = append(groups, model.CourseGroup{Course: model.UnassignedGroup, Items: unassigned})
	}

	return model.MenuSummary{
		Items:               items,
		Groups:              groups,
		Count:               len(items),
		AveragePrice:        average,
		AveragePriceDisplay: fmt.Sprintf("%s%.2f", a.currency, average),
		AvailableDishes:     a.catalog.Size(),
	}
}

// courseOf returns the item's own course, or the catalog course of its id.
func (a *app) courseOf(item model.MenuItem) (model.Course, bool) {
	if item.Course != nil {
		return *item.Course, true
	}
	return a.catalog.CourseOf(item.ID)
}

type nopRecorder struct{}

func (nopRecorder) RecordMenu(string, int, float64) {}
func (nopRecorder) RecordValidationFailure(string) {}
func (nopRecorder) RecordTransition(string, string) {}

type nopPublisher struct{}

func (nopPublisher) Publish(model.MenuSummary) {}
