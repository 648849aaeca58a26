// Package navigation models the app's view stack and the one-shot parameter channel that
// carries a selected dish from a category browser back to the home view.
package navigation

import (
	"sync"

	"plateperfect/internal/model"

	"github.com/rs/zerolog"
)

// Screen identifies a view on the stack.
type Screen string

const (
	ScreenLogIn             Screen = "LogIn"
	ScreenHome              Screen = "Home"
	ScreenAddRemoveForm     Screen = "AddRemoveForm"
	ScreenStartersBrowser   Screen = "StartersBrowser"
	ScreenMainCourseBrowser Screen = "MainCourseBrowser"
	ScreenDessertBrowser    Screen = "DessertBrowser"
)

var browsers = map[model.Course]Screen{
	model.CourseStarter:    ScreenStartersBrowser,
	model.CourseMainCourse: ScreenMainCourseBrowser,
	model.CourseDessert:    ScreenDessertBrowser,
}

// BrowserFor returns the category browser screen for a course.
func BrowserFor(course model.Course) (Screen, bool) {
	s, ok := browsers[course]
	return s, ok
}

// Course returns the course a browser screen lists.
func (s Screen) Course() (model.Course, bool) {
	for c, screen := range browsers {
		if screen == s {
			return c, true
		}
	}
	return "", false
}

// IsBrowser reports whether s is one of the category browsers.
func (s Screen) IsBrowser() bool {
	_, ok := s.Course()
	return ok
}

// transitions is the allowed forward navigation table.
var transitions = map[Screen][]Screen{
	ScreenLogIn:             {ScreenHome},
	ScreenHome:              {ScreenAddRemoveForm, ScreenStartersBrowser, ScreenMainCourseBrowser, ScreenDessertBrowser},
	ScreenAddRemoveForm:     {ScreenHome},
	ScreenStartersBrowser:   {ScreenHome},
	ScreenMainCourseBrowser: {ScreenHome},
	ScreenDessertBrowser:    {ScreenHome},
}

// Allowed reports whether navigating from one screen to another is permitted.
func Allowed(from, to Screen) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionFunc observes every completed transition.
type TransitionFunc func(from, to Screen)

// Navigator holds the view stack and the pending handoff for the home view.
// The zero value is not usable; call New.
type Navigator struct {
	mu        sync.Mutex
	stack     []Screen
	handoff   *model.MenuItem
	observers []TransitionFunc
	logger    zerolog.Logger
}

// New creates a navigator positioned on the login screen.
func New(logger zerolog.Logger) *Navigator {
	return &Navigator{
		stack:  []Screen{ScreenLogIn},
		logger: logger.With().Str("component", "navigator").Logger(),
	}
}

// OnTransition registers fn to be called after each transition.
func (n *Navigator) OnTransition(fn TransitionFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = append(n.observers, fn)
}

// Current returns the screen on top of the stack.
func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Stack returns a copy of the view stack, bottom first.
func (n *Navigator) Stack() []Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Screen, len(n.stack))
	copy(out, n.stack)
	return out
}

// Navigate moves to screen to. Only a browser may hand an item to the home view.
// Navigating to a screen already on the stack pops back to it; otherwise it is pushed.
func (n *Navigator) Navigate(to Screen, handoff *model.MenuItem) error {
	n.mu.Lock()

	from := n.stack[len(n.stack)-1]
	if !Allowed(from, to) {
		n.mu.Unlock()
		n.logger.Warn().
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("navigation rejected")
		return model.ErrInvalidTransition
	}
	if handoff != nil && !(from.IsBrowser() && to == ScreenHome) {
		n.mu.Unlock()
		n.logger.Warn().
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("handoff only allowed from a browser to home")
		return model.ErrInvalidTransition
	}

	popped := false
	for i := len(n.stack) - 1; i >= 0; i-- {
		if n.stack[i] == to {
			n.stack = n.stack[:i+1]
			popped = true
			break
		}
	}
	if !popped {
		n.stack = append(n.stack, to)
	}

	if handoff != nil {
		item := handoff.Clone()
		n.handoff = &item
	}

	observers := n.observers
	depth := len(n.stack)
	n.mu.Unlock()

	n.logger.Debug().
		Str("from", string(from)).
		Str("to", string(to)).
		Bool("handoff", handoff != nil).
		Int("depth", depth).
		Msg("navigated")

	for _, fn := range observers {
		fn(from, to)
	}
	return nil
}

// Back pops the top screen. The home and login screens cannot be popped.
func (n *Navigator) Back() (Screen, error) {
	n.mu.Lock()

	from := n.stack[len(n.stack)-1]
	if from == ScreenHome || from == ScreenLogIn || len(n.stack) < 2 {
		n.mu.Unlock()
		return from, model.ErrInvalidTransition
	}
	n.stack = n.stack[:len(n.stack)-1]
	to := n.stack[len(n.stack)-1]
	observers := n.observers
	n.mu.Unlock()

	n.logger.Debug().
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("navigated back")

	for _, fn := range observers {
		fn(from, to)
	}
	return to, nil
}

// TakeHandoff returns the pending item for the home view and clears it, so a parameter
// value is delivered at most once no matter how often the home view is rendered.
func (n *Navigator) TakeHandoff() (model.MenuItem, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.handoff == nil {
		return model.MenuItem{}, false
	}
	item := *n.handoff
	n.handoff = nil
	return item, true
}

// LoggedIn reports whether the login gate has been passed.
func (n *Navigator) LoggedIn() bool {
	return n.Current() != ScreenLogIn
}

// State returns a serialisable snapshot of the navigator.
func (n *Navigator) State() model.SessionState {
	stack := n.Stack()
	names := make([]string, len(stack))
	for i, s := range stack {
		names[i] = string(s)
	}
	return model.SessionState{
		LoggedIn: stack[len(stack)-1] != ScreenLogIn,
		Screen:   names[len(names)-1],
		Stack:    names,
	}
}
