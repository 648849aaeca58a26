package service

import (
	"context"

	"plateperfect/internal/model"
	"plateperfect/internal/navigation"

	"github.com/rs/zerolog"
)

// sessionService implements SessionService.
type sessionService struct {
	app    *app
	logger zerolog.Logger
}

// Login passes the gate when both fields are non-empty. Credentials are not checked.
func (s *sessionService) Login(ctx context.Context, req model.LoginRequest) (model.SessionState, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if s.app.nav.Current() != navigation.ScreenLogIn {
		s.logger.Warn().Str("screen", string(s.app.nav.Current())).Msg("login attempted outside the login screen")
		return s.app.nav.State(), model.ErrInvalidTransition
	}

	if req.Email == "" || req.Password == "" {
		s.logger.Debug().
			Bool("email_present", req.Email != "").
			Bool("password_present", req.Password != "").
			Msg("login rejected")
		return s.app.nav.State(), s.app.rejectInput(model.ErrEmptyCredentials)
	}

	if err := s.app.nav.Navigate(navigation.ScreenHome, nil); err != nil {
		return s.app.nav.State(), err
	}

	s.logger.Info().Str("email", req.Email).Msg("logged in")

	return s.app.nav.State(), nil
}

// State returns the current screen and view stack.
func (s *sessionService) State(ctx context.Context) model.SessionState {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	return s.app.nav.State()
}

// Back pops the current screen and lets the home view pick up any pending handoff.
func (s *sessionService) Back(ctx context.Context) (model.SessionState, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if _, err := s.app.nav.Back(); err != nil {
		return s.app.nav.State(), err
	}

	if _, err := s.app.applyHandoff(ctx); err != nil {
		return s.app.nav.State(), err
	}

	return s.app.nav.State(), nil
}
