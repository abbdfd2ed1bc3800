package routing

import (
	"context"
	"errors"
	"strings"
)

// RenderFunc receives the subtree matched by a navigation.
type RenderFunc func(ctx context.Context, match Match) error

// Session tracks one client's location and re-renders the matched subtree on
// each navigation. It implements navigation.Navigator. A Session belongs to
// a single client and is not safe for concurrent use.
type Session struct {
	router   *Router
	render   RenderFunc
	location string
	history  []string
}

// NewSession starts a session at the root location.
func NewSession(router *Router, render RenderFunc) (*Session, error) {
	if router == nil {
		return nil, errors.New("router is required")
	}
	if render == nil {
		return nil, errors.New("render function is required")
	}
	return &Session{router: router, render: render, location: "/"}, nil
}

// Navigate moves the session to path and renders the matched subtree once.
// The location is updated even when the path is unmatched so the fallback
// content is what the client sees; ErrUnroutable is still reported.
func (s *Session) Navigate(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(path) == "" {
		return ErrInvalidPath
	}
	match := s.router.Resolve(path)
	s.history = append(s.history, match.Path)
	s.location = match.Path
	if err := s.render(ctx, match); err != nil {
		return err
	}
	if !match.Found {
		return ErrUnroutable
	}
	return nil
}

// Location returns the current path.
func (s *Session) Location() string {
	return s.location
}

// History returns navigated paths, oldest first.
func (s *Session) History() []string {
	result := make([]string, len(s.history))
	copy(result, s.history)
	return result
}
