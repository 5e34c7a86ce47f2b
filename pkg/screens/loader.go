// Package screens loads everything a dashboard screen shows.
//
// The parts of a screen are fetched concurrently. A part that fails is
// shown empty with a warning, only an authentication failure aborts the
// whole screen.
package screens

import (
	"context"
	"strings"
	"sync"

	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Warning describes a part of a screen that could not be loaded.
type Warning struct {
	Part     string             `json:"part" example:"categories"`
	Category apierrors.Category `json:"category" example:"NetworkError"`
	Message  string             `json:"message" example:"Unable to reach the server. Please check your internet connection and try again."`
}

// Loader fetches the parts of one screen.
type Loader struct {
	group *errgroup.Group
	ctx   context.Context

	mu       sync.Mutex
	warnings []Warning
}

// NewLoader returns a Loader whose parts are cancelled together with ctx or
// after the first authentication failure.
func NewLoader(ctx context.Context) *Loader {
	group, ctx := errgroup.WithContext(ctx)
	return &Loader{group: group, ctx: ctx}
}

// Part loads one part of the screen into dst. On failure dst is set to an
// empty slice and a warning is recorded.
func Part[T any](l *Loader, name string, dst *[]T, load func(context.Context) ([]T, error)) {
	*dst = []T{}

	l.group.Go(func() error {
		items, err := load(l.ctx)
		if err == nil {
			*dst = items
			return nil
		}

		if apierrors.IsAuth(err) {
			return err
		}

		// A failure caused by an aborted screen is not worth a warning
		if l.ctx.Err() != nil {
			return nil
		}

		category := apierrors.CategoryOf(err)
		if category == "" {
			category = apierrors.LocalError
		}

		zerolog.Ctx(l.ctx).Warn().Str("part", name).Str("category", string(category)).Err(err).Msg("screen part failed to load")

		l.mu.Lock()
		l.warnings = append(l.warnings, Warning{Part: name, Category: category, Message: err.Error()})
		l.mu.Unlock()
		return nil
	})
}

// Wait waits for all parts. It returns the warnings of failed parts, or the
// authentication error that aborted the screen.
func (l *Loader) Wait() ([]Warning, error) {
	if err := l.group.Wait(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	warnings := slices.Clone(l.warnings)
	if warnings == nil {
		warnings = []Warning{}
	}

	slices.SortFunc(warnings, func(a, b Warning) int {
		return strings.Compare(a.Part, b.Part)
	})
	return warnings, nil
}
