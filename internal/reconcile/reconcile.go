// Package reconcile chooses between live backend data and the fixed demo
// dataset. Resolution happens once per screen load; a re-probe requires an
// explicit refresh action.
package reconcile

import "rentx-client/internal/logger"

// Source tags where a resolved dataset came from.
type Source string

const (
	SourceLive Source = "live"
	SourceDemo Source = "demo"
)

// Result is a resolved dataset together with its provenance.
type Result[T any] struct {
	Data   []T
	Source Source
}

// Resolve attempts the live fetch and substitutes the demo dataset on any
// failure. When the backend is already known to be offline the fetch is
// skipped entirely. This is the per-resource form used by the user screen;
// the admin screen resolves all its resources as one unit via ResolveScreen.
func Resolve[T any](offline bool, fetch func() ([]T, error), demo []T) Result[T] {
	if offline {
		return Result[T]{Data: demo, Source: SourceDemo}
	}

	data, err := fetch()
	if err != nil {
		logger.Warn("Falling back to demo data", "error", err)
		return Result[T]{Data: demo, Source: SourceDemo}
	}
	return Result[T]{Data: data, Source: SourceLive}
}

// ResolveScreen applies the fallback policy at whole-screen granularity:
// fetchAll loads every resource the screen shows, and any single failure
// drops the entire screen to the demo dataset. There is no per-resource
// fallback at this granularity.
func ResolveScreen(offline bool, fetchAll func() error) Source {
	if offline {
		return SourceDemo
	}

	if err := fetchAll(); err != nil {
		logger.Warn("Falling back to demo data for the whole screen", "error", err)
		return SourceDemo
	}
	return SourceLive
}
