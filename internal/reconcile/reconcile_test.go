package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLive(t *testing.T) {
	result := Resolve(false, func() ([]int, error) {
		return []int{1, 2, 3}, nil
	}, []int{9})

	assert.Equal(t, SourceLive, result.Source)
	assert.Equal(t, []int{1, 2, 3}, result.Data)
}

func TestResolveFallsBackOnError(t *testing.T) {
	result := Resolve(false, func() ([]int, error) {
		return nil, errors.New("connection refused")
	}, []int{9})

	assert.Equal(t, SourceDemo, result.Source)
	assert.Equal(t, []int{9}, result.Data)
}

func TestResolveScreen(t *testing.T) {
	t.Run("live when every fetch succeeds", func(t *testing.T) {
		assert.Equal(t, SourceLive, ResolveScreen(false, func() error { return nil }))
	})

	t.Run("any failure drops the whole screen", func(t *testing.T) {
		source := ResolveScreen(false, func() error {
			return errors.New("connection refused")
		})
		assert.Equal(t, SourceDemo, source)
	})

	t.Run("offline skips the fetches", func(t *testing.T) {
		called := false
		source := ResolveScreen(true, func() error {
			called = true
			return nil
		})
		assert.False(t, called)
		assert.Equal(t, SourceDemo, source)
	})
}

func TestResolveSkipsFetchWhenOffline(t *testing.T) {
	called := false
	result := Resolve(true, func() ([]int, error) {
		called = true
		return []int{1}, nil
	}, []int{9})

	assert.False(t, called)
	assert.Equal(t, SourceDemo, result.Source)
	assert.Equal(t, []int{9}, result.Data)
}
