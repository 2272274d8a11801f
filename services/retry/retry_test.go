package retry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, KindTransient, Classify(Transient(errors.New("boom"))))
	assert.Equal(t, KindFatal, Classify(Fatal(errors.New("boom"))))
	assert.Equal(t, KindFatal, Classify(errors.New("untagged")), "untagged errors never retry")
}

func TestClassifyWrappedError(t *testing.T) {
	err := fmt.Errorf("outer: %w", Transient(errors.New("inner")))
	assert.Equal(t, KindTransient, Classify(err))
}

func TestTagsPreserveNil(t *testing.T) {
	assert.NoError(t, Transient(nil))
	assert.NoError(t, Fatal(nil))
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Do("test_op", func() error {
		calls++
		if calls < 3 {
			return Transient(errors.New("contention"))
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnFatal(t *testing.T) {
	calls := 0
	err := Do("test_op", func() error {
		calls++
		return Fatal(errors.New("constraint violation"))
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoGivesUpAfterAttempts(t *testing.T) {
	calls := 0
	err := Do("test_op", func() error {
		calls++
		return Transient(errors.New("still locked"))
	})
	assert.Error(t, err)
	assert.Equal(t, Attempts, calls)
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	assert.ErrorIs(t, Transient(inner), inner)
}
