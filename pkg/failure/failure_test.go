package failure_test

import (
	"errors"
	"testing"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_OrdersContextBeforeCause(t *testing.T) {
	err := failure.Wrap("Unable to update pot", errors.New("connection reset"))
	require.Error(t, err)
	assert.Equal(t, []string{"Unable to update pot", "connection reset"}, failure.Messages(err))
	assert.Equal(t, "Unable to update pot; connection reset", err.Error())
}

func TestWrap_FlattensNestedFailures(t *testing.T) {
	inner := failure.Wrap("Unable to find user in the pot", domain.ErrNotFound)
	outer := failure.Wrap("Unable to credit", inner)
	assert.Equal(t,
		[]string{"Unable to credit", "Unable to find user in the pot", "resource not found"},
		failure.Messages(outer))
	assert.ErrorIs(t, outer, domain.ErrNotFound)
}

func TestWrap_NilCause(t *testing.T) {
	err := failure.Wrap("Trip is full", nil)
	assert.Equal(t, []string{"Trip is full"}, failure.Messages(err))
}

func TestAppend(t *testing.T) {
	assert.NoError(t, failure.Append(nil, nil))

	err := failure.Append(nil, failure.New("first"))
	err = failure.Append(err, failure.Wrap("second", errors.New("cause")))
	assert.Equal(t, []string{"first", "second", "cause"}, failure.Messages(err))
}

func TestRecovered(t *testing.T) {
	assert.Equal(t, []string{"boom"}, failure.Messages(failure.Recovered("boom")))
	assert.Equal(t, []string{"db down"}, failure.Messages(failure.Recovered(errors.New("db down"))))
}

func TestMessages_PlainError(t *testing.T) {
	assert.Nil(t, failure.Messages(nil))
	assert.Equal(t, []string{"plain"}, failure.Messages(errors.New("plain")))
	assert.Equal(t, []string{"pot 3"}, failure.Messages(failure.Newf("pot %d", 3)))
}
