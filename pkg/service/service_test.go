package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/tripool/internal/fixtures/mocks"
	"github.com/amirasaad/tripool/pkg/failure"
	"github.com/amirasaad/tripool/pkg/repository"
	"github.com/amirasaad/tripool/pkg/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runInline(uow *mocks.MockUnitOfWork) {
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	)
}

func TestTransact_ReturnsFnError(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	runInline(uow)
	boom := errors.New("boom")

	err := service.Transact(context.Background(), uow, func(repository.UnitOfWork) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestTransact_RecoversPanic(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	runInline(uow)

	err := service.Transact(context.Background(), uow, func(repository.UnitOfWork) error {
		panic("connection reset")
	})
	require.Error(t, err)
	assert.Equal(t, []string{"connection reset"}, failure.Messages(err))
}

func TestTransact_Success(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	runInline(uow)

	called := false
	err := service.Transact(context.Background(), uow, func(repository.UnitOfWork) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
