package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/constguard/internal/errors"
	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/usecase/mocks"
)

func TestVerifyUseCase_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ConcurrentReadersAgree", func(t *testing.T) {
		catalog, err := NewCatalogUseCase(testRegistrations()...)
		require.NoError(t, err)

		report, err := NewVerifyUseCase(catalog).Verify(ctx, 8, 1000)
		require.NoError(t, err)

		assert.Equal(t, 8, report.Readers)
		assert.Equal(t, 1000, report.Reads)
		assert.Equal(t, 4, report.Constants)
		assert.True(t, report.Consistent())
	})

	t.Run("Success_EmptyCatalog", func(t *testing.T) {
		catalog, err := NewCatalogUseCase()
		require.NoError(t, err)

		report, err := NewVerifyUseCase(catalog).Verify(ctx, 2, 2)
		require.NoError(t, err)
		assert.Zero(t, report.Constants)
	})

	t.Run("Success_CountsMismatches", func(t *testing.T) {
		catalog := mocks.NewMockCatalogUseCase(t)
		baseline := []domain.Value{{Group: "g", Name: "x", Kind: domain.KindInt32, Int32: 1}}
		drifted := domain.Value{Group: "g", Name: "x", Kind: domain.KindInt32, Int32: 2}

		catalog.EXPECT().List(ctx, "").Return(baseline, nil).Once()
		catalog.EXPECT().Get(mock.Anything, "g", "x").Return(drifted, nil).Times(6)

		report, err := NewVerifyUseCase(catalog).Verify(ctx, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 6, report.Mismatches)
		assert.False(t, report.Consistent())
	})

	t.Run("Error_InvalidArguments", func(t *testing.T) {
		catalog := mocks.NewMockCatalogUseCase(t)

		_, err := NewVerifyUseCase(catalog).Verify(ctx, 0, 10)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_BaselineFails", func(t *testing.T) {
		catalog := mocks.NewMockCatalogUseCase(t)
		catalog.EXPECT().List(ctx, "").Return(nil, errors.New("boom")).Once()

		_, err := NewVerifyUseCase(catalog).Verify(ctx, 1, 1)
		assert.EqualError(t, err, "failed to read baseline: boom")
	})

	t.Run("Error_ReaderFails", func(t *testing.T) {
		catalog := mocks.NewMockCatalogUseCase(t)
		baseline := []domain.Value{{Group: "g", Name: "x", Kind: domain.KindInt32}}
		readErr := errors.New("read failed")

		catalog.EXPECT().List(ctx, "").Return(baseline, nil).Once()
		catalog.EXPECT().Get(mock.Anything, "g", "x").Return(domain.Value{}, readErr).Once()

		_, err := NewVerifyUseCase(catalog).Verify(ctx, 1, 5)
		assert.ErrorIs(t, err, readErr)
	})
}
