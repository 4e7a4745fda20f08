package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/usecase"
	usecaseMocks "github.com/allisson/constguard/internal/obfuscation/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordRead(
	ctx context.Context,
	operation, group string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, operation, group, duration, status)
}

func (m *mockBusinessMetrics) RecordVerify(ctx context.Context, duration time.Duration, mismatches int, status string) {
	m.Called(ctx, duration, mismatches, status)
}

func expectRead(ctx context.Context, m *mockBusinessMetrics, operation, group, status string) {
	m.On("RecordRead", ctx, operation, group, mock.AnythingOfType("time.Duration"), status).Return().Once()
}

func expectVerify(ctx context.Context, m *mockBusinessMetrics, mismatches int, status string) {
	m.On("RecordVerify", ctx, mock.AnythingOfType("time.Duration"), mismatches, status).Return().Once()
}

func TestCatalogUseCaseWithMetrics_Get(t *testing.T) {
	mockNext := usecaseMocks.NewMockCatalogUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewCatalogUseCaseWithMetrics(mockNext, mockMetrics)
	ctx := context.Background()

	t.Run("Get_Success", func(t *testing.T) {
		expected := domain.Value{Group: "basic", Name: "Pi", Kind: domain.KindFloat64, Float64: 3.14}
		mockNext.EXPECT().Get(ctx, "basic", "Pi").Return(expected, nil).Once()
		expectRead(ctx, mockMetrics, "constant_get", "basic", "success")

		value, err := uc.Get(ctx, "basic", "Pi")

		assert.NoError(t, err)
		assert.Equal(t, expected, value)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Get_ConstantNotFound", func(t *testing.T) {
		mockNext.EXPECT().Get(ctx, "basic", "Tau").Return(domain.Value{}, domain.ErrConstantNotFound).Once()
		expectRead(ctx, mockMetrics, "constant_get", "basic", "error")

		_, err := uc.Get(ctx, "basic", "Tau")

		assert.ErrorIs(t, err, domain.ErrConstantNotFound)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Get_UnknownGroupLabel", func(t *testing.T) {
		mockNext.EXPECT().Get(ctx, "nope", "Pi").Return(domain.Value{}, domain.ErrGroupNotFound).Once()
		expectRead(ctx, mockMetrics, "constant_get", "unknown", "error")

		_, err := uc.Get(ctx, "nope", "Pi")

		assert.ErrorIs(t, err, domain.ErrGroupNotFound)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCatalogUseCaseWithMetrics_List(t *testing.T) {
	mockNext := usecaseMocks.NewMockCatalogUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewCatalogUseCaseWithMetrics(mockNext, mockMetrics)
	ctx := context.Background()

	t.Run("List_AllGroups", func(t *testing.T) {
		expected := []domain.Value{{Group: "basic", Name: "Pi", Kind: domain.KindFloat64}}
		mockNext.EXPECT().List(ctx, "").Return(expected, nil).Once()
		expectRead(ctx, mockMetrics, "constant_list", "all", "success")

		values, err := uc.List(ctx, "")

		assert.NoError(t, err)
		assert.Equal(t, expected, values)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("List_Error", func(t *testing.T) {
		expectedErr := errors.New("list failed")
		mockNext.EXPECT().List(ctx, "secure").Return(nil, expectedErr).Once()
		expectRead(ctx, mockMetrics, "constant_list", "secure", "error")

		values, err := uc.List(ctx, "secure")

		assert.Nil(t, values)
		assert.Equal(t, expectedErr, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Groups_NotRecorded", func(t *testing.T) {
		groupsNext := usecaseMocks.NewMockCatalogUseCase(t)
		groupsMetrics := &mockBusinessMetrics{}
		groupsUC := usecase.NewCatalogUseCaseWithMetrics(groupsNext, groupsMetrics)

		groups := []domain.GroupInfo{{Name: "basic", Family: domain.FamilyBasic}}
		groupsNext.EXPECT().Groups(ctx).Return(groups).Once()

		assert.Equal(t, groups, groupsUC.Groups(ctx))
		groupsMetrics.AssertNotCalled(t, "RecordRead", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Empty(t, groupsMetrics.Calls)
	})
}

func TestVerifyUseCaseWithMetrics_Verify(t *testing.T) {
	mockNext := usecaseMocks.NewMockVerifyUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewVerifyUseCaseWithMetrics(mockNext, mockMetrics)
	ctx := context.Background()

	t.Run("Verify_Consistent", func(t *testing.T) {
		report := &domain.VerifyReport{Readers: 8, Reads: 1000}
		mockNext.EXPECT().Verify(ctx, 8, 1000).Return(report, nil).Once()
		expectVerify(ctx, mockMetrics, 0, "success")

		result, err := uc.Verify(ctx, 8, 1000)

		assert.NoError(t, err)
		assert.Equal(t, report, result)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Verify_Mismatches", func(t *testing.T) {
		report := &domain.VerifyReport{Readers: 8, Reads: 1000, Mismatches: 3}
		mockNext.EXPECT().Verify(ctx, 8, 1000).Return(report, nil).Once()
		expectVerify(ctx, mockMetrics, 3, "error")

		_, err := uc.Verify(ctx, 8, 1000)

		assert.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Verify_Error", func(t *testing.T) {
		mockNext.EXPECT().Verify(ctx, 0, 0).Return(nil, errors.New("bad input")).Once()
		expectVerify(ctx, mockMetrics, 0, "error")

		result, err := uc.Verify(ctx, 0, 0)

		assert.Nil(t, result)
		assert.Error(t, err)
		mockMetrics.AssertExpectations(t)
	})
}
