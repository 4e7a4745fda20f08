package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/constguard/internal/errors"
	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/http/dto"
	"github.com/allisson/constguard/internal/obfuscation/usecase/mocks"
)

// setupTestHandler creates a test handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*ConstantHandler, *mocks.MockCatalogUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockCatalogUseCase := mocks.NewMockCatalogUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewConstantHandler(mockCatalogUseCase, logger), mockCatalogUseCase
}

func TestConstantHandler_ListGroupsHandler(t *testing.T) {
	t.Run("Success_ListGroups", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.EXPECT().
			Groups(mock.Anything).
			Return([]domain.GroupInfo{
				{Name: "basic", Family: domain.FamilyBasic, Constants: []domain.ConstantInfo{{Name: "Pi", Kind: domain.KindFloat64}}},
				{Name: "secure", Family: domain.FamilyKeyed},
			}).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/groups")

		handler.ListGroupsHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListGroupsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 2)
		assert.Equal(t, "basic", response.Data[0].Name)
		assert.Equal(t, "basic", response.Data[0].Family)
		assert.Equal(t, []dto.ConstantInfoResponse{{Name: "Pi", Kind: "float64"}}, response.Data[0].Constants)
		assert.Equal(t, "keyed", response.Data[1].Family)
	})
}

func TestConstantHandler_ListHandler(t *testing.T) {
	values := []domain.Value{
		{Group: "enhanced", Name: "Pi", Kind: domain.KindFloat64, Float64: math.Pi},
		{Group: "enhanced", Name: "E", Kind: domain.KindFloat64, Float64: math.E},
		{Group: "enhanced", Name: "Answer", Kind: domain.KindInt32, Int32: 42},
	}

	t.Run("Success_AllGroups", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.EXPECT().
			List(mock.Anything, "").
			Return(values, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/constants")

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListConstantsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 3)
		assert.Equal(t, "3.141592653589793", response.Data[0].Value)
		assert.Equal(t, "42", response.Data[2].Value)
	})

	t.Run("Success_GroupWithPagination", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.EXPECT().
			List(mock.Anything, "enhanced").
			Return(values, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/constants?group=enhanced&offset=1&limit=1")

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListConstantsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "E", response.Data[0].Name)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/constants?limit=500")

		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_InvalidGroupName", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/constants?group=%24bad")

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_GroupNotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.EXPECT().
			List(mock.Anything, "missing").
			Return(nil, fmt.Errorf("%w: missing", domain.ErrGroupNotFound)).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/constants?group=missing")

		handler.ListHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestConstantHandler_GetHandler(t *testing.T) {
	t.Run("Success_Decimal", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.EXPECT().
			Get(mock.Anything, "decimals", "OnePercent").
			Return(domain.Value{
				Group:   "decimals",
				Name:    "OnePercent",
				Kind:    domain.KindDecimal,
				Decimal: domain.MustParseDecimal("0.01"),
			}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/constants/decimals/OnePercent")
		c.Params = gin.Params{{Key: "group", Value: "decimals"}, {Key: "name", Value: "OnePercent"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ConstantResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, dto.ConstantResponse{Group: "decimals", Name: "OnePercent", Kind: "decimal", Value: "0.01"}, response)
	})

	t.Run("Error_ConstantNotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.EXPECT().
			Get(mock.Anything, "enhanced", "Tau").
			Return(domain.Value{}, fmt.Errorf("%w: enhanced/Tau", domain.ErrConstantNotFound)).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/constants/enhanced/Tau")
		c.Params = gin.Params{{Key: "group", Value: "enhanced"}, {Key: "name", Value: "Tau"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidName", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/constants/enhanced/1Pi")
		c.Params = gin.Params{{Key: "group", Value: "enhanced"}, {Key: "name", Value: "1Pi"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "validation_error", response["error"])
		assert.Contains(t, response["message"], "name")
	})

	t.Run("Error_InternalHidesDetails", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.EXPECT().
			Get(mock.Anything, "secure", "Pi").
			Return(domain.Value{}, apperrors.Wrap(domain.ErrInvalidHandle, "secure")).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/constants/secure/Pi")
		c.Params = gin.Params{{Key: "group", Value: "secure"}, {Key: "name", Value: "Pi"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "storage handle")
	})
}
