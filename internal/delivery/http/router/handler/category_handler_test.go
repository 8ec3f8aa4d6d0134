package handler

import (
	"net/http"
	"testing"

	"quicksell/internal/domain/entity"
	mockUsecase "quicksell/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_ListCategories(t *testing.T) {
	categoryUC := mockUsecase.NewMockCategoryUsecase(t)
	rootID := uuid.New()
	categoryUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{
		{ID: rootID, Name: "Vehicles"},
		{ID: uuid.New(), Name: "Bicycles", ParentID: &rootID, IsLeaf: true},
	}, nil)

	c, rec := newContext(http.MethodGet, "/categories", "", nil)

	require.NoError(t, NewCategoryHandler(categoryUC).ListCategories(c))

	items := decodeList(t, rec)
	require.Len(t, items, 2)
	assert.Nil(t, items[0]["parent"])
	assert.Equal(t, "Vehicles", items[1]["parent"])
	assert.Equal(t, true, items[1]["is_leaf"])
}
