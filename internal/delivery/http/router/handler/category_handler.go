package handler

import (
	"net/http"

	"quicksell/internal/delivery/http/response"
	"quicksell/internal/delivery/http/serializer"
	"quicksell/internal/errors"
	"quicksell/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CategoryHandler exposes the category taxonomy.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

func NewCategoryHandler(categoryUC usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

// ListCategories returns every category with its parent name and leaf flag.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewCategoryResponses(categories), "")
}
