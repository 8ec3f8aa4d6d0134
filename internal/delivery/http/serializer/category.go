package serializer

import (
	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryResponse is one node of the taxonomy. Parent is the parent's name.
type CategoryResponse struct {
	Name   string  `json:"name"`
	Parent *string `json:"parent"`
	IsLeaf bool    `json:"is_leaf"`
}

// NewCategoryResponses resolves parent names from within the same list.
func NewCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	out := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		item := &CategoryResponse{Name: category.Name, IsLeaf: category.IsLeaf}
		if category.ParentID != nil {
			if name, ok := names[*category.ParentID]; ok {
				item.Parent = &name
			}
		}
		out = append(out, item)
	}

	return out
}

// CategoryName renders a listing's category reference.
func CategoryName(category *entity.Category) string {
	if category == nil {
		return ""
	}

	return category.Name
}
