package serializer

import (
	"time"

	"quicksell/internal/domain/codec"
	"quicksell/internal/domain/entity"
	"quicksell/internal/usecase"
)

// ListingResponse renders a listing with its seller profile inlined.
type ListingResponse struct {
	UUID         codec.Identifier     `json:"uuid"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Price        int                  `json:"price"`
	Category     string               `json:"category"`
	Status       entity.ListingStatus `json:"status"`
	Quantity     int                  `json:"quantity"`
	Sold         int                  `json:"sold"`
	Views        int                  `json:"views"`
	DateCreated  time.Time            `json:"date_created"`
	DateExpires  time.Time            `json:"date_expires"`
	Location     *LocationResponse    `json:"location"`
	ConditionNew bool                 `json:"condition_new"`
	Properties   map[string]any       `json:"properties"`
	Seller       *ProfileResponse     `json:"seller"`
	Photos       []string             `json:"photos"`
}

func NewListingResponse(listing *entity.Listing) *ListingResponse {
	if listing == nil {
		return nil
	}

	properties := listing.Properties
	if properties == nil {
		properties = map[string]any{}
	}
	photos := listing.Photos
	if photos == nil {
		photos = []string{}
	}

	return &ListingResponse{
		UUID:         codec.Identifier(listing.ID),
		Title:        listing.Title,
		Description:  listing.Description,
		Price:        listing.Price,
		Category:     CategoryName(listing.Category),
		Status:       listing.Status,
		Quantity:     listing.Quantity,
		Sold:         listing.Sold,
		Views:        listing.Views,
		DateCreated:  listing.DateCreated,
		DateExpires:  listing.DateExpires,
		Location:     NewLocationResponse(listing.Location),
		ConditionNew: listing.ConditionNew,
		Properties:   properties,
		Seller:       NewProfileResponse(listing.Seller),
		Photos:       photos,
	}
}

func NewListingResponses(listings []*entity.Listing) []*ListingResponse {
	out := make([]*ListingResponse, 0, len(listings))
	for _, listing := range listings {
		out = append(out, NewListingResponse(listing))
	}

	return out
}

// CreateListingRequest is the body of a new listing. Read-only keys such as
// sold, views or photos are dropped by the decoder.
type CreateListingRequest struct {
	Title        string                `json:"title" validate:"required,max=200"`
	Description  string                `json:"description"`
	Price        *int                  `json:"price" validate:"required,min=0"`
	Category     string                `json:"category" validate:"required"`
	Status       *entity.ListingStatus `json:"status"`
	Quantity     *int                  `json:"quantity" validate:"omitempty,min=1"`
	Location     *LocationRequest      `json:"location" validate:"required"`
	ConditionNew bool                  `json:"condition_new"`
	Properties   map[string]any        `json:"properties"`
}

func (r *CreateListingRequest) ToInput() (*usecase.CreateListingInput, error) {
	location, err := r.Location.ToInput()
	if err != nil {
		return nil, err
	}

	input := &usecase.CreateListingInput{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Status:       r.Status,
		Quantity:     r.Quantity,
		Location:     location,
		ConditionNew: r.ConditionNew,
		Properties:   r.Properties,
	}
	if r.Price != nil {
		input.Price = *r.Price
	}

	return input, nil
}

// UpdateListingRequest overwrites only the fields that are present.
type UpdateListingRequest struct {
	Title        *string               `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string               `json:"description"`
	Price        *int                  `json:"price" validate:"omitempty,min=0"`
	Category     *string               `json:"category"`
	Status       *entity.ListingStatus `json:"status"`
	Quantity     *int                  `json:"quantity" validate:"omitempty,min=1"`
	Location     *LocationRequest      `json:"location"`
	ConditionNew *bool                 `json:"condition_new"`
	Properties   map[string]any        `json:"properties"`
}

func (r *UpdateListingRequest) ToInput() (*usecase.UpdateListingInput, error) {
	location, err := r.Location.ToInput()
	if err != nil {
		return nil, err
	}

	return &usecase.UpdateListingInput{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Category:     r.Category,
		Status:       r.Status,
		Quantity:     r.Quantity,
		Location:     location,
		ConditionNew: r.ConditionNew,
		Properties:   r.Properties,
	}, nil
}
