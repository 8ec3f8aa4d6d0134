package handler

import (
	"net/http"
	"testing"

	"quicksell/internal/domain/codec"
	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	mockUsecase "quicksell/internal/mocks/usecase"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListingHandler(t *testing.T) (*ListingHandler, *mockUsecase.MockListingUsecase) {
	listingUC := mockUsecase.NewMockListingUsecase(t)

	return NewListingHandler(ListingHandlerParams{ListingUC: listingUC}), listingUC
}

func TestListingHandler_CreateListing(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		listingID := uuid.New()
		listingUC.EXPECT().CreateListing(mock.Anything, userID, &usecase.CreateListingInput{
			Title:    "Bike",
			Price:    150,
			Category: "Bicycles",
			Quantity: ptr(2),
			Location: &usecase.LocationInput{
				Coordinates: ptr(orb.Point{1, 2}),
				Address:     ptr("Main st."),
			},
			ConditionNew: true,
		}).Return(&entity.Listing{
			ID:       listingID,
			Title:    "Bike",
			Price:    150,
			Category: &entity.Category{Name: "Bicycles"},
			Status:   entity.ListingStatusActive,
			Quantity: 2,
		}, nil)

		c, rec := newContext(http.MethodPost, "/listings",
			`{"title":"Bike","price":150,"category":"Bicycles","quantity":2,"condition_new":true,
			"location":{"coordinates":"1, 2","address":"Main st."}}`, &userID)

		require.NoError(t, h.CreateListing(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		_, data := decodeData(t, rec)
		assert.Equal(t, codec.EncodeIdentifier(listingID), data["uuid"])
		assert.Equal(t, "Bicycles", data["category"])
		assert.Equal(t, []any{}, data["photos"])
	})

	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{
			name:    "missing price",
			body:    `{"title":"Bike","category":"Bicycles","location":{"coordinates":"1, 2"}}`,
			field:   "price",
			message: "This field is required.",
		},
		{
			name:    "negative price",
			body:    `{"title":"Bike","price":-1,"category":"Bicycles","location":{"coordinates":"1, 2"}}`,
			field:   "price",
			message: "Ensure this value is greater than or equal to 0.",
		},
		{
			name:    "zero quantity",
			body:    `{"title":"Bike","price":1,"category":"Bicycles","quantity":0,"location":{"coordinates":"1, 2"}}`,
			field:   "quantity",
			message: "Ensure this value is greater than or equal to 1.",
		},
		{
			name:    "missing location",
			body:    `{"title":"Bike","price":1,"category":"Bicycles"}`,
			field:   "location",
			message: "This field is required.",
		},
		{
			name:    "bad coordinates",
			body:    `{"title":"Bike","price":1,"category":"Bicycles","location":{"coordinates":"1; 2"}}`,
			field:   "coordinates",
			message: codec.CoordinatesFormatMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newListingHandler(t)
			c, _ := newContext(http.MethodPost, "/listings", tt.body, &userID)

			requireValidationError(t, h.CreateListing(c), tt.field, tt.message)
		})
	}
}

func TestListingHandler_UpdateListing(t *testing.T) {
	userID := uuid.New()
	listingID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		listingUC.EXPECT().UpdateListing(mock.Anything, userID, listingID, &usecase.UpdateListingInput{
			Price: ptr(90),
		}).Return(&entity.Listing{ID: listingID, Price: 90}, nil)

		c, rec := newContext(http.MethodPatch, "/listings/x", `{"price":90,"views":1000}`, &userID)

		require.NoError(t, h.UpdateListing(withID(c, listingID)))

		_, data := decodeData(t, rec)
		assert.Equal(t, float64(90), data["price"])
	})

	t.Run("not the seller", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		listingUC.EXPECT().UpdateListing(mock.Anything, userID, listingID, mock.Anything).
			Return(nil, domainerrors.ErrForbidden.WrapMessage("only the seller may update the listing"))

		c, _ := newContext(http.MethodPatch, "/listings/x", `{"title":"Mine now"}`, &userID)

		assert.ErrorIs(t, h.UpdateListing(withID(c, listingID)), domainerrors.ErrForbidden)
	})
}

func TestListingHandler_ListListings(t *testing.T) {
	viewer := uuid.New()
	seller := uuid.New()

	t.Run("filters from query", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		listingUC.EXPECT().ListListings(mock.Anything, &usecase.ListListingsInput{
			Category:  "Bicycles",
			Seller:    &seller,
			PageInput: usecase.PageInput{Page: 2, PageSize: 5},
		}).Return([]*entity.Listing{{ID: uuid.New(), Title: "Bike"}}, nil)

		target := "/listings?category=Bicycles&page=2&page_size=5&seller=" + codec.EncodeIdentifier(seller)
		c, rec := newContext(http.MethodGet, target, "", &viewer)

		require.NoError(t, h.ListListings(c))

		items := decodeList(t, rec)
		require.Len(t, items, 1)
		assert.Equal(t, "Bike", items[0]["title"])
	})

	t.Run("non numeric page", func(t *testing.T) {
		h, _ := newListingHandler(t)
		c, _ := newContext(http.MethodGet, "/listings?page=two", "", &viewer)

		requireValidationError(t, h.ListListings(c), "page", "A valid integer is required.")
	})
}

func TestListingHandler_GetListing(t *testing.T) {
	h, listingUC := newListingHandler(t)
	listingID := uuid.New()
	listingUC.EXPECT().GetListing(mock.Anything, listingID).Return(&entity.Listing{ID: listingID, Views: 4}, nil)

	c, rec := newContext(http.MethodGet, "/listings/x", "", nil)

	require.NoError(t, h.GetListing(withID(c, listingID)))

	_, data := decodeData(t, rec)
	assert.Equal(t, float64(4), data["views"])
}

func TestListingHandler_ListingQRCode(t *testing.T) {
	h, listingUC := newListingHandler(t)
	listingID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	listingUC.EXPECT().ListingQRCode(mock.Anything, listingID).Return(png, nil)

	c, rec := newContext(http.MethodGet, "/listings/x/qrcode", "", nil)

	require.NoError(t, h.ListingQRCode(withID(c, listingID)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
