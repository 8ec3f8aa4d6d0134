package handler

import (
	"log/slog"
	"net/http"

	"quicksell/internal/delivery/http/response"
	"quicksell/internal/delivery/http/serializer"
	"quicksell/internal/domain/codec"
	"quicksell/internal/errors"
	"quicksell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler holds dependencies for listing-related handlers
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// CreateListing publishes a listing on behalf of the viewer's profile.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	userID, err := viewerID(c)
	if err != nil {
		return err
	}

	var req serializer.CreateListingRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	input, err := req.ToInput()
	if err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, serializer.NewListingResponse(listing), "Listing created successfully")
}

// UpdateListing applies a partial update. Only the seller may do this.
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	userID, err := viewerID(c)
	if err != nil {
		return err
	}

	listingID, err := pathID(c)
	if err != nil {
		return err
	}

	var req serializer.UpdateListingRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	input, err := req.ToInput()
	if err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.listingUC.UpdateListing(c.Request().Context(), userID, listingID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewListingResponse(listing), "Listing updated successfully")
}

// GetListing returns a listing and counts the view.
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := pathID(c)
	if err != nil {
		return err
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewListingResponse(listing), "")
}

// ListListings returns active listings filtered by ?category=, ?seller=, ?page= and ?page_size=.
func (h *ListingHandler) ListListings(c echo.Context) error {
	var (
		input  usecase.ListListingsInput
		seller string
	)
	err := echo.QueryParamsBinder(c).
		String("category", &input.Category).
		String("seller", &seller).
		Int("page", &input.Page).
		Int("page_size", &input.PageSize).
		BindError()
	if err != nil {
		return queryError(err)
	}

	if seller != "" {
		sellerID, err := codec.DecodeIdentifier(seller)
		if err != nil {
			return errors.WithStack(err)
		}
		input.Seller = &sellerID
	}

	listings, err := h.listingUC.ListListings(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewListingResponses(listings), "")
}

// ListingQRCode renders the listing's share link as a PNG image.
func (h *ListingHandler) ListingQRCode(c echo.Context) error {
	listingID, err := pathID(c)
	if err != nil {
		return err
	}

	png, err := h.listingUC.ListingQRCode(c.Request().Context(), listingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
