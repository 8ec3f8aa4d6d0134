package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"quicksell/config"
	deliverycontext "quicksell/internal/delivery/context"
	"quicksell/internal/domain/codec"
	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/lifecycle"
	"quicksell/internal/domain/repository"
	"quicksell/internal/domain/service"
	"quicksell/internal/errors"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultListingLifetime = 30 * 24 * time.Hour

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager    repository.TransactionManager
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
	locations    usecase.LocationManager
	categories   usecase.CategoryUsecase
	publisher    service.EventPublisher
	qrcodes      service.QRCodeService
	lifetime     time.Duration
	pages        pager
	shareBaseURL string
	now          func() time.Time
	logger       *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ListingRepo  repository.ListingRepository
	CategoryRepo repository.CategoryRepository
	Locations    usecase.LocationManager
	Categories   usecase.CategoryUsecase
	Publisher    service.EventPublisher
	QRCodes      service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	srv := &listingService{
		txManager:    params.TxManager,
		listingRepo:  params.ListingRepo,
		categoryRepo: params.CategoryRepo,
		locations:    params.Locations,
		categories:   params.Categories,
		publisher:    params.Publisher,
		qrcodes:      params.QRCodes,
		lifetime:     defaultListingLifetime,
		pages:        newPager(params.Config),
		now:          time.Now,
		logger:       params.Logger,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.Listing != nil && cfg.Listing.Lifetime > 0 {
			srv.lifetime = cfg.Listing.Lifetime
		}
		if cfg.QRCode != nil {
			srv.shareBaseURL = cfg.QRCode.BaseURL
		}
	}

	return srv
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing publishes a listing on behalf of the account's profile.
func (srv *listingService) CreateListing(ctx context.Context, userID uuid.UUID, input *usecase.CreateListingInput) (*entity.Listing, error) {
	status := entity.ListingStatusActive
	if input.Status != nil {
		status = *input.Status
	}
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if err := validateListingFields(input.Price, status, quantity); err != nil {
		return nil, err
	}
	if input.Location == nil {
		return nil, domainerrors.NewValidationError("location", "This field is required.")
	}

	var created *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seller, err := findProfileByUser(ctx, repoFactory.ProfileRepo(), userID)
		if err != nil {
			return err
		}

		location, err := srv.locations.Create(ctx, repoFactory.LocationRepo(), input.Location)
		if err != nil {
			return err
		}

		category, err := srv.categories.ResolveLeaf(ctx, repoFactory.CategoryRepo(), input.Category)
		if err != nil {
			return err
		}

		now := srv.now()
		listing := &entity.Listing{
			Title:        input.Title,
			Description:  input.Description,
			Price:        input.Price,
			CategoryID:   category.ID,
			Category:     category,
			Status:       status,
			Quantity:     quantity,
			DateCreated:  now,
			DateExpires:  now.Add(srv.lifetime),
			LocationID:   location.ID,
			Location:     location,
			ConditionNew: input.ConditionNew,
			Properties:   input.Properties,
			SellerID:     seller.ID,
			Seller:       seller,
			Photos:       []string{},
		}
		if listing.Properties == nil {
			listing.Properties = map[string]any{}
		}

		if err := repoFactory.ListingRepo().Create(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to create listing")
		}
		created = listing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created", slog.Any("listingID", created.ID), slog.Any("sellerID", created.SellerID))
	srv.publishCreated(ctx, created)

	return created, nil
}

// publishCreated announces a new listing. Failures are logged and never surface to the caller.
func (srv *listingService) publishCreated(ctx context.Context, listing *entity.Listing) {
	event := &service.ListingEvent{
		RequestID:  deliverycontext.RequestIDFromContext(ctx),
		Type:       service.ListingEventCreated,
		ListingID:  codec.EncodeIdentifier(listing.ID),
		SellerID:   codec.EncodeIdentifier(listing.SellerID),
		Title:      listing.Title,
		Price:      listing.Price,
		OccurredAt: listing.DateCreated,
	}
	if listing.Category != nil {
		event.Category = listing.Category.Name
	}
	if listing.Location != nil {
		event.Coordinates = codec.RenderCoordinates(listing.Location.Coordinates)
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.publisher.PublishListingEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish listing event", slog.Any("listingID", listing.ID), slog.Any("error", err))
	}
}

// UpdateListing applies the present fields of the input. Only the seller may update a listing.
func (srv *listingService) UpdateListing(ctx context.Context, userID, listingID uuid.UUID, input *usecase.UpdateListingInput) (*entity.Listing, error) {
	srv.log(ctx).Info("Updating listing", slog.Any("userID", userID), slog.Any("listingID", listingID))

	var updated *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		listing, err := findListing(ctx, listingRepo, listingID)
		if err != nil {
			return err
		}

		profile, err := findProfileByUser(ctx, repoFactory.ProfileRepo(), userID)
		if err != nil {
			return err
		}
		if !listing.IsSoldBy(profile.ID) {
			return domainerrors.ErrForbidden.WrapMessage("only the seller may update the listing")
		}

		if !input.Location.IsEmpty() {
			location, err := srv.locations.Update(ctx, repoFactory.LocationRepo(), listing.Location, input.Location)
			if err != nil {
				return err
			}
			listing.Location = location
			listing.LocationID = location.ID
		}

		if input.Category != nil {
			category, err := srv.categories.ResolveLeaf(ctx, repoFactory.CategoryRepo(), *input.Category)
			if err != nil {
				return err
			}
			listing.Category = category
			listing.CategoryID = category.ID
		}

		applyListingUpdate(listing, input)
		if err := validateListingFields(listing.Price, listing.Status, listing.Quantity); err != nil {
			return err
		}

		if err := listingRepo.Update(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to update listing")
		}
		updated = listing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	return updated, nil
}

func applyListingUpdate(listing *entity.Listing, input *usecase.UpdateListingInput) {
	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Price != nil {
		listing.Price = *input.Price
	}
	if input.Status != nil {
		listing.Status = *input.Status
	}
	if input.Quantity != nil {
		listing.Quantity = *input.Quantity
	}
	if input.ConditionNew != nil {
		listing.ConditionNew = *input.ConditionNew
	}
	if input.Properties != nil {
		listing.Properties = input.Properties
	}
}

// GetListing returns a visible listing and counts the view.
func (srv *listingService) GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := findListing(ctx, srv.listingRepo, listingID)
	if err != nil {
		return nil, err
	}

	if err := srv.listingRepo.IncrementViews(ctx, listingID); err != nil {
		return nil, errors.Wrap(err, "failed to count listing view")
	}
	listing.Views++

	return listing, nil
}

// ListListings returns a page of active listings, newest first.
func (srv *listingService) ListListings(ctx context.Context, input *usecase.ListListingsInput) ([]*entity.Listing, error) {
	active := entity.ListingStatusActive
	limit, offset := srv.pages.limitOffset(input.PageInput)
	filter := repository.ListingFilter{
		Status:   &active,
		SellerID: input.Seller,
		Limit:    limit,
		Offset:   offset,
	}

	if input.Category != "" {
		category, err := srv.categories.ResolveLeaf(ctx, srv.categoryRepo, input.Category)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = &category.ID
	}

	listings, err := srv.listingRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return listings, nil
}

// ListingQRCode renders the listing's share link as a PNG QR code.
func (srv *listingService) ListingQRCode(ctx context.Context, listingID uuid.UUID) ([]byte, error) {
	listing, err := findListing(ctx, srv.listingRepo, listingID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodes.GenerateListingQR(srv.shareLink(listing.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}

func (srv *listingService) shareLink(listingID uuid.UUID) string {
	return strings.TrimRight(srv.shareBaseURL, "/") + "/listings/" + codec.EncodeIdentifier(listingID)
}

// findListing loads a listing, hiding deleted ones.
func findListing(ctx context.Context, repo repository.ListingRepository, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := repo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if listing.Status == entity.ListingStatusDeleted {
		return nil, domainerrors.ErrNotFound.WrapMessage("listing deleted")
	}

	return listing, nil
}

func validateListingFields(price int, status entity.ListingStatus, quantity int) error {
	if price < 0 {
		return domainerrors.NewValidationError("price", "Ensure this value is greater than or equal to 0.")
	}
	if !status.IsValid() {
		return domainerrors.NewValidationError("status", fmt.Sprintf("\"%d\" is not a valid choice.", status))
	}
	if quantity < 1 {
		return domainerrors.NewValidationError("quantity", "Ensure this value is greater than or equal to 1.")
	}

	return nil
}
