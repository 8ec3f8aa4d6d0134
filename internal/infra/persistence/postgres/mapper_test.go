package postgres

import (
	"testing"
	"time"

	"quicksell/internal/domain/entity"
	"quicksell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestLocationMapper_RoundTrip(t *testing.T) {
	location := &entity.Location{
		ID:          uuid.New(),
		Coordinates: orb.Point{55.7512, 37.6184},
		Address:     "Red Square, Moscow",
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 3, 3, 4, 5, 0, time.UTC),
	}

	locationM := fromLocationDomain(location)
	assert.Equal(t, 55.7512, locationM.X)
	assert.Equal(t, 37.6184, locationM.Y)

	assert.Equal(t, location, toLocationDomain(locationM))
	assert.Nil(t, toLocationDomain(nil))
	assert.Nil(t, fromLocationDomain(nil))
}

func TestUserMapper_CarriesProfileAndLocation(t *testing.T) {
	locationID := uuid.New()
	userM := &model.UserModel{
		ID:              uuid.New(),
		Email:           "seller@example.com",
		Password:        "hash",
		IsEmailVerified: true,
		Balance:         150,
		CreatedAt:       time.Now(),
		Profile: &model.ProfileModel{
			ID:         uuid.New(),
			FullName:   "Jane Seller",
			LocationID: &locationID,
			Location:   &model.LocationModel{ID: locationID, X: 1.5, Y: -2.25},
		},
	}

	user := toUserDomain(userM)

	require.NotNil(t, user.Profile)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, userM.CreatedAt, user.DateJoined)
	assert.Equal(t, "Jane Seller", user.Profile.FullName)
	require.NotNil(t, user.Profile.Location)
	assert.Equal(t, orb.Point{1.5, -2.25}, user.Profile.Location.Coordinates)

	back := fromUserDomain(user)
	assert.Equal(t, userM.Password, back.Password)
	require.NotNil(t, back.Profile)
	assert.Nil(t, back.Profile.Location, "relations are persisted by ID only")
	assert.Equal(t, &locationID, back.Profile.LocationID)
}

func TestDeviceMapper_RoundTrip(t *testing.T) {
	ownerID := uuid.New()
	device := &entity.Device{
		ID:         uuid.New(),
		FCMID:      "token",
		OwnerID:    &ownerID,
		IsActive:   true,
		FailsCount: 2,
	}

	assert.Equal(t, device, toDeviceDomain(fromDeviceDomain(device)))
}

func TestListingMapper_DefaultsEmptyCollections(t *testing.T) {
	listingM := &model.ListingModel{
		ID:     uuid.New(),
		Title:  "Bike",
		Status: int(entity.ListingStatusActive),
	}

	listing := toListingDomain(listingM)

	assert.Equal(t, entity.ListingStatusActive, listing.Status)
	assert.NotNil(t, listing.Properties)
	assert.Empty(t, listing.Properties)
	assert.NotNil(t, listing.Photos)
	assert.Empty(t, listing.Photos)
}

func TestListingMapper_RoundTrip(t *testing.T) {
	listing := &entity.Listing{
		ID:           uuid.New(),
		Title:        "Road bike",
		Description:  "Barely used",
		Price:        25000,
		CategoryID:   uuid.New(),
		Status:       entity.ListingStatusActive,
		Quantity:     1,
		LocationID:   uuid.New(),
		ConditionNew: true,
		Properties:   map[string]any{"frame": "carbon"},
		SellerID:     uuid.New(),
		Photos:       []string{"https://cdn.example.com/1.jpg"},
	}

	listingM := fromListingDomain(listing)
	assert.Equal(t, datatypes.JSONMap{"frame": "carbon"}, listingM.Properties)
	assert.Equal(t, datatypes.JSONSlice[string]{"https://cdn.example.com/1.jpg"}, listingM.Photos)

	back := toListingDomain(listingM)
	assert.Equal(t, listing.Properties, back.Properties)
	assert.Equal(t, listing.Photos, back.Photos)
	assert.Equal(t, listing.SellerID, back.SellerID)
	assert.True(t, back.ConditionNew)
}

func TestChatMapper_LoadsParticipants(t *testing.T) {
	creatorID := uuid.New()
	interlocutorID := uuid.New()
	chatM := &model.ChatModel{
		ID:                  uuid.New(),
		CreatorID:           creatorID,
		InterlocutorID:      interlocutorID,
		ListingID:           uuid.New(),
		Subject:             "Road bike",
		CreatorProfile:      &model.ProfileModel{ID: uuid.New(), UserID: creatorID, FullName: "Buyer"},
		InterlocutorProfile: &model.ProfileModel{ID: uuid.New(), UserID: interlocutorID, FullName: "Seller"},
		Listing:             &model.ListingModel{Title: "Road bike"},
	}

	chat := toChatDomain(chatM)

	assert.Equal(t, "Road bike", chat.Subject)
	assert.Equal(t, "Buyer", chat.InterlocutorFor(interlocutorID).FullName)
	assert.Equal(t, "Seller", chat.InterlocutorFor(creatorID).FullName)
	require.NotNil(t, chat.Listing)
	assert.Equal(t, "Road bike", chat.Listing.Title)
}

func TestMessageMapper_RoundTrip(t *testing.T) {
	message := &entity.Message{
		ID:        uuid.New(),
		ChatID:    uuid.New(),
		AuthorID:  uuid.New(),
		Text:      "Is it still available?",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Read:      true,
	}

	assert.Equal(t, message, toMessageDomain(fromMessageDomain(message)))
}

func TestCategoryMapper(t *testing.T) {
	parentID := uuid.New()
	category := toCategoryDomain(&model.CategoryModel{
		ID:       uuid.New(),
		Name:     "Bicycles",
		ParentID: &parentID,
		IsLeaf:   true,
	})

	assert.Equal(t, "Bicycles", category.Name)
	assert.Equal(t, &parentID, category.ParentID)
	assert.True(t, category.IsLeaf)
}
