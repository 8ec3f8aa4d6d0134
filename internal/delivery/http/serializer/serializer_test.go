package serializer

import (
	"encoding/json"
	"testing"
	"time"

	"quicksell/internal/domain/codec"
	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestLocationRequest_ToInput(t *testing.T) {
	tests := []struct {
		name        string
		request     *LocationRequest
		want        *usecase.LocationInput
		wantErrText string
	}{
		{
			name: "nil request",
		},
		{
			name:    "coordinates and address",
			request: &LocationRequest{Coordinates: ptr("50.45, 30.52"), Address: ptr("Kyiv")},
			want: &usecase.LocationInput{
				Coordinates: ptr(orb.Point{50.45, 30.52}),
				Address:     ptr("Kyiv"),
			},
		},
		{
			name:    "address only",
			request: &LocationRequest{Address: ptr("Lviv")},
			want:    &usecase.LocationInput{Address: ptr("Lviv")},
		},
		{
			name:        "malformed coordinates",
			request:     &LocationRequest{Coordinates: ptr("50.45")},
			wantErrText: codec.CoordinatesFormatMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToInput()
			if tt.wantErrText != "" {
				var validationErr *domainerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "coordinates", validationErr.Field())
				assert.Equal(t, tt.wantErrText, validationErr.Message())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewListingResponse(t *testing.T) {
	listingID := uuid.New()
	profileID := uuid.New()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	listing := &entity.Listing{
		ID:          listingID,
		Title:       "Bike",
		Price:       100,
		Category:    &entity.Category{Name: "Bicycles", IsLeaf: true},
		Status:      entity.ListingStatusActive,
		Quantity:    1,
		DateCreated: created,
		DateExpires: created.Add(24 * time.Hour),
		Location:    &entity.Location{Coordinates: orb.Point{1.5, -2}, Address: "Somewhere"},
		Seller:      &entity.Profile{ID: profileID, FullName: "Ann"},
	}

	raw, err := json.Marshal(NewListingResponse(listing))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, codec.EncodeIdentifier(listingID), body["uuid"])
	assert.Equal(t, "Bicycles", body["category"])
	assert.Equal(t, float64(entity.ListingStatusActive), body["status"])
	assert.Equal(t, map[string]any{}, body["properties"])
	assert.Equal(t, []any{}, body["photos"])
	assert.Equal(t, map[string]any{"coordinates": "1.5, -2", "address": "Somewhere"}, body["location"])

	seller, ok := body["seller"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, codec.EncodeIdentifier(profileID), seller["uuid"])
	assert.Equal(t, "Ann", seller["full_name"])
	assert.Nil(t, seller["location"])
}

func TestCreateListingRequest_IgnoresReadOnlyKeys(t *testing.T) {
	body := `{"title":"Lamp","price":0,"category":"Lighting","views":99,"sold":5,"photos":["x"],
		"location":{"coordinates":"10, 20"},"properties":{"color":"red"}}`

	var request CreateListingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &request))

	input, err := request.ToInput()
	require.NoError(t, err)

	assert.Equal(t, "Lamp", input.Title)
	assert.Equal(t, 0, input.Price)
	assert.Nil(t, input.Status)
	assert.Nil(t, input.Quantity)
	assert.Equal(t, orb.Point{10, 20}, *input.Location.Coordinates)
	assert.Nil(t, input.Location.Address)
	assert.Equal(t, map[string]any{"color": "red"}, input.Properties)
}

func TestNewChatResponse_InterlocutorDependsOnViewer(t *testing.T) {
	creator := uuid.New()
	interlocutor := uuid.New()
	chat := &entity.Chat{
		ID:                  uuid.New(),
		CreatorID:           creator,
		InterlocutorID:      interlocutor,
		Subject:             "Bike",
		CreatorProfile:      &entity.Profile{ID: uuid.New(), FullName: "Creator"},
		InterlocutorProfile: &entity.Profile{ID: uuid.New(), FullName: "Seller"},
	}

	tests := []struct {
		name   string
		viewer uuid.UUID
		want   string
	}{
		{name: "creator sees interlocutor", viewer: creator, want: "Seller"},
		{name: "interlocutor sees creator", viewer: interlocutor, want: "Creator"},
		{name: "outsider sees creator", viewer: uuid.New(), want: "Creator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewChatResponse(&usecase.ChatOutput{Chat: chat}, tt.viewer)

			require.NotNil(t, got.Interlocutor)
			assert.Equal(t, tt.want, got.Interlocutor.FullName)
			assert.Nil(t, got.LatestMessage)
			assert.Equal(t, "Bike", got.Subject)
		})
	}
}

func TestChatResponse_LatestMessageRendersNull(t *testing.T) {
	raw, err := json.Marshal(NewChatResponse(&usecase.ChatOutput{Chat: &entity.Chat{ID: uuid.New()}}, uuid.New()))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	value, present := body["latest_message"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestNewMessageResponse_IsYours(t *testing.T) {
	author := uuid.New()
	message := &entity.Message{AuthorID: author, Text: "hi", Read: true}

	assert.True(t, NewMessageResponse(message, author).IsYours)
	assert.False(t, NewMessageResponse(message, uuid.New()).IsYours)
	assert.Nil(t, NewMessageResponse(nil, author))
}

func TestCreateChatRequest_DecodesTokens(t *testing.T) {
	to := uuid.New()
	listing := uuid.New()
	body := `{"to_uuid":"` + codec.EncodeIdentifier(to) + `","listing_uuid":"` + codec.EncodeIdentifier(listing) + `"}`

	var request CreateChatRequest
	require.NoError(t, json.Unmarshal([]byte(body), &request))

	input := request.ToInput()
	assert.Equal(t, to, input.ToProfileID)
	assert.Equal(t, listing, input.ListingID)

	err := json.Unmarshal([]byte(`{"to_uuid":"***"}`), &request)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNewCategoryResponses(t *testing.T) {
	rootID := uuid.New()
	categories := []*entity.Category{
		{ID: rootID, Name: "Vehicles"},
		{ID: uuid.New(), Name: "Bicycles", ParentID: &rootID, IsLeaf: true},
	}

	got := NewCategoryResponses(categories)

	require.Len(t, got, 2)
	assert.Nil(t, got[0].Parent)
	assert.False(t, got[0].IsLeaf)
	require.NotNil(t, got[1].Parent)
	assert.Equal(t, "Vehicles", *got[1].Parent)
	assert.True(t, got[1].IsLeaf)
}

func TestNewAccountResponse_HidesCredentials(t *testing.T) {
	user := &entity.User{
		Email:        "ann@example.com",
		PasswordHash: "secret-hash",
		Balance:      15,
		Profile:      &entity.Profile{ID: uuid.New(), FullName: "Ann"},
	}

	raw, err := json.Marshal(NewAccountResponse(user))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret-hash")
	assert.NotContains(t, string(raw), "password")
	assert.Contains(t, string(raw), `"balance":15`)
	assert.Contains(t, string(raw), `"full_name":"Ann"`)
}
