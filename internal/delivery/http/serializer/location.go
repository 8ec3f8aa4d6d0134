// Package serializer maps request bodies onto usecase inputs and entities onto
// their JSON representations.
package serializer

import (
	"quicksell/internal/domain/codec"
	"quicksell/internal/domain/entity"
	"quicksell/internal/usecase"
)

// LocationRequest is the writable shape of a location.
type LocationRequest struct {
	Coordinates *string `json:"coordinates"`
	Address     *string `json:"address"`
}

// ToInput parses the coordinate string when present.
func (r *LocationRequest) ToInput() (*usecase.LocationInput, error) {
	if r == nil {
		return nil, nil
	}

	input := &usecase.LocationInput{Address: r.Address}
	if r.Coordinates != nil {
		point, err := codec.ParseCoordinates(*r.Coordinates)
		if err != nil {
			return nil, err
		}
		input.Coordinates = &point
	}

	return input, nil
}

// LocationResponse renders a shared location.
type LocationResponse struct {
	Coordinates string `json:"coordinates"`
	Address     string `json:"address"`
}

// NewLocationResponse returns nil for a missing location.
func NewLocationResponse(location *entity.Location) *LocationResponse {
	if location == nil {
		return nil
	}

	return &LocationResponse{
		Coordinates: codec.RenderCoordinates(location.Coordinates),
		Address:     location.Address,
	}
}
