package codec

import (
	"math"
	"strconv"
	"strings"

	domainerrors "quicksell/internal/domain/errors"

	"github.com/paulmach/orb"
)

// CoordinatesFormatMessage is reported for any coordinate string that cannot be parsed.
const CoordinatesFormatMessage = "Required format: 'latitude, longitude'."

// RenderCoordinates renders a point as "x, y" using the shortest representation
// that parses back to the same floats.
func RenderCoordinates(point orb.Point) string {
	return strconv.FormatFloat(point.X(), 'f', -1, 64) + ", " + strconv.FormatFloat(point.Y(), 'f', -1, 64)
}

// ParseCoordinates parses "x, y" into a point. It requires exactly two
// comma-separated finite numbers.
func ParseCoordinates(text string) (orb.Point, error) {
	tokens := strings.Split(text, ",")
	if len(tokens) != 2 {
		return orb.Point{}, coordinatesError()
	}

	var point orb.Point
	for i, token := range tokens {
		value, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return orb.Point{}, coordinatesError()
		}
		point[i] = value
	}

	return point, nil
}

func coordinatesError() error {
	return domainerrors.NewValidationError("coordinates", CoordinatesFormatMessage)
}
