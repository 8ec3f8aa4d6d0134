package codec

import (
	"testing"

	domainerrors "quicksell/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCoordinates(t *testing.T) {
	assert.Equal(t, "55.7558, 37.6173", RenderCoordinates(orb.Point{55.7558, 37.6173}))
	assert.Equal(t, "-1, 0", RenderCoordinates(orb.Point{-1, 0}))
}

func TestParseCoordinates_RoundTrip(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{55.7558, 37.6173},
		{-33.8688, 151.2093},
		{0.1 + 0.2, -179.999999999},
		{1e-9, 90},
	}

	for _, point := range points {
		parsed, err := ParseCoordinates(RenderCoordinates(point))
		require.NoError(t, err)
		assert.Equal(t, point, parsed)
	}
}

func TestParseCoordinates_TrimsWhitespace(t *testing.T) {
	parsed, err := ParseCoordinates("  12.5 ,-7  ")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{12.5, -7}, parsed)
}

func TestParseCoordinates_Malformed(t *testing.T) {
	inputs := []string{"", "abc", "1,2,3", "1", "1;2", "1, two", ",", "NaN, 1", "1, Inf"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCoordinates(input)
			require.Error(t, err)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, CoordinatesFormatMessage, validationErr.Message())
			assert.Equal(t, "coordinates", validationErr.Field())
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}
