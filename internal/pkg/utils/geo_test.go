package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopcrawl-service/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("identical points are zero", func(t *testing.T) {
		assert.Zero(t, utils.HaversineDistance(39.909, 116.397, 39.909, 116.397))
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := utils.HaversineDistance(39.909, 116.397, 31.230, 121.474)
		ba := utils.HaversineDistance(31.230, 121.474, 39.909, 116.397)
		assert.InDelta(t, ab, ba, 1e-6)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		d := utils.HaversineDistance(39.0, 116.397, 40.0, 116.397)
		assert.InDelta(t, 111195, d, 200)
	})

	t.Run("antipodal points do not blow up", func(t *testing.T) {
		d := utils.HaversineDistance(90, 0, -90, 0)
		assert.InDelta(t, 20015086, d, 5000)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(39.909, 116.397))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, -181))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, utils.ValidateRadius(15000))
	assert.False(t, utils.ValidateRadius(50))
	assert.False(t, utils.ValidateRadius(60000))
}
