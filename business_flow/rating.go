package businessflow

import (
	"math"

	"github.com/spacefleet/kosmoport/utils"
)

const (
	ratingSpeedWeight = 80.0
	ratingUsedFactor  = 0.5
)

// CalculateShipRating derives a ship's rating from its speed, usage flag and
// production year. The result is rounded half-up to two decimal places.
// Inputs are expected to be pre-validated, so the denominator is always >= 1.
func CalculateShipRating(speed float64, used bool, prodYear int) float64 {
	k := 1.0
	if used {
		k = ratingUsedFactor
	}
	raw := (ratingSpeedWeight * speed * k) / float64(utils.MaxProdYear-prodYear+1)
	return math.Round(raw*100) / 100
}
