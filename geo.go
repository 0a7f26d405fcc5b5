package dtanet

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthR       = 20037508.34
	feetPerMeter = 3.280839895
)

func epsg4326To3857(lon, lat float64) (float64, float64) {
	x := lon * earthR / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * earthR / 180
	return x, y
}

// pointToPlanarFeet projects a WGS84 point to planar coordinates in feet
// (EPSG:3857 meters scaled to feet).
//
// Note: Web-Mercator distances are inflated by ~1/cos(latitude), so lengths
// derived from these coordinates overshoot ground truth away from the
// equator. Length thresholds (MIN_LENGTH_IN_MILES consumers in particular)
// are applied against these projected lengths, not geodesic ones.
func pointToPlanarFeet(pt orb.Point) orb.Point {
	x, y := epsg4326To3857(pt.Lon(), pt.Lat())
	return orb.Point{x * feetPerMeter, y * feetPerMeter}
}

func lineToPlanarFeet(line orb.LineString) orb.LineString {
	newLine := make(orb.LineString, len(line))
	for i, pt := range line {
		newLine[i] = pointToPlanarFeet(pt)
	}
	return newLine
}
