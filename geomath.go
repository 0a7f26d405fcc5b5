package dtanet

import (
	"math"

	"github.com/paulmach/orb"
)

// findDistance returns distance between two planar points
func findDistance(p, q orb.Point) float64 {
	xdistance := p.X() - q.X()
	ydistance := p.Y() - q.Y()
	return math.Sqrt(xdistance*xdistance + ydistance*ydistance)
}

// lineLength returns length of given planar line
func lineLength(line orb.LineString) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += findDistance(line[i-1], line[i])
	}
	return totalLength
}

// middlePointSegment returns middle point for given planar segment
func middlePointSegment(p, q orb.Point) orb.Point {
	return orb.Point{(p.X() + q.X()) / 2.0, (p.Y() + q.Y()) / 2.0}
}

// reverseLine reverses order of points in given line. Returns new slice
func reverseLine(pts orb.LineString) orb.LineString {
	inputLen := len(pts)
	output := make(orb.LineString, inputLen)
	for i, n := range pts {
		j := inputLen - i - 1
		output[j] = n
	}
	return output
}
