package dtanet

import (
	"github.com/paulmach/orb"
)

// RoadLink is a link enriched with roadway state: the comparison attribute
// set, a capacity and an optional polyline geometry following the actual
// street shape. This is the variant the containing network registers.
type RoadLink struct {
	*Link
	geom     orb.LineString
	capacity int
}

// NewRoadLink constructs a road link with explicit attributes. Endpoint
// validation is inherited from the base link constructor.
func NewRoadLink(id LinkID, startNode, endNode Endpoint, label string, attrs LinkAttributes) (*RoadLink, error) {
	link, err := NewLink(id, startNode, endNode, label)
	if err != nil {
		return nil, err
	}
	link.SetAttributes(attrs)
	capacity := -1
	if defaultCap, ok := defaultCapacityByFacilityType[attrs.FacilityType]; ok {
		capacity = defaultCap
	}
	return &RoadLink{
		Link:     link,
		capacity: capacity,
	}, nil
}

// NewRoadLinkWithDefaults constructs a road link whose attributes carry the
// per-facility-type defaults
func NewRoadLinkWithDefaults(id LinkID, startNode, endNode Endpoint, label string, facilityType FacilityType) (*RoadLink, error) {
	return NewRoadLink(id, startNode, endNode, label, DefaultLinkAttributes(facilityType))
}

func (link *RoadLink) GetCapacity() int {
	return link.capacity
}

func (link *RoadLink) SetCapacity(capacity int) {
	link.capacity = capacity
}

func (link *RoadLink) GetLanes() int {
	return link.attrs.NumLanes
}

// GetGeom returns the polyline geometry, or a two-point line between the
// endpoints when no explicit geometry was set
func (link *RoadLink) GetGeom() orb.LineString {
	if len(link.geom) >= 2 {
		return link.geom
	}
	return orb.LineString{
		{link.startNode.GetX(), link.startNode.GetY()},
		{link.endNode.GetX(), link.endNode.GetY()},
	}
}

func (link *RoadLink) SetGeom(geom orb.LineString) {
	link.geom = geom
}

// LengthFeet returns the along-polyline length when geometry is present and
// the straight-line Euclidean length otherwise. Recomputed on every call.
func (link *RoadLink) LengthFeet() float64 {
	if len(link.geom) >= 2 {
		return lineLength(link.geom)
	}
	return link.EuclideanLength()
}
