package dtanet

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
)

type LinkID int

const (
	// LINK_ID_UNSET marks a link which has not been assigned an identifier yet.
	// The containing network assigns one on registration.
	LINK_ID_UNSET = LinkID(-1)

	// MIN_LENGTH_IN_MILES is the advisory lower bound on link length.
	// Link itself never enforces it; consumers decide what to do with
	// links falling below the threshold (see Network.ShortLinks)
	MIN_LENGTH_IN_MILES = 0.004

	// FEET_PER_MILE converts native planar coordinates (feet) to miles
	FEET_PER_MILE = 5280.0

	// DEFAULT_LABEL is used when no label is supplied at construction
	DEFAULT_LABEL = ""
)

// Link is a directed edge between two nodes of a transportation network.
// Identity and endpoints are fixed at construction; only the label may
// change afterwards. Derived geometry is recomputed on every call since
// endpoint positions are externally mutable.
type Link struct {
	startNode Endpoint
	endNode   Endpoint
	attrs     *LinkAttributes
	label     string
	id        LinkID
}

// Iid is the ordered (startNodeID, endNodeID) pair: the topological key of a
// link, distinct from its standalone id. Comparable, so usable as a map key.
type Iid struct {
	StartNodeID NodeID
	EndNodeID   NodeID
}

// NewLink validates both endpoints (start first) and returns the constructed
// link. An endpoint that is nil, or a nil pointer behind the Endpoint
// interface, fails with ErrInvalidEndpoint; no partially constructed link is
// ever returned. An empty label falls back to DEFAULT_LABEL.
//
// Self-loops (startNode == endNode) are representationally permitted; callers
// that need to forbid them do so at the network layer.
func NewLink(id LinkID, startNode, endNode Endpoint, label string) (*Link, error) {
	if badEndpoint(startNode) {
		return nil, errors.Wrapf(ErrInvalidEndpoint, "initializing link %d with non-node start endpoint", id)
	}
	if badEndpoint(endNode) {
		return nil, errors.Wrapf(ErrInvalidEndpoint, "initializing link %d with non-node end endpoint", id)
	}
	if label == "" {
		label = DEFAULT_LABEL
	}
	link := Link{
		startNode: startNode,
		endNode:   endNode,
		label:     label,
		id:        id,
	}
	return &link, nil
}

// badEndpoint reports whether the given value can not serve as link endpoint.
// A typed nil pointer behind the interface is as unusable as a bare nil.
func badEndpoint(endpoint Endpoint) bool {
	if endpoint == nil {
		return true
	}
	value := reflect.ValueOf(endpoint)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return value.IsNil()
	}
	return false
}

func (link *Link) GetID() LinkID {
	return link.id
}

func (link *Link) GetLabel() string {
	return link.label
}

// SetLabel replaces the label unconditionally. Unlike the constructor, no
// empty-string fallback is applied here.
func (link *Link) SetLabel(label string) {
	link.label = label
}

func (link *Link) GetStartNode() Endpoint {
	return link.startNode
}

func (link *Link) GetEndNode() Endpoint {
	return link.endNode
}

func (link *Link) GetStartNodeID() NodeID {
	return link.startNode.GetID()
}

func (link *Link) GetEndNodeID() NodeID {
	return link.endNode.GetID()
}

func (link *Link) GetIid() Iid {
	return Iid{StartNodeID: link.GetStartNodeID(), EndNodeID: link.GetEndNodeID()}
}

// GetOtherEnd returns the opposite endpoint to the given one. The match is by
// entity identity, not by node id. Querying with a node which is neither
// endpoint fails with ErrUnknownEndpoint carrying this link's id and the id of
// the unrecognized node.
func (link *Link) GetOtherEnd(node Endpoint) (Endpoint, error) {
	if link.startNode == node {
		return link.endNode, nil
	}
	if link.endNode == node {
		return link.startNode, nil
	}
	if badEndpoint(node) {
		return nil, errors.Wrapf(ErrUnknownEndpoint, "link %d queried with non-node endpoint", link.id)
	}
	return nil, errors.Wrapf(ErrUnknownEndpoint, "link %d does not have end node %d", link.id, node.GetID())
}

// EuclideanLength returns the straight-line distance between the endpoints in
// their native coordinate unit (feet)
func (link *Link) EuclideanLength() float64 {
	dx := link.startNode.GetX() - link.endNode.GetX()
	dy := link.startNode.GetY() - link.endNode.GetY()
	return math.Sqrt(dx*dx + dy*dy)
}

// GetEuclideanLengthInMiles returns the straight-line distance between the
// endpoints in miles, assuming native coordinates are feet
func (link *Link) GetEuclideanLengthInMiles() float64 {
	dx := link.endNode.GetX() - link.startNode.GetX()
	dy := link.endNode.GetY() - link.startNode.GetY()
	return math.Sqrt(dx*dx+dy*dy) / FEET_PER_MILE
}

// GetReferenceAngle treats the link as a straight vector with direction
// (endNode - startNode) and returns its angle against the unit vector <1,0>,
// measured clockwise, in [0, 2pi). A zero-length link yields angle 0.
func (link *Link) GetReferenceAngle() float64 {
	length := link.EuclideanLength()
	if length == 0 {
		return 0
	}
	angle := math.Acos((link.endNode.GetX() - link.startNode.GetX()) / length)
	// angle is in [0, pi] and ignores the vertical direction. Links pointing
	// upwards get reflected to keep the angle increasing clockwise; an angle
	// of exactly 0 must stay 0 rather than become 2pi.
	if angle > 0 && link.endNode.GetY() > link.startNode.GetY() {
		angle = 2.0*math.Pi - angle
	}
	return angle
}

// GetReferenceAngleInDegrees returns the reference angle in degrees, in [0, 360)
func (link *Link) GetReferenceAngleInDegrees() float64 {
	return link.GetReferenceAngle() / math.Pi * 180.0
}

// GetAttributes returns the comparison attribute set, or nil for a bare link
func (link *Link) GetAttributes() *LinkAttributes {
	return link.attrs
}

// SetAttributes populates the comparison attribute set
func (link *Link) SetAttributes(attrs LinkAttributes) {
	link.attrs = &attrs
}

// HasSameAttributes compares the fixed seven-field attribute set of two links
// as an ordered tuple. Identity, label and endpoints take no part in the
// comparison. Either operand lacking the attribute set is a precondition
// violation reported as ErrMissingAttributes, never a silent false.
func (link *Link) HasSameAttributes(other *Link) (bool, error) {
	if link.attrs == nil {
		return false, errors.Wrapf(ErrMissingAttributes, "link %d carries no comparison attributes", link.id)
	}
	if other == nil {
		return false, errors.Wrap(ErrMissingAttributes, "comparison against nil link")
	}
	if other.attrs == nil {
		return false, errors.Wrapf(ErrMissingAttributes, "link %d carries no comparison attributes", other.id)
	}
	return *link.attrs == *other.attrs, nil
}
