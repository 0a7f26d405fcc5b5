package dtanet

import (
	"github.com/paulmach/orb"
)

type NodeID int

// Endpoint is the capability set a link requires from its endpoints.
// Coordinates are planar, in feet, sharing one coordinate system per network.
// Any type exposing position and identity can terminate a link; concrete
// inheritance from Node is not required.
type Endpoint interface {
	GetX() float64
	GetY() float64
	GetID() NodeID
}

// Node is a point in the transportation network. Nodes are owned by the
// containing network; links hold non-owning references to them.
type Node struct {
	geom           orb.Point
	incomingLinks  []LinkID
	outcomingLinks []LinkID
	id             NodeID
	controlType    ControlType
}

func NewNode(id NodeID, x, y float64) *Node {
	return &Node{
		geom:           orb.Point{x, y},
		incomingLinks:  make([]LinkID, 0),
		outcomingLinks: make([]LinkID, 0),
		id:             id,
		controlType:    NOT_SIGNAL,
	}
}

func (node *Node) GetID() NodeID {
	return node.id
}

func (node *Node) GetX() float64 {
	return node.geom.X()
}

func (node *Node) GetY() float64 {
	return node.geom.Y()
}

// GetGeom returns the node position as a planar point
func (node *Node) GetGeom() orb.Point {
	return node.geom
}

// MoveTo relocates the node. Links never cache derived geometry, so
// dependent lengths and angles pick the new position up on the next query.
func (node *Node) MoveTo(x, y float64) {
	node.geom = orb.Point{x, y}
}

func (node *Node) GetControlType() ControlType {
	return node.controlType
}

func (node *Node) SetControlType(controlType ControlType) {
	node.controlType = controlType
}

// IncomingLinks returns identifiers of links ending at this node
func (node *Node) IncomingLinks() []LinkID {
	return node.incomingLinks
}

// OutcomingLinks returns identifiers of links starting at this node
func (node *Node) OutcomingLinks() []LinkID {
	return node.outcomingLinks
}

type ControlType uint16

const (
	NOT_SIGNAL = ControlType(iota + 1)
	IS_SIGNAL
)

func (iotaIdx ControlType) String() string {
	return [...]string{"common", "signal"}[iotaIdx-1]
}
