package dtanet

import (
	"github.com/pkg/errors"
)

// Network owns nodes and links and enforces identifier uniqueness, the part
// of the link contract the link entity itself leaves to its container. It
// also maintains per-node adjacency. Not safe for concurrent use; callers
// synchronize if the network is shared.
type Network struct {
	links      map[LinkID]*RoadLink
	nodes      map[NodeID]*Node
	nextLinkID LinkID
}

func NewNetwork() *Network {
	return &Network{
		links:      make(map[LinkID]*RoadLink),
		nodes:      make(map[NodeID]*Node),
		nextLinkID: 1,
	}
}

func (net *Network) NumNodes() int {
	return len(net.nodes)
}

func (net *Network) NumLinks() int {
	return len(net.links)
}

// AddNode registers a node. Fails with ErrDuplicateID when the id is taken.
func (net *Network) AddNode(node *Node) error {
	if _, ok := net.nodes[node.GetID()]; ok {
		return errors.Wrapf(ErrDuplicateID, "node %d already registered", node.GetID())
	}
	net.nodes[node.GetID()] = node
	return nil
}

// AddLink registers a link. Both endpoints must already be registered nodes
// of this network. A link carrying LINK_ID_UNSET gets the next free id
// assigned; an explicit id must be unique. Node adjacency is updated.
func (net *Network) AddLink(link *RoadLink) error {
	startNode, ok := net.nodes[link.GetStartNodeID()]
	if !ok {
		return errors.Wrapf(ErrUnknownID, "link start node %d not registered", link.GetStartNodeID())
	}
	endNode, ok := net.nodes[link.GetEndNodeID()]
	if !ok {
		return errors.Wrapf(ErrUnknownID, "link end node %d not registered", link.GetEndNodeID())
	}
	if link.GetID() == LINK_ID_UNSET {
		link.id = net.takeNextLinkID()
	} else if _, ok := net.links[link.GetID()]; ok {
		return errors.Wrapf(ErrDuplicateID, "link %d already registered", link.GetID())
	}
	net.links[link.GetID()] = link
	startNode.outcomingLinks = append(startNode.outcomingLinks, link.GetID())
	endNode.incomingLinks = append(endNode.incomingLinks, link.GetID())
	if link.GetID() >= net.nextLinkID {
		net.nextLinkID = link.GetID() + 1
	}
	return nil
}

func (net *Network) takeNextLinkID() LinkID {
	for {
		if _, ok := net.links[net.nextLinkID]; !ok {
			break
		}
		net.nextLinkID++
	}
	id := net.nextLinkID
	net.nextLinkID++
	return id
}

func (net *Network) GetNode(id NodeID) (*Node, error) {
	node, ok := net.nodes[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownID, "no node %d", id)
	}
	return node, nil
}

func (net *Network) GetLink(id LinkID) (*RoadLink, error) {
	link, ok := net.links[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownID, "no link %d", id)
	}
	return link, nil
}

// GetLinkByIid finds a link by its topological key. With parallel links
// sharing both endpoints, which one is returned is unspecified.
func (net *Network) GetLinkByIid(iid Iid) (*RoadLink, error) {
	for _, link := range net.links {
		if link.GetIid() == iid {
			return link, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownID, "no link %d -> %d", iid.StartNodeID, iid.EndNodeID)
}

// RemoveLink deregisters a link and detaches it from endpoint adjacency
func (net *Network) RemoveLink(id LinkID) error {
	link, ok := net.links[id]
	if !ok {
		return errors.Wrapf(ErrUnknownID, "no link %d", id)
	}
	delete(net.links, id)
	if startNode, ok := net.nodes[link.GetStartNodeID()]; ok {
		startNode.outcomingLinks = removeLinkID(startNode.outcomingLinks, id)
	}
	if endNode, ok := net.nodes[link.GetEndNodeID()]; ok {
		endNode.incomingLinks = removeLinkID(endNode.incomingLinks, id)
	}
	return nil
}

// removeLinkID returns a fresh slice without the given id, leaving the input
// backing array untouched so previously handed-out adjacency slices stay valid
func removeLinkID(ids []LinkID, id LinkID) []LinkID {
	for i := range ids {
		if ids[i] == id {
			out := make([]LinkID, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...)
		}
	}
	return ids
}

// ShortLinks returns links whose straight-line length falls below
// MIN_LENGTH_IN_MILES. The threshold is advisory; the network reports such
// links and leaves the decision to the caller.
func (net *Network) ShortLinks() []*RoadLink {
	shortLinks := []*RoadLink{}
	for _, link := range net.links {
		if link.GetEuclideanLengthInMiles() < MIN_LENGTH_IN_MILES {
			shortLinks = append(shortLinks, link)
		}
	}
	return shortLinks
}
