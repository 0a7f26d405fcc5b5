package dtanet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestNetwork(t *testing.T) (*Network, *Node, *Node, *Node) {
	t.Helper()
	net := NewNetwork()
	a := NewNode(1, 0, 0)
	b := NewNode(2, 5280, 0)
	c := NewNode(3, 5280, 5280)
	require.NoError(t, net.AddNode(a))
	require.NoError(t, net.AddNode(b))
	require.NoError(t, net.AddNode(c))
	return net, a, b, c
}

func TestNetworkAddNodeDuplicate(t *testing.T) {
	net, _, _, _ := buildTestNetwork(t)
	err := net.AddNode(NewNode(1, 9, 9))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 3, net.NumNodes())
}

func TestNetworkAddLink(t *testing.T) {
	net, a, b, _ := buildTestNetwork(t)
	link, err := NewRoadLinkWithDefaults(100, a, b, "a-b", FACILITY_ARTERIAL)
	require.NoError(t, err)
	require.NoError(t, net.AddLink(link))

	got, err := net.GetLink(100)
	require.NoError(t, err)
	assert.Same(t, link, got)

	// Adjacency is maintained on both endpoints
	assert.Equal(t, []LinkID{100}, a.OutcomingLinks())
	assert.Equal(t, []LinkID{100}, b.IncomingLinks())
	assert.Empty(t, a.IncomingLinks())
	assert.Empty(t, b.OutcomingLinks())
}

func TestNetworkAddLinkUnknownNode(t *testing.T) {
	net, a, _, _ := buildTestNetwork(t)
	orphan := NewNode(99, 1, 1)
	link, err := NewRoadLinkWithDefaults(LINK_ID_UNSET, a, orphan, "", FACILITY_LOCAL)
	require.NoError(t, err)
	err = net.AddLink(link)
	assert.ErrorIs(t, err, ErrUnknownID)
	assert.Equal(t, 0, net.NumLinks())
}

func TestNetworkAddLinkDuplicateID(t *testing.T) {
	net, a, b, c := buildTestNetwork(t)
	first, err := NewRoadLinkWithDefaults(7, a, b, "", FACILITY_LOCAL)
	require.NoError(t, err)
	require.NoError(t, net.AddLink(first))

	second, err := NewRoadLinkWithDefaults(7, b, c, "", FACILITY_LOCAL)
	require.NoError(t, err)
	err = net.AddLink(second)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNetworkAssignsUnsetLinkID(t *testing.T) {
	net, a, b, c := buildTestNetwork(t)
	first, err := NewRoadLinkWithDefaults(LINK_ID_UNSET, a, b, "", FACILITY_LOCAL)
	require.NoError(t, err)
	second, err := NewRoadLinkWithDefaults(LINK_ID_UNSET, b, c, "", FACILITY_LOCAL)
	require.NoError(t, err)

	require.NoError(t, net.AddLink(first))
	require.NoError(t, net.AddLink(second))

	assert.NotEqual(t, LINK_ID_UNSET, first.GetID())
	assert.NotEqual(t, LINK_ID_UNSET, second.GetID())
	assert.NotEqual(t, first.GetID(), second.GetID())
}

func TestNetworkGetLinkByIid(t *testing.T) {
	net, a, b, _ := buildTestNetwork(t)
	link, err := NewRoadLinkWithDefaults(LINK_ID_UNSET, a, b, "", FACILITY_LOCAL)
	require.NoError(t, err)
	require.NoError(t, net.AddLink(link))

	got, err := net.GetLinkByIid(Iid{StartNodeID: 1, EndNodeID: 2})
	require.NoError(t, err)
	assert.Same(t, link, got)

	// The key is ordered: the reverse pair is a different link
	_, err = net.GetLinkByIid(Iid{StartNodeID: 2, EndNodeID: 1})
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestNetworkRemoveLink(t *testing.T) {
	net, a, b, _ := buildTestNetwork(t)
	link, err := NewRoadLinkWithDefaults(5, a, b, "", FACILITY_LOCAL)
	require.NoError(t, err)
	require.NoError(t, net.AddLink(link))

	require.NoError(t, net.RemoveLink(5))
	assert.Equal(t, 0, net.NumLinks())
	assert.Empty(t, a.OutcomingLinks())
	assert.Empty(t, b.IncomingLinks())

	err = net.RemoveLink(5)
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestNetworkRemoveLinkKeepsHandedOutAdjacency(t *testing.T) {
	net, a, b, c := buildTestNetwork(t)
	first, err := NewRoadLinkWithDefaults(1, a, b, "", FACILITY_LOCAL)
	require.NoError(t, err)
	require.NoError(t, net.AddLink(first))
	second, err := NewRoadLinkWithDefaults(2, a, c, "", FACILITY_LOCAL)
	require.NoError(t, err)
	require.NoError(t, net.AddLink(second))

	snapshot := a.OutcomingLinks()
	require.Equal(t, []LinkID{1, 2}, snapshot)

	require.NoError(t, net.RemoveLink(1))

	// A slice handed out before the removal must not be corrupted by it
	assert.Equal(t, []LinkID{1, 2}, snapshot)
	assert.Equal(t, []LinkID{2}, a.OutcomingLinks())
}

func TestNetworkShortLinks(t *testing.T) {
	net, a, b, _ := buildTestNetwork(t)
	// 21.12 feet is exactly MIN_LENGTH_IN_MILES; place one link just below
	tooClose := NewNode(4, 10, 0)
	require.NoError(t, net.AddNode(tooClose))

	longLink, err := NewRoadLinkWithDefaults(LINK_ID_UNSET, a, b, "long", FACILITY_LOCAL)
	require.NoError(t, err)
	require.NoError(t, net.AddLink(longLink))

	shortLink, err := NewRoadLinkWithDefaults(LINK_ID_UNSET, a, tooClose, "short", FACILITY_LOCAL)
	require.NoError(t, err)
	require.NoError(t, net.AddLink(shortLink))

	shortLinks := net.ShortLinks()
	require.Len(t, shortLinks, 1)
	assert.Same(t, shortLink, shortLinks[0])
}

func TestNetworkSelfLoopAccepted(t *testing.T) {
	net, a, _, _ := buildTestNetwork(t)
	loop, err := NewRoadLinkWithDefaults(LINK_ID_UNSET, a, a, "loop", FACILITY_LOCAL)
	require.NoError(t, err)
	require.NoError(t, net.AddLink(loop))
	assert.Contains(t, a.OutcomingLinks(), loop.GetID())
	assert.Contains(t, a.IncomingLinks(), loop.GetID())
}
