package dtanet

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
)

const milesPerKilometer = 0.621371

// wayData is an OSM way reduced to what link construction needs
type wayData struct {
	name         string
	nodes        osm.WayNodes
	ID           osm.WayID
	facilityType FacilityType
	lanes        int
	maxSpeed     float64 // mph
	oneway       bool
	roundabout   bool
}

type importNode struct {
	node     osm.Node
	useCount int
	isSignal bool
}

// ImportFromOSMFile builds a planar-feet network from a file of PBF-format
// (in OSM terms). Ways are filtered by the configuration, split into links at
// shared intersection nodes, and projected from WGS84 into planar feet.
// Bidirectional ways produce a twin link per direction.
func ImportFromOSMFile(fileName string, cfg *ImportConfiguration) (*Network, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer f.Close()

	scannerWays := osmpbf.New(context.Background(), f, 4)
	defer scannerWays.Close()

	ways := []wayData{}
	nodes := make(map[osm.NodeID]*importNode)
	nodesSeen := make(map[osm.NodeID]struct{})

	for scannerWays.Scan() {
		obj := scannerWays.Object()
		if obj.ObjectID().Type() != "way" {
			continue
		}
		way := obj.(*osm.Way)
		tagMap := way.TagMap()
		tag, ok := tagMap[cfg.EntityName]
		if !ok {
			continue
		}
		if !cfg.CheckTag(tag) {
			continue
		}
		preparedWay := wayData{
			name:         tagMap["name"],
			nodes:        make(osm.WayNodes, len(way.Nodes)),
			ID:           way.ID,
			facilityType: facilityTypeForTag(tag),
			lanes:        parseLanes(tagMap["lanes"]),
			maxSpeed:     parseMaxSpeedMph(tagMap["maxspeed"]),
		}
		copy(preparedWay.nodes, way.Nodes)
		if v, ok := tagMap["oneway"]; ok {
			if v == "yes" || v == "1" {
				preparedWay.oneway = true
			}
		}
		if v, ok := tagMap["junction"]; ok {
			if _, ok := junctionRoundaboutTags[v]; ok {
				preparedWay.roundabout = true
				preparedWay.oneway = true
			}
		}
		ways = append(ways, preparedWay)
		for _, wayNode := range preparedWay.nodes {
			nodesSeen[wayNode.ID] = struct{}{}
		}
	}
	if scannerWays.Err() != nil {
		return nil, errors.Wrap(scannerWays.Err(), "Scanner error on Ways")
	}

	// Seek file to start
	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking")
	}
	scannerNodes := osmpbf.New(context.Background(), f, 4)
	defer scannerNodes.Close()

	for scannerNodes.Scan() {
		obj := scannerNodes.Object()
		if obj.ObjectID().Type() != "node" {
			continue
		}
		node := obj.(*osm.Node)
		if _, ok := nodesSeen[node.ID]; ok {
			delete(nodesSeen, node.ID)
			nodes[node.ID] = &importNode{
				node:     *node,
				isSignal: node.Tags.Find("highway") == "traffic_signals",
			}
		}
	}
	if scannerNodes.Err() != nil {
		return nil, errors.Wrap(scannerNodes.Err(), "Scanner error on Nodes")
	}

	// Way endpoints always break a link; interior nodes only when shared
	// between ways
	for _, way := range ways {
		for i, wayNode := range way.nodes {
			node, ok := nodes[wayNode.ID]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownID, "missing OSM node %d", wayNode.ID)
			}
			if i == 0 || i == len(way.nodes)-1 {
				node.useCount += 2
			} else {
				node.useCount++
			}
		}
	}

	net := NewNetwork()
	for _, way := range ways {
		err = net.appendWaySegments(&way, nodes)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't process way %d", way.ID)
		}
	}
	return net, nil
}

// appendWaySegments splits a way at intersection nodes and registers a road
// link per resulting segment (plus the reverse twin for bidirectional ways)
func (net *Network) appendWaySegments(way *wayData, nodes map[osm.NodeID]*importNode) error {
	var segment []*importNode
	for i, wayNode := range way.nodes {
		node := nodes[wayNode.ID]
		segment = append(segment, node)
		if i == 0 {
			continue
		}
		if node.useCount > 1 || i == len(way.nodes)-1 {
			err := net.appendSegmentLinks(way, segment)
			if err != nil {
				return err
			}
			segment = []*importNode{node}
		}
	}
	return nil
}

func (net *Network) appendSegmentLinks(way *wayData, segment []*importNode) error {
	if len(segment) < 2 {
		return nil
	}
	rawGeom := make(orb.LineString, 0, len(segment))
	for _, node := range segment {
		rawGeom = append(rawGeom, node.node.Point())
	}
	geom := lineToPlanarFeet(rawGeom)
	startNode, err := net.materializeNode(segment[0], geom[0])
	if err != nil {
		return err
	}
	endNode, err := net.materializeNode(segment[len(segment)-1], geom[len(geom)-1])
	if err != nil {
		return err
	}

	attrs := DefaultLinkAttributes(way.facilityType)
	if way.lanes > 0 {
		attrs.NumLanes = way.lanes
	}
	if way.maxSpeed > 0 {
		attrs.FreeflowSpeed = way.maxSpeed
	}
	attrs.RoundAbout = way.roundabout

	forward, err := NewRoadLink(LINK_ID_UNSET, startNode, endNode, way.name, attrs)
	if err != nil {
		return err
	}
	forward.SetGeom(geom)
	err = net.AddLink(forward)
	if err != nil {
		return err
	}
	if way.oneway {
		return nil
	}
	backward, err := NewRoadLink(LINK_ID_UNSET, endNode, startNode, way.name, attrs)
	if err != nil {
		return err
	}
	backward.SetGeom(reverseLine(geom))
	return net.AddLink(backward)
}

// materializeNode registers the network node for an OSM node if it is not
// known yet
func (net *Network) materializeNode(source *importNode, geom orb.Point) (*Node, error) {
	id := NodeID(source.node.ID)
	if node, err := net.GetNode(id); err == nil {
		return node, nil
	}
	node := NewNode(id, geom.X(), geom.Y())
	if source.isSignal {
		node.SetControlType(IS_SIGNAL)
	}
	err := net.AddNode(node)
	if err != nil {
		return nil, err
	}
	return node, nil
}

func parseLanes(value string) int {
	if value == "" {
		return -1
	}
	lanes, err := strconv.Atoi(strings.TrimSpace(strings.Split(value, ";")[0]))
	if err != nil {
		return -1
	}
	return lanes
}

// parseMaxSpeedMph normalizes the OSM maxspeed tag to mph. Bare numbers are
// km/h per OSM convention.
func parseMaxSpeedMph(value string) float64 {
	if value == "" {
		return -1.0
	}
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "mph") {
		speed, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(value, "mph")), 64)
		if err != nil {
			return -1.0
		}
		return speed
	}
	speed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return -1.0
	}
	return speed * milesPerKilometer
}
