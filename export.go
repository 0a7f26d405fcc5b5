package dtanet

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// ExportToCSV writes the network into two ';'-separated files: one for nodes
// and one for links. E.g. for fname 'net.csv' the files are 'net_nodes.csv'
// and 'net_links.csv'. Geometry columns carry WKT.
func (net *Network) ExportToCSV(fname string) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameNodes := fmt.Sprintf(fnameParts[0] + "_nodes.csv")
	fnameLinks := fmt.Sprintf(fnameParts[0] + "_links.csv")

	err := net.exportNodesToCSV(fnameNodes)
	if err != nil {
		return errors.Wrap(err, "Can't export nodes")
	}

	err = net.exportLinksToCSV(fnameLinks)
	if err != nil {
		return errors.Wrap(err, "Can't export links")
	}

	return nil
}

func (net *Network) exportLinksToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "start_node", "end_node", "label", "facility_type", "free_speed", "effective_length_factor", "response_time_factor", "lanes", "roundabout", "level", "capacity", "length_feet", "length_miles", "reference_angle_degrees", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, link := range net.links {
		attrs := link.GetAttributes()
		err = writer.Write([]string{
			fmt.Sprintf("%d", link.GetID()),
			fmt.Sprintf("%d", link.GetStartNodeID()),
			fmt.Sprintf("%d", link.GetEndNodeID()),
			link.GetLabel(),
			fmt.Sprintf("%s", attrs.FacilityType),
			fmt.Sprintf("%f", attrs.FreeflowSpeed),
			fmt.Sprintf("%f", attrs.EffectiveLengthFactor),
			fmt.Sprintf("%f", attrs.ResponseTimeFactor),
			fmt.Sprintf("%d", attrs.NumLanes),
			fmt.Sprintf("%t", attrs.RoundAbout),
			fmt.Sprintf("%d", attrs.Level),
			fmt.Sprintf("%d", link.GetCapacity()),
			fmt.Sprintf("%f", link.LengthFeet()),
			fmt.Sprintf("%f", link.GetEuclideanLengthInMiles()),
			fmt.Sprintf("%f", link.GetReferenceAngleInDegrees()),
			wkt.MarshalString(link.GetGeom()),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write link")
		}
	}
	return nil
}

func (net *Network) exportNodesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "control_type", "x", "y", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, node := range net.nodes {
		err = writer.Write([]string{
			fmt.Sprintf("%d", node.GetID()),
			fmt.Sprintf("%s", node.GetControlType()),
			fmt.Sprintf("%f", node.GetX()),
			fmt.Sprintf("%f", node.GetY()),
			wkt.MarshalString(node.GetGeom()),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write node")
		}
	}
	return nil
}

// ToGeoJSON renders the network as a feature collection: links as LineString
// features, nodes as Point features, in the native planar-feet coordinates
func (net *Network) ToGeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, node := range net.nodes {
		feature := geojson.NewPointFeature([]float64{node.GetX(), node.GetY()})
		feature.SetProperty("id", int(node.GetID()))
		feature.SetProperty("control_type", node.GetControlType().String())
		fc.AddFeature(feature)
	}
	for _, link := range net.links {
		geom := link.GetGeom()
		pts2d := make([][]float64, len(geom))
		for i := range geom {
			pts2d[i] = []float64{geom[i].X(), geom[i].Y()}
		}
		feature := geojson.NewLineStringFeature(pts2d)
		attrs := link.GetAttributes()
		feature.SetProperty("id", int(link.GetID()))
		feature.SetProperty("start_node", int(link.GetStartNodeID()))
		feature.SetProperty("end_node", int(link.GetEndNodeID()))
		feature.SetProperty("label", link.GetLabel())
		feature.SetProperty("facility_type", attrs.FacilityType.String())
		feature.SetProperty("free_speed", attrs.FreeflowSpeed)
		feature.SetProperty("lanes", attrs.NumLanes)
		feature.SetProperty("length_miles", link.GetEuclideanLengthInMiles())
		fc.AddFeature(feature)
	}
	return fc
}

// ExportToGeoJSON writes the network as a GeoJSON feature collection file
func (net *Network) ExportToGeoJSON(fname string) error {
	b, err := net.ToGeoJSON().MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal feature collection")
	}
	err = os.WriteFile(fname, b, 0644)
	if err != nil {
		return errors.Wrap(err, "Can't write file")
	}
	return nil
}
