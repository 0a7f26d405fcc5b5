package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dtanet/dtanet"
)

var (
	tagStr      = flag.String("tags", "motorway,motorway_link,trunk,trunk_link,primary,primary_link,secondary,secondary_link,tertiary,tertiary_link,residential,living_street,unclassified", "Set of needed highway tags (separated by commas)")
	osmFileName = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf file (it has to be compressed)")
	out         = flag.String("out", "my_graph.csv", "Filename of 'Comma-Separated Values' (CSV) formatted output. E.g.: if file name is 'net.csv' then 2 files will be produced: 'net_nodes.csv' and 'net_links.csv'")
	geojsonOut  = flag.String("geojson", "", "Optional filename for GeoJSON output")
	verbose     = flag.Bool("verbose", false, "Debug-level logging")
)

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := dtanet.ImportConfiguration{
		EntityName: "highway", // Currently we do not support others
		Tags:       strings.Split(*tagStr, ","),
	}

	st := time.Now()
	logger.Info("Importing OSM data", "file", *osmFileName)
	net, err := dtanet.ImportFromOSMFile(*osmFileName, &cfg)
	if err != nil {
		logger.Fatal("Import failed", "error", err)
	}
	logger.Info("Network ready", "nodes", net.NumNodes(), "links", net.NumLinks(), "elapsed", time.Since(st))

	shortLinks := net.ShortLinks()
	if len(shortLinks) > 0 {
		logger.Warn("Links below minimum length threshold", "count", len(shortLinks), "threshold_miles", dtanet.MIN_LENGTH_IN_MILES)
		for _, link := range shortLinks {
			logger.Debug("Short link", "id", link.GetID(), "start_node", link.GetStartNodeID(), "end_node", link.GetEndNodeID(), "length_miles", link.GetEuclideanLengthInMiles())
		}
	}

	err = net.ExportToCSV(*out)
	if err != nil {
		logger.Fatal("CSV export failed", "error", err)
	}
	logger.Info("CSV written", "file", *out)

	if *geojsonOut != "" {
		err = net.ExportToGeoJSON(*geojsonOut)
		if err != nil {
			logger.Fatal("GeoJSON export failed", "error", err)
		}
		logger.Info("GeoJSON written", "file", *geojsonOut)
	}
}
