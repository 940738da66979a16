package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/theoremus-urban-solutions/tollkit/config"
	"github.com/theoremus-urban-solutions/tollkit/coverage"
	"github.com/theoremus-urban-solutions/tollkit/dataset"
	"github.com/theoremus-urban-solutions/tollkit/datescan"
	"github.com/theoremus-urban-solutions/tollkit/formatter"
	"github.com/theoremus-urban-solutions/tollkit/geodist"
	"github.com/theoremus-urban-solutions/tollkit/internal"
	"github.com/theoremus-urban-solutions/tollkit/polyline"
	"github.com/theoremus-urban-solutions/tollkit/toll"
)

func main() {
	cmd := flag.String("cmd", "unroll", "distance|unroll|threshold|toll|timetoll|coverage|polyline|dates")
	format := flag.String("format", "json", "json|csv")
	locations := flag.String("locations", "", "locations CSV path (overrides config)")
	distances := flag.String("distances", "", "unrolled distances CSV path (overrides config)")
	timestamps := flag.String("timestamps", "", "timestamped CSV path (overrides config)")
	reference := flag.String("reference", "", "reference id for -cmd=threshold")
	line := flag.String("polyline", "", "\"lat,lng;lat,lng;...\" string for -cmd=polyline")
	text := flag.String("text", "", "free text for -cmd=dates")
	flag.Parse()

	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Printf("no config loaded (%v); using built-in defaults", err)
		config.UseDefaults()
	}

	rb := formatter.NewResultBuilder()
	var buf []byte

	switch *cmd {
	case "distance":
		m := geodist.BuildMatrix(loadLocations(*locations))
		if *format == "csv" {
			buf = rb.BuildDistanceCSV(geodist.Unroll(m))
		} else {
			buf = rb.BuildJSON(m)
		}
	case "unroll":
		records := geodist.Unroll(geodist.BuildMatrix(loadLocations(*locations)))
		buf = build(rb, *format, records, rb.BuildDistanceCSV)
	case "threshold":
		if *reference == "" {
			panic("threshold requires -reference")
		}
		within := geodist.FindIDsWithinThreshold(loadDistances(*locations, *distances), *reference)
		buf = build(rb, *format, within, rb.BuildMeanCSV)
	case "toll":
		priced := toll.ApplyVehicleRates(loadDistances(*locations, *distances), config.Config.Tolling.VehicleRates)
		buf = build(rb, *format, priced, rb.BuildTollCSV)
	case "timetoll":
		rows, err := dataset.LoadTimestampedPairs(pathOr(*timestamps, config.Config.Datasets.Timestamps))
		if err != nil {
			panic(err)
		}
		log.Printf("loaded %d timestamped pairs", len(rows))
		priced, err := toll.ApplyTimeBands(rows, config.Config.Tolling.TimeBands)
		if err != nil {
			panic(err)
		}
		buf = build(rb, *format, priced, rb.BuildTollCSV)
	case "coverage":
		rows, err := dataset.LoadCoverageRecords(pathOr(*timestamps, config.Config.Datasets.Timestamps))
		if err != nil {
			panic(err)
		}
		log.Printf("loaded %d coverage records", len(rows))
		results := formatter.CoverageRows(coverage.Check(rows))
		buf = build(rb, *format, results, rb.BuildCoverageCSV)
	case "polyline":
		points, err := polyline.Decode(*line)
		if err != nil {
			panic(err)
		}
		buf = build(rb, *format, points, rb.BuildPolylineCSV)
	case "dates":
		buf = rb.BuildJSON(datescan.ExtractDates(*text))
	default:
		panic("unknown cmd")
	}

	fmt.Println(string(buf))
}

// build picks the CSV renderer for csv output and falls back to JSON.
func build[T any](rb interface{ BuildJSON(any) []byte }, format string, v T, csvFn func(T) []byte) []byte {
	if format == "csv" {
		return csvFn(v)
	}
	return rb.BuildJSON(v)
}

func loadLocations(override string) []geodist.Location {
	path := pathOr(override, config.Config.Datasets.Locations)
	locs, err := dataset.LoadLocations(path)
	if err != nil {
		panic(err)
	}
	log.Printf("loaded %d locations from %s", len(locs), path)
	return locs
}

// loadDistances prefers a pre-unrolled distances CSV and otherwise unrolls
// a fresh matrix from the locations dataset.
func loadDistances(locOverride, distOverride string) []geodist.Record {
	path := pathOr(distOverride, config.Config.Datasets.Distances)
	if path != "" {
		records, err := dataset.LoadDistanceRecords(path)
		if err != nil {
			panic(err)
		}
		log.Printf("loaded %d distance records from %s", len(records), path)
		return records
	}
	return geodist.Unroll(geodist.BuildMatrix(loadLocations(locOverride)))
}

func pathOr(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
