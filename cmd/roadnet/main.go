package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/streetlab/roadnet/internal/extract"
	"github.com/streetlab/roadnet/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	defaults := extract.DefaultConfig()

	minWidth := flag.Float64("min-width", defaults.MinRoadWidth, "minimum accepted road width in pixels")
	maxWidth := flag.Float64("max-width", defaults.MaxRoadWidth, "maximum accepted road width in pixels")
	showVersion := flag.Bool("version", false, "print version information and exit")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "roadnet - extract a road network from an infrastructure photo")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: roadnet [options] <image>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "The extracted network is written to stdout as JSON.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Environment variables:")
		fmt.Fprintln(os.Stderr, "  ROADNET_LOG_LEVEL=debug    Enable debug logging")
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("roadnet %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Logs go to stderr; stdout carries the network JSON.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	img, err := imaging.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Load error: %v", err)
	}

	cfg := extract.DefaultConfig()
	cfg.MinRoadWidth = *minWidth
	cfg.MaxRoadWidth = *maxWidth

	net, err := extract.New(cfg).Extract(img)
	if err != nil {
		log.Fatalf("Extraction error: %v", err)
	}

	if os.Getenv("ROADNET_LOG_LEVEL") == "debug" {
		m := net.Metrics()
		log.Printf("Extracted %d segments, %d intersections, %d lanes (%.2f km total)",
			m.NumSegments, m.NumIntersections, len(net.Lanes), m.TotalLengthKm)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(net); err != nil {
		log.Fatalf("Encode error: %v", err)
	}
}
