package extract

// Config holds the tunable thresholds for one extraction run.
//
// A Config is passed by value and never modified by the pipeline, so the
// same value can drive any number of concurrent runs. Zero-value Configs
// are not useful; start from DefaultConfig.
type Config struct {
	// MinRoadWidth and MaxRoadWidth bound the accepted road width band in
	// pixels. Line candidates whose estimated width falls outside the band
	// are rejected.
	MinRoadWidth float64
	MaxRoadWidth float64

	// IntersectionDetectionThreshold is a recognized tuning option reserved
	// for junction-detection refinement. The base algorithm does not
	// consult it.
	IntersectionDetectionThreshold float64
}

// DefaultConfig returns the standard extraction thresholds.
func DefaultConfig() Config {
	return Config{
		MinRoadWidth:                   10,
		MaxRoadWidth:                   100,
		IntersectionDetectionThreshold: 0.7,
	}
}
