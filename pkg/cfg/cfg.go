// Package cfg holds the tunable thresholds of the stroke pipeline.
//
// A Config is read once per process (defaults, optionally overlaid by a TOML
// file) and then passed by value to every stage; nothing in this package is
// mutated at run time.
package cfg

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Default values of the pipeline thresholds.
const (
	// SegmentationThreshold is how close two strokes have to be to form one
	// shape. Reserved for stroke segmentation; nothing consults it yet.
	SegmentationThreshold = 70.0

	// ConvexityThreshold is the minimum area / hull area ratio of a convex shape.
	ConvexityThreshold = 0.5

	// OpenThreshold is the endpoint distance / perimeter ratio above which a
	// stroke counts as open.
	OpenThreshold = 0.1

	// ConnectThreshold is how close a wire end must be to a shape centroid to attach.
	ConnectThreshold = 50.0

	// AngleThreshold is how close, in degrees, a wire segment must be to a
	// right angle to count as a routing corner.
	AngleThreshold = 5.0

	// AngleSnapThreshold is the step wire angles are rounded to.
	AngleSnapThreshold = 45.0

	// Grid is the step output coordinates are rounded to.
	Grid = 0.5

	DotCircularity         = 0.5
	MorphismRectangularity = 0.5

	// CurveSteps is the number of segments a cubic curve is flattened into.
	CurveSteps = 8
)

type Config struct {
	SegmentationThreshold float64 `toml:"segmentation_threshold" validate:"gte=0"`
	ConvexityThreshold    float64 `toml:"convexity_threshold" validate:"gt=0,lte=1"`
	OpenThreshold         float64 `toml:"open_threshold" validate:"gt=0"`

	DotCircularity         float64 `toml:"dot_circularity" validate:"gt=0,lte=1"`
	MorphismRectangularity float64 `toml:"morphism_rectangularity" validate:"gt=0,lte=1"`

	ConnectThreshold   float64 `toml:"connect_threshold" validate:"gt=0"`
	AngleThreshold     float64 `toml:"angle_threshold" validate:"gt=0,lt=45"`
	AngleSnapThreshold float64 `toml:"angle_snap_threshold" validate:"gt=0,lte=180"`
	Grid               float64 `toml:"grid" validate:"gt=0"`

	// WirePresimplify is the Douglas-Peucker tolerance applied to wires
	// before corner detection. Zero disables the pass.
	WirePresimplify float64 `toml:"wire_presimplify" validate:"gte=0"`

	CurveSteps int `toml:"curve_steps" validate:"gte=1,lte=256"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		SegmentationThreshold:  SegmentationThreshold,
		ConvexityThreshold:     ConvexityThreshold,
		OpenThreshold:          OpenThreshold,
		DotCircularity:         DotCircularity,
		MorphismRectangularity: MorphismRectangularity,
		ConnectThreshold:       ConnectThreshold,
		AngleThreshold:         AngleThreshold,
		AngleSnapThreshold:     AngleSnapThreshold,
		Grid:                   Grid,
		CurveSteps:             CurveSteps,
	}
}

var validate = validator.New()

// Validate checks that every threshold is in range.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads a TOML file over the defaults. Keys not named in the file keep
// their default; unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return finish(c, md)
}

// Parse is Load for in-memory TOML.
func Parse(data string) (Config, error) {
	c := Default()
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return finish(c, md)
}

func finish(c Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
