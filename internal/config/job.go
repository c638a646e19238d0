// Package config loads curve evaluation jobs for the bezier command.
//
// A job file names the evaluator to run and its control data. YAML, TOML and
// JSON files are accepted; the format is chosen by extension.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// MaxFileSize is the largest job file Load accepts.
const MaxFileSize = 1 * 1024 * 1024 // 1MB

// ErrInvalidConfig indicates a job file with invalid contents.
var ErrInvalidConfig = errors.New("invalid job configuration")

// Kind names the evaluator a job runs.
type Kind string

// Supported job kinds.
const (
	KindLinear    Kind = "linear"
	KindQuadratic Kind = "quadratic"
	KindCubic     Kind = "cubic"
	KindNDegree   Kind = "ndegree"
	KindSpherical Kind = "spherical"
	KindSpline    Kind = "spline"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindLinear, KindQuadratic, KindCubic, KindNDegree, KindSpherical, KindSpline}

// Job is one evaluation request read from a file.
type Job struct {
	Kind Kind `json:"kind" yaml:"kind" toml:"kind"`

	// Samples is the sample count. It is ignored when Duration is set.
	Samples int `json:"samples" yaml:"samples" toml:"samples"`

	// Duration and Resolution describe the motion time budget as duration
	// strings like "2s" and "4ms". When both are set the sample count is
	// Duration / Resolution.
	Duration   string `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`
	Resolution string `json:"resolution,omitempty" yaml:"resolution,omitempty" toml:"resolution,omitempty"`

	Rational bool `json:"rational,omitempty" yaml:"rational,omitempty" toml:"rational,omitempty"`

	Points [][]float64 `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	Ratios []float64   `json:"ratios,omitempty" yaml:"ratios,omitempty" toml:"ratios,omitempty"`
	Angles [][]float64 `json:"angles,omitempty" yaml:"angles,omitempty" toml:"angles,omitempty"`

	// Poses alternates positions and orientations.
	Poses [][]float64 `json:"poses,omitempty" yaml:"poses,omitempty" toml:"poses,omitempty"`

	// Orientation is "spherical" (default) or "linear".
	Orientation string `json:"orientation,omitempty" yaml:"orientation,omitempty" toml:"orientation,omitempty"`
}

// Load reads and validates a job file.
func Load(path string) (*Job, error) {
	cleanPath := filepath.Clean(path)

	var unmarshal func([]byte, any) error
	switch ext := strings.ToLower(filepath.Ext(cleanPath)); ext {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".toml":
		unmarshal = toml.Unmarshal
	case ".json":
		unmarshal = json.Unmarshal
	default:
		return nil, fmt.Errorf("job file must have .yaml, .yml, .toml or .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat job file: %w", err)
	}
	if fileInfo.Size() > MaxFileSize {
		return nil, fmt.Errorf("job file too large: %d bytes (max %d)", fileInfo.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	job := &Job{}
	if err := unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", filepath.Base(cleanPath), err)
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate checks the job is complete for its kind. Curve geometry (axis
// counts, finiteness, point counts for fixed degrees) is left to the
// evaluators, which report it with more context.
func (j *Job) Validate() error {
	if !j.Kind.valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, j.Kind)
	}

	if j.Samples < 0 {
		return fmt.Errorf("%w: samples must be non-negative, got %d", ErrInvalidConfig, j.Samples)
	}

	if (j.Duration == "") != (j.Resolution == "") {
		return fmt.Errorf("%w: duration and resolution must be set together", ErrInvalidConfig)
	}
	if j.Duration != "" {
		if _, _, err := j.timeBudget(); err != nil {
			return err
		}
	}

	switch j.Kind {
	case KindSpherical:
		if len(j.Angles) == 0 {
			return fmt.Errorf("%w: %s job needs angles", ErrInvalidConfig, j.Kind)
		}
		if err := checkTriples("angles", j.Angles); err != nil {
			return err
		}
	case KindSpline:
		if len(j.Poses) == 0 {
			return fmt.Errorf("%w: %s job needs poses", ErrInvalidConfig, j.Kind)
		}
		if err := checkTriples("poses", j.Poses); err != nil {
			return err
		}
		switch j.Orientation {
		case "", "spherical", "linear":
		default:
			return fmt.Errorf("%w: orientation must be spherical or linear, got %q", ErrInvalidConfig, j.Orientation)
		}
	default:
		if len(j.Points) == 0 {
			return fmt.Errorf("%w: %s job needs points", ErrInvalidConfig, j.Kind)
		}
	}

	if len(j.Ratios) > 0 && j.Kind != KindNDegree {
		return fmt.Errorf("%w: ratios only apply to %s jobs", ErrInvalidConfig, KindNDegree)
	}

	return nil
}

// SampleCount returns the number of samples the job asks for.
func (j *Job) SampleCount() (int, error) {
	if j.Duration == "" {
		return j.Samples, nil
	}
	duration, resolution, err := j.timeBudget()
	if err != nil {
		return 0, err
	}
	return SamplesFor(duration, resolution), nil
}

func (j *Job) timeBudget() (duration, resolution time.Duration, err error) {
	duration, err = time.ParseDuration(j.Duration)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid duration %q: %v", ErrInvalidConfig, j.Duration, err)
	}
	resolution, err = time.ParseDuration(j.Resolution)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid resolution %q: %v", ErrInvalidConfig, j.Resolution, err)
	}
	if duration < 0 || resolution <= 0 {
		return 0, 0, fmt.Errorf("%w: duration must be non-negative and resolution positive", ErrInvalidConfig)
	}
	return duration, resolution, nil
}

// SamplesFor converts a motion time budget into a sample count: the number of
// whole resolution steps that fit in duration. A non-positive resolution or a
// negative duration yields zero.
func SamplesFor(duration, resolution time.Duration) int {
	if resolution <= 0 || duration < 0 {
		return 0
	}
	return int(duration / resolution)
}

func (k Kind) valid() bool {
	return slices.Contains(Kinds, k)
}

func checkTriples(field string, values [][]float64) error {
	for i, v := range values {
		if len(v) != 3 {
			return fmt.Errorf("%w: %s[%d] has %d values, want 3", ErrInvalidConfig, field, i, len(v))
		}
	}
	return nil
}
