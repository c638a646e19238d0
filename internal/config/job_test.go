package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJob(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Formats(t *testing.T) {
	want := &Job{
		Kind:     KindNDegree,
		Samples:  5,
		Rational: true,
		Points:   [][]float64{{0, 0}, {5, 10}, {10, 0}},
		Ratios:   []float64{1, 4, 1},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "YAML",
			file: "job.yaml",
			content: `kind: ndegree
samples: 5
rational: true
points:
  - [0, 0]
  - [5, 10]
  - [10, 0]
ratios: [1, 4, 1]
`,
		},
		{
			name: "YML",
			file: "job.yml",
			content: `kind: ndegree
samples: 5
rational: true
points: [[0, 0], [5, 10], [10, 0]]
ratios: [1, 4, 1]
`,
		},
		{
			name: "TOML",
			file: "job.toml",
			content: `kind = "ndegree"
samples = 5
rational = true
points = [[0.0, 0.0], [5.0, 10.0], [10.0, 0.0]]
ratios = [1.0, 4.0, 1.0]
`,
		},
		{
			name: "JSON",
			file: "job.json",
			content: `{
  "kind": "ndegree",
  "samples": 5,
  "rational": true,
  "points": [[0, 0], [5, 10], [10, 0]],
  "ratios": [1, 4, 1]
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := Load(writeJob(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, job)
		})
	}
}

func TestLoad_Spline(t *testing.T) {
	job, err := Load(writeJob(t, "spline.yaml", `kind: spline
duration: 2s
resolution: 4ms
orientation: linear
poses:
  - [0, 0, 100]
  - [0, 0, 0]
  - [100, 50, 100]
  - [0, 45, 90]
`))
	require.NoError(t, err)
	assert.Equal(t, KindSpline, job.Kind)
	assert.Len(t, job.Poses, 4)
	assert.Equal(t, "linear", job.Orientation)

	n, err := job.SampleCount()
	require.NoError(t, err)
	assert.Equal(t, 500, n)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Extension", func(t *testing.T) {
		_, err := Load(writeJob(t, "job.ini", "kind=linear"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extension")
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("TooLarge", func(t *testing.T) {
		content := "# " + strings.Repeat("x", MaxFileSize) + "\nkind: linear\n"
		_, err := Load(writeJob(t, "big.yaml", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Load(writeJob(t, "bad.json", `{"kind": `))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := Load(writeJob(t, "bad.yaml", "kind: bicubic\npoints: [[0, 0]]\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestJob_Validate(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}}
	triples := [][]float64{{0, 0, 0}, {1, 1, 1}}

	tests := []struct {
		name    string
		job     Job
		wantErr bool
	}{
		{"Linear", Job{Kind: KindLinear, Points: points}, false},
		{"Cubic", Job{Kind: KindCubic, Points: points, Samples: 10}, false},
		{"UnknownKind", Job{Kind: "hermite", Points: points}, true},
		{"NegativeSamples", Job{Kind: KindLinear, Points: points, Samples: -1}, true},
		{"NoPoints", Job{Kind: KindQuadratic}, true},
		{"RatiosOnFixedDegree", Job{Kind: KindLinear, Points: points, Ratios: []float64{1, 1}}, true},
		{"Spherical", Job{Kind: KindSpherical, Angles: triples}, false},
		{"SphericalNoAngles", Job{Kind: KindSpherical, Points: points}, true},
		{"SphericalShortAngle", Job{Kind: KindSpherical, Angles: [][]float64{{0, 0}}}, true},
		{"Spline", Job{Kind: KindSpline, Poses: triples}, false},
		{"SplineBadOrientation", Job{Kind: KindSpline, Poses: triples, Orientation: "euler"}, true},
		{"DurationWithoutResolution", Job{Kind: KindLinear, Points: points, Duration: "1s"}, true},
		{"BadDuration", Job{Kind: KindLinear, Points: points, Duration: "soon", Resolution: "1ms"}, true},
		{"ZeroResolution", Job{Kind: KindLinear, Points: points, Duration: "1s", Resolution: "0s"}, true},
		{"TimeBudget", Job{Kind: KindLinear, Points: points, Duration: "1s", Resolution: "10ms"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestJob_SampleCount(t *testing.T) {
	job := Job{Kind: KindLinear, Samples: 42}
	n, err := job.SampleCount()
	require.NoError(t, err)
	assert.Equal(t, 42, n, "explicit samples without a time budget")

	job.Duration, job.Resolution = "1s", "10ms"
	n, err = job.SampleCount()
	require.NoError(t, err)
	assert.Equal(t, 100, n, "time budget overrides samples")
}

func TestSamplesFor(t *testing.T) {
	tests := []struct {
		duration, resolution time.Duration
		want                 int
	}{
		{2 * time.Second, 4 * time.Millisecond, 500},
		{time.Second, 3 * time.Millisecond, 333},
		{0, time.Millisecond, 0},
		{time.Second, 0, 0},
		{-time.Second, time.Millisecond, 0},
		{time.Millisecond, time.Second, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SamplesFor(tt.duration, tt.resolution),
			"SamplesFor(%v, %v)", tt.duration, tt.resolution)
	}
}
