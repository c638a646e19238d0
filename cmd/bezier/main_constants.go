package main

// Command-line defaults
const (
	keepJobSamples = -1 // -samples value that keeps the job's own count
)

// Output layout
const (
	poseStride     = 6 // x, y, z, pitch, yaw, roll
	eulerStride    = 3
	jsonIndent     = "  "
	outputFileMode = 0o644
)

// Plot dimensions in inches
const (
	plotWidth  = 8
	plotHeight = 6
)

// Plot styling
const (
	lineWidthPoints    = 1
	controlRadiusPoint = 3
)
