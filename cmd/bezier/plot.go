package main

import (
	"fmt"
	"image/color"

	"github.com/tphakala/go-bezier/internal/config"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	curveColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	controlColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	axisColors   = []color.Color{
		color.RGBA{R: 31, G: 119, B: 180, A: 255},
		color.RGBA{R: 44, G: 160, B: 44, A: 255},
		color.RGBA{R: 255, G: 127, B: 14, A: 255},
	}
)

// savePlot draws res to a PNG file. Curves and spline positions are drawn as
// a path in the XY plane with their control points; spherical results are
// drawn as pitch, yaw and roll against the sample index.
func savePlot(path string, job *config.Job, res *result) error {
	var (
		p   *plot.Plot
		err error
	)

	switch job.Kind {
	case config.KindSpherical:
		p, err = seriesPlot(fmt.Sprintf("%s orientation", job.Kind), res.Values, eulerStride,
			[]string{"pitch", "yaw", "roll"})
	case config.KindSpline:
		controls := make([][]float64, 0, len(job.Poses)/2)
		for i := 0; i < len(job.Poses); i += 2 {
			controls = append(controls, job.Poses[i])
		}
		p, err = pathPlot(fmt.Sprintf("%s TCP path", job.Kind), res.Values, res.stride, controls)
	default:
		p, err = pathPlot(fmt.Sprintf("%s curve", job.Kind), res.Values, res.stride, job.Points)
	}
	if err != nil {
		return err
	}

	return p.Save(plotWidth*vg.Inch, plotHeight*vg.Inch, path)
}

// pathPlot draws the first two axes of every sample as a line and the
// control points as a scatter.
func pathPlot(title string, values []float64, stride int, controls [][]float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	pts := make(plotter.XYs, 0, len(values)/stride)
	for i := 0; i+1 < len(values); i += stride {
		pts = append(pts, plotter.XY{X: values[i], Y: values[i+1]})
	}

	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = curveColor
		line.Width = vg.Points(lineWidthPoints)
		p.Add(line)
		p.Legend.Add("samples", line)
	}

	ctrl := make(plotter.XYs, 0, len(controls))
	for _, c := range controls {
		if len(c) >= 2 {
			ctrl = append(ctrl, plotter.XY{X: c[0], Y: c[1]})
		}
	}
	if len(ctrl) > 0 {
		scatter, err := plotter.NewScatter(ctrl)
		if err != nil {
			return nil, err
		}
		scatter.Color = controlColor
		scatter.Radius = vg.Points(controlRadiusPoint)
		p.Add(scatter)
		p.Legend.Add("control points", scatter)
	}

	p.Legend.Top = true
	return p, nil
}

// seriesPlot draws each axis of the samples against the sample index.
func seriesPlot(title string, values []float64, stride int, labels []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Sample"
	p.Y.Label.Text = "Degrees"

	n := len(values) / stride
	for axis := range stride {
		pts := make(plotter.XYs, n)
		for i := range n {
			pts[i] = plotter.XY{X: float64(i), Y: values[i*stride+axis]}
		}
		if n == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = axisColors[axis%len(axisColors)]
		line.Width = vg.Points(lineWidthPoints)
		p.Add(line)
		p.Legend.Add(labels[axis], line)
	}

	p.Legend.Top = true
	return p, nil
}
