package render

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mikills/tinkerings/emoplot/plots"
)

const (
	radarRings      = 5
	radarLabelSize  = 12
	radarRadiusFrac = 0.36
	lineStrokeWidth = 2
	lineDotWidth    = 3
)

var radarGridColor = drawing.Color{R: 210, G: 210, B: 210, A: 255}

// PNG renders every frame as a PNG image with go-chart.
type PNG struct {
	sink Sink
	opts Options
}

func NewPNG(sink Sink, o Options) *PNG {
	return &PNG{sink: sink, opts: o}
}

func (p *PNG) Draw(c *plots.Chart) error {
	var (
		buf bytes.Buffer
		err error
	)
	switch c.Type {
	case plots.TypeRadar:
		err = p.radar(c, &buf)
	case plots.TypeLine:
		err = p.line(c, &buf)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedChart, c.Type)
	}
	if err != nil {
		return err
	}
	return p.sink.WriteFrame(buf.Bytes())
}

func (p *PNG) line(c *plots.Chart, w io.Writer) error {
	width, height := p.opts.size()
	graph := chart.Chart{
		Title:  p.opts.Title,
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Style: chart.Hidden()},
		YAxis:  chart.YAxis{Style: chart.Hidden()},
	}

	for i, ds := range c.Data.Datasets {
		xs, ys := continuous(ds.Data)
		if len(xs) == 0 {
			continue
		}
		stroke := colorOr(ds.BorderColor, chart.GetDefaultColor(i))
		style := chart.Style{
			StrokeColor: stroke,
			StrokeWidth: lineStrokeWidth,
			FillColor:   colorOr(ds.BackgroundColor, stroke.WithAlpha(64)),
			DotColor:    stroke,
			DotWidth:    lineDotWidth,
		}
		if hidesMarkers(ds) {
			style.DotWidth = 0
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    ds.Label,
			Style:   style,
			XValues: xs,
			YValues: ys,
		})
	}
	if len(graph.Series) == 0 {
		return ErrEmptySeries
	}
	return graph.Render(chart.PNG, w)
}

// continuous drops missing points, keeping the original index as x.
func continuous(data []*float64) ([]float64, []float64) {
	var xs, ys []float64
	for i, v := range data {
		if v == nil {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, *v)
	}
	return xs, ys
}

func (p *PNG) radar(c *plots.Chart, out io.Writer) error {
	n := len(c.Data.Labels)
	if n == 0 {
		return ErrEmptySeries
	}

	w, h := p.opts.size()
	r, err := chart.PNG(w, h)
	if err != nil {
		return err
	}

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(w, 0)
	r.LineTo(w, h)
	r.LineTo(0, h)
	r.Close()
	r.Fill()

	cx, cy := float64(w)/2, float64(h)/2
	radius := radarRadiusFrac * math.Min(float64(w), float64(h))
	vertex := func(i int, frac float64) (int, int) {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		return int(cx + frac*radius*math.Cos(angle)), int(cy + frac*radius*math.Sin(angle))
	}

	r.SetStrokeColor(radarGridColor)
	r.SetStrokeWidth(1)
	for ring := 1; ring <= radarRings; ring++ {
		frac := float64(ring) / radarRings
		x, y := vertex(0, frac)
		r.MoveTo(x, y)
		for i := 1; i < n; i++ {
			x, y = vertex(i, frac)
			r.LineTo(x, y)
		}
		r.Close()
		r.Stroke()
	}
	for i := 0; i < n; i++ {
		x, y := vertex(i, 1)
		r.MoveTo(int(cx), int(cy))
		r.LineTo(x, y)
		r.Stroke()
	}

	scale := maxValue(c.Data.Datasets)
	for i, ds := range c.Data.Datasets {
		stroke := colorOr(ds.BorderColor, chart.GetDefaultColor(i))
		r.SetStrokeColor(stroke)
		r.SetFillColor(colorOr(ds.BackgroundColor, stroke.WithAlpha(64)))
		r.SetStrokeWidth(lineStrokeWidth)
		for j := 0; j < n; j++ {
			x, y := vertex(j, radarFraction(ds.Data, j, scale))
			if j == 0 {
				r.MoveTo(x, y)
				continue
			}
			r.LineTo(x, y)
		}
		r.Close()
		r.FillStroke()
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)
	r.SetFontSize(radarLabelSize)
	r.SetFontColor(drawing.ColorBlack)
	for i, label := range c.Data.Labels {
		x, y := vertex(i, 1.12)
		box := r.MeasureText(label)
		r.Text(label, x-box.Width()/2, y+box.Height()/2)
	}

	return r.Save(out)
}

func radarFraction(data []*float64, i int, scale float64) float64 {
	if i >= len(data) || data[i] == nil || *data[i] <= 0 {
		return 0
	}
	return math.Min(*data[i]/scale, 1)
}

func maxValue(datasets []*plots.Dataset) float64 {
	top := 0.0
	for _, ds := range datasets {
		for _, v := range ds.Data {
			if v != nil && *v > top {
				top = *v
			}
		}
	}
	if top == 0 {
		return 1
	}
	return top
}

func colorOr(s string, fallback drawing.Color) drawing.Color {
	if s == "" {
		return fallback
	}
	c, err := ParseRGBA(s)
	if err != nil {
		return fallback
	}
	return c
}
