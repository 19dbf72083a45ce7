// Command splatdemo renders a synthetic point cloud to a PNG figure.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"github.com/gogpu/splat"
	"github.com/gogpu/splat/render"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		points  = flag.Int("points", 50000, "number of points")
		radius  = flag.Float64("radius", 1.5, "point radius in pixels")
		sorted  = flag.Bool("sort", true, "depth-sort points back to front")
		ss      = flag.Int("supersample", 2, "supersampling factor")
		output  = flag.String("output", "cloud.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		splat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cloud := makeTorusCloud(*points)

	eye := splat.V3(2.4, 1.6, 2.4)
	aspect := float32(*width) / float32(*height)
	mvp := splat.Perspective(math.Pi/4, aspect, 0.1, 10).
		Mul(splat.LookAt(eye, splat.V3(0, 0, 0), splat.V3(0, 1, 0)))
	view := splat.NewView(mvp, float64(*width), float64(*height))

	target := render.NewPixmapTarget(*width, *height)
	target.Clear(color.RGBA{R: 16, G: 18, B: 24, A: 255})

	renderer := render.NewSoftwareRenderer(render.WithSupersample(*ss))

	opts := []splat.Option{splat.WithPointRadius(*radius)}
	if *sorted {
		opts = append(opts, splat.WithDepthSort())
	}

	res, err := renderer.Render(target, cloud, view, splat.R(0, 0, float64(*width), float64(*height)), opts...)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	if err := target.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Figure saved to %s (%dx%d, drawn=%d skipped=%d)\n",
		*output, *width, *height, res.Drawn, res.Skipped)
}

// makeTorusCloud samples translucent points on a torus, colored by angle.
func makeTorusCloud(n int) *splat.Cloud {
	rng := rand.New(rand.NewSource(42))
	positions := make([]float32, 0, n*3)
	colors := make([]uint8, 0, n*4)

	const major, minor = 1.0, 0.35
	for i := 0; i < n; i++ {
		u := rng.Float64() * 2 * math.Pi
		v := rng.Float64() * 2 * math.Pi
		x := (major + minor*math.Cos(v)) * math.Cos(u)
		y := minor * math.Sin(v)
		z := (major + minor*math.Cos(v)) * math.Sin(u)
		positions = append(positions, float32(x), float32(y), float32(z))

		colors = append(colors,
			uint8(128+127*math.Cos(u)),
			uint8(128+127*math.Sin(v)),
			uint8(128+127*math.Sin(u)),
			160)
	}
	return &splat.Cloud{Positions: positions, Colors: colors}
}
