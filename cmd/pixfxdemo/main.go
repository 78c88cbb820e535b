// Command pixfxdemo renders a synthetic scene, runs it through the pixfx
// filters and writes one PNG per filter.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/pixfx"
)

func main() {
	var (
		configPath = flag.String("config", "pixfxdemo.yaml", "optional YAML config")
		width      = flag.Int("width", 0, "image width (overrides config)")
		height     = flag.Int("height", 0, "image height (overrides config)")
		workers    = flag.Int("workers", 0, "worker goroutines, 0 = GOMAXPROCS (overrides config)")
		output     = flag.String("output", "", "output directory (overrides config)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixfx.SetLogger(log)

	cfg, err := LoadOptional(*configPath)
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *output != "" {
		cfg.Output = *output
	}
	res, err := cfg.Resolve(log)
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	if err := run(context.Background(), log, res); err != nil {
		log.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, res *Resolved) error {
	if err := os.MkdirAll(res.Output, 0o755); err != nil {
		return err
	}

	e := pixfx.NewEngine(
		pixfx.WithWorkers(res.Workers),
		pixfx.WithPlaneReuse(2),
		pixfx.WithLogger(log),
	)
	defer e.Close()

	scene := drawScene(res.Width, res.Height)
	pix, w, h := pixfx.FromImage(scene)
	luma, _, _ := pixfx.LumaPlaneFromImage(scene)

	camera := e.YUV420ToPacked4(synthFrame(w, h), w, h)
	if len(camera) == 0 {
		return fmt.Errorf("camera frame rejected")
	}

	var jobs []pixfx.Job
	var names []string
	for _, f := range res.Filters {
		in := pix
		if f == pixfx.FilterLumaGrayscale {
			in = luma
		}
		jobs = append(jobs, pixfx.Job{Filter: f, Pix: in, Width: w, Height: h})
		names = append(names, f.String())
	}
	jobs = append(jobs, pixfx.Job{Filter: pixfx.FilterBloom, Pix: camera, Width: w, Height: h})
	names = append(names, "camera-bloom")

	results, err := e.ApplyBatch(ctx, jobs)
	if err != nil {
		return err
	}

	if err := writePNG(filepath.Join(res.Output, "source.png"), pix, w, h); err != nil {
		return err
	}
	for i, r := range results {
		if r.Err != nil {
			log.Warn("filter rejected", "filter", names[i], "err", r.Err)
			continue
		}
		if err := writePNG(filepath.Join(res.Output, names[i]+".png"), r.Pix, w, h); err != nil {
			return err
		}
	}

	preview, err := pixfx.FromImageScaled(scene, max(w/4, 1), max(h/4, 1))
	if err != nil {
		return err
	}
	pw, ph := max(w/4, 1), max(h/4, 1)
	if err := writePNG(filepath.Join(res.Output, "preview-bloom.png"), e.Bloom(preview, pw, ph), pw, ph); err != nil {
		return err
	}

	log.Info("demo saved", "dir", res.Output, "width", w, "height", h, "files", len(results)+2)
	return nil
}

func writePNG(path string, pix []byte, width, height int) error {
	img, err := pixfx.ToImage(pix, width, height)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// drawScene paints a dim vertical gradient with a few bright discs that
// cross the bloom threshold.
func drawScene(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := color.NRGBA{
			R: uint8(25 + t*60),
			G: uint8(40 + t*40),
			B: uint8(90 + t*50),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	discs := []struct {
		cx, cy, r float64
		c         color.NRGBA
	}{
		{0.25, 0.35, 0.08, color.NRGBA{R: 255, G: 240, B: 200, A: 255}},
		{0.60, 0.50, 0.05, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{0.80, 0.25, 0.10, color.NRGBA{R: 120, G: 200, B: 255, A: 255}},
	}
	size := float64(min(w, h))
	for _, d := range discs {
		cx, cy, r := d.cx*float64(w), d.cy*float64(h), d.r*size
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
				if dx*dx+dy*dy <= r*r {
					img.SetNRGBA(x, y, d.c)
				}
			}
		}
	}
	return img
}

// synthFrame builds a planar 4:2:0 frame with a luma ramp and a chroma sweep.
func synthFrame(w, h int) pixfx.YUV420 {
	cw, ch := (w+1)/2, (h+1)/2
	f := pixfx.YUV420{
		Y:             make([]byte, w*h),
		U:             make([]byte, cw*ch),
		V:             make([]byte, cw*ch),
		YRowStride:    w,
		UVRowStride:   cw,
		UVPixelStride: 1,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Y[y*w+x] = uint8((x + y) * 255 / max(w+h-2, 1))
		}
	}
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			f.U[y*cw+x] = uint8(x * 255 / max(cw-1, 1))
			f.V[y*cw+x] = uint8(y * 255 / max(ch-1, 1))
		}
	}
	return f
}
