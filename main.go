package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/user/spacer/pkg/renderer"
	"github.com/user/spacer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "cover", "Scene type: 'cover', 'three-spheres' or 'single-sphere'")
	width := flag.Int("width", 1200, "Image width in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	bounces := flag.Int("bounces", 50, "Maximum ray bounces")
	workers := flag.Int("workers", 0, "Number of render workers (0 = number of CPUs)")
	seed := flag.Int64("seed", 8767162531530871546, "Master random seed")
	output := flag.String("output", "output/image.ppm", "Output file (.ppm or .png)")
	normals := flag.Bool("normals", false, "Shade by surface normal instead of path tracing")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Spacer path tracer")
		fmt.Println("Usage: spacer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	logCPUInfo(numWorkers)

	sc, err := createScene(*sceneType, *width, *samples, *seed)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	sc.MaxBounces = *bounces

	world := sc.Build()
	camera := sc.Camera()
	img := renderer.NewImage(sc.CameraParams.ImageWidth, sc.CameraParams.ImageHeight)

	integrator := renderer.PathTracer(world, sc.MaxBounces, sc.BottomColor, sc.TopColor)
	if *normals {
		integrator = renderer.NormalShader(world, sc.BottomColor, sc.TopColor)
	}

	fmt.Printf("Rendering %s at %dx%d, %d spp, %d bounces, seed %d\n",
		*sceneType, img.Width(), img.Height(), *samples, *bounces, *seed)

	r := renderer.NewRenderer(numWorkers, *seed, renderer.NewDefaultLogger())
	timer := time.Now()
	if err := r.Render(camera, img, integrator); err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %.3fs\n", time.Since(timer).Seconds())

	if err := saveImage(img, *output); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Image saved to %s\n", *output)
}

// createScene builds the named scene at a 16:9 resolution derived from width
func createScene(sceneType string, width, samples int, seed int64) (*scene.Scene, error) {
	height := width * 9 / 16
	switch sceneType {
	case "cover":
		return scene.CoverScene(width, height, samples, seed), nil
	case "three-spheres":
		return scene.ThreeSphereScene(width, height, samples), nil
	case "single-sphere":
		return scene.SingleSphereScene(width, height, samples), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// logCPUInfo reports the hardware the render will run on. CPU model lookup
// can fail on exotic platforms; the render does not depend on it.
func logCPUInfo(numWorkers int) {
	physical, err := cpu.Counts(false)
	if err != nil {
		physical = 0
	}
	model := "unknown CPU"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
	}
	fmt.Printf("Using %d workers on %s (%d physical / %d logical cores)\n",
		numWorkers, model, physical, runtime.NumCPU())
}

func saveImage(img *renderer.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if strings.HasSuffix(path, ".png") {
		return img.SavePNG(path)
	}
	return img.SaveAsPPM(path)
}
