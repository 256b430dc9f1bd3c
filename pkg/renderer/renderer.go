package renderer

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/user/spacer/pkg/core"
)

// Logger is the minimal logging surface the renderer needs
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

// Printf writes a formatted message to stdout
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// Integrator maps a camera ray to a radiance estimate. It is the strategy
// the renderer drives, decoupling scene and lighting policy from the
// parallel execution engine. Implementations must be safe for concurrent
// use as long as each call gets its own sampler.
type Integrator func(ray core.Ray, sampler core.Sampler) core.Vec3

// Renderer fills an image by sampling camera rays in parallel across
// disjoint row stripes
type Renderer struct {
	numWorkers int
	seed       int64
	logger     Logger
}

// NewRenderer creates a renderer. numWorkers <= 0 selects the number of
// available CPUs. Each stripe draws from its own random stream derived from
// seed and the stripe index, so output is reproducible for a fixed seed and
// worker count.
func NewRenderer(numWorkers int, seed int64, logger Logger) *Renderer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{numWorkers: numWorkers, seed: seed, logger: logger}
}

// NumWorkers returns the configured parallelism
func (r *Renderer) NumWorkers() int {
	return r.numWorkers
}

// Render fills the whole image: for every pixel it averages
// SamplesPerPixel integrator evaluations of camera-sampled rays, then
// gamma-encodes the result into the buffer. One goroutine renders each
// stripe and Render blocks until all of them have finished.
func (r *Renderer) Render(camera *Camera, img *Image, integrator Integrator) error {
	params := camera.Params()
	viewport := camera.RotatedViewport()
	sampleScale := 1.0 / float64(params.SamplesPerPixel)

	var g errgroup.Group
	for i, stripe := range img.SplitN(r.numWorkers) {
		i, stripe := i, stripe
		g.Go(func() error {
			sampler := core.NewSeededSampler(r.seed + int64(i))
			r.logger.Printf("worker %d runs rows %d..%d\n",
				i, stripe.YOffset(), stripe.YOffset()+stripe.Height())

			timer := time.Now()
			r.renderStripe(camera, viewport, stripe, integrator, sampler, sampleScale)
			r.logger.Printf("worker %d finished in %.3fs\n", i, time.Since(timer).Seconds())
			return nil
		})
	}

	return g.Wait()
}

// renderStripe renders every pixel of one stripe. The stripe is exclusively
// owned by the calling goroutine, so no synchronization is needed.
func (r *Renderer) renderStripe(camera *Camera, viewport Viewport, stripe *Stripe, integrator Integrator, sampler core.Sampler, sampleScale float64) {
	params := camera.Params()
	for y := 0; y < stripe.Height(); y++ {
		for x := 0; x < stripe.Width(); x++ {
			var color core.Vec3
			for s := 0; s < params.SamplesPerPixel; s++ {
				ray := camera.SampleRay(viewport, x, stripe.YOffset()+y, sampler)
				color = color.Add(integrator(ray, sampler))
			}
			stripe.PutPixel(x, y, color.Multiply(sampleScale))
		}
	}
}
