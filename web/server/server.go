package server

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/user/spacer/pkg/renderer"
	"github.com/user/spacer/pkg/scene"
)

// maxPreviewPixels bounds render size so a stray request cannot pin the
// server for minutes
const maxPreviewPixels = 1920 * 1080

// Server exposes the renderer over HTTP for quick previews
type Server struct {
	echo *echo.Echo
	port int
	seed int64
}

// NewServer creates a new preview server
func NewServer(port int, seed int64) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{echo: e, port: port, seed: seed}

	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/render", s.handleRender)

	return s
}

// Start blocks serving HTTP until the listener fails
func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%d", s.port))
}

// handleHealth reports server liveness and the hardware renders run on
func (s *Server) handleHealth(c echo.Context) error {
	physical, _ := cpu.Counts(false)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"logicalCores":  runtime.NumCPU(),
		"physicalCores": physical,
	})
}

// handleScenes lists the scenes the server can render
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, []string{"cover", "three-spheres", "single-sphere"})
}

// renderQuery holds the render request parameters
type renderQuery struct {
	Scene   string `query:"scene"`
	Width   int    `query:"width"`
	Samples int    `query:"samples"`
	Bounces int    `query:"bounces"`
	Normals bool   `query:"normals"`
}

// handleRender renders the requested scene and returns it as PNG
func (s *Server) handleRender(c echo.Context) error {
	q := renderQuery{Scene: "three-spheres", Width: 400, Samples: 25, Bounces: 25}
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	height := q.Width * 9 / 16
	if q.Width < 16 || q.Width*height > maxPreviewPixels || q.Samples < 1 || q.Bounces < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid render parameters")
	}

	var sc *scene.Scene
	switch q.Scene {
	case "cover":
		sc = scene.CoverScene(q.Width, height, q.Samples, s.seed)
	case "three-spheres":
		sc = scene.ThreeSphereScene(q.Width, height, q.Samples)
	case "single-sphere":
		sc = scene.SingleSphereScene(q.Width, height, q.Samples)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown scene %q", q.Scene))
	}
	sc.MaxBounces = q.Bounces

	world := sc.Build()
	integrator := renderer.PathTracer(world, sc.MaxBounces, sc.BottomColor, sc.TopColor)
	if q.Normals {
		integrator = renderer.NormalShader(world, sc.BottomColor, sc.TopColor)
	}

	img := renderer.NewImage(sc.CameraParams.ImageWidth, sc.CameraParams.ImageHeight)
	r := renderer.NewRenderer(0, s.seed, c.Echo().Logger)

	timer := time.Now()
	if err := r.Render(sc.Camera(), img, integrator); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set("X-Render-Seconds", fmt.Sprintf("%.3f", time.Since(timer).Seconds()))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.ToRGBA()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
