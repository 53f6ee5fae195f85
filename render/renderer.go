package render

import (
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/achilleasa/vega/log"
	"github.com/achilleasa/vega/types"
	"github.com/achilleasa/vega/world"
)

// Options control how a frame render is scheduled.
type Options struct {
	// Number of parallel workers. Zero means one per CPU.
	Workers int
}

// Per-worker render statistics.
type WorkerStats struct {
	Worker     int
	Rows       int
	RenderTime time.Duration
}

// FrameStats aggregates the statistics of a frame render.
type FrameStats struct {
	Workers    []WorkerStats
	RenderTime time.Duration
}

// Frame renders the scene into an RGBA image. The frame is split into
// contiguous row blocks, one per worker; workers share the immutable scene
// and write disjoint pixels, so no locking is needed and the output is
// deterministic for fixed inputs regardless of worker count.
func Frame(settings *Settings, scene *world.Scene, camera *Camera, engine Engine, opts Options) (*image.RGBA, FrameStats) {
	logger := log.New("render")

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	resolution := camera.Resolution()
	height, width := resolution[0], resolution[1]
	if workers > height {
		workers = height
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := FrameStats{Workers: make([]WorkerStats, workers)}

	logger.Infof("rendering %dx%d frame with %q engine on %d workers", width, height, engine, workers)
	start := time.Now()

	// Split rows into near-equal contiguous blocks.
	rowsPerWorker := height / workers
	extraRows := height % workers

	var wg sync.WaitGroup
	firstRow := 0
	for worker := 0; worker < workers; worker++ {
		rows := rowsPerWorker
		if worker < extraRows {
			rows++
		}

		wg.Add(1)
		go func(worker, firstRow, rows int) {
			defer wg.Done()
			blockStart := time.Now()
			renderRows(settings, scene, camera, engine, img, firstRow, rows)
			stats.Workers[worker] = WorkerStats{
				Worker:     worker,
				Rows:       rows,
				RenderTime: time.Since(blockStart),
			}
		}(worker, firstRow, rows)

		firstRow += rows
	}
	wg.Wait()

	stats.RenderTime = time.Since(start)
	logger.Infof("rendered frame in %s", stats.RenderTime)

	return img, stats
}

func renderRows(settings *Settings, scene *world.Scene, camera *Camera, engine Engine, img *image.RGBA, firstRow, rows int) {
	width := camera.Resolution()[1]

	for row := firstRow; row < firstRow+rows; row++ {
		for col := 0; col < width; col++ {
			colour := Pixel(settings, scene, camera, engine, [2]int{row, col})
			img.SetRGBA(col, row, colour.RGBA8())
		}
	}
}

// Pixel renders a single pixel by averaging the engine output over the
// camera's supersample grid.
func Pixel(settings *Settings, scene *world.Scene, camera *Camera, engine Engine, pixel [2]int) types.LinRGBA {
	samples := camera.SuperSamplesPerAxis()
	sampleWeight := 1.0 / float64(samples*samples)

	var colour types.LinRGBA
	for subRow := 0; subRow < samples; subRow++ {
		for subCol := 0; subCol < samples; subCol++ {
			ray := camera.GenerateRay(pixel, [2]int{subRow, subCol})
			colour = colour.Add(engine.Trace(settings, scene, ray).Scale(sampleWeight))
		}
	}
	return colour
}
