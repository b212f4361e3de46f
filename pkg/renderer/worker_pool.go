package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-sky-raytracer/pkg/raster"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool renders tiles of a shared image in parallel.
// Tiles never overlap, so workers write disjoint pixels without locking.
type WorkerPool[P raster.Pixel] struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker[P]
	numWorkers  int
	group       *errgroup.Group
	ctx         context.Context
}

// Worker handles individual tile rendering tasks
type Worker[P raster.Pixel] struct {
	ID          int
	raytracer   *Raytracer[P]
	image       *raster.Image[P]
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a pool of numWorkers workers rendering into img.
// maxTasks bounds the number of tasks that may be submitted before Stop.
func NewWorkerPool[P raster.Pixel](ctx context.Context, raytracer *Raytracer[P], img *raster.Image[P], numWorkers, maxTasks int) *WorkerPool[P] {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	wp := &WorkerPool[P]{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
		group:       group,
		ctx:         groupCtx,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker[P]{
			ID:          i,
			raytracer:   raytracer,
			image:       img,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool[P]) Start() {
	for _, worker := range wp.workers {
		worker := worker
		wp.group.Go(func() error {
			return worker.run(wp.ctx)
		})
	}
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool[P]) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// Stop closes the task queue and waits for every worker to finish.
// It returns the first error reported by a worker.
func (wp *WorkerPool[P]) Stop() error {
	close(wp.taskQueue)
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool[P]) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool[P]) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker[P]) run(ctx context.Context) error {
	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			return err
		}

		stats, err := w.raytracer.RenderBounds(w.image, task.Tile.Bounds)
		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Stats:  stats,
			Error:  err,
		}
		if err != nil {
			return err
		}
	}
	return nil
}
