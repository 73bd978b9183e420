package renderer

import (
	"context"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RowTask asks a worker to render one image row into Pixels
type RowTask struct {
	Row    int
	Pixels []core.Vec3 // Slice of the shared image owned by this row
}

// RowResult reports a finished row, or why it was not rendered
type RowResult struct {
	Row   int
	Error error
}

// WorkerPool manages parallel row rendering.
// Rows write to disjoint slices of the image, so workers need no locking.
type WorkerPool struct {
	ctx         context.Context
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   <-chan RowTask
	resultQueue chan<- RowResult
}

// NewWorkerPool creates a pool of numWorkers workers with room for maxTasks queued rows
func NewWorkerPool(ctx context.Context, raytracer *Raytracer, maxTasks, numWorkers int) *WorkerPool {
	wp := &WorkerPool{
		ctx:         ctx,
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. The result channel closes once every worker has exited.
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(wp.ctx, &wp.wg)
	}

	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()
}

// SubmitTask queues a row for rendering
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// Close signals that no more tasks will be submitted
func (wp *WorkerPool) Close() {
	close(wp.taskQueue)
}

// Results returns the channel of finished rows
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// run is the main worker loop. After cancellation the remaining tasks are drained
// and reported as failed without rendering.
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- RowResult{Row: task.Row, Error: err}
			continue
		}

		w.raytracer.RenderRow(task.Row, task.Pixels)
		w.resultQueue <- RowResult{Row: task.Row}
	}
}
