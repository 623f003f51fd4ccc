package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/diegoamaro-sudo/levaali/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration

	// Do один запуск задачи.
	Do(context.Context) error

	// Info читаемое имя задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker гоняет набор задач по их интервалам до отмены контекста.
type Worker struct {
	log   workerLogger
	tasks []Task
}

// New прогревает задачи и запускает их периодическое выполнение.
// Прогрев: каждая задача выполняется один раз синхронно, ошибка или
// паника любой из них отменяет запуск целиком. Так проблемы конфигурации
// всплывают на старте процесса, а не через TTL после него.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}

	if len(tasks) == 0 {
		return worker, nil
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("warmup panic: %v\n%s", r, stack)
					log.Error("Task panic during warmup",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			log.Info("Warming up task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(warmupCtx)
		})
	}

	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("warmup tasks: %w", err)
	}

	for _, task := range tasks {
		go worker.loop(ctx, task)
	}

	return worker, nil
}

func (w *Worker) loop(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("Non-positive TTL, task runs only at warmup",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}

	w.log.Info("Scheduling task",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Warn("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

// runOnce изолирует панику одного запуска: упавшая задача не роняет
// процесс и не останавливает свой тикер.
func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
