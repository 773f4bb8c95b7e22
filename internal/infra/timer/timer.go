package timer

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Job периодическая фоновая задача
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context, now time.Time) error
}

// Updater запускает фоновые задачи по таймеру до отмены контекста
type Updater struct {
	jobs []Job
	log  zerolog.Logger
	wg   sync.WaitGroup
}

func NewTimerUpdater(log zerolog.Logger, jobs ...Job) *Updater {
	return &Updater{jobs: jobs, log: log}
}

// Start запускает задачи с положительным интервалом, каждую в своей горутине
func (tu *Updater) Start(ctx context.Context) {
	for _, job := range tu.jobs {
		if job.Interval <= 0 || job.Run == nil {
			tu.log.Debug().Str("job", job.Name).Msg("timer job disabled")
			continue
		}
		tu.wg.Add(1)
		go tu.loop(ctx, job)
	}
}

// Wait ждёт завершения всех задач после отмены контекста
func (tu *Updater) Wait() {
	tu.wg.Wait()
}

func (tu *Updater) loop(ctx context.Context, job Job) {
	defer tu.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			tu.log.Debug().Str("job", job.Name).Msg("timer job stopped")
			return
		case now := <-ticker.C:
			if err := job.Run(ctx, now); err != nil {
				tu.log.Error().Err(err).Str("job", job.Name).Msg("timer job failed")
			}
		}
	}
}
