package api

import (
	"time"

	"github.com/Sagarika1109/Network-Security-Scanner/logging"
	"github.com/Sagarika1109/Network-Security-Scanner/scanner"
)

const (
	defaultThreads        = 100
	defaultTimeoutSeconds = 0.5
	defaultStartPort      = 1
	defaultEndPort        = 1024
)

// StartWorkers launches background goroutines that process scan tasks.
func StartWorkers(store TaskStore, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go workerLoop(store)
	}
}

func workerLoop(store TaskStore) {
	logger := logging.Logger()
	for {
		taskID, err := store.PopFromQueue()
		if err != nil {
			logger.Error("worker failed to pop task", "error", err)
			time.Sleep(time.Second)
			continue
		}

		task, err := store.GetTask(taskID)
		if err != nil {
			if err == ErrTaskNotFound {
				logger.Warn("worker task disappeared", "task_id", taskID)
				continue
			}
			logger.Error("worker failed to load task", "task_id", taskID, "error", err)
			continue
		}

		task.Status = "running"
		task.Error = ""
		task.Report = nil
		task.CompletedAt = nil
		if err := store.UpdateTask(task); err != nil {
			logger.Error("worker failed to mark task running", "task_id", taskID, "error", err)
			continue
		}

		report, err := scanner.Run(task.Target, scanOptions(task))
		if err != nil {
			// Only resolution failures reach this point; every per-port
			// failure is absorbed inside the scan.
			failTask(task, store, err)
			continue
		}

		task.Status = "completed"
		task.Report = report
		now := time.Now().UTC()
		task.CompletedAt = &now

		if err := store.UpdateTask(task); err != nil {
			logger.Error("worker failed to update task", "task_id", task.ID, "error", err)
		}
	}
}

func scanOptions(task *ScanTask) scanner.Options {
	threads := task.Threads
	if threads <= 0 {
		threads = defaultThreads
	}
	timeoutSeconds := task.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultTimeoutSeconds
	}

	return scanner.Options{
		Ports:   scanner.ParsePorts(task.Ports, defaultStartPort, defaultEndPort),
		Workers: threads,
		Timeout: time.Duration(timeoutSeconds * float64(time.Second)),
		Banner:  task.Banner,
	}
}

func failTask(task *ScanTask, store TaskStore, err error) {
	logger := logging.Logger()
	logger.Error("worker task failed", "task_id", task.ID, "error", err)
	task.Status = "failed"
	task.Error = err.Error()
	task.Report = nil
	now := time.Now().UTC()
	task.CompletedAt = &now
	if updateErr := store.UpdateTask(task); updateErr != nil {
		logger.Error("worker failed to persist failed task", "task_id", task.ID, "error", updateErr)
	}
}
