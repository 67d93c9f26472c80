package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sagarika1109/Network-Security-Scanner/scanner"
)

const queueKey = "scans:queue"

// TaskStore defines persistence operations for scan tasks.
type TaskStore interface {
	CreateTask(task *ScanTask) error
	GetTask(id string) (*ScanTask, error)
	UpdateTask(task *ScanTask) error
	PushToQueue(taskID string) error
	PopFromQueue() (string, error)
}

// ErrTaskNotFound indicates the requested task doesn't exist in the store.
var ErrTaskNotFound = errors.New("task not found")

// RedisStore implements TaskStore using Redis as backend. Each task lives in
// a hash keyed by its ID; pending work is a list-based queue.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a Redis-backed task store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) taskKey(id string) string {
	return fmt.Sprintf("scan:%s", id)
}

// CreateTask persists a new scan task in Redis.
func (s *RedisStore) CreateTask(task *ScanTask) error {
	data, err := serializeTask(task)
	if err != nil {
		return err
	}
	return s.client.HSet(context.Background(), s.taskKey(task.ID), data).Err()
}

// GetTask retrieves a task by ID.
func (s *RedisStore) GetTask(id string) (*ScanTask, error) {
	res, err := s.client.HGetAll(context.Background(), s.taskKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, ErrTaskNotFound
	}
	return deserializeTask(res)
}

// UpdateTask updates an existing task in Redis.
func (s *RedisStore) UpdateTask(task *ScanTask) error {
	data, err := serializeTask(task)
	if err != nil {
		return err
	}
	return s.client.HSet(context.Background(), s.taskKey(task.ID), data).Err()
}

// PushToQueue enqueues a task ID for workers to process.
func (s *RedisStore) PushToQueue(taskID string) error {
	return s.client.LPush(context.Background(), queueKey, taskID).Err()
}

// PopFromQueue blocks until a task ID is available.
func (s *RedisStore) PopFromQueue() (string, error) {
	res, err := s.client.BRPop(context.Background(), 0, queueKey).Result()
	if err != nil {
		return "", err
	}
	if len(res) != 2 {
		return "", errors.New("unexpected response size from BRPOP")
	}
	return res[1], nil
}

func serializeTask(task *ScanTask) (map[string]interface{}, error) {
	var reportData string
	if task.Report != nil {
		encoded, err := json.Marshal(task.Report)
		if err != nil {
			return nil, err
		}
		reportData = string(encoded)
	}

	completedAt := ""
	if task.CompletedAt != nil {
		completedAt = task.CompletedAt.Format(time.RFC3339Nano)
	}

	return map[string]interface{}{
		"id":              task.ID,
		"status":          task.Status,
		"target":          task.Target,
		"ports":           task.Ports,
		"threads":         strconv.Itoa(task.Threads),
		"timeout_seconds": strconv.FormatFloat(task.TimeoutSeconds, 'f', -1, 64),
		"banner":          strconv.FormatBool(task.Banner),
		"report":          reportData,
		"created_at":      task.CreatedAt.Format(time.RFC3339Nano),
		"completed_at":    completedAt,
		"error":           task.Error,
	}, nil
}

func deserializeTask(data map[string]string) (*ScanTask, error) {
	var report *scanner.Report
	if raw, ok := data["report"]; ok && raw != "" {
		report = &scanner.Report{}
		if err := json.Unmarshal([]byte(raw), report); err != nil {
			return nil, err
		}
	}

	threads := 0
	if raw, ok := data["threads"]; ok && raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		threads = v
	}

	timeoutSeconds := 0.0
	if raw, ok := data["timeout_seconds"]; ok && raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		timeoutSeconds = v
	}

	banner := false
	if raw, ok := data["banner"]; ok && raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		banner = v
	}

	createdAt := time.Time{}
	if raw, ok := data["created_at"]; ok && raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, err
		}
		createdAt = t
	}

	var completedAt *time.Time
	if raw, ok := data["completed_at"]; ok && raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, err
		}
		completedAt = &t
	}

	return &ScanTask{
		ID:             data["id"],
		Status:         data["status"],
		Target:         data["target"],
		Ports:          data["ports"],
		Threads:        threads,
		TimeoutSeconds: timeoutSeconds,
		Banner:         banner,
		Report:         report,
		CreatedAt:      createdAt,
		CompletedAt:    completedAt,
		Error:          data["error"],
	}, nil
}
