package objstore

import (
	"context"
	"sync"
	"time"

	"github.com/imgfit/imgfit/internal/errs"
)

// Memory is an in-memory Store for tests and local development.
// It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	objects map[string][]byte
	infos   map[string]*ObjectInfo
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		objects: make(map[string][]byte),
		infos:   make(map[string]*ObjectInfo),
	}
}

func memKey(bucket, key string) string {
	return bucket + "/" + key
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) Exists(_ context.Context, bucket, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[memKey(bucket, key)]
	return ok, nil
}

func (m *Memory) Fetch(_ context.Context, bucket, key string) ([]byte, *ObjectInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.objects[memKey(bucket, key)]
	if !ok {
		return nil, nil, errs.Newf(errs.ErrKindNotFound, "object %s/%s does not exist", bucket, key)
	}

	out := make([]byte, len(data))
	copy(out, data)
	info := *m.infos[memKey(bucket, key)]
	return out, &info, nil
}

func (m *Memory) Put(_ context.Context, bucket, key string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)

	m.objects[memKey(bucket, key)] = stored
	m.infos[memKey(bucket, key)] = &ObjectInfo{
		Key:          key,
		Size:         int64(len(data)),
		ContentType:  contentType,
		LastModified: time.Now(),
	}
	return nil
}
