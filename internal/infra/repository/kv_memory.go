package repository

import (
	"context"
	"sync"

	repo "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/repository"
)

// プロセス内だけの保存先（テスト・--storage memory 用）
type KVMemoryRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewKVMemoryRepository() *KVMemoryRepository {
	return &KVMemoryRepository{data: map[string]string{}}
}

func (r *KVMemoryRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (r *KVMemoryRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = value
	return nil
}

func (r *KVMemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}
