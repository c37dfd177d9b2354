package repository

import (
	"context"
	"errors"
	"time"

	repo "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kv_entries テーブルの1行
type KVEntry struct {
	Namespace string    `gorm:"column:namespace;primaryKey;size:64"`
	Key       string    `gorm:"column:entry_key;primaryKey;size:128"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (KVEntry) TableName() string { return "kv_entries" }

type KVGormRepository struct {
	db        *gorm.DB
	namespace string
}

// DI
func NewKVGormRepository(db *gorm.DB, namespace string) *KVGormRepository {
	return &KVGormRepository{db: db, namespace: namespace}
}

// テーブルが無ければ作る
func (r *KVGormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&KVEntry{})
}

func (r *KVGormRepository) Get(ctx context.Context, key string) (string, error) {
	var e KVEntry
	err := r.db.WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", r.namespace, key).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	return e.Value, nil
}

// あれば上書き、無ければ作成
func (r *KVGormRepository) Set(ctx context.Context, key, value string) error {
	e := KVEntry{
		Namespace: r.namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&e).Error
}

func (r *KVGormRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", r.namespace, key).
		Delete(&KVEntry{}).Error
}
