package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// GormCollection stores records of T in the table gorm maps T to.
type GormCollection[T any] struct {
	db   *gorm.DB
	name string
}

func NewGormCollection[T any](db *gorm.DB, name string) *GormCollection[T] {
	return &GormCollection[T]{db: db, name: name}
}

func (c *GormCollection[T]) Name() string {
	return c.name
}

func (c *GormCollection[T]) where(ctx context.Context, filter Filter) *gorm.DB {
	tx := c.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		tx = tx.Where(map[string]interface{}(filter))
	}
	return tx
}

func (c *GormCollection[T]) InsertOne(ctx context.Context, doc *T) error {
	return wrap("InsertOne", c.name, c.db.WithContext(ctx).Create(doc).Error)
}

func (c *GormCollection[T]) InsertMany(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	return wrap("InsertMany", c.name, c.db.WithContext(ctx).Create(&docs).Error)
}

func (c *GormCollection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var doc T
	if err := c.where(ctx, filter).Take(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrap("FindOne", c.name, err)
	}
	return &doc, nil
}

func (c *GormCollection[T]) Find(ctx context.Context, filter Filter, limit int) ([]T, error) {
	docs := make([]T, 0)
	tx := c.where(ctx, filter)
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&docs).Error; err != nil {
		return nil, wrap("Find", c.name, err)
	}
	return docs, nil
}

func (c *GormCollection[T]) UpdateOne(ctx context.Context, filter Filter, set map[string]interface{}) (int64, error) {
	if len(filter) == 0 {
		return 0, wrap("UpdateOne", c.name, ErrEmptyFilter)
	}
	var doc T
	if err := c.where(ctx, filter).Take(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, wrap("UpdateOne", c.name, err)
	}
	if len(set) == 0 {
		return 1, nil
	}
	// Scoped to doc's primary key. RowsAffected is not used since MySQL
	// reports changed rows rather than matched ones.
	if err := c.db.WithContext(ctx).Model(&doc).Updates(set).Error; err != nil {
		return 0, wrap("UpdateOne", c.name, err)
	}
	return 1, nil
}

func (c *GormCollection[T]) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	var doc T
	if err := c.where(ctx, filter).Take(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, wrap("DeleteOne", c.name, err)
	}
	result := c.db.WithContext(ctx).Delete(&doc)
	if result.Error != nil {
		return 0, wrap("DeleteOne", c.name, result.Error)
	}
	return result.RowsAffected, nil
}

func (c *GormCollection[T]) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	tx := c.db.WithContext(ctx)
	if len(filter) == 0 {
		tx = tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	} else {
		tx = tx.Where(map[string]interface{}(filter))
	}
	result := tx.Delete(new(T))
	if result.Error != nil {
		return 0, wrap("DeleteMany", c.name, result.Error)
	}
	return result.RowsAffected, nil
}
