package city

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *City) error
	Get(ctx context.Context, id uint) (*City, error)
	List(ctx context.Context, offset, limit int) ([]City, int64, error)
	Update(ctx context.Context, c *City) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type CitySQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &CitySQLRepository{db: db}
}

func (r *CitySQLRepository) Create(ctx context.Context, c *City) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CitySQLRepository) Get(ctx context.Context, id uint) (*City, error) {
	var c City
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns one page of cities ordered by name together with the total row count.
func (r *CitySQLRepository) List(ctx context.Context, offset, limit int) ([]City, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&City{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	cities := make([]City, 0, limit)
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&cities).Error
	if err != nil {
		return nil, 0, err
	}

	return cities, total, nil
}

func (r *CitySQLRepository) Update(ctx context.Context, c *City) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes the city; its weather records go with it through the ON DELETE CASCADE foreign key.
func (r *CitySQLRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&City{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CitySQLRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&City{}).Count(&total).Error
	return total, err
}
