package weatherrecord

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, record *WeatherRecord) error
	Get(ctx context.Context, id uint) (*WeatherRecord, error)
	List(ctx context.Context, filter Filter, offset, limit int) ([]WeatherRecord, int64, error)
	Find(ctx context.Context, filter Filter) ([]WeatherRecord, error)
	Recent(ctx context.Context, cityID *uint, limit int) ([]WeatherRecord, error)
	Update(ctx context.Context, record *WeatherRecord) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByCity(ctx context.Context, cityIDs []uint) (map[uint]int64, error)
}

type WeatherRecordSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherRecordSQLRepository{db: db}
}

// Create inserts the record without touching the owning city row.
func (r *WeatherRecordSQLRepository) Create(ctx context.Context, record *WeatherRecord) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}

func (r *WeatherRecordSQLRepository) Get(ctx context.Context, id uint) (*WeatherRecord, error) {
	var record WeatherRecord
	if err := r.db.WithContext(ctx).Preload("City").First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *WeatherRecordSQLRepository) List(ctx context.Context, filter Filter, offset, limit int) ([]WeatherRecord, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Model(&WeatherRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := make([]WeatherRecord, 0, limit)
	err := r.filtered(ctx, filter).
		Preload("City").
		Order("recorded_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Find returns every record matching filter, most recent first.
func (r *WeatherRecordSQLRepository) Find(ctx context.Context, filter Filter) ([]WeatherRecord, error) {
	var records []WeatherRecord
	err := r.filtered(ctx, filter).
		Preload("City").
		Order("recorded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Recent returns up to limit of the newest records, optionally for a single city.
func (r *WeatherRecordSQLRepository) Recent(ctx context.Context, cityID *uint, limit int) ([]WeatherRecord, error) {
	records := make([]WeatherRecord, 0, limit)
	if limit <= 0 {
		return records, nil
	}

	err := r.filtered(ctx, Filter{CityID: cityID}).
		Preload("City").
		Order("recorded_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *WeatherRecordSQLRepository) Update(ctx context.Context, record *WeatherRecord) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(record).Error
}

func (r *WeatherRecordSQLRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&WeatherRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WeatherRecordSQLRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&WeatherRecord{}).Count(&total).Error
	return total, err
}

// CountByCity returns the number of records per city id. Cities without records are absent from the map.
func (r *WeatherRecordSQLRepository) CountByCity(ctx context.Context, cityIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(cityIDs))
	if len(cityIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CityID uint
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&WeatherRecord{}).
		Select("city_id, count(*) AS total").
		Where("city_id IN ?", cityIDs).
		Group("city_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CityID] = row.Total
	}
	return counts, nil
}

func (r *WeatherRecordSQLRepository) filtered(ctx context.Context, filter Filter) *gorm.DB {
	query := r.db.WithContext(ctx)
	if filter.CityID != nil {
		query = query.Where("city_id = ?", *filter.CityID)
	}
	if filter.Since != nil {
		query = query.Where("recorded_at >= ?", *filter.Since)
	}
	if filter.Until != nil {
		query = query.Where("recorded_at < ?", *filter.Until)
	}
	return query
}
