package weatherrecord

import (
	"time"

	"ulascansenturk/weather-analytics-service/internal/db/city"
)

type WeatherRecord struct {
	ID          uint      `gorm:"primaryKey"`
	CityID      uint      `gorm:"not null;index:idx_weather_records_city_recorded_at,priority:1"`
	City        city.City `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Temperature float64   `gorm:"not null"`
	FeelsLike   float64   `gorm:"not null"`
	Humidity    int       `gorm:"not null"`
	Pressure    int       `gorm:"not null"`
	WindSpeed   float64   `gorm:"not null"`
	Description string    `gorm:"size:200;not null"`
	RecordedAt  time.Time `gorm:"not null;index:idx_weather_records_recorded_at,sort:desc;index:idx_weather_records_city_recorded_at,priority:2,sort:desc"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (WeatherRecord) TableName() string {
	return "weather_records"
}

// Filter narrows list queries. Nil fields are not applied.
type Filter struct {
	CityID *uint
	Since  *time.Time
	Until  *time.Time
}
