// Package analytics builds the weather report served by the analytics endpoint: window-wide
// statistics, a fixed 24-hour bucketed trend series and an optional per-city summary.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
)

const day = 24 * time.Hour

// Window is the half-open interval [Start, End) covering Days fixed 24-hour buckets.
type Window struct {
	Start time.Time
	End   time.Time
	Days  int
}

// NewWindow returns the trailing window of days ending at now. Bucket arithmetic is plain
// 24-hour addition, so DST transitions are not special-cased.
func NewWindow(now time.Time, days int) Window {
	now = now.UTC()
	return Window{
		Start: now.Add(-time.Duration(days) * day),
		End:   now,
		Days:  days,
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

type Statistics struct {
	AverageTemperature *float64
	MaxTemperature     *float64
	MinTemperature     *float64
	AverageHumidity    *float64
	AveragePressure    *float64
	AverageWindSpeed   *float64
	TotalRecords       int
}

type DailyTrend struct {
	Date               string
	AverageTemperature *float64
	AverageHumidity    *float64
}

type CitySummary struct {
	CityID             uint
	CityName           string
	Country            string
	AverageTemperature float64
	RecordCount        int
}

type Report struct {
	Period      string
	Statistics  Statistics
	DailyTrends []DailyTrend
	// CitySummary is nil when the report was filtered to one city and non-nil (possibly empty) otherwise.
	CitySummary []CitySummary
}

type mean struct {
	sum   float64
	count int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.count++
}

func (m mean) value() *float64 {
	if m.count == 0 {
		return nil
	}
	return round2(m.sum / float64(m.count))
}

type cityAccumulator struct {
	summary CitySummary
	temp    mean
}

// Build computes the report in a single pass. Records outside the window are ignored; records
// are expected to carry their City when perCity is set.
func Build(window Window, records []weatherrecord.WeatherRecord, perCity bool) Report {
	var (
		temperature, humidity, pressure, wind mean
		maxTemp, minTemp                      float64
	)

	days := window.Days
	if days < 0 {
		days = 0
	}
	bucketTemp := make([]mean, days)
	bucketHumidity := make([]mean, days)
	cities := make(map[uint]*cityAccumulator)

	for _, r := range records {
		if !window.Contains(r.RecordedAt) {
			continue
		}

		if temperature.count == 0 || r.Temperature > maxTemp {
			maxTemp = r.Temperature
		}
		if temperature.count == 0 || r.Temperature < minTemp {
			minTemp = r.Temperature
		}
		temperature.add(r.Temperature)
		humidity.add(float64(r.Humidity))
		pressure.add(float64(r.Pressure))
		wind.add(r.WindSpeed)

		if idx := int(r.RecordedAt.Sub(window.Start) / day); idx >= 0 && idx < days {
			bucketTemp[idx].add(r.Temperature)
			bucketHumidity[idx].add(float64(r.Humidity))
		}

		if perCity {
			acc, ok := cities[r.CityID]
			if !ok {
				acc = &cityAccumulator{summary: CitySummary{
					CityID:   r.CityID,
					CityName: r.City.Name,
					Country:  r.City.Country,
				}}
				cities[r.CityID] = acc
			}
			acc.temp.add(r.Temperature)
		}
	}

	stats := Statistics{
		AverageTemperature: temperature.value(),
		AverageHumidity:    humidity.value(),
		AveragePressure:    pressure.value(),
		AverageWindSpeed:   wind.value(),
		TotalRecords:       temperature.count,
	}
	if temperature.count > 0 {
		stats.MaxTemperature = round2(maxTemp)
		stats.MinTemperature = round2(minTemp)
	}

	trends := make([]DailyTrend, days)
	for i := range trends {
		trends[i] = DailyTrend{
			Date:               window.Start.Add(time.Duration(i) * day).Format(time.DateOnly),
			AverageTemperature: bucketTemp[i].value(),
			AverageHumidity:    bucketHumidity[i].value(),
		}
	}

	report := Report{
		Period:      fmt.Sprintf("Last %d days", window.Days),
		Statistics:  stats,
		DailyTrends: trends,
	}

	if perCity {
		report.CitySummary = summarize(cities)
	}

	return report
}

// summarize orders entries by city name; only cities that contributed a record are present,
// so every average is defined.
func summarize(cities map[uint]*cityAccumulator) []CitySummary {
	out := make([]CitySummary, 0, len(cities))
	for _, acc := range cities {
		s := acc.summary
		s.AverageTemperature = *acc.temp.value()
		s.RecordCount = acc.temp.count
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CityName != out[j].CityName {
			return out[i].CityName < out[j].CityName
		}
		return out[i].CityID < out[j].CityID
	})

	return out
}

func round2(v float64) *float64 {
	r := math.Round(v*100) / 100
	return &r
}
