package handlers

import (
	"net/http"
	"time"

	"ulascansenturk/weather-analytics-service/internal/service"
)

type WeatherRecordHandler struct {
	recordService    service.WeatherRecordService
	analyticsService service.AnalyticsService
	timeout          time.Duration
}

func NewWeatherRecordHandler(
	recordService service.WeatherRecordService,
	analyticsService service.AnalyticsService,
	timeout time.Duration,
) *WeatherRecordHandler {
	return &WeatherRecordHandler{
		recordService:    recordService,
		analyticsService: analyticsService,
		timeout:          timeout,
	}
}

// List supports the optional city_id and days filters. Values that do not parse are ignored.
func (h *WeatherRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	filter := service.RecordListFilter{
		CityID: queryUint(r, "city_id"),
		Days:   queryInt(r, "days"),
	}

	page, err := h.recordService.List(ctx, filter, queryPage(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, paginate(r, page, toWeatherRecordResponse))
}

func (h *WeatherRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req weatherRecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	record, err := h.recordService.Create(ctx, service.WeatherRecordFields{
		CityID:      *req.City,
		Temperature: *req.Temperature,
		FeelsLike:   *req.FeelsLike,
		Humidity:    *req.Humidity,
		Pressure:    *req.Pressure,
		WindSpeed:   *req.WindSpeed,
		Description: *req.Description,
		RecordedAt:  req.RecordedAt,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, toWeatherRecordResponse(record))
}

func (h *WeatherRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found.")
		return
	}

	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	record, err := h.recordService.Get(ctx, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toWeatherRecordResponse(record))
}

func (h *WeatherRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req weatherRecordRequest
	h.update(w, r, &req, func() service.WeatherRecordPatch {
		return service.WeatherRecordPatch{
			CityID:      req.City,
			Temperature: req.Temperature,
			FeelsLike:   req.FeelsLike,
			Humidity:    req.Humidity,
			Pressure:    req.Pressure,
			WindSpeed:   req.WindSpeed,
			Description: req.Description,
			RecordedAt:  req.RecordedAt,
		}
	})
}

func (h *WeatherRecordHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	var req weatherRecordPatchRequest
	h.update(w, r, &req, func() service.WeatherRecordPatch {
		return service.WeatherRecordPatch{
			CityID:      req.City,
			Temperature: req.Temperature,
			FeelsLike:   req.FeelsLike,
			Humidity:    req.Humidity,
			Pressure:    req.Pressure,
			WindSpeed:   req.WindSpeed,
			Description: req.Description,
			RecordedAt:  req.RecordedAt,
		}
	})
}

func (h *WeatherRecordHandler) update(w http.ResponseWriter, r *http.Request, req interface{}, patch func() service.WeatherRecordPatch) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found.")
		return
	}

	if !decodeAndValidate(w, r, req) {
		return
	}

	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	record, err := h.recordService.Update(ctx, id, patch())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toWeatherRecordResponse(record))
}

func (h *WeatherRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found.")
		return
	}

	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	if err := h.recordService.Delete(ctx, id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Analytics reports over the trailing days (default window when missing or invalid), for a
// single city when city_id is given.
func (h *WeatherRecordHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	report, err := h.analyticsService.Report(ctx, queryUint(r, "city_id"), queryInt(r, "days"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toAnalyticsResponse(report))
}
