package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"ulascansenturk/weather-analytics-service/internal/service"
)

const fetchWeatherSuccessMessage = "Weather data fetched and saved successfully"

type CityHandler struct {
	cityService service.CityService
	timeout     time.Duration
}

func NewCityHandler(cityService service.CityService, timeout time.Duration) *CityHandler {
	return &CityHandler{
		cityService: cityService,
		timeout:     timeout,
	}
}

func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	page, err := h.cityService.List(ctx, queryPage(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, paginate(r, page, func(c service.CityWithCount) CityResponse {
		return toCityResponse(c.City, c.WeatherRecordsCount)
	}))
}

func (h *CityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req cityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	created, err := h.cityService.Create(ctx, service.CityFields{
		Name:      *req.Name,
		Country:   *req.Country,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, toCityResponse(created.City, created.WeatherRecordsCount))
}

func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found.")
		return
	}

	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	detail, err := h.cityService.Get(ctx, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toCityDetailResponse(detail))
}

// Update replaces every writable field (PUT).
func (h *CityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req cityRequest
	h.update(w, r, &req, func() service.CityPatch {
		return service.CityPatch{Name: req.Name, Country: req.Country, Latitude: req.Latitude, Longitude: req.Longitude}
	})
}

// PartialUpdate changes only the fields present in the body (PATCH).
func (h *CityHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	var req cityPatchRequest
	h.update(w, r, &req, func() service.CityPatch {
		return service.CityPatch{Name: req.Name, Country: req.Country, Latitude: req.Latitude, Longitude: req.Longitude}
	})
}

func (h *CityHandler) update(w http.ResponseWriter, r *http.Request, req interface{}, patch func() service.CityPatch) {
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

	updated, err := h.cityService.Update(ctx, id, patch())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toCityResponse(updated.City, updated.WeatherRecordsCount))
}

func (h *CityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found.")
		return
	}

	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	if err := h.cityService.Delete(ctx, id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CityHandler) FetchWeather(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found.")
		return
	}

	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	record, err := h.cityService.FetchWeather(ctx, id)
	if err != nil {
		var providerErr *service.ProviderError
		if errors.As(err, &providerErr) {
			zerolog.Ctx(r.Context()).Error().Err(providerErr.Err).Uint("city_id", id).Msg("failed to fetch weather data")
			respondWithJSON(w, http.StatusServiceUnavailable, FetchWeatherResponse{
				Success: false,
				Error:   providerErr.Error(),
			})
			return
		}
		respondWithServiceError(w, r, err)
		return
	}

	data := toWeatherRecordResponse(record)
	respondWithJSON(w, http.StatusCreated, FetchWeatherResponse{
		Success: true,
		Message: fetchWeatherSuccessMessage,
		Data:    &data,
	})
}
