// Package httpapi serves holiday lookups as JSON over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/username/bank-holidays/internal/calendar"
	"github.com/username/bank-holidays/internal/holiday"
	"github.com/username/bank-holidays/internal/metrics"
	"github.com/username/bank-holidays/pkg/dateutil"
	"go.uber.org/zap"
)

// MonthCalendar builds the working-day view of a month
type MonthCalendar interface {
	MonthInfo(ctx context.Context, year int, month time.Month) (*calendar.MonthInfo, error)
}

// Handler handles holiday lookup endpoints.
type Handler struct {
	calendar MonthCalendar
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// New creates a new Handler.
func New(cal MonthCalendar, logger *zap.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		calendar: cal,
		logger:   logger,
		metrics:  m,
	}
}

// Register registers the holiday routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(h.observe)

		r.Get("/holidays/{year}", h.handleListHolidays)
		r.Get("/holidays/{year}/easter", h.handleEaster)
		r.Get("/check/{date}", h.handleCheck)
		r.Get("/calendar/{year}/{month}", h.handleMonth)
	})
}

type holidayJSON struct {
	Date    string `json:"date"`
	Name    string `json:"name"`
	Movable bool   `json:"movable"`
}

type holidaysResponse struct {
	Year     int           `json:"year"`
	Easter   string        `json:"easter"`
	Holidays []holidayJSON `json:"holidays"`
}

type easterResponse struct {
	Year   int    `json:"year"`
	Meeus  string `json:"meeus"`
	Conway string `json:"conway"`
}

type checkResponse struct {
	Date    string `json:"date"`
	Holiday bool   `json:"holiday"`
	Name    string `json:"name,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	holidays := holiday.ForYear(year)
	resp := holidaysResponse{
		Year:     year,
		Easter:   dateutil.FormatDate(holiday.EasterSunday(year)),
		Holidays: make([]holidayJSON, 0, len(holidays)),
	}
	for _, hd := range holidays {
		resp.Holidays = append(resp.Holidays, holidayJSON{
			Date:    dateutil.FormatDate(hd.Date),
			Name:    hd.Name,
			Movable: hd.Movable,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleEaster(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, easterResponse{
		Year:   year,
		Meeus:  dateutil.FormatDate(holiday.EasterSunday(year)),
		Conway: dateutil.FormatDate(holiday.EasterSundayConway(year)),
	})
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	date, err := dateutil.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		h.metrics.IncrementLookup("invalid")
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %v", holiday.ErrInvalidInput, err))
		return
	}

	hd, err := holiday.Lookup(date)
	if err != nil {
		h.metrics.IncrementLookup("invalid")
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	resp := checkResponse{Date: dateutil.FormatDate(date)}
	if hd != nil {
		resp.Holiday = true
		resp.Name = hd.Name
		h.metrics.IncrementLookup("holiday")
	} else {
		h.metrics.IncrementLookup("workday")
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleMonth(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	month, err := dateutil.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %v", holiday.ErrInvalidInput, err))
		return
	}

	monthInfo, err := h.calendar.MonthInfo(r.Context(), year, month)
	if err != nil {
		h.writeError(w, r, http.StatusBadGateway, err)
		return
	}

	writeJSON(w, http.StatusOK, monthInfo)
}

// observe records metrics for every request under its route pattern
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		h.metrics.ObserveRequest(route, status, time.Since(start))
		h.logger.Debug("Request served",
			zap.String("route", route),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Duration("duration", time.Since(start)))
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	} else {
		h.logger.Debug("Invalid request",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}

	msg := err.Error()
	if errors.Is(err, calendar.ErrSourceUnavailable) {
		msg = calendar.ErrSourceUnavailable.Error()
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func parseYear(s string) (int, error) {
	year, err := dateutil.ParseYear(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", holiday.ErrInvalidInput, err)
	}
	return year, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
