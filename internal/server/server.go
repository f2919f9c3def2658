// Package server exposes the converted-anniversary feed and a one-shot date
// conversion endpoint on a localhost HTTP listener.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-almanac/internal/almanac"
	"github.com/tartampluch/go-almanac/internal/config"
)

// cacheItem stores the rendered calendar and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// CalendarServer serves the generated ICS feed and the /convert endpoint.
type CalendarServer struct {
	// cache uses atomic.Pointer for lock-free reads: the feed is read often
	// and replaced only on sync.
	cache atomic.Pointer[cacheItem]
	Port  string
}

// NewCalendarServer creates a new instance of the server.
func NewCalendarServer(port string) *CalendarServer {
	return &CalendarServer{
		Port: port,
	}
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *CalendarServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleCalendarRequest)
	mux.HandleFunc(config.RouteConvert, s.handleConvertRequest)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served feed content.
func (s *CalendarServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))
	lastMod := time.Now().UTC().Format(http.TimeFormat)

	// Readers see either the old or the new complete item, never a partial state.
	s.cache.Store(&cacheItem{
		data:         data,
		etag:         etag,
		lastModified: lastMod,
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// handleCalendarRequest serves the ICS content with HTTP caching support.
func (s *CalendarServer) handleCalendarRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.cache.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

// conversionResult is one date re-expressed in one calendar system.
type conversionResult struct {
	System    string  `json:"system"`
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	JulianDay float64 `json:"julian_day"`
	Year      int     `json:"year,omitempty"`
	Month     int     `json:"month,omitempty"`
	Day       int     `json:"day,omitempty"`
	Digits    []int   `json:"digits,omitempty"`
}

// convertResponse is the /convert payload: the parsed input plus one result
// per requested target system.
type convertResponse struct {
	Input   conversionResult   `json:"input"`
	Results []conversionResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleConvertRequest serves GET /convert?from=S&date=Y-M-D[&to=S].
// Without "to" the date is converted to every supported system.
func (s *CalendarServer) handleConvertRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set(config.HeaderAllow, http.MethodGet)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	from := q.Get(config.QueryFrom)
	if from == "" {
		from = config.SystemGregorian
	}

	raw := q.Get(config.QueryDate)
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("missing %q parameter", config.QueryDate),
		})
		return
	}
	date, err := almanac.ParseDate(from, raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	targets := almanac.Systems()
	if to := q.Get(config.QueryTo); to != "" {
		targets = []string{to}
	}

	resp := convertResponse{Input: describe(date)}
	for _, id := range targets {
		converted, err := almanac.Convert(id, date)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		resp.Results = append(resp.Results, describe(converted))
	}

	writeJSON(w, http.StatusOK, resp)
}

// describe flattens a date into the JSON result shape.
func describe(a almanac.Almanac) conversionResult {
	res := conversionResult{
		System:    almanac.SystemID(a),
		Name:      a.Name(),
		Label:     a.Date(),
		JulianDay: a.JulianDay().Value(),
	}
	switch d := a.(type) {
	case *almanac.Maya:
		digits := d.Digits()
		res.Digits = digits[:]
	case almanac.Dated:
		res.Year = d.Year()
		res.Month = d.Month()
		res.Day = d.Day()
	}
	return res
}

// writeJSON serializes a payload with the standard headers.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set(config.HeaderContentType, config.MimeApplicationJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}
