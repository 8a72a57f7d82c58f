// Package server serves the sizing calculator over HTTP: a JSON API, report
// downloads and an embedded single page form.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/iwvelando/solar-sizing/pkg/constants"
	"github.com/iwvelando/solar-sizing/pkg/format"
	"github.com/iwvelando/solar-sizing/pkg/output"
	"github.com/iwvelando/solar-sizing/pkg/report"
	"github.com/iwvelando/solar-sizing/pkg/solar"
	"github.com/iwvelando/solar-sizing/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	locale      string
	currency    string
}

// NewHandler constructs the HTTP handler that serves the web UI and sizing API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: cfg.BodySizeBytes(),
		version:     trimmedVersion,
		locale:      cfg.Output.Locale,
		currency:    cfg.Output.Currency,
	}

	mux := http.NewServeMux()

	// Sizing API endpoint (JSON body or kwh query parameter)
	mux.HandleFunc("/api/sizing", h.handleSizing)

	// Downloadable report in any output format
	mux.HandleFunc("/api/sizing/report", h.handleReport)

	// Fixed calculation parameters for the information panel
	mux.HandleFunc("/api/constants", h.handleConstants)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	var root http.Handler = mux
	if !cfg.RateLimit.Disabled {
		limiter := newClientLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		root = limiter.middleware(h, root)
	}
	return gziphandler.GzipHandler(root)
}

type sizingRequest struct {
	MonthlyConsumptionKWh json.RawMessage `json:"monthlyConsumptionKWh"`
	Locale                string          `json:"locale,omitempty"`
	Currency              string          `json:"currency,omitempty"`
}

type sizingResponse struct {
	output.Report
	Duration string `json:"duration"`
}

type constantsResponse struct {
	Constants solar.Parameters  `json:"constants"`
	Info      []output.InfoLine `json:"info"`
}

func (h *handler) handleSizing(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSizing"
	start := time.Now()

	var raw, locale, currency string
	switch r.Method {
	case http.MethodGet:
		query := r.URL.Query()
		raw, locale, currency = query.Get("kwh"), query.Get("locale"), query.Get("currency")
	case http.MethodPost:
		req, status, err := h.decodeSizingRequest(w, r)
		if err != nil {
			h.respondErrorWithOp(w, status, err.Error(), op)
			return
		}
		raw, err = rawConsumption(req.MonthlyConsumptionKWh)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		locale, currency = req.Locale, req.Currency
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	printer, err := h.printer(locale, currency)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	result, err := solar.ComputeFromString(raw)
	if err != nil {
		h.respondComputeError(w, err, op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("sizing computed",
		zap.String("op", op),
		zap.Float64("monthlyConsumptionKWh", result.MonthlyConsumptionKWh),
		zap.Int("panels", result.PanelCount),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, sizingResponse{
		Report:   output.NewReport(result, printer),
		Duration: elapsed.String(),
	})
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReport"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	outputFormat := query.Get("format")
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPDF
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	printer, err := h.printer(query.Get("locale"), query.Get("currency"))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	result, err := solar.ComputeFromString(query.Get("kwh"))
	if err != nil {
		h.respondComputeError(w, err, op)
		return
	}

	// Render fully before writing so a failure can still produce an error status.
	var buf bytes.Buffer
	if err := report.Render(&buf, outputFormat, result, printer); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render report: %v", err), op)
		return
	}

	w.Header().Set("Content-Type", report.ContentType(outputFormat))
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatJSON {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"solar-sizing.%s\"", outputFormat))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write report",
			zap.String("op", op),
			zap.Error(err),
		)
		return
	}

	h.logger.Info("report rendered",
		zap.String("op", op),
		zap.String("format", outputFormat),
		zap.Int("panels", result.PanelCount),
	)
}

func (h *handler) handleConstants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	printer, err := h.printer(r.URL.Query().Get("locale"), r.URL.Query().Get("currency"))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleConstants")
		return
	}

	params := solar.Constants()
	h.writeJSON(w, http.StatusOK, constantsResponse{
		Constants: params,
		Info:      output.InfoPanel(params, printer),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) decodeSizingRequest(w http.ResponseWriter, r *http.Request) (sizingRequest, int, error) {
	var req sizingRequest
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return req, http.StatusRequestEntityTooLarge,
				fmt.Errorf("request body exceeds limit of %d bytes", h.maxBodySize)
		}
		return req, http.StatusBadRequest, fmt.Errorf("failed to decode request: %v", err)
	}
	return req, http.StatusOK, nil
}

// rawConsumption accepts the consumption as a JSON number or string and
// returns its text for solar.ParseConsumption. Absent and null both yield "".
func rawConsumption(value json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(value))
	if trimmed == "" || trimmed == "null" {
		return "", nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", fmt.Errorf("invalid monthlyConsumptionKWh: %v", err)
		}
		return s, nil
	}
	return trimmed, nil
}

func (h *handler) printer(locale, currency string) (*format.Printer, error) {
	if locale == "" {
		locale = h.locale
	} else if err := validation.ValidateLocale(locale); err != nil {
		return nil, err
	}
	if currency == "" {
		currency = h.currency
	}
	return format.NewPrinter(locale, currency), nil
}

func (h *handler) respondComputeError(w http.ResponseWriter, err error, op string) {
	status := http.StatusInternalServerError
	if errors.Is(err, solar.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	h.respondErrorWithOp(w, status, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("sizing request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Encode first so a failure can still change the status code.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Int("status", status),
			zap.Error(err),
		)
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"error":"failed to encode response"}` + "\n")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
