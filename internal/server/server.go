// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness and build version
//	GET  /v1/formats              supported render formats
//	POST /v1/layout               document in, layout JSON out
//	POST /v1/render/{format}      document in, artifact out
//
// Documents are JSON unless the request's Content-Type names TOML. The
// viewport comes from the width and height query parameters, falling back to
// the document's own viewport.
package server

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/flexlayout/pkg/buildinfo"
	"github.com/matzehuels/flexlayout/pkg/document"
	errs "github.com/matzehuels/flexlayout/pkg/errors"
	"github.com/matzehuels/flexlayout/pkg/observability"
	"github.com/matzehuels/flexlayout/pkg/pipeline"
)

// MaxBodyBytes caps request documents.
const MaxBodyBytes = 1 << 20

// RequestIDHeader carries the per-request id in responses.
const RequestIDHeader = "X-Request-Id"

// contentTypes maps render formats to response media types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

// Server serves layout requests through a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New returns a server backed by runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger.WithPrefix("http")}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/formats", s.handleFormats)
		r.Post("/layout", s.handleLayout)
		r.Post("/render/{format}", s.handleRender)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Middleware
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

// RequestID returns the id assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestID assigns every request a UUID, echoes it in the response and
// reports the request through the HTTP hooks.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		w.Header().Set(RequestIDHeader, id)

		hooks := observability.HTTP()
		hooks.OnRequest(ctx, id, r.Method, r.URL.Path)
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(ctx, id, r.Method, r.URL.Path, status, time.Since(start))
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Build
	}{"ok", buildinfo.Info()})
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"formats": pipeline.FormatNames})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doc, opts, err := s.decode(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	l, hit, err := s.runner.ComputeLayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := document.MarshalLayout(l)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheStatus(hit))
	writeBytes(w, contentTypes[pipeline.FormatJSON], data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.fail(w, r, err)
		return
	}

	doc, opts, err := s.decode(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Formats = []string{format}

	l, layoutHit, err := s.runner.ComputeLayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	artifacts, renderHit, err := s.runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheStatus(layoutHit && renderHit))
	writeBytes(w, contentTypes[format], artifacts[format])
}

// decode reads the request document and the options from the query string.
func (s *Server) decode(r *http.Request) (*document.Document, pipeline.Options, error) {
	opts := pipeline.Options{Logger: s.logger}
	q := r.URL.Query()

	var err error
	if opts.Width, err = floatParam(q.Get("width")); err != nil {
		return nil, opts, err
	}
	if opts.Height, err = floatParam(q.Get("height")); err != nil {
		return nil, opts, err
	}
	if opts.Columns, err = intParam(q.Get("cols")); err != nil {
		return nil, opts, err
	}
	if opts.Rows, err = intParam(q.Get("rows")); err != nil {
		return nil, opts, err
	}
	opts.Labels = q.Get("labels") != "false"
	opts.Dimensions = q.Get("dimensions") == "true"
	opts.Refresh = q.Get("refresh") == "true"

	format, err := documentFormat(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, opts, err
	}
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, opts, errs.Wrap(errs.ErrCodeInvalidInput, err, "read request body")
	}
	doc, err := pipeline.ParseBytes(r.Context(), body, format, "request")
	if err != nil {
		return nil, opts, err
	}
	return doc, opts, nil
}

func documentFormat(contentType string) (document.Format, error) {
	if contentType == "" {
		return document.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidFormat, err, "content type")
	}
	switch mt {
	case "application/json", "text/json":
		return document.FormatJSON, nil
	case "application/toml", "text/toml", "text/x-toml":
		return document.FormatTOML, nil
	default:
		return "", errs.New(errs.ErrCodeUnsupported, "unsupported content type %q (want application/json or application/toml)", mt)
	}
}

// =============================================================================
// Responses
// =============================================================================

// errorBody is the JSON shape of failed responses.
type errorBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	id := RequestID(ctx)
	observability.HTTP().OnError(ctx, id, r.Method, r.URL.Path, err)

	status := errs.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", id, "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "id", id, "path", r.URL.Path, "err", err)
	}

	var body errorBody
	body.Error.Code = string(errs.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(errs.ErrCodeInternal)
	}
	body.Error.Message = errs.UserMessage(err)
	body.Error.RequestID = id
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBytes(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func floatParam(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errs.New(errs.ErrCodeInvalidInput, "invalid size %q", s)
	}
	return v, nil
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, errs.New(errs.ErrCodeInvalidInput, "invalid count %q", s)
	}
	return v, nil
}

var _ http.Handler = (*Server)(nil)

