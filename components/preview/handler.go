package preview

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-footer/pkg/content"
	"github.com/goliatone/go-footer/pkg/orchestrator"
	"github.com/goliatone/go-footer/pkg/render"
)

const contentType = "text/html; charset=utf-8"

var errNoContent = errors.New("preview: no source or props configured")

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds a handler from a pre-constructed Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	logger := opts.Logger.With().Str("component", "footer-preview").Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		started := time.Now()
		req := buildRequest(opts, r)
		if req.Props == nil && req.Source == nil {
			logger.Error().Err(errNoContent).Msg("preview misconfigured")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		output, err := opts.Generator.Generate(r.Context(), req)
		if err != nil {
			code := statusFor(err)
			event := logger.Warn()
			if code >= http.StatusInternalServerError {
				event = logger.Error()
			}
			event.Err(err).Int("status", code).Str("renderer", req.Renderer).Msg("footer preview failed")
			opts.Metrics.observe(req.Renderer, code, time.Since(started))
			http.Error(w, http.StatusText(code), code)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(output)))
		w.WriteHeader(http.StatusOK)
		opts.Metrics.observe(req.Renderer, http.StatusOK, time.Since(started))

		logger.Debug().
			Str("method", r.Method).
			Str("renderer", req.Renderer).
			Str("theme", req.ThemeName).
			Str("variant", req.ThemeVariant).
			Dur("elapsed", time.Since(started)).
			Msg("footer preview served")

		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(output)
	})
}

func buildRequest(opts Options, r *http.Request) orchestrator.Request {
	query := r.URL.Query()
	req := orchestrator.Request{
		Props:         opts.Props,
		Source:        opts.Source,
		Renderer:      strings.TrimSpace(query.Get(opts.RendererParam)),
		ThemeName:     strings.TrimSpace(query.Get(opts.ThemeParam)),
		ThemeVariant:  strings.TrimSpace(query.Get(opts.VariantParam)),
		RenderOptions: opts.RenderOptions,
	}
	if locale := strings.TrimSpace(query.Get(opts.LocaleParam)); locale != "" {
		req.RenderOptions.Locale = locale
	}
	return req
}

// statusFor maps request-level mistakes to 4xx and everything else to 5xx.
func statusFor(err error) int {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr) && httpErr != nil:
		return httpErr.StatusCode()
	case errors.Is(err, render.ErrRendererNotFound), errors.Is(err, orchestrator.ErrThemeSelection):
		return http.StatusBadRequest
	case errors.Is(err, content.ErrHTTPDisabled):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
