// Package submit turns one form submission into a translation round trip
// and renders its outcome.
package submit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mlorentedev/translink/internal/adapter"
	"github.com/mlorentedev/translink/internal/display"
	"github.com/mlorentedev/translink/internal/metrics"
)

// Input is the raw form state for one submission.
type Input struct {
	Text       string
	SourceLang string
	TargetLang string
}

// request trims every field and reports false if any of them ends up empty.
func (in Input) request() (adapter.Request, bool) {
	req := adapter.Request{
		Text:       strings.TrimSpace(in.Text),
		SourceLang: strings.TrimSpace(in.SourceLang),
		TargetLang: strings.TrimSpace(in.TargetLang),
	}
	return req, req.Text != "" && req.SourceLang != "" && req.TargetLang != ""
}

// Submitter validates input, calls the translator and writes display states
// to a single renderer. Only the most recently started submission may write;
// older ones still complete but their writes are dropped.
type Submitter struct {
	translator adapter.Translator
	renderer   display.Renderer
	logger     *slog.Logger
	catalog    *display.Catalog

	seq atomic.Uint64
	mu  sync.Mutex
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithLogger sets the diagnostic logger used for transport failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Submitter) { s.logger = l }
}

// WithCatalog sets the message catalog. Defaults to English.
func WithCatalog(c *display.Catalog) Option {
	return func(s *Submitter) { s.catalog = c }
}

func New(t adapter.Translator, r display.Renderer, opts ...Option) *Submitter {
	s := &Submitter{translator: t, renderer: r}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.catalog == nil {
		s.catalog = display.NewCatalog("en")
	}
	return s
}

// Submit runs one submission to completion. It never returns an error: every
// path ends in a rendered state.
func (s *Submitter) Submit(ctx context.Context, in Input) {
	seq := s.seq.Add(1)
	log := s.logger.With("submission_id", uuid.NewString())

	req, ok := in.request()
	if !ok {
		s.finish(seq, display.State{Kind: display.Validating, Message: s.catalog.FillFields()})
		return
	}

	metrics.InputChars.Observe(float64(utf8.RuneCountInString(req.Text)))
	s.render(seq, display.State{Kind: display.InFlight, Message: s.catalog.Translating()})

	start := time.Now()
	res, err := s.translator.Translate(ctx, req)
	metrics.TranslateDuration.WithLabelValues(s.translator.Name()).Observe(time.Since(start).Seconds())

	var statusErr *adapter.StatusError
	switch {
	case errors.As(err, &statusErr):
		s.finish(seq, display.State{
			Kind:       display.HTTPError,
			Message:    s.catalog.ServerError(statusErr.Code, statusErr.Text),
			Status:     statusErr.Code,
			StatusText: statusErr.Text,
		})
	case err != nil:
		log.Error("translate: transport failure", "translator", s.translator.Name(), "err", err)
		s.finish(seq, display.State{Kind: display.NetworkError, Message: s.catalog.NetworkError()})
	default:
		if res.Fallback {
			log.Debug("translate: response without translated_text, showing raw body")
		}
		s.finish(seq, display.State{Kind: display.Success, Message: res.Text, Text: res.Text})
	}
}

func (s *Submitter) finish(seq uint64, st display.State) {
	metrics.SubmissionsTotal.WithLabelValues(st.Kind.String()).Inc()
	s.render(seq, st)
}

func (s *Submitter) render(seq uint64, st display.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq.Load() {
		metrics.StaleWritesTotal.Inc()
		s.logger.Debug("display: dropped stale write", "seq", seq, "state", st.Kind.String())
		return
	}
	s.renderer.Render(st)
}
