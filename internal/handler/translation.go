package handler

import (
	"context"
	"log/slog"

	"github.com/mlorentedev/translink/internal/adapter"
	"github.com/mlorentedev/translink/internal/display"
	"github.com/mlorentedev/translink/internal/submit"
)

// Translation is what the form and API handlers need to run one submission.
type Translation struct {
	Translator adapter.Translator
	Catalog    *display.Catalog
	Logger     *slog.Logger
}

// run submits in against a fresh recorder and returns the final state.
// Each HTTP request owns its output surface, so submissions from different
// clients never overwrite each other.
func (t Translation) run(ctx context.Context, in submit.Input) display.State {
	var rec display.Recorder
	opts := []submit.Option{submit.WithCatalog(t.Catalog)}
	if t.Logger != nil {
		opts = append(opts, submit.WithLogger(t.Logger))
	}
	submit.New(t.Translator, &rec, opts...).Submit(ctx, in)
	return rec.Last()
}
