package adapter

import (
	"context"
	"fmt"
)

// Translator defines the contract for translation backends.
type Translator interface {
	Name() string
	Translate(ctx context.Context, req Request) (Result, error)
	Available() bool
}

// Request is the JSON body posted to the translation endpoint.
type Request struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// Result holds the text to display after a successful round trip.
// Fallback is set when the endpoint answered without translated_text and
// Text carries the whole response body instead.
type Result struct {
	Text     string
	Fallback bool
}

// StatusError reports a response whose status is outside the 2xx range.
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, e.Text)
}
