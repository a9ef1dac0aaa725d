// Package display holds the states a translation submission can show and
// the sinks that render them.
package display

// Kind identifies which display state is current.
type Kind int

const (
	Idle Kind = iota
	Validating
	InFlight
	Success
	HTTPError
	NetworkError
)

var kindNames = [...]string{
	Idle:         "idle",
	Validating:   "validating",
	InFlight:     "in_flight",
	Success:      "success",
	HTTPError:    "http_error",
	NetworkError: "network_error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Terminal reports whether no further write follows this state within
// the same submission.
func (k Kind) Terminal() bool {
	return k == Validating || k == Success || k == HTTPError || k == NetworkError
}

// State is one rendered outcome. Message is always the user-facing string;
// Text, Status and StatusText carry the structured payload of Success and
// HTTPError.
type State struct {
	Kind       Kind
	Message    string
	Text       string
	Status     int
	StatusText string
}
