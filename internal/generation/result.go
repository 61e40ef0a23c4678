package generation

// Result is the title/content pair returned to callers.
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Status tags how an Outcome was produced.
type Status int

const (
	// StatusParsed means a JSON object was recovered from the model text.
	StatusParsed Status = iota
	// StatusFallback means the model text was wrapped verbatim.
	StatusFallback
	// StatusFailed means the upstream call failed and Result is the error sentinel.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusParsed:
		return "parsed"
	case StatusFallback:
		return "fallback"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FallbackTitle is used when the model text holds no recoverable JSON object.
const FallbackTitle = "Generated Content"

// ErrorResult is returned in place of content when the upstream call fails.
//
//nolint:gochecknoglobals // fixed sentinel value
var ErrorResult = Result{
	Title:   "Error",
	Content: "Sorry, there was an error generating content. Please try again.",
}

// Outcome is the result of one generation call. Upstream failures are
// carried here as StatusFailed instead of an error return.
type Outcome struct {
	Result Result
	Status Status
	// Err holds the absorbed upstream failure when Status is StatusFailed.
	Err error
}

// Failed reports whether the upstream call failed.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}

func failed(err error) Outcome {
	return Outcome{Result: ErrorResult, Status: StatusFailed, Err: err}
}
