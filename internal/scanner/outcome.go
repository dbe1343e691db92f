package scanner

// Status is the terminal state of the fetch-with-retry protocol for one URL.
type Status int

const (
	StatusSuccess   Status = iota // a response other than 404 was read in full
	StatusDropped                 // the server answered 404
	StatusExhausted               // every attempt failed
	StatusFatal                   // gave up without using the retry budget
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusDropped:
		return "dropped"
	case StatusExhausted:
		return "exhausted"
	case StatusFatal:
		return "fatal"
	}
	return "unknown"
}

// Outcome is what resolving one URL produced.
type Outcome struct {
	URL        string
	Status     Status
	StatusCode int    // status of the final response, 0 if none was received
	Body       []byte // set only for StatusSuccess
	Attempts   int
	Err        error // last attempt error for StatusExhausted, the cause for StatusFatal
}

// Result is a successful fetch held by the Sink.
type Result struct {
	URL        string
	Body       []byte
	StatusCode int
	Attempts   int
	Worker     int
}
