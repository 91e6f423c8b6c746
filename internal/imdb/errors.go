package imdb

import "fmt"

// FetchError is returned when the chart page cannot be retrieved, either
// because the request failed or because the server answered with a non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the page does not contain the expected chart
// markup or an entry in it is malformed.
type ParseError struct {
	Row    int // 1-based chart row, zero for page-level problems
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Row > 0 {
		msg = fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "parse chart: " + msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
