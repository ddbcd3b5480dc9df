package giphy

import (
	"time"
)

// ErrorKind represents the category of a failed operation
type ErrorKind int

const (
	// KindUnknown represents an unclassified failure
	KindUnknown ErrorKind = iota
	// KindTimeout indicates the per-attempt time budget elapsed
	KindTimeout
	// KindValidation indicates invalid caller input, rejected before any I/O
	KindValidation
	// KindClientError indicates an upstream 4xx response
	KindClientError
	// KindServerError indicates an upstream 5xx response
	KindServerError
	// KindNetworkError indicates a transport-level fault below HTTP
	KindNetworkError
)

// String returns the stable identifier for an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "TIMEOUT"
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindClientError:
		return "CLIENT_ERROR"
	case KindServerError:
		return "SERVER_ERROR"
	case KindNetworkError:
		return "NETWORK_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// IsRetryable reports whether failures of this kind consume the retry budget.
// Validation failures are the caller's fault and are never retried.
func (k ErrorKind) IsRetryable() bool {
	return k != KindValidation
}

// ImageAsset describes a single rendition of a GIF
type ImageAsset struct {
	URL       string
	Width     int
	Height    int
	SizeBytes int
}

// IsZero reports whether the asset carries no upstream data
func (a ImageAsset) IsZero() bool {
	return a.URL == "" && a.Width == 0 && a.Height == 0 && a.SizeBytes == 0
}

// SearchItem is one normalized result from a Giphy search
type SearchItem struct {
	ID        string
	Title     string
	SourceURL string
	Rating    string
	CreatedAt string
	Tags      []string
	Original  ImageAsset
	Preview   ImageAsset
	Thumbnail ImageAsset
}

// PageInfo describes the upstream result set. ReturnedCount is upstream's own
// count and may exceed the number of items that survived the transform.
type PageInfo struct {
	TotalAvailable int
	ReturnedCount  int
	Offset         int
}

// Failure carries the classified outcome of an operation that did not succeed
type Failure struct {
	Kind       ErrorKind
	Message    string
	Operation  string
	OccurredAt time.Time
}

// Result is the envelope returned by every client operation. It is either a
// success carrying items and page metadata, or a classified failure; callers
// branch on OK.
type Result struct {
	ok      bool
	items   []SearchItem
	page    PageInfo
	note    string
	failure Failure
}

// Succeed builds a success envelope
func Succeed(items []SearchItem, page PageInfo, note string) Result {
	return Result{ok: true, items: items, page: page, note: note}
}

// Fail builds a failure envelope
func Fail(f Failure) Result {
	return Result{failure: f}
}

// OK reports whether the operation succeeded
func (r Result) OK() bool {
	return r.ok
}

// Items returns the surviving search items of a success; nil on failure
func (r Result) Items() []SearchItem {
	return r.items
}

// Page returns the upstream page metadata of a success
func (r Result) Page() PageInfo {
	return r.page
}

// Note returns the human-readable summary attached to a success
func (r Result) Note() string {
	return r.note
}

// Failure returns the classified failure and true when the operation failed
func (r Result) Failure() (Failure, bool) {
	if r.ok {
		return Failure{}, false
	}
	return r.failure, true
}

// Health reports the outcome of a HealthCheck call
type Health struct {
	Healthy   bool
	Timestamp time.Time
	Service   string
	Detail    string
}
