// Package giphy provides a resilient client for the Giphy image-search API.
//
// The client executes each search as a single logical operation: caller input
// is validated before any I/O, the HTTP call is retried with linear backoff up
// to a bounded attempt budget, the heterogeneous upstream JSON is normalized
// into a stable data model, and every failure is classified into a closed
// error taxonomy.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the request pipeline owning a pooled HTTP connection resource
//   - Types: the normalized data model and the Success/Failure envelope
//   - Transform: per-record coercion of upstream responses into SearchItems
//   - Errors: structured error types and the Classify taxonomy mapping
//
// # Usage
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := giphy.NewClient(
//		"your-api-key",
//		logger,
//		giphy.WithTimeout(5*time.Second),
//		giphy.WithRetryAttempts(3),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	result := client.Search(ctx, "happy dance", giphy.SearchOptions{Limit: 10})
//	if result.OK() {
//		for _, item := range result.Items() {
//			fmt.Println(item.Original.URL)
//		}
//	}
//
// # Error Handling
//
// Operations never return raw errors. Every call yields a Result envelope:
// either a Success carrying items and page metadata, or a Failure carrying a
// classified ErrorKind (TIMEOUT, VALIDATION_ERROR, CLIENT_ERROR, SERVER_ERROR,
// NETWORK_ERROR, UNKNOWN_ERROR) with the original message preserved.
// Validation failures are raised before any network attempt and are never
// retried; all other kinds consume the retry budget.
//
// A record that fails the transform (for example, a malformed nested image
// section) is dropped from the result set rather than failing the operation;
// PageInfo keeps upstream's own counts so callers can observe the skew.
package giphy
