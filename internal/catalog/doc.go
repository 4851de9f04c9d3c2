// Package catalog provides an HTTP client for the Disney character API.
//
// # Overview
//
// This package is marquee's only external data source. It fetches one page
// of characters and decodes it into Character values. The rest of the
// program only sees the Source interface, so tests substitute a fake.
//
// # Client Usage
//
//	client, err := catalog.NewClient("https://api.disneyapi.dev")
//	if err != nil {
//		return err
//	}
//
//	chars, err := client.FetchCharacters(ctx, catalog.PageQuery{Page: 1, PageSize: 100})
//	if err != nil {
//		var loadErr *catalog.LoadError
//		errors.As(err, &loadErr)
//	}
//
// # API Endpoint
//
//   - GET /character?page=N&pageSize=M
//
// The response is an envelope with "info" and "data". When exactly one
// character matches, "data" is an object instead of an array; Characters
// normalizes both shapes to a slice.
//
// # Error Handling
//
// Every failure is returned as a *LoadError:
//
//   - Network errors: connection refused, timeout, DNS failure
//   - HTTP errors: any non-2xx status (Status is set)
//   - Deserialization errors: malformed JSON or a data field that is not
//     a character list (wraps ErrMalformed)
//
// The caller treats all of them as one opaque state. There are no retries.
//
// # Cancellation
//
// Requests honor the context passed to FetchCharacters; the app layer adds
// the configured fetch timeout. The http.Client carries its own ceiling as a
// backstop.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use.
package catalog
