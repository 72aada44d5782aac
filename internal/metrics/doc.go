// Package metrics resolves per-track streaming metrics from Spotify and
// YouTube Music and merges them into a single record.
//
// The [Fetcher] queries each backend independently through the narrow search
// interfaces defined in the services package. Each backend's response is
// reduced to at most one entry. Spotify keeps the first ranked result's
// popularity and external URL. YouTube Music results go through a tiered
// candidate selection: an exact song match wins, then an exact video match,
// then the first song carrying a view count.
//
// Backend failures never abort a fetch. A lookup that errors or comes back
// empty yields an empty entry that serializes as {}, so a batch always
// produces one [Record] per query.
package metrics
