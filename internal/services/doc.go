// Package services defines the search client interfaces for the two metric
// backends and implements them for Spotify and YouTube Music.
//
// # Interfaces
//
// [SpotifySearcher] and [YouTubeSearcher] are deliberately narrow: the
// resolver only needs one search operation per backend. Accepting the
// interfaces (rather than the concrete services) keeps the resolver
// testable with crafted result lists.
//
// # Spotify Implementation
//
// [SpotifyService] authenticates with the OAuth2 client-credentials flow.
// Search requires no user authorization, so app-only credentials suffice
// and there is no redirect leg. The [clientcredentials.Config] client
// refreshes expired tokens transparently.
//
// # YouTube Music Implementation
//
// [YouTubeMusicService] communicates with a local proxy server wrapping
// ytmusicapi. All operations are synchronous HTTP calls to the proxy
// endpoints. When the proxy is unreachable the caller treats the lookup as
// "not found" rather than failing.
//
// # Error Handling
//
// Services return typed errors from the shared package:
//   - [shared.ErrMissingCredentials] : construction without API keys
//   - [shared.ErrTrackNotFound] : search succeeded but matched nothing
//
// Transport and decode failures are wrapped with context. Callers above the
// resolver boundary never see these errors; the resolver logs and collapses
// them to empty entries.
package services
