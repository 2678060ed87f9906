// Package modeladapter provides the HTTP plumbing shared by API clients.
//
// It contains:
//   - [ModelAdapter], an embeddable base with bearer auth and JSON helpers
//   - typed errors for non-2xx replies: [APIError] and [RateLimitError]
//   - [RateLimitInfo] parsed from OpenAI-style rate limit headers
//
// Request shapes and endpoints are not defined here; concrete clients live in
// separate packages that embed ModelAdapter.
package modeladapter
