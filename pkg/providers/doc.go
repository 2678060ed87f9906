// Package providers holds concrete API clients built on
// [github.com/nailen1/use-ai/pkg/modeladapter].
//
// Only [github.com/nailen1/use-ai/pkg/providers/openai] exists; the layout
// keeps wire formats out of the transport base.
package providers
