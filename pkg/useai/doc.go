// Package useai is the public surface of use-ai: build a client from a
// credential, list models, test connectivity, and send a prompt.
//
// All chat calls go through [github.com/nailen1/use-ai/pkg/compat], so
// callers never see the max_tokens / temperature incompatibilities of newer
// and reasoning models.
//
//	client, err := useai.NewClient(config.Default(), config.Env("OPENAI_API_KEY"))
//	if err != nil {
//		return err
//	}
//
//	text, err := useai.SendPrompt(ctx, client, "Name three primes.", useai.PromptOptions{})
package useai
