// Package openai implements the ai.Embedder interface against any
// OpenAI-compatible embedding API via langchaingo.
package openai
