package api

import (
	"context"

	"github.com/moodmirror/mirror-match/app/feed"
	"github.com/moodmirror/mirror-match/app/gemini"
	"github.com/moodmirror/mirror-match/app/prompt"
)

type GeneratorInterface interface {
	Generate(ctx context.Context, systemPrompt string) (*feed.Draft, error)
}

var _ GeneratorInterface = (*gemini.Client)(nil)

type AssemblerInterface interface {
	Run(ctx context.Context, draft feed.Draft) (feed.Feed, error)
}

var _ AssemblerInterface = (*feed.Assembler)(nil)

type Handler struct {
	builder   *prompt.Builder
	generator GeneratorInterface
	assembler AssemblerInterface
	apiKey    string
}
