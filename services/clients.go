package services

import "context"

//go:generate mockgen -source=clients.go -destination=mocks/mock_clients.go -package=mocks

// Translator translates English text into the target language code.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// ImageGenerator turns a text prompt into a hosted image URL.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
