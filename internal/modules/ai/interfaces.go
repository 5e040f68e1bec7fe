package ai

import "context"

// CaptionEnhancer rewrites a social post caption. Implemented by the Gemini
// service; mocked in tests.
type CaptionEnhancer interface {
	Enhance(ctx context.Context, caption string) (string, error)
}
