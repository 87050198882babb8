package usecase

import "context"

// AdvisorUsecase builds travel prompts and forwards them to the configured
// text-generation provider, returning the raw response text.
type AdvisorUsecase interface {
	GetItinerary(ctx context.Context, destination string, days int, interests []string) (string, error)
	GetBestTime(ctx context.Context, destination string) (string, error)
	GetNearby(ctx context.Context, destination string) (string, error)
}
