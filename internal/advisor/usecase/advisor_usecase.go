package usecase

import (
	"context"
	"fmt"
	"strings"

	"wanderlist-backend/pkg/ai"
	"wanderlist-backend/pkg/apperr"
	"wanderlist-backend/pkg/logger"

	"go.uber.org/zap"
)

// advisorUsecase implements AdvisorUsecase
type advisorUsecase struct {
	advisor ai.TravelAdvisor
}

// NewAdvisorUsecase creates an advisorUsecase. A nil advisor is allowed; all
// operations then fail with an upstream error so the rest of the app keeps
// running without an AI provider configured.
func NewAdvisorUsecase(advisor ai.TravelAdvisor) AdvisorUsecase {
	return &advisorUsecase{advisor: advisor}
}

func (u *advisorUsecase) GetItinerary(ctx context.Context, destination string, days int, interests []string) (string, error) {
	prompt := fmt.Sprintf(
		"Plan a %d-day itinerary for %s, focusing on %s. Provide a day-wise plan.",
		days, destination, strings.Join(interests, ", "))
	return u.generate(ctx, "itinerary", prompt, "failed to generate itinerary")
}

func (u *advisorUsecase) GetBestTime(ctx context.Context, destination string) (string, error) {
	prompt := fmt.Sprintf(
		"What is the best time of year to visit %s considering weather, crowd, and local events?",
		destination)
	return u.generate(ctx, "best-time", prompt, "failed to suggest best time")
}

func (u *advisorUsecase) GetNearby(ctx context.Context, destination string) (string, error) {
	prompt := fmt.Sprintf(
		"List top tourist attractions and places to visit near %s. Give short descriptions for each.",
		destination)
	return u.generate(ctx, "nearby", prompt, "failed to get nearby places")
}

// generate forwards one prompt. Upstream detail goes to the server log only;
// clients get the fixed message for the operation.
func (u *advisorUsecase) generate(ctx context.Context, op, prompt, clientMsg string) (string, error) {
	if u.advisor == nil {
		return "", apperr.New(apperr.CodeUpstream, "travel advisor not configured")
	}

	text, err := u.advisor.Generate(ctx, prompt)
	if err != nil {
		logger.L().Error("advisor call failed", zap.String("operation", op), zap.Error(err))
		return "", apperr.Wrap(err, apperr.CodeUpstream, clientMsg)
	}
	return text, nil
}
