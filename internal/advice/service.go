package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dkoval/padelwiz/internal/rating"
)

// UserFlagRepo is the slice of the store the service needs: marking that
// a user has received advice. store.Repo satisfies it.
type UserFlagRepo interface {
	SetAdviceReceived(ctx context.Context, externalID int64) error
}

// TrainingAdvice is the structured plan produced for a finished session.
type TrainingAdvice struct {
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	FocusAreas []string `json:"focus_areas"`
	Drills     []string `json:"drills"`
}

// Service turns a final rating into a short training plan. It is optional
// plumbing around the questionnaire: rating works without it, and any
// failure here leaves the session untouched.
type Service struct {
	provider Provider
	repo     UserFlagRepo
	log      *zap.SugaredLogger
	timeout  time.Duration
}

func NewService(provider Provider, repo UserFlagRepo, log *zap.SugaredLogger, timeout time.Duration) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{provider: provider, repo: repo, log: log, timeout: timeout}
}

// ForRating generates training advice for the given final rating and
// flags the user as having received it. The advice-received flag is a
// best-effort cache write.
func (s *Service) ForRating(ctx context.Context, userID int64, final *rating.FinalRating) (*TrainingAdvice, error) {
	if final == nil {
		return nil, fmt.Errorf("no final rating to advise on")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	requestID := uuid.NewString()
	s.log.Infow("generating training advice",
		"request_id", requestID, "user_id", userID, "level", final.Level)

	resp, err := s.provider.Generate(ctx, Request{
		System:      systemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: buildPrompt(final)}},
		Schema:      adviceSchema(),
		MaxTokens:   1024,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("generate advice: %w", err)
	}

	var out TrainingAdvice
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("decode advice: %w", err),
		}
	}

	if err := s.repo.SetAdviceReceived(ctx, userID); err != nil {
		s.log.Warnw("flag advice received failed",
			"request_id", requestID, "user_id", userID, "error", err)
	}
	return &out, nil
}

const systemPrompt = `You are a padel coach writing a short, practical training plan.
Base every recommendation only on the assessment you are given. Keep the
language plain and specific to padel; do not mention the rating mechanics.`

func buildPrompt(final *rating.FinalRating) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Player assessment:\n")
	fmt.Fprintf(&b, "- overall level: %s (target: %s)\n", final.Level, rating.TargetLevel(final.Level))
	fmt.Fprintf(&b, "- playing experience band: %s\n", final.ExperienceLevel)

	writeSkill := func(name string, lvl *rating.Level) {
		if lvl != nil {
			fmt.Fprintf(&b, "- %s: %s\n", name, *lvl)
		}
	}
	writeSkill("rally consistency", final.Skills.Reliability)
	writeSkill("net play", final.Skills.NetPlay)
	writeSkill("back-wall play", final.Skills.BackWall)
	writeSkill("stroke repertoire", final.Skills.Strokes)

	b.WriteString("\nWrite a plan that moves this player toward the next level.")
	return b.String()
}

func adviceSchema() *Schema {
	return &Schema{
		Name:        "training-advice",
		Description: "A short padel training plan for one player",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{
					"type":        "string",
					"description": "Two or three sentences on where the player stands",
				},
				"strengths": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"focus_areas": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"drills": map[string]any{
					"type":        "array",
					"description": "Concrete on-court drills, one per line",
					"items":       map[string]any{"type": "string"},
				},
			},
			"required":             []any{"summary", "strengths", "focus_areas", "drills"},
			"additionalProperties": false,
		},
	}
}
