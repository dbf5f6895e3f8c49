package advice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dkoval/padelwiz/internal/rating"
)

type flagRepo struct {
	flagged []int64
	err     error
}

func (f *flagRepo) SetAdviceReceived(_ context.Context, externalID int64) error {
	if f.err != nil {
		return f.err
	}
	f.flagged = append(f.flagged, externalID)
	return nil
}

func sampleRating() *rating.FinalRating {
	rel := rating.LevelD
	net := rating.LevelDMinus
	wall := rating.LevelE
	strokes := rating.LevelDPlus
	return &rating.FinalRating{
		Level:           rating.LevelD,
		Score:           1.7,
		ExperienceLevel: rating.LevelDMinus,
		Skills: rating.SkillRatings{
			Reliability: &rel,
			NetPlay:     &net,
			BackWall:    &wall,
			Strokes:     &strokes,
		},
	}
}

func validAdviceJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "A solid D-level player with room to grow at the net.",
		"strengths": ["rally consistency"],
		"focus_areas": ["back-wall reads", "net positioning"],
		"drills": ["wall rebound ladder", "volley-to-bandeja cycles"]
	}`)
}

func TestServiceForRating(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: validAdviceJSON()})
	repo := &flagRepo{}
	svc := NewService(mock, repo, nil, time.Second)

	out, err := svc.ForRating(context.Background(), 42, sampleRating())
	if err != nil {
		t.Fatalf("ForRating: %v", err)
	}
	if out.Summary == "" || len(out.Drills) != 2 {
		t.Errorf("unexpected advice: %+v", out)
	}
	if len(repo.flagged) != 1 || repo.flagged[0] != 42 {
		t.Errorf("advice-received flag = %v, want [42]", repo.flagged)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "training-advice" {
		t.Errorf("request schema = %+v, want training-advice", req.Schema)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"overall level: D", "net play: D-", "back-wall play: E"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestServiceNilRating(t *testing.T) {
	svc := NewService(NewMockProvider(), &flagRepo{}, nil, time.Second)
	if _, err := svc.ForRating(context.Background(), 1, nil); err == nil {
		t.Fatal("expected error for nil rating")
	}
}

func TestServiceProviderFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	repo := &flagRepo{}
	svc := NewService(mock, repo, nil, time.Second)

	_, err := svc.ForRating(context.Background(), 2, sampleRating())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.flagged) != 0 {
		t.Errorf("flagged %v despite failure", repo.flagged)
	}
}

func TestServiceMalformedAdvice(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, &flagRepo{}, nil, time.Second)

	_, err := svc.ForRating(context.Background(), 3, sampleRating())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestServiceFlagFailureIsSwallowed(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: validAdviceJSON()})
	repo := &flagRepo{err: errors.New("db closed")}
	svc := NewService(mock, repo, nil, time.Second)

	out, err := svc.ForRating(context.Background(), 4, sampleRating())
	if err != nil {
		t.Fatalf("ForRating: %v", err)
	}
	if out == nil {
		t.Fatal("advice dropped because of flag write failure")
	}
}
