package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dkoval/padelwiz/internal/flow"
	"github.com/dkoval/padelwiz/internal/rating"
	"github.com/dkoval/padelwiz/internal/store"
)

// Engine drives the questionnaire for any number of users. Steps for a
// single user are strictly sequential; distinct users proceed
// concurrently. All durable state lives in the repo, so a process restart
// loses nothing but the in-memory pointer, which Resume rebuilds.
type Engine struct {
	graph    *flow.Graph
	repo     store.Repo
	log      *zap.SugaredLogger
	matchKey MatchKey

	mu    sync.Mutex
	convs map[int64]*conversation
}

// conversation is the in-memory cursor for one user's active session.
// Its mutex serializes steps: a second answer arriving while the first is
// still persisting waits rather than interleaving.
type conversation struct {
	mu sync.Mutex

	id            string
	sessionID     int
	sessionNumber int64
	questionID    string
	answers       []flow.Answer
}

type Options struct {
	Graph *flow.Graph
	Repo  store.Repo
	Log   *zap.SugaredLogger

	// MatchKey defaults to MatchByText.
	MatchKey MatchKey
}

func New(opts Options) *Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		graph:    opts.Graph,
		repo:     opts.Repo,
		log:      log,
		matchKey: opts.MatchKey,
		convs:    make(map[int64]*conversation),
	}
}

// Start abandons any in-progress session for the user and begins a fresh
// one, returning the first question.
func (e *Engine) Start(ctx context.Context, userID int64) (*StepResult, error) {
	conv := e.conversation(userID)
	conv.mu.Lock()
	defer conv.mu.Unlock()

	rec, err := e.repo.StartSession(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	conv.sessionID = rec.ID
	conv.sessionNumber = rec.Number
	conv.questionID = e.graph.FirstQuestionID()
	conv.answers = nil

	q, err := e.graph.Question(conv.questionID)
	if err != nil {
		return nil, err
	}
	e.log.Infow("session started",
		"conv_id", conv.id, "user_id", userID, "session_number", rec.Number)
	return stepQuestion(&q, conv), nil
}

// stepQuestion builds a question result carrying the conversation's
// progress.
func stepQuestion(q *flow.Question, conv *conversation) *StepResult {
	return &StepResult{
		Status:        StatusQuestion,
		Question:      q,
		SessionNumber: conv.sessionNumber,
		Answered:      len(conv.answers),
	}
}

// Resume rebuilds the user's cursor from storage. It reports StatusNoSession
// when nothing is in progress, StatusQuestion with the pending question when
// a session can continue, StatusCompleted when the stored answers already
// cover a full path, and StatusRestart when the stored answers are corrupt.
func (e *Engine) Resume(ctx context.Context, userID int64) (*StepResult, error) {
	conv := e.conversation(userID)
	conv.mu.Lock()
	defer conv.mu.Unlock()

	return e.resumeLocked(ctx, userID, conv)
}

// Submit applies one reply from the user. When no cursor is in memory it
// resumes from storage first, so a freshly restarted process accepts the
// next answer transparently.
func (e *Engine) Submit(ctx context.Context, userID int64, input string) (*StepResult, error) {
	conv := e.conversation(userID)
	conv.mu.Lock()
	defer conv.mu.Unlock()

	if conv.questionID == "" {
		res, err := e.resumeLocked(ctx, userID, conv)
		if err != nil {
			return nil, err
		}
		if res.Status != StatusQuestion {
			return res, nil
		}
	}

	q, err := e.graph.Question(conv.questionID)
	if err != nil {
		// The graph is validated at startup, so this is a programming
		// error rather than user input.
		return nil, err
	}

	opt := e.matchOption(&q, input)
	if opt == nil {
		e.log.Debugw("reply matched no option",
			"user_id", userID, "question_id", q.ID, "input", input)
		return &StepResult{
			Status:        StatusMismatch,
			Question:      &q,
			SessionNumber: conv.sessionNumber,
			Answered:      len(conv.answers),
		}, nil
	}

	answers := append(append([]flow.Answer(nil), conv.answers...),
		flow.Answer{QuestionID: q.ID, OptionID: opt.ID})
	if err := e.repo.UpdateAnswers(ctx, conv.sessionID, answers); err != nil {
		// The cursor stays where it was; the caller may retry the same
		// reply once storage recovers.
		return nil, fmt.Errorf("persist answer: %w", err)
	}
	conv.answers = answers

	e.cacheProgress(ctx, conv)

	next, err := e.graph.ResolveNext(q.ID, opt.ID)
	if err != nil {
		return nil, err
	}
	if next == "" {
		return e.completeLocked(ctx, userID, conv)
	}

	conv.questionID = next
	nq, err := e.graph.Question(next)
	if err != nil {
		return nil, err
	}
	return stepQuestion(&nq, conv), nil
}

// Abandon drops the in-memory cursor without touching storage. The stored
// session stays active and can be resumed later.
func (e *Engine) Abandon(userID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.convs, userID)
}

func (e *Engine) conversation(userID int64) *conversation {
	e.mu.Lock()
	defer e.mu.Unlock()
	conv, ok := e.convs[userID]
	if !ok {
		conv = &conversation{id: uuid.NewString()}
		e.convs[userID] = conv
	}
	return conv
}

func (e *Engine) matchOption(q *flow.Question, input string) *flow.AnswerOption {
	input = strings.TrimSpace(input)
	for i := range q.Options {
		opt := &q.Options[i]
		switch e.matchKey {
		case MatchByOptionID:
			if opt.ID == input {
				return opt
			}
		default:
			if opt.Text == input {
				return opt
			}
		}
	}
	return nil
}

// cacheProgress refreshes derived columns on the session row. These are
// denormalized caches recomputable from the answers, so failures are
// logged and swallowed rather than surfaced to the user.
func (e *Engine) cacheProgress(ctx context.Context, conv *conversation) {
	exp := rating.CalculateExperience(conv.answers)
	if exp == nil {
		return
	}
	err := e.repo.SetExperience(ctx, conv.sessionID, exp.TotalMonths, string(exp.Level))
	if err != nil {
		e.log.Warnw("cache experience failed",
			"session_id", conv.sessionID, "error", err)
	}
}

func (e *Engine) completeLocked(ctx context.Context, userID int64, conv *conversation) (*StepResult, error) {
	outcome := e.buildOutcome(conv.answers)

	var finalLevel *string
	if outcome.Rated {
		lvl := string(outcome.Level)
		finalLevel = &lvl
		if err := e.repo.SetInterimRating(ctx, conv.sessionID, outcome.Score); err != nil {
			e.log.Warnw("cache rating failed",
				"session_id", conv.sessionID, "error", err)
		}
	}
	if err := e.repo.MarkFinished(ctx, conv.sessionID, finalLevel); err != nil {
		return nil, fmt.Errorf("finish session: %w", err)
	}

	number := conv.sessionNumber
	e.Abandon(userID)
	e.log.Infow("session completed",
		"conv_id", conv.id, "user_id", userID,
		"session_number", number, "rated", outcome.Rated)
	return &StepResult{Status: StatusCompleted, Outcome: outcome, SessionNumber: number}, nil
}

func (e *Engine) buildOutcome(answers []flow.Answer) *Outcome {
	final := rating.ResolveFinalRating(answers)
	if final == nil {
		return &Outcome{Rated: false}
	}
	return &Outcome{
		Level:      final.Level,
		Target:     rating.TargetLevel(final.Level),
		Score:      final.Score,
		Experience: final.ExperienceLevel,
		Skills:     final.Skills,
		Rated:      true,
	}
}

func (e *Engine) resumeLocked(ctx context.Context, userID int64, conv *conversation) (*StepResult, error) {
	rec, err := e.repo.ActiveSessionForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load active session: %w", err)
	}
	if rec == nil {
		return &StepResult{Status: StatusNoSession}, nil
	}

	pointer, err := e.graph.ResumePointer(rec.Answers)
	var corrupt *flow.CorruptSessionError
	if errors.As(err, &corrupt) {
		e.log.Errorw("stored session is corrupt, invalidating",
			"user_id", userID, "session_number", rec.Number, "error", err)
		if ferr := e.repo.MarkFinished(ctx, rec.ID, nil); ferr != nil {
			return nil, fmt.Errorf("invalidate corrupt session: %w", ferr)
		}
		return &StepResult{Status: StatusRestart, SessionNumber: rec.Number}, nil
	}
	if err != nil {
		return nil, err
	}

	conv.sessionID = rec.ID
	conv.sessionNumber = rec.Number
	conv.answers = append([]flow.Answer(nil), rec.Answers...)

	if pointer == "" {
		// The row was left active after its final answer, likely a crash
		// between the answer write and the finish write. Finish it now.
		e.log.Warnw("active session already complete, finishing",
			"user_id", userID, "session_number", rec.Number)
		return e.completeLocked(ctx, userID, conv)
	}

	conv.questionID = pointer
	q, err := e.graph.Question(pointer)
	if err != nil {
		return nil, err
	}
	return stepQuestion(&q, conv), nil
}
