package flow

// AnswerOption is a selectable answer within a question. NextQuestionID
// empty means the option terminates the questionnaire for its branch.
type AnswerOption struct {
	ID             string
	Text           string
	NextQuestionID string
}

// Question is a questionnaire node with its ordered answer options.
type Question struct {
	ID      string
	Text    string
	Options []AnswerOption
}

// Option returns the answer option with the given id.
func (q Question) Option(optionID string) (AnswerOption, error) {
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return opt, nil
		}
	}
	return AnswerOption{}, &OptionNotFoundError{QuestionID: q.ID, OptionID: optionID}
}

// Answer records one accepted reply: which option was chosen on which
// question. The ordered answer list is the canonical session record;
// everything else (pointer, experience, ratings) derives from it.
type Answer struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

// Graph is the immutable question graph. It is built once at startup,
// validated, and shared read-only by all sessions.
type Graph struct {
	questions       map[string]Question
	order           []string
	firstQuestionID string
}

// NewGraph builds a Graph from questions and validates it: the first
// question and every referenced next-question id must resolve, and
// question/option ids must be unique. Construction fails rather than
// deferring dangling references to traversal time.
func NewGraph(questions []Question, firstQuestionID string) (*Graph, error) {
	g := &Graph{
		questions:       make(map[string]Question, len(questions)),
		order:           make([]string, 0, len(questions)),
		firstQuestionID: firstQuestionID,
	}
	for _, q := range questions {
		if _, dup := g.questions[q.ID]; !dup {
			g.order = append(g.order, q.ID)
		}
		g.questions[q.ID] = q
	}
	if err := validateQuestions(questions, firstQuestionID); err != nil {
		return nil, err
	}
	return g, nil
}

// FirstQuestionID returns the entry point of the questionnaire.
func (g *Graph) FirstQuestionID() string {
	return g.firstQuestionID
}

// Question returns a question by id.
func (g *Graph) Question(id string) (Question, error) {
	q, ok := g.questions[id]
	if !ok {
		return Question{}, &QuestionNotFoundError{QuestionID: id}
	}
	return q, nil
}

// Questions returns all questions in registration order.
func (g *Graph) Questions() []Question {
	out := make([]Question, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.questions[id])
	}
	return out
}

// ResolveNext returns the id of the question that follows choosing
// optionID on currentQuestionID. An empty id means the chosen option
// is terminal.
func (g *Graph) ResolveNext(currentQuestionID, optionID string) (string, error) {
	q, err := g.Question(currentQuestionID)
	if err != nil {
		return "", err
	}
	opt, err := q.Option(optionID)
	if err != nil {
		return "", err
	}
	return opt.NextQuestionID, nil
}

// ResumePointer replays answers in order from the first question and
// returns the id of the next unanswered question. An empty id means the
// replay reached a terminal option and the session is logically complete.
//
// The replay is pure and must agree with the pointer a live traversal
// would hold after accepting the same answers in the same order; that
// equivalence is what makes restoring a session from its stored answer
// list safe. Answers that cannot be matched against the graph yield a
// CorruptSessionError.
func (g *Graph) ResumePointer(answers []Answer) (string, error) {
	current := g.firstQuestionID
	for i, ans := range answers {
		if current == "" {
			return "", &CorruptSessionError{
				Index:  i,
				Answer: ans,
				Reason: "answer recorded after a terminal option",
			}
		}
		if ans.QuestionID != current {
			return "", &CorruptSessionError{
				Index:  i,
				Answer: ans,
				Reason: "answer does not belong to the expected question " + current,
			}
		}
		q, ok := g.questions[current]
		if !ok {
			return "", &CorruptSessionError{
				Index:  i,
				Answer: ans,
				Reason: "question is no longer registered in the flow",
			}
		}
		opt, err := q.Option(ans.OptionID)
		if err != nil {
			return "", &CorruptSessionError{
				Index:  i,
				Answer: ans,
				Reason: "option is no longer defined for its question",
			}
		}
		current = opt.NextQuestionID
	}
	return current, nil
}
