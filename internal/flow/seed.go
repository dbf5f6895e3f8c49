package flow

// defaultGraph is the shipped padel questionnaire, built and validated at
// package init. The graph is a DAG: q1 branches on prior racket-sport
// experience, q2 measures padel time, q3-q6 are the four skill questions,
// and every q6 option is terminal.
var defaultGraph = mustGraph(defaultQuestions(), "q1")

// Default returns the shipped padel questionnaire flow.
func Default() *Graph {
	return defaultGraph
}

func mustGraph(questions []Question, firstQuestionID string) *Graph {
	g, err := NewGraph(questions, firstQuestionID)
	if err != nil {
		panic(err)
	}
	return g
}

func defaultQuestions() []Question {
	return []Question{
		{
			ID:   "q1",
			Text: "Have you played another racket sport before padel?",
			Options: []AnswerOption{
				{ID: "has_experience", Text: "Yes, I have racket sport experience", NextQuestionID: "q1.1"},
				{ID: "no_experience", Text: "No, padel is my first racket sport", NextQuestionID: "q2"},
			},
		},
		{
			ID:   "q1.1",
			Text: "Roughly how many hours have you spent playing that sport?",
			Options: []AnswerOption{
				{ID: "q1_1_hours_10", Text: "Under 10 hours", NextQuestionID: "q1.2"},
				{ID: "q1_1_hours_20_50", Text: "20–50 hours", NextQuestionID: "q1.2"},
				{ID: "q1_1_hours_50_100", Text: "50–100 hours", NextQuestionID: "q1.2"},
				{ID: "q1_1_hours_100_140", Text: "100–140 hours", NextQuestionID: "q1.2"},
				{ID: "q1_1_hours_120_190", Text: "120–190 hours", NextQuestionID: "q1.2"},
				{ID: "q1_1_hours_190_290", Text: "190–290 hours", NextQuestionID: "q1.2"},
				{ID: "q1_1_hours_290_430", Text: "290–430 hours", NextQuestionID: "q1.2"},
				{ID: "q1_1_hours_430_580", Text: "430–580 hours", NextQuestionID: "q1.2"},
				{ID: "q1_1_hours_580_plus", Text: "More than 580 hours", NextQuestionID: "q1.2"},
			},
		},
		{
			ID:   "q1.2",
			Text: "Which racket sport was it?",
			Options: []AnswerOption{
				{ID: "q1_2_tennis", Text: "Tennis", NextQuestionID: "q2"},
				{ID: "q1_2_squash", Text: "Squash", NextQuestionID: "q2"},
				{ID: "q1_2_badminton", Text: "Badminton", NextQuestionID: "q2"},
				{ID: "q1_2_table_tennis", Text: "Table tennis", NextQuestionID: "q2"},
				{ID: "q1_2_other", Text: "Another racket sport", NextQuestionID: "q2"},
			},
		},
		{
			ID:   "q2",
			Text: "How many hours of padel have you played so far?",
			Options: []AnswerOption{
				{ID: "q2_hours_10", Text: "Under 10 hours", NextQuestionID: "q3"},
				{ID: "q2_hours_20_50", Text: "20–50 hours", NextQuestionID: "q3"},
				{ID: "q2_hours_50_100", Text: "50–100 hours", NextQuestionID: "q3"},
				{ID: "q2_hours_100_140", Text: "100–140 hours", NextQuestionID: "q3"},
				{ID: "q2_hours_120_190", Text: "120–190 hours", NextQuestionID: "q3"},
				{ID: "q2_hours_190_290", Text: "190–290 hours", NextQuestionID: "q3"},
				{ID: "q2_hours_290_430", Text: "290–430 hours", NextQuestionID: "q3"},
				{ID: "q2_hours_430_580", Text: "430–580 hours", NextQuestionID: "q3"},
				{ID: "q2_hours_580_plus", Text: "More than 580 hours", NextQuestionID: "q3"},
			},
		},
		{
			ID:   "q3",
			Text: "How reliably do you keep the ball in play during a rally?",
			Options: []AnswerOption{
				{ID: "q3_opt1", Text: "I miss most balls that come to me", NextQuestionID: "q4"},
				{ID: "q3_opt2", Text: "I can return easy balls", NextQuestionID: "q4"},
				{ID: "q3_opt3", Text: "I keep short rallies going", NextQuestionID: "q4"},
				{ID: "q3_opt4", Text: "I rarely miss easy balls", NextQuestionID: "q4"},
				{ID: "q3_opt5", Text: "I sustain medium-pace rallies", NextQuestionID: "q4"},
				{ID: "q3_opt6", Text: "I sustain rallies and place the ball", NextQuestionID: "q4"},
				{ID: "q3_opt7", Text: "I control direction and depth under pressure", NextQuestionID: "q4"},
				{ID: "q3_opt8", Text: "I almost never give away free points", NextQuestionID: "q4"},
				{ID: "q3_opt9", Text: "My consistency decides matches", NextQuestionID: "q4"},
			},
		},
		{
			ID:   "q4",
			Text: "How comfortable are you at the net (volleys and bandeja)?",
			Options: []AnswerOption{
				{ID: "q4_opt1", Text: "I avoid the net entirely", NextQuestionID: "q5"},
				{ID: "q4_opt2", Text: "I volley easy balls only", NextQuestionID: "q5"},
				{ID: "q4_opt3", Text: "I hold my position but make errors", NextQuestionID: "q5"},
				{ID: "q4_opt4", Text: "I volley reliably and hit a basic bandeja", NextQuestionID: "q5"},
				{ID: "q4_opt5", Text: "I win most net exchanges", NextQuestionID: "q5"},
				{ID: "q4_opt6", Text: "The net game is my weapon", NextQuestionID: "q5"},
			},
		},
		{
			ID:   "q5",
			Text: "How well do you play balls coming off the back wall?",
			Options: []AnswerOption{
				{ID: "q5_opt1", Text: "I don't use the walls at all", NextQuestionID: "q6"},
				{ID: "q5_opt2", Text: "I return slow balls off the back wall", NextQuestionID: "q6"},
				{ID: "q5_opt3", Text: "I read simple rebounds in time", NextQuestionID: "q6"},
				{ID: "q5_opt4", Text: "I play most back-wall balls back with control", NextQuestionID: "q6"},
				{ID: "q5_opt5", Text: "I turn wall play into attacks", NextQuestionID: "q6"},
				{ID: "q5_opt6", Text: "I use double walls and corners comfortably", NextQuestionID: "q6"},
			},
		},
		{
			ID:   "q6",
			Text: "Which strokes do you have in your repertoire?",
			Options: []AnswerOption{
				{ID: "q6_opt1", Text: "Forehand only, and it is shaky", NextQuestionID: ""},
				{ID: "q6_opt2", Text: "Basic forehand and backhand", NextQuestionID: ""},
				{ID: "q6_opt3", Text: "Groundstrokes plus a simple lob", NextQuestionID: ""},
				{ID: "q6_opt4", Text: "Lob, volley and serve are dependable", NextQuestionID: ""},
				{ID: "q6_opt5", Text: "I add the bandeja and block returns", NextQuestionID: ""},
				{ID: "q6_opt6", Text: "Bandeja and vibora with placement", NextQuestionID: ""},
				{ID: "q6_opt7", Text: "Smash, vibora and off-the-wall attacks", NextQuestionID: ""},
				{ID: "q6_opt8", Text: "Full repertoire, chosen tactically", NextQuestionID: ""},
				{ID: "q6_opt9", Text: "Full repertoire under pressure, both sides", NextQuestionID: ""},
			},
		},
	}
}
