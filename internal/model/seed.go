package model

import "time"

// DefaultSnapshot returns the fixed demo seed: three authored tests, two
// historical completed records and an empty submission ledger. Used on
// first boot, on storage corruption, and by the reset operation.
func DefaultSnapshot() Snapshot {
	snap := Snapshot{
		AvailableTests: defaultTests(),
		CompletedTests: defaultCompletedTests(),
		Submissions:    []Submission{},
	}
	for i, t := range snap.AvailableTests {
		snap.AvailableTests[i] = CanonicalizeTest(t)
	}
	for i, c := range snap.CompletedTests {
		snap.CompletedTests[i] = CanonicalizeCompleted(c)
	}
	return snap
}

func intPtr(n int) *int { return &n }

func seedTime(day, hour int) *time.Time {
	t := time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func defaultTests() []Test {
	return []Test{
		{
			ID:              "1",
			Title:           "Mathematics - Algebra Test",
			Subject:         "mathematics",
			SubjectLabel:    "Mathematics",
			DurationMinutes: 60,
			Difficulty:      "Medium",
			Description:     "Test your understanding of algebraic expressions and equations.",
			StartDate:       seedTime(20, 10),
			MaxAttempts:     3,
			AttemptCount:    156,
			Instructions:    "Solve each problem carefully. Show your working on paper before choosing the answer.",
			CreatedAt:       time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			QuestionsData: []Question{
				{
					ID:            "alg-1",
					Prompt:        "What is the solution to 2x + 5 = 17?",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"x = 12", "x = 6", "x = -6", "x = -12"},
					CorrectAnswer: intPtr(1),
					Marks:         2,
					Explanation:   "Subtract 5 from both sides to get 2x = 12, then divide by 2.",
					AutoGrade:     true,
				},
				{
					ID:            "alg-2",
					Prompt:        "Simplify: (3x^2 - 2x + 4) - (x^2 + 5x - 1)",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"2x^2 - 7x + 5", "2x^2 - 3x + 3", "4x^2 + 3x + 5", "2x^2 - 7x - 3"},
					CorrectAnswer: intPtr(0),
					Marks:         3,
					Explanation:   "Subtract coefficients term by term: 3x^2 - x^2 = 2x^2, -2x - 5x = -7x, 4 - (-1) = 5.",
					AutoGrade:     true,
				},
				{
					ID:            "alg-3",
					Prompt:        "If y varies directly with x and y = 18 when x = 6, what is y when x = 9?",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"21", "24", "27", "30"},
					CorrectAnswer: intPtr(2),
					Marks:         2,
					Explanation:   "Find the constant of variation k = 3, then y = 3 × 9 = 27.",
					AutoGrade:     true,
				},
				{
					ID:            "alg-4",
					Prompt:        "Which of the following is the factored form of x^2 - 9x + 18?",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"(x - 6)(x - 3)", "(x - 9)(x + 2)", "(x - 3)(x - 6)", "(x - 2)(x - 9)"},
					CorrectAnswer: intPtr(2),
					Marks:         3,
					Explanation:   "Find two numbers that multiply to 18 and add to -9: -3 and -6.",
					AutoGrade:     true,
				},
			},
		},
		{
			ID:              "2",
			Title:           "Science - Physics Quiz",
			Subject:         "science",
			SubjectLabel:    "Science",
			DurationMinutes: 45,
			Difficulty:      "Easy",
			Description:     "Check your understanding of basic motion, force, and energy concepts.",
			StartDate:       seedTime(22, 14),
			MaxAttempts:     2,
			AttemptCount:    89,
			Instructions:    "Choose the best answer for each question using fundamental physics concepts.",
			CreatedAt:       time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC),
			QuestionsData: []Question{
				{
					ID:            "phy-1",
					Prompt:        "What is the SI unit of force?",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"Joule", "Newton", "Pascal", "Watt"},
					CorrectAnswer: intPtr(1),
					Marks:         2,
					Explanation:   "Force is measured in Newtons (N).",
					AutoGrade:     true,
				},
				{
					ID:            "phy-2",
					Prompt:        "Which law states that for every action there is an equal and opposite reaction?",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"Newton's First Law", "Newton's Second Law", "Newton's Third Law", "Law of Gravitation"},
					CorrectAnswer: intPtr(2),
					Marks:         2,
					Explanation:   "Newton's Third Law describes action-reaction pairs.",
					AutoGrade:     true,
				},
				{
					ID:            "phy-3",
					Prompt:        "A car travels 60 km in 1.5 hours. What is its average speed?",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"30 km/h", "40 km/h", "45 km/h", "60 km/h"},
					CorrectAnswer: intPtr(1),
					Marks:         2,
					Explanation:   "Average speed = distance ÷ time = 60 ÷ 1.5 = 40 km/h.",
					AutoGrade:     true,
				},
				{
					ID:            "phy-4",
					Prompt:        "What form of energy is stored in a stretched rubber band?",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"Kinetic energy", "Thermal energy", "Elastic potential energy", "Chemical energy"},
					CorrectAnswer: intPtr(2),
					Marks:         2,
					Explanation:   "Stretching a rubber band stores elastic potential energy.",
					AutoGrade:     true,
				},
				{
					ID:            "phy-5",
					Prompt:        "Which instrument is used to measure electric current?",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"Voltmeter", "Ammeter", "Thermometer", "Hygrometer"},
					CorrectAnswer: intPtr(1),
					Marks:         2,
					Explanation:   "An ammeter measures electric current in amperes.",
					AutoGrade:     true,
				},
			},
		},
		{
			ID:              "3",
			Title:           "English - Grammar Assessment",
			Subject:         "english",
			SubjectLabel:    "English",
			DurationMinutes: 30,
			Difficulty:      "Easy",
			Description:     "Test your knowledge of fundamental grammar rules and usage.",
			StartDate:       seedTime(25, 11),
			MaxAttempts:     1,
			AttemptCount:    203,
			Instructions:    "Pick the grammatically correct option for each sentence.",
			CreatedAt:       time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
			QuestionsData: []Question{
				{
					ID:            "eng-1",
					Prompt:        "Choose the correctly punctuated sentence.",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"Its raining outside.", "It's raining outside.", "Its' raining outside.", "Its raining, outside."},
					CorrectAnswer: intPtr(1),
					Marks:         2,
					Explanation:   "\"It's\" is the contraction for \"it is.\"",
					AutoGrade:     true,
				},
				{
					ID:            "eng-2",
					Prompt:        "Select the sentence with correct subject-verb agreement.",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"The list of items are on the desk.", "The list of items is on the desk.", "The lists of item is on the desk.", "The lists of item are on the desk."},
					CorrectAnswer: intPtr(1),
					Marks:         2,
					Explanation:   "\"List\" is singular, so use \"is.\"",
					AutoGrade:     true,
				},
				{
					ID:            "eng-3",
					Prompt:        "Identify the correct usage of the word \"their.\"",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"Their going to the market.", "The dog wagged it's tail at their owner.", "The students submitted their assignments.", "The cat picked up there toy."},
					CorrectAnswer: intPtr(2),
					Marks:         2,
					Explanation:   "\"Their\" shows possession, as in \"their assignments.\"",
					AutoGrade:     true,
				},
				{
					ID:            "eng-4",
					Prompt:        "Which sentence uses the correct tense?",
					Type:          QuestionTypeMultipleChoice,
					Options:       []string{"I seen the movie yesterday.", "I have saw the movie yesterday.", "I saw the movie yesterday.", "I have see the movie yesterday."},
					CorrectAnswer: intPtr(2),
					Marks:         2,
					Explanation:   "Past simple tense \"saw\" is correct with \"yesterday.\"",
					AutoGrade:     true,
				},
			},
		},
	}
}

func defaultCompletedTests() []CompletedTest {
	return []CompletedTest{
		{
			ID:           "default-geometry",
			Title:        "Mathematics - Geometry Test",
			Subject:      "mathematics",
			SubjectLabel: "Mathematics",
			Difficulty:   "Medium",
			Score:        92,
			MaxScore:     100,
			Duration:     55,
			Questions:    25,
			AttemptCount: 156,
			StudentID:    "1",
			StudentName:  "Rahul Kumar",
			Attempt:      1,
			CompletedAt:  time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "default-chemistry",
			Title:        "Science - Chemistry Quiz",
			Subject:      "science",
			SubjectLabel: "Science",
			Difficulty:   "Easy",
			Score:        78,
			MaxScore:     100,
			Duration:     42,
			Questions:    20,
			AttemptCount: 89,
			StudentID:    "1",
			StudentName:  "Rahul Kumar",
			Attempt:      1,
			CompletedAt:  time.Date(2024, time.January, 12, 14, 0, 0, 0, time.UTC),
		},
	}
}
