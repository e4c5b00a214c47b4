package models

import "time"

type Submission struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProblemID ProblemID `json:"problemId"`
	Answer    string    `json:"answer"`
	IsCorrect bool      `json:"isCorrect"`
	Timestamp time.Time `json:"timestamp"`
}

// SubmitResult is what POST /submit reports back.
type SubmitResult struct {
	IsCorrect bool `json:"isCorrect"`
}

// AnswerRecord is the latest answer a user gave to one problem.
type AnswerRecord struct {
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"is_correct"`
	Timestamp string `json:"timestamp"`
}

type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProblemID ProblemID `json:"problemId"`
	Content   string    `json:"content"`
	Answer    string    `json:"answer,omitempty"`
	IsCorrect bool      `json:"isCorrect"`
	Timestamp time.Time `json:"timestamp"`
}

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	JoinedDate time.Time `json:"joinedDate"`
}
