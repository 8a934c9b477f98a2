package models

// Difficulty is the coarse difficulty band assigned to a quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists every allowed difficulty in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question is a single multiple-choice question extracted from a PDF.
// QuizID is empty until the question has been assigned to a quiz.
type Question struct {
	QuestionText  string   `firestore:"questionText" bson:"questionText" json:"questionText"`
	Options       []string `firestore:"options" bson:"options" json:"options"`
	CorrectAnswer int      `firestore:"correctAnswer" bson:"correctAnswer" json:"correctAnswer"`
	QuizID        string   `firestore:"quizId,omitempty" bson:"quizId,omitempty" json:"quizId,omitempty"`
}

// Quiz is the summary record written once per PDF that yielded questions.
// ID is the document key and is not stored in the document body.
type Quiz struct {
	ID            string     `firestore:"-" bson:"-" json:"id"`
	Title         string     `firestore:"title" bson:"title" json:"title"`
	Subject       string     `firestore:"subject" bson:"subject" json:"subject"`
	Topic         string     `firestore:"topic" bson:"topic" json:"topic"`
	Difficulty    Difficulty `firestore:"difficulty" bson:"difficulty" json:"difficulty"`
	TimeLimit     int        `firestore:"timeLimit" bson:"timeLimit" json:"timeLimit"`
	QuestionCount int        `firestore:"questionCount" bson:"questionCount" json:"questionCount"`
}
