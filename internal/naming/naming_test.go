package naming

import (
	"math/rand/v2"
	"testing"

	"github.com/Lllllllleong/examedgecontent/internal/models"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BasicAlgebra", "Basic Algebra"},
		{"linear_equations-part2", "linear equations part2"},
		{"  Intro_to_Sets ", "Intro to Sets"},
		{"HTMLBasics", "HTMLBasics"},
		{"chapterOneReview", "chapter One Review"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Title(tt.in); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuizID(t *testing.T) {
	tests := []struct {
		subject, topic, file string
		want                 string
	}{
		{"Math", "Algebra", "BasicAlgebra", "math-algebra-basic-algebra"},
		{"Computer Science", "Data Structures", "Linked_Lists", "computer-science-data-structures-linked-lists"},
		{"Physics", "Motion", "Quiz 1", "physics-motion-quiz-1"},
		{"Math", "Algebra", "Set-A", "math-algebra-set-a"},
	}
	for _, tt := range tests {
		if got := QuizID(tt.subject, tt.topic, tt.file); got != tt.want {
			t.Errorf("QuizID(%q, %q, %q) = %q, want %q", tt.subject, tt.topic, tt.file, got, tt.want)
		}
	}
}

func TestQuizID_Deterministic(t *testing.T) {
	a := QuizID("Math", "Algebra", "BasicAlgebra")
	b := QuizID("Math", "Algebra", "BasicAlgebra")
	if a != b {
		t.Errorf("QuizID not deterministic: %q != %q", a, b)
	}
	if c := QuizID("Math", "Geometry", "BasicAlgebra"); c == a {
		t.Errorf("different topics produced the same id %q", c)
	}
}

func TestTimeLimit(t *testing.T) {
	tests := map[models.Difficulty]int{
		models.DifficultyHard:   30,
		models.DifficultyMedium: 20,
		models.DifficultyEasy:   10,
		"Extreme":               0,
	}
	for d, want := range tests {
		if got := TimeLimit(d); got != want {
			t.Errorf("TimeLimit(%q) = %d, want %d", d, got, want)
		}
	}
}

func TestRandomDifficulty_StaysInDomain(t *testing.T) {
	policy := RandomDifficulty(rand.New(rand.NewPCG(1, 2)))
	seen := make(map[models.Difficulty]int)
	for i := 0; i < 300; i++ {
		d := policy()
		if TimeLimit(d) == 0 {
			t.Fatalf("policy returned %q, outside the allowed set", d)
		}
		seen[d]++
	}
	if len(seen) != len(models.Difficulties) {
		t.Errorf("300 draws only produced %v", seen)
	}
}

func TestFixedDifficulty(t *testing.T) {
	policy := FixedDifficulty(models.DifficultyMedium)
	for i := 0; i < 3; i++ {
		if got := policy(); got != models.DifficultyMedium {
			t.Errorf("FixedDifficulty() = %q, want Medium", got)
		}
	}
}
