// Package naming turns PDF filenames into quiz titles and document keys and
// assigns quiz difficulty.
package naming

import (
	"math/rand/v2"
	"strings"

	"github.com/Lllllllleong/examedgecontent/internal/models"
)

// SplitCamel inserts a space at every lowercase-to-uppercase boundary, so
// "BasicAlgebra" becomes "Basic Algebra".
func SplitCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	var prev rune
	for i, r := range s {
		if i > 0 && prev >= 'a' && prev <= 'z' && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// Title derives a human-readable title from a filename without extension.
func Title(filename string) string {
	t := strings.NewReplacer("_", " ", "-", " ").Replace(filename)
	return strings.TrimSpace(SplitCamel(t))
}

// QuizID derives the quiz document key from its taxonomy and filename.
// The result is lowercase and hyphen-joined, with spaces and underscores
// turned into hyphens.
func QuizID(subject, topic, filename string) string {
	id := strings.ToLower(subject + "-" + topic + "-" + SplitCamel(filename))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(id)
}

// TimeLimit returns the quiz time limit (minutes) for a difficulty.
// Unknown difficulties get 0.
func TimeLimit(d models.Difficulty) int {
	switch d {
	case models.DifficultyHard:
		return 30
	case models.DifficultyMedium:
		return 20
	case models.DifficultyEasy:
		return 10
	}
	return 0
}

// DifficultyPolicy picks the difficulty for a newly assembled quiz.
type DifficultyPolicy func() models.Difficulty

// RandomDifficulty picks uniformly from models.Difficulties. A nil rng uses
// the global source.
func RandomDifficulty(rng *rand.Rand) DifficultyPolicy {
	return func() models.Difficulty {
		if rng == nil {
			return models.Difficulties[rand.IntN(len(models.Difficulties))]
		}
		return models.Difficulties[rng.IntN(len(models.Difficulties))]
	}
}

// FixedDifficulty always returns d.
func FixedDifficulty(d models.Difficulty) DifficultyPolicy {
	return func() models.Difficulty { return d }
}
