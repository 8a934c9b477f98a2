package services

import (
	"fmt"
	"math/rand/v2"
	"path"

	"github.com/Lllllllleong/examedgecontent/internal/models"
	"github.com/Lllllllleong/examedgecontent/internal/naming"
	"github.com/Lllllllleong/examedgecontent/internal/taxonomy"
)

// AssembleQuiz builds the quiz record for questions extracted from the file
// named filename (no extension) and stamps every question with its ID.
func AssembleQuiz(subject, topic, filename string, questions []models.Question, policy naming.DifficultyPolicy) models.Quiz {
	quiz := models.Quiz{
		ID:            naming.QuizID(subject, topic, filename),
		Title:         naming.Title(filename),
		Subject:       subject,
		Topic:         topic,
		QuestionCount: len(questions),
	}
	quiz.Difficulty = policy()
	quiz.TimeLimit = naming.TimeLimit(quiz.Difficulty)

	for i := range questions {
		questions[i].QuizID = quiz.ID
	}
	return quiz
}

// DurationPolicy produces the reading-time label of a catalog resource.
type DurationPolicy func() string

// RandomDuration returns labels from "15 mins" to "75 mins" inclusive. A nil
// rng uses the global source.
func RandomDuration(rng *rand.Rand) DurationPolicy {
	return func() string {
		n := 0
		if rng == nil {
			n = rand.IntN(61)
		} else {
			n = rng.IntN(61)
		}
		return fmt.Sprintf("%d mins", 15+n)
	}
}

// AssembleResource builds the catalog entry for a resource PDF.
func AssembleResource(id int, file taxonomy.ResourceFile, urlPrefix string, duration DurationPolicy) models.Resource {
	name := file.Name[:len(file.Name)-len(path.Ext(file.Name))]
	return models.Resource{
		ID:       id,
		Title:    naming.Title(name),
		Subject:  file.Subject,
		Topic:    file.Topic,
		Duration: duration(),
		Type:     models.ResourceTypeNotes,
		URL:      path.Join(urlPrefix, file.RelDir, file.Name),
	}
}
