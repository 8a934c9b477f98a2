// Package extract recognises numbered multiple-choice questions in the plain
// text of a PDF.
//
// The expected layout is
//
//	1. Question text, possibly spanning lines
//	A) first option
//	B) second option
//	C) third option
//	D) fourth option
//	Answer: B
//
// Blocks that deviate from it are dropped without error.
package extract

import (
	"regexp"
	"strings"

	"github.com/Lllllllleong/examedgecontent/internal/models"
)

const optionCount = 4

var (
	// A question number may carry a one-word label ("Q1.", "Question 1.").
	// A digit right after the dot is a decimal, not a number.
	numberLine = regexp.MustCompile(`^\s*(?:[A-Za-z]+\s*)?\d+\.(\D.*)?$`)
	optionLine = regexp.MustCompile(`(?i)^\s*[a-z]\)\s*(.*)$`)
	answerLine = regexp.MustCompile(`(?i)^\s*answer:\s*(.*)$`)
)

type state int

const (
	seekingNumber state = iota
	inQuestion
	inOptions
)

// parser is a line-driven state machine. A block is only emitted once its
// answer line is seen; anything else resets it.
type parser struct {
	state    state
	question []string
	options  [][]string
	out      []models.Question
}

// Questions returns every well-formed question block in text, in document
// order. The returned questions have no QuizID.
func Questions(text string) []models.Question {
	p := &parser{}
	for _, line := range strings.Split(text, "\n") {
		p.feed(strings.TrimSuffix(line, "\r"))
	}
	return p.out
}

// JoinPages concatenates page texts the way the extractor expects them,
// each page followed by a blank line.
func JoinPages(pages []string) string {
	var b strings.Builder
	for _, page := range pages {
		b.WriteString(page)
		b.WriteString("\n\n")
	}
	return b.String()
}

// AnswerIndex maps an answer letter (A-D, any case) to its zero-based
// option index.
func AnswerIndex(letter string) (int, bool) {
	if len(letter) == 0 {
		return 0, false
	}
	c := letter[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'D' {
		return 0, false
	}
	return int(c - 'A'), true
}

func (p *parser) feed(line string) {
	if m := answerLine.FindStringSubmatch(line); m != nil {
		if p.state == inOptions && len(p.options) == optionCount {
			p.emit(m[1])
		}
		p.reset()
		return
	}
	if m := numberLine.FindStringSubmatch(line); m != nil {
		p.reset()
		p.state = inQuestion
		p.question = []string{m[1]}
		return
	}

	switch p.state {
	case inQuestion:
		if m := optionLine.FindStringSubmatch(line); m != nil {
			p.state = inOptions
			p.options = [][]string{{m[1]}}
			return
		}
		p.question = append(p.question, line)
	case inOptions:
		if m := optionLine.FindStringSubmatch(line); m != nil {
			if len(p.options) == optionCount {
				// A fifth option means this is not a four-option MCQ.
				p.reset()
				return
			}
			p.options = append(p.options, []string{m[1]})
			return
		}
		last := len(p.options) - 1
		p.options[last] = append(p.options[last], line)
	}
}

func (p *parser) emit(answer string) {
	idx, ok := AnswerIndex(strings.TrimSpace(answer))
	if !ok {
		return
	}
	text := collapse(p.question)
	if text == "" {
		return
	}
	options := make([]string, 0, optionCount)
	for _, opt := range p.options {
		options = append(options, collapse(opt))
	}
	p.out = append(p.out, models.Question{
		QuestionText:  text,
		Options:       options,
		CorrectAnswer: idx,
	})
}

func (p *parser) reset() {
	p.state = seekingNumber
	p.question = nil
	p.options = nil
}

// collapse trims a multi-line fragment and turns its inner newlines into
// spaces.
func collapse(lines []string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.Join(lines, "\n")), "\n", " ")
}
