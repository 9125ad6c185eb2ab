package scoring

import (
	"math"
	"strings"

	"examsense/internal/model"
)

// Score computes the final score for a set of normalized answers against the
// assessment's question snapshot.
//
// Questions with IsScored=false or without a present answer are skipped. The
// scoring mode is chosen once for the whole assessment: if any option across
// the remaining questions carries an explicit score, the weighted mode sums
// the selected options' scores; when that never finds a score anywhere, or
// the weighted total comes out non-positive, every answered scored question
// contributes floor(100/n) points, capped at 100. An assessment is either
// weighted or uniform, never silently mixed.
func Score(questions []model.Question, answers map[string]string) float64 {
	type answeredQuestion struct {
		question model.Question
		answer   string
	}

	var answered []answeredQuestion
	for _, q := range questions {
		if !q.IsScored {
			continue
		}
		answer, ok := answers[QuestionKey(q.ID)]
		if !ok || strings.TrimSpace(answer) == "" {
			continue
		}
		answered = append(answered, answeredQuestion{question: q, answer: answer})
	}
	if len(answered) == 0 {
		return 0
	}

	weighted := false
	for _, aq := range answered {
		if hasOptionScore(aq.question) {
			weighted = true
			break
		}
	}

	if weighted {
		total := 0.0
		for _, aq := range answered {
			total += questionScore(aq.question, aq.answer)
		}
		if total > 0 {
			return total
		}
	}

	perQuestion := math.Floor(100 / float64(len(answered)))
	return math.Min(100, float64(len(answered))*perQuestion)
}

func hasOptionScore(q model.Question) bool {
	for _, opt := range q.Options {
		if opt.Score != nil {
			return true
		}
	}
	return false
}

// questionScore resolves one question's weighted contribution. Multi-choice
// answers sum every selected option that carries a score; single-choice and
// text answers take the matched option's score, or 0 when the answer matches
// no scored option.
func questionScore(q model.Question, answer string) float64 {
	if q.Type == model.QuestionTypeMultipleChoice {
		selected := make(map[string]bool)
		for _, key := range strings.Split(answer, ",") {
			selected[strings.TrimSpace(key)] = true
		}
		total := 0.0
		for _, opt := range q.Options {
			if opt.Score != nil && selected[opt.Key] {
				total += *opt.Score
			}
		}
		return total
	}

	key := strings.TrimSpace(answer)
	for _, opt := range q.Options {
		if opt.Score != nil && opt.Key == key {
			return *opt.Score
		}
	}
	return 0
}
