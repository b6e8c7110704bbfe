package stub

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"studywise-client/internal/dto"
)

var (
	pdfTextOp = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)\s*Tj`)

	topicPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:topic|unit|chapter|module|lesson|section)\s*\d+[:\-\s]+([^\n.]{3,80})`),
		regexp.MustCompile(`(?m)^\s*\d+\.\s+([A-Z][^\n.]{3,80})`),
		regexp.MustCompile(`(?m)^\s*[•\-*→]\s+([A-Z][^\n.]{3,80})`),
		regexp.MustCompile(`(?m)^\s*[IVX]+\.\s+([A-Z][^\n.]{3,80})`),
	}

	questionLine = regexp.MustCompile(`(?m)^\s*(?:Q\s*\d+[.:)]?\s*)?(.{10,300}\?)\s*$`)
)

const maxTopics = 20

// documentText pulls readable text out of an upload. Uncompressed PDF text
// operators are used when present, otherwise printable runs of the file.
func documentText(content []byte) string {
	if bytes.HasPrefix(content, []byte("%PDF")) {
		var lines []string
		for _, m := range pdfTextOp.FindAllSubmatch(content, -1) {
			lines = append(lines, strings.NewReplacer(`\(`, "(", `\)`, ")", `\\`, `\`).Replace(string(m[1])))
		}
		if len(lines) > 0 {
			return strings.Join(lines, "\n")
		}
	}

	var b strings.Builder
	for _, r := range string(content) {
		if r == '\n' || unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// extractTopics is the rule-based extraction: labelled units, numbered and
// bulleted lists, roman numerals, in that order, deduplicated.
func extractTopics(text string) []string {
	seen := map[string]bool{}
	var topics []string
	add := func(t string) {
		t = strings.TrimSpace(t)
		if len(t) <= 5 || len(t) >= 100 || len(strings.Fields(t)) > 12 || seen[t] {
			return
		}
		seen[t] = true
		topics = append(topics, t)
	}

	for _, p := range topicPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}
	if len(topics) == 0 {
		for _, line := range strings.Split(text, "\n") {
			add(line)
			if len(topics) >= 10 {
				break
			}
		}
	}
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

func extractQuestions(text string) []string {
	var out []string
	for _, m := range questionLine.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}

var distractors = []string{
	"An unrelated historical footnote",
	"A purely decorative convention",
	"None of the concepts listed in the syllabus",
	"A topic outside this subject",
}

// buildQuestions produces n rule-based multiple-choice questions about a
// topic. The correct option rotates through positions 0..3.
func buildQuestions(topic dto.Topic, n int) []dto.Question {
	answer := topic.Description
	if answer == "" {
		answer = "The core ideas of " + topic.Name
	}
	stems := []string{
		"Which statement best describes %s?",
		"What is the main focus when studying %s?",
		"Which of these belongs to %s?",
		"What should you be able to explain after studying %s?",
	}

	questions := make([]dto.Question, 0, n)
	for i := 0; i < n; i++ {
		correct := i % 4
		options := make([]string, 0, 4)
		d := 0
		for pos := 0; pos < 4; pos++ {
			if pos == correct {
				options = append(options, answer)
				continue
			}
			options = append(options, distractors[(i+d)%len(distractors)])
			d++
		}
		c := correct
		questions = append(questions, dto.Question{
			Question:    fmt.Sprintf(stems[i%len(stems)], topic.Name),
			Options:     options,
			Correct:     &c,
			Explanation: fmt.Sprintf("%s is covered under %s.", answer, topic.Name),
		})
	}
	return questions
}
