package stub

import (
	"fmt"
	"testing"

	"studywise-client/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const syllabusText = `Course Outline
Unit 1: Introduction to Algorithms
Unit 2: Sorting and Searching
Unit 3: Graph Theory Basics
`

func TestDocumentTextPDFOperators(t *testing.T) {
	content := []byte("%PDF-1.4\n1 0 obj\nBT (Unit 1: Intro \\(part one\\)) Tj ET\nBT (Unit 2: Trees) Tj ET\n")
	assert.Equal(t, "Unit 1: Intro (part one)\nUnit 2: Trees", documentText(content))
}

func TestDocumentTextPlain(t *testing.T) {
	content := []byte("  hello\x00 world\n")
	assert.Equal(t, "hello world", documentText(content))
}

func TestExtractTopicsLabelledUnits(t *testing.T) {
	topics := extractTopics(syllabusText)
	assert.Equal(t, []string{
		"Introduction to Algorithms",
		"Sorting and Searching",
		"Graph Theory Basics",
	}, topics)
}

func TestExtractTopicsFallsBackToLines(t *testing.T) {
	text := "Thermodynamics overview\nok\nHeat engines and cycles\nThermodynamics overview\n"
	assert.Equal(t, []string{"Thermodynamics overview", "Heat engines and cycles"}, extractTopics(text))
}

func TestExtractTopicsCapped(t *testing.T) {
	var text string
	for i := 1; i <= 30; i++ {
		text += fmt.Sprintf("Chapter %d: Subject number %d\n", i, i)
	}
	assert.Len(t, extractTopics(text), maxTopics)
}

func TestExtractQuestions(t *testing.T) {
	text := "Q1. What is a binary search tree?\nNot a question line\nExplain Dijkstra's algorithm in detail?\n"
	assert.Equal(t, []string{
		"What is a binary search tree?",
		"Explain Dijkstra's algorithm in detail?",
	}, extractQuestions(text))
}

func TestBuildQuestions(t *testing.T) {
	topic := dto.Topic{Name: "Graphs", Description: "Vertices joined by edges"}
	qs := buildQuestions(topic, 6)
	require.Len(t, qs, 6)

	for i, q := range qs {
		require.Len(t, q.Options, 4)
		require.NotNil(t, q.Correct)
		assert.Equal(t, i%4, *q.Correct)
		assert.Equal(t, "Vertices joined by edges", q.Options[*q.Correct])
		assert.Contains(t, q.Question, "Graphs")
		assert.NotEmpty(t, q.Explanation)
	}
}
