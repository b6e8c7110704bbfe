package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswersEncodeAsIndexKeyedObject(t *testing.T) {
	b, err := json.Marshal(Answers{0: 1, 1: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"0":1,"1":0}`, string(b))
}

func TestAnswersDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Answers
	}{
		{"object", `{"0":1,"2":3}`, Answers{0: 1, 2: 3}},
		{"list", `[1,-1,3]`, Answers{0: 1, 2: 3}},
		{"empty list", `[]`, Answers{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a Answers
			require.NoError(t, json.Unmarshal([]byte(tc.in), &a))
			assert.Equal(t, tc.want, a)
		})
	}

	var a Answers
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &a))
}

func TestSaveNoteRequestAlwaysSendsNoteID(t *testing.T) {
	b, err := json.Marshal(SaveNoteRequest{Email: "a@b.c", Subject: "s"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"note_id":null`)
}

func TestUploadTimestamp(t *testing.T) {
	assert.Equal(t, "u", Upload{UploadedAt: "u", CreatedAt: "c"}.Timestamp())
	assert.Equal(t, "c", Upload{CreatedAt: "c"}.Timestamp())
}

func TestCloudStatusReady(t *testing.T) {
	assert.True(t, CloudStatus{Configured: true}.Ready())
	assert.True(t, CloudStatus{Available: true}.Ready())
	assert.False(t, CloudStatus{}.Ready())
}
