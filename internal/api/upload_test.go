package api

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"studywise-client/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func readMultipart(t *testing.T, req recorded) (map[string]string, string) {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(req.ContentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	fields := map[string]string{}
	var file string
	r := multipart.NewReader(strings.NewReader(string(req.Body)), params["boundary"])
	for {
		p, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		if p.FormName() == "file" {
			file = p.FileName() + ":" + string(data)
			continue
		}
		fields[p.FormName()] = string(data)
	}
	return fields, file
}

func TestUploadSyllabusMultipart(t *testing.T) {
	c, b, _ := newTestClient(t, http.StatusOK, `{"success":true,"upload_id":"u1","subject":"Math","topics_count":4}`)

	resp, err := c.UploadSyllabus(context.Background(), FileUpload{Name: "math.pdf", Reader: strings.NewReader("%PDF-1.4")}, "Math")
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TopicsCount)

	req := b.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/upload/syllabus", req.Path)
	assert.NotEqual(t, "application/json", req.ContentType)
	assert.Len(t, req.Header.Values("Content-Type"), 1)

	fields, file := readMultipart(t, req)
	assert.Equal(t, "math.pdf:%PDF-1.4", file)
	assert.Equal(t, map[string]string{
		"subject": "Math",
		"email":   "ada@example.com",
		"ai_mode": string(session.ModeLocal),
	}, fields)
}

func TestUploadPYQMultipart(t *testing.T) {
	c, b, _ := newTestClient(t, http.StatusOK, `{"success":true,"pyqs_count":12}`)

	resp, err := c.UploadPYQ(context.Background(), FileUpload{Name: "pyq.pdf", Reader: strings.NewReader("x")}, "u1")
	require.NoError(t, err)
	assert.Equal(t, 12, resp.PYQsCount)

	fields, _ := readMultipart(t, b.last(t))
	assert.Equal(t, map[string]string{"upload_id": "u1", "email": "ada@example.com"}, fields)
}

func TestUploadFailureMessages(t *testing.T) {
	tests := []struct {
		name   string
		pyq    bool
		body   string
		want   string
		parse  bool
		status int
	}{
		{"syllabus error field", false, `{"error":"Only PDF files allowed"}`, "Only PDF files allowed", false, 400},
		{"syllabus default", false, `{"message":"ignored"}`, "Upload failed", false, 500},
		{"pyq default", true, `{}`, "PYQ upload failed", false, 500},
		{"pyq not json", true, `gateway`, "Bad Gateway", true, 502},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, _ := newTestClient(t, tc.status, tc.body)
			file := FileUpload{Name: "a.pdf", Reader: strings.NewReader("x")}

			var err error
			if tc.pyq {
				_, err = c.UploadPYQ(context.Background(), file, "u1")
			} else {
				_, err = c.UploadSyllabus(context.Background(), file, "Math")
			}
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
			if tc.parse {
				assert.ErrorIs(t, err, ErrParse)
			} else {
				assert.ErrorIs(t, err, ErrRequest)
			}
		})
	}
}

func TestUploadWithoutFile(t *testing.T) {
	c, b, _ := newTestClient(t, http.StatusOK, `{}`)

	log, logs := observedLogger()
	c.log = log

	_, err := c.UploadSyllabus(context.Background(), FileUpload{Name: "none.pdf"}, "Math")
	assert.EqualError(t, err, "no file selected")
	assert.ErrorIs(t, err, ErrNoFile)
	assert.Zero(t, KindOf(err), "nothing was sent, so no request kind applies")
	assert.Zero(t, StatusOf(err))
	assert.Empty(t, b.requests)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Equal(t, "request not sent", errs[0].Message)
	assert.Equal(t, "/upload/syllabus", logDetails(t, errs[0])["endpoint"])
}
