package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/interview-mailer/internal/composer"
	"github.com/jonathan/interview-mailer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockGenerator records the records it was given and returns a canned result
type mockGenerator struct {
	mu    sync.Mutex
	job   map[string]any
	match map[string]any
	draft *types.EmailDraft
	err   error
}

func (m *mockGenerator) GenerateEmail(_ context.Context, job, match map[string]any) (*types.EmailDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.job = job
	m.match = match
	return m.draft, m.err
}

func newTestServer(gen EmailGenerator) *Server {
	return New(Config{Port: 0, ShutdownTimeout: time.Second}, gen, nil)
}

func postGenerate(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"job_parser": {"Extracted": {"company_name": "Acme", "job_position": "Backend Engineer", "openings": 3}},
	"candidate_matching": {"full_name": "Jane Doe", "matching_result": {"comparison_comment": "Great fit"}}
}`

func TestHandleGenerateEmail_Success(t *testing.T) {
	gen := &mockGenerator{draft: &types.EmailDraft{Subject: "You're invited", Body: "Dear Jane Doe"}}
	s := newTestServer(gen)

	rec := postGenerate(t, s, "/generate_email/", validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp types.GenerateEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "You're invited", resp.Email.Subject)
	assert.Equal(t, "Dear Jane Doe", resp.Email.Body)

	extracted := gen.job["Extracted"].(map[string]any)
	assert.Equal(t, "Acme", extracted["company_name"])
	assert.Equal(t, json.Number("3"), extracted["openings"])
	assert.Equal(t, "Jane Doe", gen.match["full_name"])
}

func TestHandleGenerateEmail_WithoutTrailingSlash(t *testing.T) {
	gen := &mockGenerator{draft: &types.EmailDraft{Subject: "s", Body: "b"}}
	s := newTestServer(gen)

	rec := postGenerate(t, s, "/generate_email", validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleGenerateEmail_GenerationFailure(t *testing.T) {
	gen := &mockGenerator{err: fmt.Errorf("%w: polish step failed: upstream 500", composer.ErrGenerationFailed)}
	s := newTestServer(gen)

	rec := postGenerate(t, s, "/generate_email/", validBody)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Error generating email", resp["error"])
	assert.NotContains(t, rec.Body.String(), "upstream")
}

func TestHandleGenerateEmail_InvalidJSON(t *testing.T) {
	gen := &mockGenerator{}
	s := newTestServer(gen)

	rec := postGenerate(t, s, "/generate_email/", `{not json`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Nil(t, gen.job)
}

func TestHandleGenerateEmail_MissingRecord(t *testing.T) {
	gen := &mockGenerator{}
	s := newTestServer(gen)

	rec := postGenerate(t, s, "/generate_email/", `{"job_parser": {}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation error: CandidateMatching - required", resp["error"])
	assert.Nil(t, gen.job)
}

func TestHandleGenerateEmail_NullRecord(t *testing.T) {
	gen := &mockGenerator{}
	s := newTestServer(gen)

	rec := postGenerate(t, s, "/generate_email/", `{"job_parser": null, "candidate_matching": {}}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Nil(t, gen.match)
}

func TestHandleGenerateEmail_MalformedSectionsTolerated(t *testing.T) {
	gen := &mockGenerator{draft: &types.EmailDraft{Subject: "s", Body: "b"}}
	s := newTestServer(gen)

	body := `{"job_parser": {"Extracted": "oops", "rawData": [1, 2]}, "candidate_matching": {"matching_result": 5}}`
	rec := postGenerate(t, s, "/generate_email/", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "oops", gen.job["Extracted"])
	assert.Equal(t, json.Number("5"), gen.match["matching_result"])
}

func TestHandleGenerateEmail_WrongRecordType(t *testing.T) {
	gen := &mockGenerator{}
	s := newTestServer(gen)

	rec := postGenerate(t, s, "/generate_email/", `{"job_parser": [], "candidate_matching": {}}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleGenerateEmail_BodyTooLarge(t *testing.T) {
	gen := &mockGenerator{}
	s := newTestServer(gen)

	body := `{"job_parser": {"x": "` + strings.Repeat("a", maxRequestBytes) + `"}, "candidate_matching": {}}`
	rec := postGenerate(t, s, "/generate_email/", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerateEmail_MethodNotAllowed(t *testing.T) {
	s := newTestServer(&mockGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/generate_email/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&mockGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandleMetrics(t *testing.T) {
	s := newTestServer(&mockGenerator{draft: &types.EmailDraft{}})

	postGenerate(t, s, "/generate_email/", validBody)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "email_http_requests_total")
}

func TestCORS_Preflight(t *testing.T) {
	s := newTestServer(&mockGenerator{})

	req := httptest.NewRequest(http.MethodOptions, "/generate_email/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	gen := &mockGenerator{draft: &types.EmailDraft{Subject: "s", Body: "b"}}
	s := newTestServer(gen)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	url := "http://" + ln.Addr().String() + "/generate_email/"
	resp, err := client.Post(url, "application/json", bytes.NewBufferString(validBody))
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	port := ln.Addr().(*net.TCPAddr).Port
	s := New(Config{Port: port}, &mockGenerator{}, nil)
	s.httpServer.Addr = fmt.Sprintf("127.0.0.1:%d", port)

	err = s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
