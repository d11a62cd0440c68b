package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"email-triage/internal/application/port/output"
	"email-triage/internal/domain/entity"
	"email-triage/internal/infrastructure/logger"
)

type fakeClassifier struct {
	gotText string
	result  *entity.ClassificationResult
	err     error
}

func (f *fakeClassifier) Classify(_ context.Context, email entity.Email) (*entity.ClassificationResult, error) {
	f.gotText = email.Text
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func classified(raw string, category entity.Category) *fakeClassifier {
	return &fakeClassifier{result: &entity.ClassificationResult{
		Category:  category,
		RawAnswer: raw,
	}}
}

func postForm(t *testing.T, h *Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/process_email", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ProcessEmail(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestProcessEmail_FormText(t *testing.T) {
	fake := classified("HELLO WORLD", entity.CategoryProductive)
	h := NewHandler(fake, logger.NopLogger{})

	rec := postForm(t, h, url.Values{"email_text": {"summarize: hello world"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "HELLO WORLD", body["response"])
	assert.Equal(t, "productive", body["category"])
	assert.Equal(t, "summarize: hello world", fake.gotText)
}

func TestProcessEmail_FileUpload(t *testing.T) {
	fake := classified("unproductive", entity.CategoryUnproductive)
	h := NewHandler(fake, logger.NopLogger{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("email_file", "mail.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("win a free cruise now"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/process_email", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ProcessEmail(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "win a free cruise now", fake.gotText)
	assert.Equal(t, "unproductive", decodeBody(t, rec)["category"])
}

func TestProcessEmail_TextWinsOverFile(t *testing.T) {
	fake := classified("productive", entity.CategoryProductive)
	h := NewHandler(fake, logger.NopLogger{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("email_text", "from the field"))
	fw, err := mw.CreateFormFile("email_file", "mail.txt")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("from the file"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/process_email", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ProcessEmail(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "from the field", fake.gotText)
}

func TestProcessEmail_NoInput(t *testing.T) {
	h := NewHandler(classified("", entity.CategoryUnproductive), logger.NopLogger{})

	rec := postForm(t, h, url.Values{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no email text provided", decodeBody(t, rec)["error"])
}

func TestProcessEmail_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"authentication", &output.AuthenticationError{StatusCode: 401, Message: "bad key"}, http.StatusBadGateway},
		{"service", &output.ServiceError{StatusCode: 429, Message: "rate limited"}, http.StatusBadGateway},
		{"decode", &output.DecodeError{Reason: "garbage"}, http.StatusBadGateway},
		{"transport", &output.TransportError{Err: context.DeadlineExceeded}, http.StatusGatewayTimeout},
		{"configuration", &output.ConfigurationError{Field: "api_key"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeClassifier{err: tt.err}, logger.NopLogger{})

			rec := postForm(t, h, url.Values{"email_text": {"hello"}})

			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, decodeBody(t, rec)["error"])
		})
	}
}

func TestRouter_Health(t *testing.T) {
	h := NewHandler(classified("", entity.CategoryUnproductive), logger.NopLogger{})
	router := NewRouter(RouterConfig{ServiceName: "email-triage-test"}, h)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := NewHandler(classified("", entity.CategoryUnproductive), logger.NopLogger{})
	router := NewRouter(RouterConfig{
		ServiceName:    "email-triage-test",
		AllowedOrigins: []string{"http://localhost:5173"},
	}, h)

	req := httptest.NewRequest(http.MethodOptions, "/api/process_email", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
