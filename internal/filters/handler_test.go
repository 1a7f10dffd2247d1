package filters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"screener-backend/internal/llm"
)

type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(&Service{LLM: client}).RegisterRoutes(r.Group("/"))
	return r
}

func postFilters(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate-filters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGenerateFiltersSuccess(t *testing.T) {
	fake := &fakeLLM{response: `{
		"job_titles": ["Frontend Engineer"],
		"boolean_titles": "\"Frontend Engineer\" OR \"React Developer\"",
		"skills": ["React", "TypeScript"],
		"locations": ["Remote"],
		"keywords": ["hooks"],
		"boolean_keywords": "\"React\" OR \"React.js\"",
		"industries": ["Software"],
		"years_experience": ["5+ years"]
	}`}
	r := newTestRouter(fake)

	resp := postFilters(r, `{"jobDescription":"Need React lead"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var got FilterSet
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !reflect.DeepEqual(got.Skills, []string{"React", "TypeScript"}) {
		t.Fatalf("unexpected skills: %#v", got.Skills)
	}
	if got.BooleanTitles != `"Frontend Engineer" OR "React Developer"` {
		t.Fatalf("unexpected boolean_titles: %q", got.BooleanTitles)
	}
	if fake.calls != 1 {
		t.Fatalf("expected exactly one LLM call, got %d", fake.calls)
	}
}

func TestGenerateFiltersMissingJobDescription(t *testing.T) {
	fake := &fakeLLM{response: `{}`}
	r := newTestRouter(fake)

	for _, body := range []string{`{"jobDescription":""}`, `{"jobDescription":"  \n "}`, `{}`, `not json`} {
		resp := postFilters(r, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, resp.Code)
		}
		if resp.Body.String() != `{"error":"Missing jobDescription"}` {
			t.Fatalf("body %q: unexpected response: %s", body, resp.Body.String())
		}
	}
	if fake.calls != 0 {
		t.Fatalf("no LLM call may happen on validation failure, got %d", fake.calls)
	}
}

func TestGenerateFiltersNonListFieldNormalized(t *testing.T) {
	fake := &fakeLLM{response: `{"skills":"React"}`}
	r := newTestRouter(fake)

	resp := postFilters(r, `{"jobDescription":"Need React lead"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	skills, ok := got["skills"].([]any)
	if !ok {
		t.Fatalf("skills must marshal as a list, got %T", got["skills"])
	}
	if len(skills) != 0 {
		t.Fatalf("non-list skills must normalize to [], got %#v", skills)
	}
	// Every field is present in the response even when the model omits it.
	for _, field := range []string{"job_titles", "boolean_titles", "skills", "locations", "keywords", "boolean_keywords", "industries", "years_experience"} {
		if _, ok := got[field]; !ok {
			t.Fatalf("response missing field %q", field)
		}
	}
}

func TestGenerateFiltersMalformedModelOutput(t *testing.T) {
	fake := &fakeLLM{response: "not json"}
	r := newTestRouter(fake)

	resp := postFilters(r, `{"jobDescription":"Need React lead"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("malformed model JSON must not error to the client, got %d", resp.Code)
	}
	var got FilterSet
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.JobTitles) != 0 || got.BooleanTitles != "" {
		t.Fatalf("expected all-empty set, got %+v", got)
	}
}

func TestGenerateFiltersUpstreamError(t *testing.T) {
	fake := &fakeLLM{err: &llm.UpstreamError{StatusCode: 503, Message: "overloaded"}}
	r := newTestRouter(fake)

	resp := postFilters(r, `{"jobDescription":"Need React lead"}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "status 503") {
		t.Fatalf("expected provider status surfaced, got %s", resp.Body.String())
	}
}
