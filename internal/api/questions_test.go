package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/joestump/stack-underflow/internal/metrics"
	"github.com/joestump/stack-underflow/internal/store"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
)

type questionJSON struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type questionPageJSON struct {
	Page struct {
		Offset     int `json:"offset"`
		MaxResults int `json:"max_results"`
	} `json:"paginationContext"`
	Items []questionJSON `json:"items"`
}

func TestQuestions_Get_Seeded(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/questions/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var q questionJSON
	decode(t, rec, &q)
	if q.ID != "1" || q.Title != "First Question" || q.Content != "Content of question" {
		t.Errorf("question = %+v", q)
	}
	if len(q.Tags) != 1 || q.Tags[0] != "faq" {
		t.Errorf("tags = %v, want [faq]", q.Tags)
	}
}

func TestQuestions_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "GET", "/questions/999", "")
	wantError(t, rec, http.StatusNotFound, "Unable to find provided question id")
}

func TestQuestions_List_Defaults(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 12; i++ {
		env.Store.CreateQuestion(store.QuestionBody{Title: fmt.Sprintf("q%d", i)})
	}

	rec := env.do(t, "GET", "/questions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var page questionPageJSON
	decode(t, rec, &page)
	if page.Page.Offset != 0 || page.Page.MaxResults != 10 {
		t.Errorf("paginationContext = %+v, want offset 0, max_results 10", page.Page)
	}
	if len(page.Items) != 10 {
		t.Errorf("len(items) = %d, want 10", len(page.Items))
	}
	if page.Items[0].ID != "1" {
		t.Errorf("items[0].id = %q, want %q", page.Items[0].ID, "1")
	}
}

func TestQuestions_List_Paging(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		query     string
		wantCount int
		wantFirst string
	}{
		{query: "?offset=1&max_results=1", wantCount: 1, wantFirst: "2"},
		{query: "?offset=2", wantCount: 1, wantFirst: "3"},
		{query: "?offset=50", wantCount: 0},
		{query: "?max_results=0", wantCount: 0},
		{query: "?max_results=100", wantCount: 3, wantFirst: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := env.do(t, "GET", "/questions"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
			}
			var page questionPageJSON
			decode(t, rec, &page)
			if page.Items == nil {
				t.Fatal("items is null, want array")
			}
			if len(page.Items) != tt.wantCount {
				t.Fatalf("len(items) = %d, want %d", len(page.Items), tt.wantCount)
			}
			if tt.wantCount > 0 && page.Items[0].ID != tt.wantFirst {
				t.Errorf("items[0].id = %q, want %q", page.Items[0].ID, tt.wantFirst)
			}
		})
	}
}

func TestQuestions_List_Invalid(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/questions?max_results=150", "")
	wantError(t, rec, http.StatusUnprocessableEntity, "Maximum page size (100) exceeded: 150")

	for _, q := range []string{"?offset=-1", "?max_results=ten", "?offset="} {
		t.Run(q, func(t *testing.T) {
			rec := env.do(t, "GET", "/questions"+q, "")
			wantError(t, rec, http.StatusUnprocessableEntity, "Unable to determine pagination")
		})
	}
}

func TestQuestions_Create(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/questions", `{"title":"New","content":"Body","tags":["go","concurrency"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var q questionJSON
	decode(t, rec, &q)
	if q.ID != "gen-001" {
		t.Errorf("id = %q, want server-assigned %q", q.ID, "gen-001")
	}
	if len(q.Tags) != 2 || q.Tags[0] != "go" || q.Tags[1] != "concurrency" {
		t.Errorf("tags = %v, want [go concurrency]", q.Tags)
	}

	if _, err := env.Store.GetQuestion("gen-001"); err != nil {
		t.Errorf("created question not stored: %v", err)
	}
}

func TestQuestions_Create_IgnoresClientID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/questions", `{"id":"1","title":"Hijack"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	q, err := env.Store.GetQuestion("1")
	if err != nil {
		t.Fatalf("get seeded: %v", err)
	}
	if q.Title != "First Question" {
		t.Errorf("seeded question overwritten: title = %q", q.Title)
	}
}

func TestQuestions_Create_NoTags(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/questions", `{"title":"Untagged","content":"x"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var q questionJSON
	decode(t, rec, &q)
	if q.Tags == nil {
		t.Error("tags is null, want []")
	}
}

func TestQuestions_Create_BadBody(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{`{"title":`, `{"title":"x","tags":[""]}`, `[]`} {
		t.Run(body, func(t *testing.T) {
			rec := env.do(t, "POST", "/questions", body)
			wantError(t, rec, http.StatusBadRequest, "invalid request body")
		})
	}
}

func TestQuestions_Replace(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "PUT", "/questions/1", `{"title":"Edited","content":"New content"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}

	var q questionJSON
	decode(t, rec, &q)
	if q.ID != "1" || q.Title != "Edited" {
		t.Errorf("question = %+v", q)
	}
	if len(q.Tags) != 0 {
		t.Errorf("tags = %v, want cleared", q.Tags)
	}

	stored, err := env.Store.GetQuestion("1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Content != "New content" {
		t.Errorf("stored content = %q", stored.Content)
	}
}

func TestQuestions_Replace_Upserts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "PUT", "/questions/brand-new", `{"title":"Upserted"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	if _, err := env.Store.GetQuestion("brand-new"); err != nil {
		t.Errorf("upserted question missing: %v", err)
	}
}

func TestQuestions_Delete(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "DELETE", "/questions/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}

	rec = env.do(t, "GET", "/questions/1", "")
	wantError(t, rec, http.StatusNotFound, "Unable to find provided question id")

	rec = env.do(t, "DELETE", "/questions/1", "")
	wantError(t, rec, http.StatusNotFound, "Unable to find provided question id")
}

func TestQuestions_EscapedID(t *testing.T) {
	env := newTestEnvWithSeed(t, []byte(`{
		"a/b": {"id": "a/b", "title": "Slash", "content": "c", "tags": []},
		"100%": {"id": "100%", "title": "Percent", "content": "c", "tags": []}
	}`))

	tests := []struct {
		path      string
		wantID    string
		wantTitle string
	}{
		{path: "/questions/a%2Fb", wantID: "a/b", wantTitle: "Slash"},
		{path: "/questions/100%25", wantID: "100%", wantTitle: "Percent"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(t, "GET", tt.path, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
			}
			var q questionJSON
			decode(t, rec, &q)
			if q.ID != tt.wantID || q.Title != tt.wantTitle {
				t.Errorf("question = %+v, want id %q title %q", q, tt.wantID, tt.wantTitle)
			}
		})
	}

	rec := env.do(t, "PUT", "/questions/c%2Fd", `{"title":"Put"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var q questionJSON
	decode(t, rec, &q)
	if q.ID != "c/d" {
		t.Errorf("put id = %q, want %q", q.ID, "c/d")
	}
	if _, err := env.Store.GetQuestion("c/d"); err != nil {
		t.Errorf("stored under decoded id: %v", err)
	}

	rec = env.do(t, "POST", "/questions/a%2Fb/answers", `"escaped"`)
	if rec.Code != http.StatusOK {
		t.Fatalf("answer status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var a answerJSON
	decode(t, rec, &a)
	if a.QuestionID != "a/b" {
		t.Errorf("question_id = %q, want %q", a.QuestionID, "a/b")
	}

	rec = env.do(t, "GET", "/questions/a%2Fb/answers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list answers status = %d; body: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, "DELETE", "/questions/a%2Fb", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d; body: %s", rec.Code, rec.Body.String())
	}
	if _, err := env.Store.GetQuestion("a/b"); err == nil {
		t.Error("question a/b still stored after delete")
	}
}

func TestQuestions_CountGauge(t *testing.T) {
	env := newTestEnv(t)
	gauge := func() float64 { return promtestutil.ToFloat64(metrics.QuestionsTotal) }
	start := gauge()

	steps := []struct {
		method, target, body string
		wantDelta            float64
	}{
		{method: "POST", target: "/questions", body: `{"title":"new"}`, wantDelta: 1},
		{method: "PUT", target: "/questions/1", body: `{"title":"replaced"}`, wantDelta: 1},
		{method: "PUT", target: "/questions/fresh", body: `{"title":"upserted"}`, wantDelta: 2},
		{method: "DELETE", target: "/questions/2", wantDelta: 1},
		{method: "DELETE", target: "/questions/2", wantDelta: 1},
	}
	for _, st := range steps {
		env.do(t, st.method, st.target, st.body)
		if got := gauge() - start; got != st.wantDelta {
			t.Errorf("after %s %s: gauge delta = %v, want %v", st.method, st.target, got, st.wantDelta)
		}
	}
}
