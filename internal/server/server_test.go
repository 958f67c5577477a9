package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/athlytiq/athlytiq/internal/assistant"
	"github.com/athlytiq/athlytiq/internal/config"
	"github.com/athlytiq/athlytiq/internal/database"
	"github.com/athlytiq/athlytiq/internal/gemini"
	"github.com/athlytiq/athlytiq/internal/nutrition"
)

type fakeGen struct {
	result *gemini.Result
	err    error
	calls  int
}

func (f *fakeGen) Ready() error { return nil }

func (f *fakeGen) Generate(_ context.Context, _ gemini.GenerateRequest) (*gemini.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestServer(t *testing.T, gen assistant.Generator) (*Server, http.Handler) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	srv := New(config.DefaultConfig(), db, assistant.NewService(gen), nutrition.NewService(gen))
	mux := http.NewServeMux()
	srv.routes(mux)
	return srv, mux
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return m
}

func TestAIRoutesMissingAPIKey(t *testing.T) {
	client := gemini.NewClient("", "", time.Second)
	_, mux := newTestServer(t, client)

	cases := []struct {
		name string
		path string
		body any
	}{
		{"chat", "/api/chat", map[string]string{"message": "hello"}},
		{"chat greeting", "/api/chat", map[string]any{"message": "", "history": []any{}}},
		{"analyze", "/api/analyze-food", map[string]string{"prompt": "what is this"}},
		{"nutrition", "/api/nutrition-tool", map[string]string{"mode": "recipeGenerator"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, mux, "POST", tc.path, tc.body)
			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rr.Code)
			}
			if got := decodeMap(t, rr)["error"]; got != "API key not configured" {
				t.Errorf("error = %q", got)
			}
		})
	}
}

func TestChatInitialGreeting(t *testing.T) {
	gen := &fakeGen{}
	_, mux := newTestServer(t, gen)

	rr := doJSON(t, mux, "POST", "/api/chat", map[string]any{"message": "", "history": []any{}})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got := decodeMap(t, rr)["response"]; got != assistant.InitialGreeting {
		t.Errorf("response = %q", got)
	}
	if gen.calls != 0 {
		t.Errorf("model called %d times for the greeting", gen.calls)
	}
}

func TestChatSuccess(t *testing.T) {
	gen := &fakeGen{result: &gemini.Result{Text: "Drink more water."}}
	_, mux := newTestServer(t, gen)

	rr := doJSON(t, mux, "POST", "/api/chat", map[string]string{"message": "hydration tips?"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	if got := decodeMap(t, rr)["response"]; got != "Drink more water." {
		t.Errorf("response = %q", got)
	}
}

func TestChatFiltered(t *testing.T) {
	gen := &fakeGen{err: &gemini.FilteredError{Reason: "Content generation stopped due to: SAFETY."}}
	_, mux := newTestServer(t, gen)

	rr := doJSON(t, mux, "POST", "/api/chat", map[string]string{"message": "hi"})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	msg, _ := decodeMap(t, rr)["error"].(string)
	if !strings.Contains(msg, "empty or filtered") {
		t.Errorf("error = %q", msg)
	}
}

func TestAnalyzeFoodMissingPrompt(t *testing.T) {
	gen := &fakeGen{}
	_, mux := newTestServer(t, gen)

	rr := doJSON(t, mux, "POST", "/api/analyze-food", map[string]string{"image_data": "aGk=", "mime_type": "image/png"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decodeMap(t, rr)["error"]; got != "Missing prompt" {
		t.Errorf("error = %q", got)
	}
	if gen.calls != 0 {
		t.Errorf("model called %d times", gen.calls)
	}
}

func TestAnalyzeFoodRejectsNonImageMime(t *testing.T) {
	gen := &fakeGen{}
	_, mux := newTestServer(t, gen)

	rr := doJSON(t, mux, "POST", "/api/analyze-food", map[string]string{
		"prompt":     "analyze this",
		"image_data": "aGk=",
		"mime_type":  "application/pdf",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if gen.calls != 0 {
		t.Errorf("model called %d times before mime check", gen.calls)
	}
}

func TestAnalyzeFoodBlocked(t *testing.T) {
	gen := &fakeGen{err: &gemini.FilteredError{Reason: "Content generation stopped due to: SAFETY."}}
	_, mux := newTestServer(t, gen)

	rr := doJSON(t, mux, "POST", "/api/analyze-food", map[string]string{"prompt": "analyze"})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	want := "AI response was blocked or empty. Please try a different prompt or image."
	if got := decodeMap(t, rr)["error"]; got != want {
		t.Errorf("error = %q", got)
	}
}

func TestNutritionToolModeValidation(t *testing.T) {
	gen := &fakeGen{}
	_, mux := newTestServer(t, gen)

	t.Run("missing", func(t *testing.T) {
		rr := doJSON(t, mux, "POST", "/api/nutrition-tool", map[string]string{"goal": "bulk"})
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		msg, _ := decodeMap(t, rr)["error"].(string)
		if !strings.Contains(msg, "mealPlanner") || !strings.Contains(msg, "recipeGenerator") {
			t.Errorf("error %q does not name both modes", msg)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		rr := doJSON(t, mux, "POST", "/api/nutrition-tool", map[string]string{"mode": "smoothieWizard"})
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		if got := decodeMap(t, rr)["error"]; got != "Invalid mode provided" {
			t.Errorf("error = %q", got)
		}
	})

	if gen.calls != 0 {
		t.Errorf("model called %d times for invalid modes", gen.calls)
	}
}

func TestNutritionToolMealPlan(t *testing.T) {
	planJSON := `{
		"title": "Cut Week",
		"planDurationDays": 1,
		"dailyPlan": [
			{"day": "Day 1", "meals": [{"name": "Breakfast", "items": ["Oats"]}]}
		]
	}`
	gen := &fakeGen{result: &gemini.Result{Text: planJSON}}
	_, mux := newTestServer(t, gen)

	rr := doJSON(t, mux, "POST", "/api/nutrition-tool", map[string]any{
		"mode":             "mealPlanner",
		"planDurationDays": 1,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	result, ok := decodeMap(t, rr)["result"].(map[string]any)
	if !ok {
		t.Fatalf("missing result object: %s", rr.Body.String())
	}
	if result["title"] != "Cut Week" {
		t.Errorf("title = %v", result["title"])
	}
}

func TestNutritionToolMalformedResponse(t *testing.T) {
	gen := &fakeGen{result: &gemini.Result{Text: "sorry, here is your plan in prose"}}
	_, mux := newTestServer(t, gen)

	rr := doJSON(t, mux, "POST", "/api/nutrition-tool", map[string]string{"mode": "mealPlanner"})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	msg, _ := decodeMap(t, rr)["error"].(string)
	if !strings.Contains(msg, "unexpected format") {
		t.Errorf("error = %q", msg)
	}
	if strings.Contains(rr.Body.String(), "prose") {
		t.Errorf("raw model output leaked to caller: %s", rr.Body.String())
	}
}

func TestMealPlanExport(t *testing.T) {
	gen := &fakeGen{}
	_, mux := newTestServer(t, gen)

	plan := map[string]any{
		"title":            "Bulk Basics",
		"planDurationDays": 2,
		"dailyPlan": []map[string]any{
			{"day": "Day 1", "meals": []map[string]any{{"name": "Breakfast", "items": []string{"Eggs"}}}},
			{"day": "Day 2", "meals": []map[string]any{{"name": "Lunch", "items": []string{"Rice"}}}},
		},
	}
	rr := doJSON(t, mux, "POST", "/api/nutrition-tool/export", plan)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "Bulk_Basics_2days.pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")) {
		t.Errorf("body does not start with %%PDF")
	}
}

func TestMealPlanExportEmptyPlan(t *testing.T) {
	gen := &fakeGen{}
	_, mux := newTestServer(t, gen)

	rr := doJSON(t, mux, "POST", "/api/nutrition-tool/export", map[string]any{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decodeMap(t, rr)["error"]; got != "No meal plan data to download." {
		t.Errorf("error = %q", got)
	}
}

func signup(t *testing.T, mux http.Handler, email, password string) *http.Cookie {
	t.Helper()
	rr := doJSON(t, mux, "POST", "/api/auth/signup", map[string]string{"email": email, "password": password})
	if rr.Code != http.StatusCreated {
		t.Fatalf("signup status = %d: %s", rr.Code, rr.Body.String())
	}
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set on signup")
	return nil
}

func TestSignupValidation(t *testing.T) {
	_, mux := newTestServer(t, &fakeGen{})

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "longenough"},
		{"short password", "a@b.com", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, mux, "POST", "/api/auth/signup", map[string]string{"email": tc.email, "password": tc.password})
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	_, mux := newTestServer(t, &fakeGen{})

	signup(t, mux, "dup@example.com", "password123")
	rr := doJSON(t, mux, "POST", "/api/auth/signup", map[string]string{"email": "dup@example.com", "password": "password123"})
	if rr.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rr.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	_, mux := newTestServer(t, &fakeGen{})

	signup(t, mux, "who@example.com", "password123")
	rr := doJSON(t, mux, "POST", "/api/auth/login", map[string]string{"email": "who@example.com", "password": "wrong-password"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
	if got := decodeMap(t, rr)["error"]; got != "Invalid email or password" {
		t.Errorf("error = %q", got)
	}
}

func TestProfileRequiresAuth(t *testing.T) {
	_, mux := newTestServer(t, &fakeGen{})

	rr := doJSON(t, mux, "GET", "/api/profile", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestProfileLifecycle(t *testing.T) {
	_, mux := newTestServer(t, &fakeGen{})
	cookie := signup(t, mux, "lifter@example.com", "password123")

	rr := doJSON(t, mux, "GET", "/api/profile", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", rr.Code, rr.Body.String())
	}
	if got := decodeMap(t, rr)["email"]; got != "lifter@example.com" {
		t.Errorf("seeded email = %v", got)
	}

	rr = doJSON(t, mux, "PUT", "/api/profile", map[string]string{
		"full_name":     "Sam Lifter",
		"email":         "lifter@example.com",
		"fitness_goals": "strength",
	}, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, mux, "GET", "/api/profile", nil, cookie)
	got := decodeMap(t, rr)
	if got["full_name"] != "Sam Lifter" || got["fitness_goals"] != "strength" {
		t.Errorf("profile after update = %v", got)
	}
}

func TestCommentsFlow(t *testing.T) {
	_, mux := newTestServer(t, &fakeGen{})
	cookie := signup(t, mux, "poster@example.com", "password123")

	rr := doJSON(t, mux, "POST", "/api/comments", map[string]string{"content": "  Leg day done!  "}, cookie)
	if rr.Code != http.StatusCreated {
		t.Fatalf("post status = %d: %s", rr.Code, rr.Body.String())
	}
	posted := decodeMap(t, rr)
	if posted["content"] != "Leg day done!" {
		t.Errorf("content = %v", posted["content"])
	}
	if posted["user_name"] != "poster" {
		t.Errorf("user_name = %v", posted["user_name"])
	}

	rr = doJSON(t, mux, "POST", "/api/comments", map[string]string{"content": "   "}, cookie)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("blank content status = %d, want 400", rr.Code)
	}

	rr = doJSON(t, mux, "GET", "/api/comments", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d", rr.Code)
	}
	comments, ok := decodeMap(t, rr)["comments"].([]any)
	if !ok || len(comments) != 1 {
		t.Errorf("comments = %v", comments)
	}
}

func TestFeedbackRatingBounds(t *testing.T) {
	_, mux := newTestServer(t, &fakeGen{})
	cookie := signup(t, mux, "rater@example.com", "password123")

	for _, rating := range []int{0, 6} {
		rr := doJSON(t, mux, "POST", "/api/feedback", map[string]any{"rating": rating}, cookie)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("rating %d status = %d, want 400", rating, rr.Code)
		}
	}

	rr := doJSON(t, mux, "POST", "/api/feedback", map[string]any{"rating": 5, "comment": "great"}, cookie)
	if rr.Code != http.StatusCreated {
		t.Errorf("valid rating status = %d, want 201", rr.Code)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	_, mux := newTestServer(t, &fakeGen{})
	cookie := signup(t, mux, "leaver@example.com", "password123")

	rr := doJSON(t, mux, "POST", "/api/auth/logout", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("logout status = %d", rr.Code)
	}

	rr = doJSON(t, mux, "GET", "/api/profile", nil, cookie)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("profile after logout = %d, want 401", rr.Code)
	}
}

func TestDeleteAccount(t *testing.T) {
	_, mux := newTestServer(t, &fakeGen{})
	cookie := signup(t, mux, "gone@example.com", "password123")

	rr := doJSON(t, mux, "POST", "/api/delete-account", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rr.Code, rr.Body.String())
	}
	if got := decodeMap(t, rr)["message"]; got != "Account deleted successfully" {
		t.Errorf("message = %q", got)
	}

	rr = doJSON(t, mux, "POST", "/api/auth/login", map[string]string{"email": "gone@example.com", "password": "password123"})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("login after delete = %d, want 401", rr.Code)
	}
}
