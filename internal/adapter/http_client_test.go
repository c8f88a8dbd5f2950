package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroshal/tastebook/models"
)

type staticTokenSource struct {
	token *string
}

func (s staticTokenSource) Token() *string { return s.token }

func strPtr(s string) *string { return &s }

func newTestAdapter(t *testing.T, token *string, handler http.HandlerFunc) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPServerAdapter(HTTPClientConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, staticTokenSource{token: token})
}

func TestLogin_Success(t *testing.T) {
	var gotEmail, gotPassword string
	a := newTestAdapter(t, nil, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		gotEmail = r.FormValue("email")
		gotPassword = r.FormValue("password")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Logged in","token":"tok-1","user":{"id":"1","username":"amy","email":"a@x.com"}}`))
	})

	auth, err := a.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", gotEmail)
	assert.Equal(t, "secret", gotPassword)
	assert.Equal(t, "tok-1", auth.Token)
	assert.Equal(t, "amy", auth.User.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	a := newTestAdapter(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})

	_, err := a.Login(context.Background(), "a@x.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestRegister_SendsFormFields(t *testing.T) {
	a := newTestAdapter(t, nil, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		assert.Equal(t, "amy", r.FormValue("username"))
		assert.Equal(t, "a@x.com", r.FormValue("email"))
		assert.Equal(t, "secret", r.FormValue("password"))
		assert.Equal(t, "home cook", r.FormValue("bio"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Registered","token":"tok-1","user":{"id":"1","username":"amy","email":"a@x.com","bio":"home cook"}}`))
	})

	auth, err := a.Register(context.Background(), RegisterRequest{
		Username: "amy",
		Email:    "a@x.com",
		Password: "secret",
		Bio:      "home cook",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", auth.Token)
}

func TestMe_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	a := newTestAdapter(t, strPtr("tok-42"), func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"id":"1","username":"amy","email":"a@x.com"}}`))
	})

	me, err := a.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-42", gotAuth)
	assert.Equal(t, "amy", me.Username)
}

func TestMe_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	a := newTestAdapter(t, nil, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Not authenticated"}`))
	})

	_, err := a.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, gotAuth)
}

func TestListRecipes_QueryParams(t *testing.T) {
	a := newTestAdapter(t, nil, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "pasta", q.Get("q"))
		assert.Equal(t, "Italian", q.Get("cuisine"))
		assert.Equal(t, "Easy", q.Get("difficulty"))
		assert.Equal(t, "45", q.Get("max_time"))
		assert.Equal(t, "20", q.Get("skip"))
		assert.Equal(t, "10", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"r1","title":"Carbonara"}],"total":1,"skip":20,"limit":10}`))
	})

	list, err := a.ListRecipes(context.Background(), models.RecipeFilter{
		Query:      "pasta",
		Cuisine:    "Italian",
		Difficulty: "Easy",
		MaxTimeMin: 45,
		Skip:       20,
		Limit:      10,
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Carbonara", list.Items[0].Title)
	assert.Equal(t, 1, list.Total)
}

func TestListRecipes_ZeroFilterSendsNoParams(t *testing.T) {
	a := newTestAdapter(t, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"total":0,"skip":0,"limit":20}`))
	})

	_, err := a.ListRecipes(context.Background(), models.RecipeFilter{})
	require.NoError(t, err)
}

func TestCreateRecipe_SerializesIngredientsAndSteps(t *testing.T) {
	a := newTestAdapter(t, strPtr("tok-1"), func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Pancakes", r.FormValue("title"))
		assert.Equal(t, "2", r.FormValue("servings"))
		assert.JSONEq(t, `[{"name":"Flour","qty":2,"unit":"cups"}]`, r.FormValue("ingredients_json"))
		assert.JSONEq(t, `[{"text":"Mix."},{"text":"Fry."}]`, r.FormValue("steps_json"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Recipe created","recipe":{"id":"r1","title":"Pancakes"}}`))
	})

	created, err := a.CreateRecipe(context.Background(), models.RecipeInput{
		Title:    "Pancakes",
		Servings: 2,
		Ingredients: []models.Ingredient{
			{Name: "Flour", Qty: 2, Unit: "cups"},
		},
		Steps: []models.Step{{Text: "Mix."}, {Text: "Fry."}},
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", created.ID)
}

func TestCreateRecipe_NilSlicesBecomeEmptyArrays(t *testing.T) {
	a := newTestAdapter(t, strPtr("tok-1"), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "[]", r.FormValue("ingredients_json"))
		assert.Equal(t, "[]", r.FormValue("steps_json"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"recipe":{"id":"r1"}}`))
	})

	_, err := a.CreateRecipe(context.Background(), models.RecipeInput{Title: "Bare"})
	require.NoError(t, err)
}

func TestUpdateRecipe_Forbidden(t *testing.T) {
	a := newTestAdapter(t, strPtr("tok-1"), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"Not allowed"}`))
	})

	_, err := a.UpdateRecipe(context.Background(), "r1", models.RecipeInput{Title: "Stolen"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestGetRecipe_NotFound(t *testing.T) {
	a := newTestAdapter(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Recipe not found"}`))
	})

	_, err := a.GetRecipe(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Recipe not found")
}

func TestStartCooking_ReturnsSessionID(t *testing.T) {
	a := newTestAdapter(t, strPtr("tok-1"), func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/cooking/start/r1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Started","session_id":"s1"}`))
	})

	sessionID, err := a.StartCooking(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sessionID)
}

func TestCompleteCooking_NoActiveSession(t *testing.T) {
	a := newTestAdapter(t, strPtr("tok-1"), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"No active cooking session"}`))
	})

	err := a.CompleteCooking(context.Background(), "r1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCookingHistory_DecodesItems(t *testing.T) {
	a := newTestAdapter(t, strPtr("tok-1"), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"h1","recipe_id":"r1","recipe_title":"Carbonara","status":"completed"}]}`))
	})

	items, err := a.CookingHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Carbonara", items[0].RecipeTitle)
	assert.Equal(t, models.CookingCompleted, items[0].Status)
}

func TestContextCancellation(t *testing.T) {
	a := newTestAdapter(t, nil, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Me(ctx)
	require.Error(t, err)
}

func TestErrorMessage_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"detail field", http.StatusBadRequest, `{"detail":"Invalid ingredients_json"}`, "Invalid ingredients_json"},
		{"message field", http.StatusBadRequest, `{"message":"Something broke"}`, "Something broke"},
		{"detail wins over message", http.StatusBadRequest, `{"detail":"D","message":"M"}`, "D"},
		{"plain text body", http.StatusBadRequest, "plain failure text", "plain failure text"},
		{"empty body", http.StatusBadRequest, "", "request failed (400)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, nil, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := a.Me(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadRequest)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestTokenExpiry_ValidToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	got, ok := TokenExpiry(raw)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, ok := TokenExpiry(raw)
	assert.False(t, ok)
}

func TestTokenExpiry_Malformed(t *testing.T) {
	_, ok := TokenExpiry("not-a-jwt")
	assert.False(t, ok)
}
