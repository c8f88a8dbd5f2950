package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nroshal/tastebook/models"
)

// HTTPClientConfig configures the resty-backed [ServerAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	tokens TokenSource
}

// NewHTTPServerAdapter builds the HTTP implementation of [ServerAdapter].
// The bearer token is resolved through tokens on every request, so a login
// or logout elsewhere in the process takes effect on the next call without
// any adapter involvement.
func NewHTTPServerAdapter(cfg HTTPClientConfig, tokens TokenSource) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://127.0.0.1:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	a := &httpServerAdapter{client: cli, tokens: tokens}

	cli.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if a.tokens != nil {
			if token := a.tokens.Token(); token != nil {
				r.SetAuthToken(*token)
			}
		}
		return nil
	})

	return a
}

func (h *httpServerAdapter) Register(ctx context.Context, req RegisterRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": req.Username,
			"email":    req.Email,
			"password": req.Password,
			"bio":      req.Bio,
		}).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register decode response: %w", err)
	}

	return auth, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":    email,
			"password": password,
		}).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login decode response: %w", err)
	}

	return auth, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var me models.MeResponse
	if err = json.Unmarshal(resp.Body(), &me); err != nil {
		return models.User{}, fmt.Errorf("me decode response: %w", err)
	}

	return me.User, nil
}

func (h *httpServerAdapter) UpdateMe(ctx context.Context, update ProfileUpdate) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": update.Username,
			"bio":      update.Bio,
		}).
		Put("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var me models.MeResponse
	if err = json.Unmarshal(resp.Body(), &me); err != nil {
		return models.User{}, fmt.Errorf("update profile decode response: %w", err)
	}

	return me.User, nil
}

func (h *httpServerAdapter) ListRecipes(ctx context.Context, filter models.RecipeFilter) (models.RecipeListResponse, error) {
	req := h.client.R().SetContext(ctx)

	if filter.Query != "" {
		req.SetQueryParam("q", filter.Query)
	}
	if filter.Cuisine != "" {
		req.SetQueryParam("cuisine", filter.Cuisine)
	}
	if filter.Difficulty != "" {
		req.SetQueryParam("difficulty", filter.Difficulty)
	}
	if filter.MaxTimeMin > 0 {
		req.SetQueryParam("max_time", strconv.Itoa(filter.MaxTimeMin))
	}
	if filter.Skip > 0 {
		req.SetQueryParam("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}

	resp, err := req.Get("/api/recipes")
	if err != nil {
		return models.RecipeListResponse{}, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecipeListResponse{}, err
	}

	var list models.RecipeListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.RecipeListResponse{}, fmt.Errorf("list recipes decode response: %w", err)
	}

	return list, nil
}

func (h *httpServerAdapter) MyRecipes(ctx context.Context) ([]models.Recipe, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/recipes/mine")
	if err != nil {
		return nil, fmt.Errorf("my recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.RecipeListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("my recipes decode response: %w", err)
	}

	return list.Items, nil
}

func (h *httpServerAdapter) GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/recipes/" + recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	var env models.RecipeResponse
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe decode response: %w", err)
	}

	return env.Recipe, nil
}

func (h *httpServerAdapter) CreateRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error) {
	form, err := recipeFormData(in)
	if err != nil {
		return models.Recipe{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post("/api/recipes")
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	var env models.RecipeResponse
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe decode response: %w", err)
	}

	return env.Recipe, nil
}

func (h *httpServerAdapter) UpdateRecipe(ctx context.Context, recipeID string, in models.RecipeInput) (models.Recipe, error) {
	form, err := recipeFormData(in)
	if err != nil {
		return models.Recipe{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(form).
		Put("/api/recipes/" + recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	var env models.RecipeResponse
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe decode response: %w", err)
	}

	return env.Recipe, nil
}

func (h *httpServerAdapter) DeleteRecipe(ctx context.Context, recipeID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/recipes/" + recipeID)
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) StartCooking(ctx context.Context, recipeID string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/cooking/start/" + recipeID)
	if err != nil {
		return "", fmt.Errorf("start cooking request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var started models.StartCookingResponse
	if err = json.Unmarshal(resp.Body(), &started); err != nil {
		return "", fmt.Errorf("start cooking decode response: %w", err)
	}

	return started.SessionID, nil
}

func (h *httpServerAdapter) CompleteCooking(ctx context.Context, recipeID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/cooking/complete/" + recipeID)
	if err != nil {
		return fmt.Errorf("complete cooking request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CookingHistory(ctx context.Context) ([]models.CookingRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/cooking/history")
	if err != nil {
		return nil, fmt.Errorf("cooking history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var hist models.HistoryResponse
	if err = json.Unmarshal(resp.Body(), &hist); err != nil {
		return nil, fmt.Errorf("cooking history decode response: %w", err)
	}

	return hist.Items, nil
}

// recipeFormData flattens a RecipeInput into the form fields the API
// expects. Ingredients and steps travel as JSON strings next to the scalar
// fields because the endpoint also accepts multipart media uploads.
func recipeFormData(in models.RecipeInput) (map[string]string, error) {
	// nil slices must serialize as "[]", not "null".
	if in.Ingredients == nil {
		in.Ingredients = []models.Ingredient{}
	}
	if in.Steps == nil {
		in.Steps = []models.Step{}
	}

	ingredients, err := json.Marshal(in.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("encode ingredients: %w", err)
	}
	steps, err := json.Marshal(in.Steps)
	if err != nil {
		return nil, fmt.Errorf("encode steps: %w", err)
	}

	return map[string]string{
		"title":            in.Title,
		"description":      in.Description,
		"cuisine_type":     in.CuisineType,
		"difficulty":       in.Difficulty,
		"prep_time_min":    strconv.Itoa(in.PrepTimeMin),
		"cook_time_min":    strconv.Itoa(in.CookTimeMin),
		"servings":         strconv.Itoa(in.Servings),
		"ingredients_json": string(ingredients),
		"steps_json":       string(steps),
	}, nil
}
