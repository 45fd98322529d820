package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestListUsersEndpoint(t *testing.T) {
	router := newTestRouter(&mockUserUC{
		listFunc: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 1, Username: "alice", ProfileCompleteness: 20},
				{ID: 6, Username: "frank", ProfileCompleteness: 0},
			}, nil
		},
	}, nil, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"id":1,"username":"alice","profile_completeness":20},
		  {"id":6,"username":"frank","profile_completeness":0}]`,
		w.Body.String())
}

func TestListUsersEmpty(t *testing.T) {
	router := newTestRouter(&mockUserUC{
		listFunc: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{}, nil
		},
	}, nil, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateUserEndpoint(t *testing.T) {
	t.Run("201 with new id", func(t *testing.T) {
		router := newTestRouter(&mockUserUC{
			createFunc: func(ctx context.Context, input domain.CreateUserInput) (int64, error) {
				assert.Equal(t, "frank", input.Username)
				assert.Nil(t, input.ProfileCompleteness)
				return 6, nil
			},
		}, nil, nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"username":"frank"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"User created","user_id":6}`, w.Body.String())
	})

	t.Run("400 when username missing", func(t *testing.T) {
		router := newTestRouter(&mockUserUC{
			createFunc: func(ctx context.Context, input domain.CreateUserInput) (int64, error) {
				return 0, apperror.BadRequest("Username is required")
			},
		}, nil, nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Username is required"}`, w.Body.String())
	})

	t.Run("400 when username already exists", func(t *testing.T) {
		router := newTestRouter(&mockUserUC{
			createFunc: func(ctx context.Context, input domain.CreateUserInput) (int64, error) {
				return 0, apperror.Conflict("Username already exists")
			},
		}, nil, nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"username":"alice"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Username already exists"}`, w.Body.String())
	})
}

func TestUpdateUserEndpoint(t *testing.T) {
	t.Run("200 on success", func(t *testing.T) {
		router := newTestRouter(&mockUserUC{
			updateFunc: func(ctx context.Context, id int64, completeness *int) error {
				assert.Equal(t, int64(2), id)
				if assert.NotNil(t, completeness) {
					assert.Equal(t, 80, *completeness)
				}
				return nil
			},
		}, nil, nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/user/2", strings.NewReader(`{"profile_completeness":80}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"User updated"}`, w.Body.String())
	})

	t.Run("absent field passed through as nil", func(t *testing.T) {
		router := newTestRouter(&mockUserUC{
			updateFunc: func(ctx context.Context, id int64, completeness *int) error {
				assert.Nil(t, completeness)
				return nil
			},
		}, nil, nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/user/2", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("404 for unknown user", func(t *testing.T) {
		router := newTestRouter(&mockUserUC{
			updateFunc: func(ctx context.Context, id int64, completeness *int) error {
				return apperror.NotFound("User not found")
			},
		}, nil, nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/user/999", strings.NewReader(`{"profile_completeness":80}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	})

	t.Run("non-integer id is an unknown route", func(t *testing.T) {
		router := newTestRouter(nil, nil, nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/user/abc", strings.NewReader(`{"profile_completeness":80}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"This route does not exist"}`, w.Body.String())
	})
}

func TestAddTrainingEndpoint(t *testing.T) {
	t.Run("200 on success", func(t *testing.T) {
		router := newTestRouter(nil, nil, &mockWishlistUC{
			addFunc: func(ctx context.Context, input domain.AddTrainingInput) error {
				assert.Equal(t, int64(1), input.UserID)
				assert.Equal(t, "Go 101", input.TrainingName)
				return nil
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/training_wishlist",
			strings.NewReader(`{"user_id":1,"training_name":"Go 101"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Training added to wishlist"}`, w.Body.String())
	})

	t.Run("400 when fields missing", func(t *testing.T) {
		router := newTestRouter(nil, nil, &mockWishlistUC{
			addFunc: func(ctx context.Context, input domain.AddTrainingInput) error {
				return apperror.BadRequest("user_id and training_name are required")
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/training_wishlist", strings.NewReader(`{"user_id":1}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"user_id and training_name are required"}`, w.Body.String())
	})
}

func TestAddJobMatchEndpoint(t *testing.T) {
	t.Run("200 on success", func(t *testing.T) {
		router := newTestRouter(nil, nil, nil, &mockJobMatchUC{
			addFunc: func(ctx context.Context, input domain.AddJobMatchInput) error {
				assert.Equal(t, int64(2), input.UserID)
				assert.Equal(t, "SRE", input.JobTitle)
				return nil
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/job_matching_profile",
			strings.NewReader(`{"user_id":2,"job_title":"SRE"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Job added to matching profile"}`, w.Body.String())
	})

	t.Run("400 when fields missing", func(t *testing.T) {
		router := newTestRouter(nil, nil, nil, &mockJobMatchUC{
			addFunc: func(ctx context.Context, input domain.AddJobMatchInput) error {
				return apperror.BadRequest("user_id and job_title are required")
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/job_matching_profile", strings.NewReader(`{"job_title":"SRE"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"user_id and job_title are required"}`, w.Body.String())
	})
}
