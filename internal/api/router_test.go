package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/api/middleware"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/mocks"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/service"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/service/auth"
)

const testJWTSecret = "thisisasecretkeythatis32charslong!!"

type testServer struct {
	router     http.Handler
	taskStore  *mocks.TaskStore
	userStore  *mocks.UserStore
	jwtService auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	taskStore := mocks.NewTaskStore()
	userStore := mocks.NewUserStore()
	hasher := auth.NewBcryptHasher(4)
	jwtService := auth.NewJWTService(testJWTSecret, time.Hour)

	taskService := service.NewTaskService(taskStore, nil)
	userService := service.NewUserService(userStore, hasher, nil)

	router := NewRouter(
		NewAuthHandler(userService, jwtService, hasher),
		NewTaskHandler(taskService),
		NewUserHandler(userService),
		middleware.NewAuthenticator(jwtService),
	)

	return &testServer{
		router:     router,
		taskStore:  taskStore,
		userStore:  userStore,
		jwtService: jwtService,
	}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// register creates a user and returns a valid token for it.
func (ts *testServer) register(t *testing.T, username, email, password string) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/auth/register", "", RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	rec = ts.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/auth/register", "", RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "USER", user.Roles)

	// Duplicate username conflicts.
	rec = ts.do(t, http.MethodPost, "/auth/register", "", RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "s3cret-password",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Duplicate email conflicts.
	rec = ts.do(t, http.MethodPost, "/auth/register", "", RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Malformed email is rejected before any store call.
	rec = ts.do(t, http.MethodPost, "/auth/register", "", RegisterRequest{
		Username: "carol",
		Email:    "not-an-email",
		Password: "s3cret-password",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong password yields 401.
	rec = ts.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/tasks", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTaskEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice", "alice@example.com", "s3cret-password")

	today := time.Now().UTC().Format("2006-01-02")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	rec := ts.do(t, http.MethodPost, "/api/tasks", token, TaskRequest{
		Title:       "Buy milk",
		Description: "2% milk",
		Completed:   false,
		DueDate:     today,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, today, created.DueDate)

	// Duplicate title conflicts.
	rec = ts.do(t, http.MethodPost, "/api/tasks", token, TaskRequest{
		Title:       "Buy milk",
		Description: "whole milk",
		DueDate:     today,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Lookups.
	rec = ts.do(t, http.MethodGet, "/api/tasks/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Due tomorrow, so it must stay out of the today view below.
	rec = ts.do(t, http.MethodPost, "/api/tasks", token, TaskRequest{
		Title:       "Inbox-zero",
		Description: "clear the inbox",
		DueDate:     tomorrow,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/tasks/title/Inbox-zero", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/tasks/title/unknown-title", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/tasks/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, fmt.Sprintf("/api/tasks/%s", "00000000-0000-0000-0000-000000000001"), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Only the task due today shows up in the today view; the one due
	// tomorrow is excluded even though it is pending.
	rec = ts.do(t, http.MethodGet, "/api/tasks/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var todayTasks []TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todayTasks))
	require.Len(t, todayTasks, 1)
	assert.Equal(t, "Buy milk", todayTasks[0].Title)

	// Completing the task via update removes it from the today view.
	rec = ts.do(t, http.MethodPut, "/api/tasks", token, TaskRequest{
		Title:       "Buy milk",
		Description: "2% milk",
		Completed:   true,
		DueDate:     today,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/tasks/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	todayTasks = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todayTasks))
	assert.Empty(t, todayTasks)

	rec = ts.do(t, http.MethodGet, "/api/tasks/completed", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var completed []TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	require.Len(t, completed, 1)

	// Updating a non-existent title is 404.
	rec = ts.do(t, http.MethodPut, "/api/tasks", token, TaskRequest{
		Title:       "missing",
		Description: "d",
		DueDate:     today,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Delete by title.
	rec = ts.do(t, http.MethodDelete, "/api/tasks", token, DeleteTaskRequest{Title: "Buy milk"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/tasks", token, DeleteTaskRequest{Title: "Buy milk"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice", "alice@example.com", "s3cret-password")

	rec := ts.do(t, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)

	rec = ts.do(t, http.MethodGet, "/api/users/username/alice", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/users/username/ghost", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/users/"+users[0].ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Update email.
	rec = ts.do(t, http.MethodPut, "/api/users", token, UpdateUserRequest{
		Username: "alice",
		Email:    "new@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "new@example.com", updated.Email)

	// Updating an unknown username is 404.
	rec = ts.do(t, http.MethodPut, "/api/users", token, UpdateUserRequest{
		Username: "ghost",
		Email:    "ghost@example.com",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Delete.
	rec = ts.do(t, http.MethodDelete, "/api/users", token, DeleteUserRequest{Username: "alice"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// The user set is now empty: listing is 404, matching the service
	// contract for users (tasks return an empty list instead).
	rec = ts.do(t, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
