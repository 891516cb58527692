// Package api wraps the task backend's REST endpoints. Every operation is
// a single round trip: no retries, no timeouts beyond the caller's context,
// and no client-side state. Reconciling results into the task store is the
// caller's job.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abatilo/taskdash/internal/task"
)

// User is the identity record the auth endpoints return.
type User struct {
	ID        int             `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	CreatedAt *task.Timestamp `json:"created_at,omitempty"`
}

// Client is the API gateway.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     logrus.FieldLogger
}

// NewClient creates a gateway for the given base URL, e.g.
// "http://localhost:5000".
func NewClient(baseURL string, log logrus.FieldLogger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		log:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password. A non-success response
// surfaces the server's error message to the caller.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &u); err != nil {
		return nil, err
	}
	c.log.WithField("user_id", u.ID).Info("Logged in")
	return &u, nil
}

// Register creates an account and returns the new user identity.
func (c *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	req := registerRequest{Username: username, Email: email, Password: password}
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &u); err != nil {
		return nil, err
	}
	c.log.WithField("user_id", u.ID).Info("Registered new user")
	return &u, nil
}

// ListTasks fetches the full task list for a user. The backend emits both a
// bare array and a {"tasks": [...]} envelope depending on the route; both
// are accepted.
func (c *Client) ListTasks(ctx context.Context, userID int) ([]task.Task, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/tasks?user_id=%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	var tasks []task.Task
	if err := json.Unmarshal(raw, &tasks); err == nil {
		return tasks, nil
	}
	var envelope struct {
		Tasks []task.Task `json:"tasks"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &TransportError{Op: "decode task list", Err: err}
	}
	return envelope.Tasks, nil
}

// CreateTask posts a new task for the user and returns the server's record,
// ID assigned.
func (c *Client) CreateTask(ctx context.Context, t task.Task, userID int) (*task.Task, error) {
	t.UserID = userID
	var created task.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", t, &created); err != nil {
		return nil, err
	}
	c.log.WithField("task_id", created.ID).Info("Task created")
	return &created, nil
}

// UpdateTask sends changed fields for an existing task and returns the
// server's updated record.
func (c *Client) UpdateTask(ctx context.Context, id int, t task.Task) (*task.Task, error) {
	var updated task.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), t, &updated); err != nil {
		return nil, err
	}
	c.log.WithField("task_id", updated.ID).Info("Task updated")
	return &updated, nil
}

// DeleteTask removes a task. Deleting an already-deleted task fails like
// any other rejection; there is no special-case recovery.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil); err != nil {
		return err
	}
	c.log.WithField("task_id", id).Info("Task deleted")
	return nil
}

// do performs one JSON round trip. Non-2xx responses decode the server's
// {error} body into *Error; transport failures become *TransportError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	log := c.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"method":     method,
		"path":       path,
	})

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: "encode request", Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: "build request", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.WithError(err).Warn("Request failed in transit")
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var serverErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&serverErr); decodeErr == nil {
			apiErr.Message = serverErr.Error
		}
		log.WithField("status", resp.StatusCode).Warn("Request rejected")
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: "decode response", Err: err}
	}
	return nil
}
