//nolint:testpackage // Tests require internal access for thorough testing
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/abatilo/taskdash/internal/task"
)

// fakeBackend mirrors the real backend's routes and response shapes.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()

	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(User{ID: 1, Username: "ana", Email: body.Email})
	})

	r.Post("/api/auth/register", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		}
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Email == "taken@example.com" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Email already registered"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(User{ID: 2, Username: body.Username, Email: body.Email})
	})

	r.Get("/api/tasks", func(w http.ResponseWriter, req *http.Request) {
		// Envelope shape, like the list route of the real backend
		_ = json.NewEncoder(w).Encode(map[string][]task.Task{
			"tasks": {{ID: 1, Title: "from server", Status: task.StatusPending}},
		})
	})

	r.Post("/api/tasks", func(w http.ResponseWriter, req *http.Request) {
		var body task.Task
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "title is required"})
			return
		}
		body.ID = 42
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	})

	r.Put("/api/tasks/{id}", func(w http.ResponseWriter, req *http.Request) {
		var body task.Task
		_ = json.NewDecoder(req.Body).Decode(&body)
		body.ID = 1
		_ = json.NewEncoder(w).Encode(body)
	})

	r.Delete("/api/tasks/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") == "404" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Task not found"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func testClient(t *testing.T) *Client {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewClient(fakeBackend(t).URL, log)
}

func TestLogin(t *testing.T) {
	c := testClient(t)

	u, err := c.Login(context.Background(), "ana@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if u.ID != 1 || u.Username != "ana" {
		t.Errorf("user = %+v, want id 1 / ana", u)
	}
}

func TestLoginSurfacesServerError(t *testing.T) {
	c := testClient(t)

	_, err := c.Login(context.Background(), "ana@example.com", "wrong")
	if err == nil {
		t.Fatal("Login should fail on bad credentials")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Errorf("message = %q, want the server's text verbatim", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.StatusCode)
	}
}

func TestRegisterSurfacesServerError(t *testing.T) {
	c := testClient(t)

	_, err := c.Register(context.Background(), "ana", "taken@example.com", "pw")
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "Email already registered" {
		t.Fatalf("err = %v, want the server's rejection verbatim", err)
	}
}

func TestListTasksAcceptsEnvelope(t *testing.T) {
	c := testClient(t)

	tasks, err := c.ListTasks(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "from server" {
		t.Errorf("tasks = %v, want the server's single task", tasks)
	}
}

func TestListTasksAcceptsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]task.Task{{ID: 9, Title: "bare"}})
	}))
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	c := NewClient(srv.URL, log)

	tasks, err := c.ListTasks(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 9 {
		t.Errorf("tasks = %v, want the bare-array task", tasks)
	}
}

func TestCreateTask(t *testing.T) {
	c := testClient(t)

	created, err := c.CreateTask(context.Background(), task.Task{Title: "new", Status: task.StatusPending}, 7)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("ID = %d, want the server-assigned 42", created.ID)
	}
	if created.UserID != 7 {
		t.Errorf("UserID = %d, want 7 attached to the request", created.UserID)
	}
}

func TestCreateTaskRejected(t *testing.T) {
	c := testClient(t)

	_, err := c.CreateTask(context.Background(), task.Task{}, 7)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "title is required" {
		t.Fatalf("err = %v, want the validation message", err)
	}
}

func TestDeleteTask(t *testing.T) {
	c := testClient(t)

	if err := c.DeleteTask(context.Background(), 1); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	// Already-deleted behaves like any other failure
	err := c.DeleteTask(context.Background(), 404)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("err = %v, want a 404 *Error", err)
	}
}

func TestTransportFailure(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	c := NewClient("http://127.0.0.1:1", log) // nothing listens here

	_, err := c.ListTasks(context.Background(), 1)
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error type = %T, want *TransportError", err)
	}
}
