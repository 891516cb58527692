//nolint:testpackage // Tests require internal access for thorough testing
package gcal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"

	"github.com/abatilo/taskdash/internal/config"
	"github.com/abatilo/taskdash/internal/render"
)

func TestNewWithoutCredentials(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	_, err := New(context.Background(), config.Calendar{
		ID:              "primary",
		CredentialsFile: filepath.Join(t.TempDir(), "credentials.json"),
	}, log)

	var credErr *CredentialsError
	if !errors.As(err, &credErr) {
		t.Fatalf("err = %v, want CredentialsError", err)
	}
}

func TestNewWithoutToken(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	dir := t.TempDir()

	creds := filepath.Join(dir, "credentials.json")
	payload := `{"installed":{"client_id":"id","client_secret":"secret",` +
		`"auth_uri":"https://accounts.google.com/o/oauth2/auth",` +
		`"token_uri":"https://oauth2.googleapis.com/token",` +
		`"redirect_uris":["http://localhost"]}}`
	if err := os.WriteFile(creds, []byte(payload), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := New(context.Background(), config.Calendar{
		ID:              "primary",
		CredentialsFile: creds,
		TokenFile:       filepath.Join(dir, "token.json"),
	}, log)

	var tokErr *MissingTokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("err = %v, want MissingTokenError", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")

	want := &oauth2.Token{AccessToken: "abc", RefreshToken: "def"}
	if err := saveToken(path, want); err != nil {
		t.Fatalf("saveToken failed: %v", err)
	}

	got, err := tokenFromFile(path)
	if err != nil {
		t.Fatalf("tokenFromFile failed: %v", err)
	}
	if got.AccessToken != "abc" || got.RefreshToken != "def" {
		t.Errorf("token = %+v", got)
	}
}

func TestNeedsUpdate(t *testing.T) {
	base := func() *calendar.Event {
		return &calendar.Event{
			Summary: "t",
			ColorId: "10",
			Start:   &calendar.EventDateTime{DateTime: "2026-03-01T09:00:00Z"},
		}
	}

	if needsUpdate(base(), base()) {
		t.Error("identical events should not need an update")
	}

	changed := base()
	changed.Summary = "renamed"
	if !needsUpdate(base(), changed) {
		t.Error("title change should trigger an update")
	}

	moved := base()
	moved.Start.DateTime = "2026-03-02T09:00:00Z"
	if !needsUpdate(base(), moved) {
		t.Error("start change should trigger an update")
	}
}

func TestColorID(t *testing.T) {
	tests := []struct {
		color render.Color
		want  string
	}{
		{render.ColorAmber, "5"},
		{render.ColorTeal, "7"},
		{render.ColorGreen, "10"},
		{render.ColorGray, "8"},
		{render.Color("#000000"), "8"},
	}
	for _, tt := range tests {
		if got := colorID(tt.color); got != tt.want {
			t.Errorf("colorID(%q) = %q, want %q", tt.color, got, tt.want)
		}
	}
}
