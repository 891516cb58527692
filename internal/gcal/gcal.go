// Package gcal pushes scheduled tasks to a Google Calendar. Events are
// keyed by a private extended property so repeated pushes update in
// place instead of duplicating.
package gcal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/abatilo/taskdash/internal/config"
	"github.com/abatilo/taskdash/internal/render"
)

// taskIDProperty is the private extended property that links a calendar
// event back to its task.
const taskIDProperty = "taskdash_id"

// eventDuration is how long a pushed event blocks on the calendar.
const eventDuration = time.Hour

// Pusher writes task events to a single Google Calendar.
type Pusher struct {
	srv        *calendar.Service
	calendarID string
	log        logrus.FieldLogger
}

// New builds a Pusher from the calendar configuration. The OAuth token
// must already exist at the configured path; there is no interactive
// authorization flow here.
func New(ctx context.Context, cfg config.Calendar, log logrus.FieldLogger) (*Pusher, error) {
	b, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, &CredentialsError{Path: cfg.CredentialsFile, Err: err}
	}
	oauthCfg, err := google.ConfigFromJSON(b, calendar.CalendarEventsScope)
	if err != nil {
		return nil, &CredentialsError{Path: cfg.CredentialsFile, Err: err}
	}

	tok, err := tokenFromFile(cfg.TokenFile)
	if err != nil {
		return nil, &MissingTokenError{Path: cfg.TokenFile}
	}

	source := oauthCfg.TokenSource(ctx, tok)
	current, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing calendar token: %w", err)
	}
	if current.AccessToken != tok.AccessToken {
		if err := saveToken(cfg.TokenFile, current); err != nil {
			log.WithError(err).Warn("could not persist refreshed calendar token")
		}
	}

	srv, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("building calendar service: %w", err)
	}

	return &Pusher{srv: srv, calendarID: cfg.ID, log: log}, nil
}

// Push upserts one calendar event per task event and reports how many
// were written. The first failure aborts the push.
func (p *Pusher) Push(ctx context.Context, events []render.Event) (int, error) {
	for i, e := range events {
		if err := p.syncEvent(ctx, e); err != nil {
			return i, fmt.Errorf("pushing %q: %w", e.Title, err)
		}
	}
	return len(events), nil
}

func (p *Pusher) syncEvent(ctx context.Context, e render.Event) error {
	body := &calendar.Event{
		Summary: e.Title,
		ColorId: colorID(e.Color),
		Start:   &calendar.EventDateTime{DateTime: e.Start.Format(time.RFC3339)},
		End:     &calendar.EventDateTime{DateTime: e.Start.Add(eventDuration).Format(time.RFC3339)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{taskIDProperty: fmt.Sprintf("%d", e.ID)},
		},
	}

	existing, err := p.findByTaskID(ctx, e.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		created, err := p.srv.Events.Insert(p.calendarID, body).Context(ctx).Do()
		if err != nil {
			return err
		}
		p.log.WithFields(logrus.Fields{"task_id": e.ID, "event_id": created.Id}).Debug("calendar event created")
		return nil
	}

	if !needsUpdate(existing, body) {
		return nil
	}
	updated, err := p.srv.Events.Patch(p.calendarID, existing.Id, body).Context(ctx).Do()
	if err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{"task_id": e.ID, "event_id": updated.Id}).Debug("calendar event updated")
	return nil
}

// Remove deletes the calendar event for a task, if one exists.
func (p *Pusher) Remove(ctx context.Context, taskID int) error {
	existing, err := p.findByTaskID(ctx, taskID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	return p.srv.Events.Delete(p.calendarID, existing.Id).Context(ctx).Do()
}

func (p *Pusher) findByTaskID(ctx context.Context, taskID int) (*calendar.Event, error) {
	events, err := p.srv.Events.List(p.calendarID).
		PrivateExtendedProperty(fmt.Sprintf("%s=%d", taskIDProperty, taskID)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("searching for event: %w", err)
	}
	if len(events.Items) == 0 {
		return nil, nil
	}
	return events.Items[0], nil
}

func needsUpdate(existing, want *calendar.Event) bool {
	if existing.Summary != want.Summary {
		return true
	}
	if existing.ColorId != want.ColorId {
		return true
	}
	if existing.Start == nil || existing.Start.DateTime != want.Start.DateTime {
		return true
	}
	return false
}

// colorID maps a status color to the closest Google Calendar color ID.
func colorID(c render.Color) string {
	switch c {
	case render.ColorAmber:
		return "5" // banana
	case render.ColorTeal:
		return "7" // peacock
	case render.ColorGreen:
		return "10" // basil
	default:
		return "8" // graphite
	}
}
