package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glabrego/ilm-cli/internal/content"
	"github.com/glabrego/ilm-cli/internal/feed"
)

type fakeService struct {
	state        feed.State
	err          error
	lastDeadline time.Time
}

func (f *fakeService) Regenerate(ctx context.Context) (feed.State, error) {
	if dl, ok := ctx.Deadline(); ok {
		f.lastDeadline = dl
	}
	if f.err != nil {
		return feed.State{}, f.err
	}
	return f.state, nil
}

func TestRegenerateCmd(t *testing.T) {
	state := feed.State{Entries: []feed.Entry{{ID: "a", Item: content.Theme{Title: "Sabr"}}}, Focus: 0}
	svc := &fakeService{state: state}

	msg := RegenerateCmd(svc, "manual")()
	success, ok := msg.(RegenerateSuccessMsg)
	if !ok {
		t.Fatalf("expected RegenerateSuccessMsg, got %T", msg)
	}
	if success.Source != "manual" || success.State.Len() != 1 {
		t.Fatalf("unexpected success payload: %+v", success)
	}
	if svc.lastDeadline.IsZero() {
		t.Fatal("expected regenerate context deadline to be set")
	}
}

func TestRegenerateCmd_Error(t *testing.T) {
	svc := &fakeService{err: errors.New("db locked")}
	msg := RegenerateCmd(svc, "startup")()
	failure, ok := msg.(RegenerateErrorMsg)
	if !ok {
		t.Fatalf("expected RegenerateErrorMsg, got %T", msg)
	}
	if failure.Source != "startup" || failure.Err == nil {
		t.Fatalf("unexpected error payload: %+v", failure)
	}
}

func TestCopyTextCmd(t *testing.T) {
	var copied string
	msg := CopyTextCmd("In the name of God", func(s string) error { copied = s; return nil })()
	if _, ok := msg.(CopySuccessMsg); !ok {
		t.Fatalf("expected CopySuccessMsg, got %T", msg)
	}
	if copied != "In the name of God" {
		t.Fatalf("unexpected copied text: %q", copied)
	}

	msg = CopyTextCmd("x", func(string) error { return errors.New("copy failed") })()
	if _, ok := msg.(CopyErrorMsg); !ok {
		t.Fatalf("expected CopyErrorMsg, got %T", msg)
	}
	msg = CopyTextCmd("", func(string) error { return nil })()
	if _, ok := msg.(CopyErrorMsg); !ok {
		t.Fatalf("expected CopyErrorMsg for empty text, got %T", msg)
	}
}

func TestFrameTickCmd(t *testing.T) {
	msg := FrameTickCmd()()
	if _, ok := msg.(FrameMsg); !ok {
		t.Fatalf("expected FrameMsg, got %T", msg)
	}
}
