package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/ilm-cli/internal/feed"
)

// FrameInterval paces the scroll animation at 60 frames per second.
const FrameInterval = time.Second / 60

type Service interface {
	Regenerate(ctx context.Context) (feed.State, error)
}

type RegenerateSuccessMsg struct {
	State    feed.State
	Duration time.Duration
	Source   string
}

type RegenerateErrorMsg struct {
	Err      error
	Duration time.Duration
	Source   string
}

// FrameMsg advances the scroll spring by one step.
type FrameMsg struct {
	At time.Time
}

type CopySuccessMsg struct {
	Status string
}

type CopyErrorMsg struct {
	Err error
}

func RegenerateCmd(service Service, source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		start := time.Now()

		state, err := service.Regenerate(ctx)
		if err != nil {
			return RegenerateErrorMsg{Err: err, Duration: time.Since(start), Source: source}
		}
		return RegenerateSuccessMsg{State: state, Duration: time.Since(start), Source: source}
	}
}

func FrameTickCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

func CopyTextCmd(text string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return CopyErrorMsg{Err: fmt.Errorf("nothing to copy")}
		}
		if copyFn != nil {
			if err := copyFn(text); err == nil {
				return CopySuccessMsg{Status: "Copied to clipboard"}
			}
		}
		return CopyErrorMsg{Err: fmt.Errorf("could not copy to clipboard")}
	}
}
