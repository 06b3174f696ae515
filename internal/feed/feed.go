// Package feed merges content collections into one shuffled, paged feed and
// tracks which entry is in focus.
package feed

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/glabrego/ilm-cli/internal/content"
	"github.com/glabrego/ilm-cli/internal/render/text"
)

const (
	// LongBodyThreshold is the body length, in characters, above which an
	// entry is rendered truncated with an expand affordance.
	LongBodyThreshold = 350
	// InlineLineLimit is how many wrapped body lines a long entry shows inline.
	InlineLineLimit = 6
	// NoFocus is the focus index of an empty feed.
	NoFocus = -1
)

var ErrNotFound = errors.New("feed entry not found")

// NotFoundError reports an entry ID that is not part of the current feed,
// typically because the feed was regenerated in the meantime.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("feed entry %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func IsLong(body string) bool {
	return text.Length(body) > LongBodyThreshold
}

// Entry is one page of the feed. Entries are compared by ID only.
type Entry struct {
	ID   string
	Item content.Item
	Long bool
}

func (e Entry) Same(other Entry) bool {
	return e.ID == other.ID
}

// State is the result of one aggregation pass plus the focused entry index.
type State struct {
	Entries []Entry
	Focus   int
}

func (s State) Len() int {
	return len(s.Entries)
}

func (s State) Focused() (Entry, bool) {
	if s.Focus < 0 || s.Focus >= len(s.Entries) {
		return Entry{}, false
	}
	return s.Entries[s.Focus], true
}

// WithFocus returns s focused on index. changed is false when index is
// already focused or out of range, in which case s is returned unchanged.
func (s State) WithFocus(index int) (next State, changed bool) {
	if index == s.Focus || index < 0 || index >= len(s.Entries) {
		return s, false
	}
	s.Focus = index
	return s, true
}

func (s State) IndexOf(id string) int {
	for i, entry := range s.Entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// Expand returns the full item behind id for detail display.
func (s State) Expand(id string) (content.Item, error) {
	i := s.IndexOf(id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}
	return s.Entries[i].Item, nil
}

type Option func(*Aggregator)

// WithRand makes shuffles reproducible in tests.
func WithRand(r *rand.Rand) Option {
	return func(a *Aggregator) {
		a.rng = r
	}
}

func WithIDFunc(fn func() string) Option {
	return func(a *Aggregator) {
		a.newID = fn
	}
}

// Aggregator builds feed states. It is safe for concurrent use.
type Aggregator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	newID func() string
}

func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Regenerate flattens collections in order, tags every item with its
// collection and source group labels, and returns a uniformly shuffled state
// focused on the first entry.
func (a *Aggregator) Regenerate(collections []content.Collection) State {
	entries := make([]Entry, 0, content.TotalItems(collections))
	for _, c := range collections {
		for _, group := range c.Groups {
			for _, item := range group.Items {
				item = content.Tag(item, c.Label, group.Label)
				entries = append(entries, Entry{
					ID:   a.newID(),
					Item: item,
					Long: IsLong(content.Body(item)),
				})
			}
		}
	}

	a.mu.Lock()
	a.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	a.mu.Unlock()

	focus := 0
	if len(entries) == 0 {
		focus = NoFocus
	}
	return State{Entries: entries, Focus: focus}
}

// UpdateFocus picks the index whose position is closest to center. It
// returns current when offsets is empty. Ties go to the lowest index.
func UpdateFocus(offsets map[int]float64, center float64, current int) int {
	if len(offsets) == 0 {
		return current
	}
	indices := make([]int, 0, len(offsets))
	for i := range offsets {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	best := indices[0]
	bestDist := math.Abs(offsets[best] - center)
	for _, i := range indices[1:] {
		if d := math.Abs(offsets[i] - center); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
