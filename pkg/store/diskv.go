package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/gridcal/pkg/event"
	"tableflip.dev/gridcal/pkg/timeutil"
)

// ErrNotFound reports an operation referencing an id the store does not hold.
var ErrNotFound = errors.New("store: event not found")

// Persistence is the calendar's event store. It owns the canonical ordered
// collection; the matcher and conflict code only ever see values handed out
// per call.
type Persistence interface {
	List(ctx context.Context) []event.Event
	Get(ctx context.Context, id string) (event.Event, error)
	Create(e *event.Event) error
	Update(e event.Event) error
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (event.Event, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return event.Event{}, err
	}
	var e event.Event
	if err := json.Unmarshal(val, &e); err != nil {
		return event.Event{}, err
	}
	if e.ID == "" {
		e.ID = keyToPathTransform(key).FileName
	}
	return e, nil
}

func (p *persistence) List(ctx context.Context) []event.Event {
	all := make([]event.Event, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			// A record that fails to parse is skipped, never fatal: the rest
			// of the calendar still loads.
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEvents(all)
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (event.Event, error) {
	key, ok := p.findKey(ctx, id)
	if !ok {
		return event.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p.read(key)
}

func (p *persistence) Create(e *event.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return p.write(*e)
}

func (p *persistence) Update(e event.Event) error {
	old, ok := p.findKey(context.Background(), e.ID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, e.ID)
	}
	if err := p.write(e); err != nil {
		return err
	}
	// The anchor date is part of the key, so a moved event leaves a stale
	// record behind that has to be erased.
	if old != toKey(e) {
		return p.d.Erase(old)
	}
	return nil
}

func (p *persistence) Delete(ctx context.Context, id string) error {
	key, ok := p.findKey(ctx, id)
	if !ok {
		return nil // deleting an unknown id is a no-op
	}
	return p.d.Erase(key)
}

func (p *persistence) write(e event.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(e), data)
}

func (p *persistence) findKey(ctx context.Context, id string) (string, bool) {
	if id == "" {
		return "", false
	}
	for key := range p.d.Keys(ctx.Done()) {
		if keyToPathTransform(key).FileName == id {
			return key, true
		}
	}
	return "", false
}

func sortEvents(events []event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		left := events[i]
		right := events[j]
		if !left.Date.SameDay(right.Date.Time) {
			return left.Date.Before(right.Date.Time)
		}
		ls, lerr := timeutil.MinutesSinceMidnight(left.Start)
		rs, rerr := timeutil.MinutesSinceMidnight(right.Start)
		if lerr != nil || rerr != nil || ls == rs {
			return left.ID < right.ID
		}
		return ls < rs
	})
}

const layoutISO = "2006-01-02"

// toKey makes `yyyy-mm-dd-id`, bucketing records by anchor day on disk.
func toKey(e event.Event) string {
	return fmt.Sprintf("%s-%s", e.Date.Local().Format(layoutISO), e.ID)
}

func keyToPathTransform(s string) *diskv.PathKey {
	// The first three segments are the date, everything after is the id
	// (ids may themselves contain dashes).
	parts := strings.SplitN(s, "-", 4)
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
