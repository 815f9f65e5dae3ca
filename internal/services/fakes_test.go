package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"festivalcms/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testTimeout = 5 * time.Second

// fakeTx runs fn directly; err, if set, is returned instead of calling fn.
type fakeTx struct {
	calls int
	err   error
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID   map[string]*domain.Event
	nextID int
	err    error // if set, Create returns this error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeDayRepo is an in-memory EventDayRepository for tests.
type fakeDayRepo struct {
	byID   map[string]*domain.EventDay
	nextID int
	err    error // if set, CreateMany returns this error
}

func newFakeDayRepo() *fakeDayRepo {
	return &fakeDayRepo{byID: make(map[string]*domain.EventDay), nextID: 1}
}

func (f *fakeDayRepo) CreateMany(ctx context.Context, days []*domain.EventDay) error {
	if f.err != nil {
		return f.err
	}
	for _, d := range days {
		d.ID = fmt.Sprintf("day-%d", f.nextID)
		f.nextID++
		cp := *d
		f.byID[d.ID] = &cp
	}
	return nil
}

func (f *fakeDayRepo) GetByID(ctx context.Context, id string) (*domain.EventDay, error) {
	if d, ok := f.byID[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDayRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventDay, error) {
	var out []*domain.EventDay
	for _, d := range f.byID {
		if d.EventID == eventID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayNumber < out[j].DayNumber })
	return out, nil
}

func (f *fakeDayRepo) Update(ctx context.Context, d *domain.EventDay) error {
	if _, ok := f.byID[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	f.byID[d.ID] = &cp
	return nil
}

func (f *fakeDayRepo) DeleteByEventID(ctx context.Context, eventID string) (int64, error) {
	var n int64
	for id, d := range f.byID {
		if d.EventID == eventID {
			delete(f.byID, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeDayRepo) DeleteOrphans(ctx context.Context) (int64, error) { return 0, nil }

// fakeSlotRepo is an in-memory TimeSlotRepository for tests.
type fakeSlotRepo struct {
	byID   map[string]*domain.TimeSlot
	nextID int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{byID: make(map[string]*domain.TimeSlot), nextID: 1}
}

func (f *fakeSlotRepo) Create(ctx context.Context, s *domain.TimeSlot) error {
	s.ID = fmt.Sprintf("slot-%d", f.nextID)
	f.nextID++
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	if s, ok := f.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSlotRepo) List(ctx context.Context, filter domain.TimeSlotFilter) ([]*domain.TimeSlot, error) {
	var out []*domain.TimeSlot
	for _, s := range f.byID {
		if filter.EventID != "" && s.EventID != filter.EventID {
			continue
		}
		if filter.DayID != "" && s.DayID != filter.DayID {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakeSlotRepo) Update(ctx context.Context, s *domain.TimeSlot) error {
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSlotRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSlotRepo) DeleteByDayIDs(ctx context.Context, dayIDs []string) (int64, error) {
	want := make(map[string]bool, len(dayIDs))
	for _, id := range dayIDs {
		want[id] = true
	}
	var n int64
	for id, s := range f.byID {
		if want[s.DayID] {
			delete(f.byID, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeSlotRepo) DeleteOrphans(ctx context.Context) (int64, error) { return 0, nil }

// fakeStorage records saved and deleted URLs. deleteErr makes Delete fail; saveErrAfter
// makes every Save after the first n succeed calls fail.
type fakeStorage struct {
	mu           sync.Mutex
	saved        []string
	deleted      []string
	deleteErr    error
	saveErr      error
	saveErrAfter int
	saves        int
}

func (f *fakeStorage) Save(ctx context.Context, folder string, file *domain.UploadedFile) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil && f.saves > f.saveErrAfter {
		return "", f.saveErr
	}
	url := fmt.Sprintf("/uploads/%s/%d-%s", folder, f.saves, file.Filename)
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) Delete(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return f.deleteErr
}

func testFile(name string) *domain.UploadedFile {
	return &domain.UploadedFile{Filename: name, ContentType: "image/png", Size: 3}
}

var errBoom = errors.New("boom")
