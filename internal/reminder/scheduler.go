package reminder

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sadopc/moodwheel/internal/logger"
	"github.com/sadopc/moodwheel/internal/store"
)

// DailyID identifies the single daily mood reminder.
const DailyID = "dailyMoodReminder"

const (
	dailyTitle = "Spin your mood for today"
	dailyBody  = "How do you feel?"
)

// Request is a pending local notification. A repeating request fires every
// day at Hour:Minute; otherwise it fires once and is dropped.
type Request struct {
	ID      string
	Hour    int
	Minute  int
	Repeats bool
	Title   string
	Body    string
}

func (r Request) spec() string {
	return fmt.Sprintf("%d %d * * *", r.Minute, r.Hour)
}

func (r Request) validate() error {
	if r.ID == "" {
		return fmt.Errorf("reminder request has no id")
	}
	if r.Hour < 0 || r.Hour > 23 || r.Minute < 0 || r.Minute > 59 {
		return fmt.Errorf("reminder %s: time %02d:%02d out of range", r.ID, r.Hour, r.Minute)
	}
	return nil
}

// DailyRequest builds the daily reminder for the given time of day.
func DailyRequest(hour, minute int) Request {
	return Request{
		ID:      DailyID,
		Hour:    hour,
		Minute:  minute,
		Repeats: true,
		Title:   dailyTitle,
		Body:    dailyBody,
	}
}

type pending struct {
	req   Request
	entry cron.EntryID
}

// Scheduler keeps at most one pending request per ID on a cron runner.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	sender  Sender
	pending map[string]pending
	now     func() time.Time
}

func NewScheduler(sender Sender) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.Local)),
		sender:  sender,
		pending: make(map[string]pending),
		now:     time.Now,
	}
}

// Start runs the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Schedule adds r, replacing any pending request with the same ID.
func (s *Scheduler) Schedule(r Request) error {
	if err := r.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(r.ID)
	id := r.ID
	entry, err := s.cron.AddFunc(r.spec(), func() { s.fire(id) })
	if err != nil {
		return fmt.Errorf("schedule %s: %w", r.ID, err)
	}
	s.pending[r.ID] = pending{req: r, entry: entry}
	logger.Info("Reminder scheduled", "id", r.ID, "at", store.FormatClock(r.Hour, r.Minute), "repeats", r.Repeats)
	return nil
}

// Cancel removes the pending request with the given ID, if any.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeLocked(id) {
		logger.Info("Reminder cancelled", "id", id)
	}
}

// Pending lists the IDs of pending requests in lexical order.
func (s *Scheduler) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Get returns the pending request with the given ID.
func (s *Scheduler) Get(id string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[id]
	return p.req, ok
}

// Next reports the next fire time of a pending request. It is only known
// once the scheduler is running.
func (s *Scheduler) Next(id string) (time.Time, bool) {
	s.mu.Lock()
	p, ok := s.pending[id]
	s.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}
	next := s.cron.Entry(p.entry).Next
	return next, !next.IsZero()
}

// ApplyPreferences schedules the daily reminder when it is enabled and
// cancels it otherwise.
func (s *Scheduler) ApplyPreferences(p store.Preferences) error {
	if !p.ReminderEnabled {
		s.Cancel(DailyID)
		return nil
	}
	return s.Schedule(DailyRequest(p.ReminderHour, p.ReminderMinute))
}

func (s *Scheduler) removeLocked(id string) bool {
	p, ok := s.pending[id]
	if !ok {
		return false
	}
	s.cron.Remove(p.entry)
	delete(s.pending, id)
	return true
}

func (s *Scheduler) fire(id string) {
	s.mu.Lock()
	p, ok := s.pending[id]
	if ok && !p.req.Repeats {
		s.removeLocked(id)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	n := Notification{ID: id, Title: p.req.Title, Body: p.req.Body, At: s.now()}
	if err := s.sender.Send(n); err != nil {
		logger.Error("Reminder delivery failed", "id", id, "error", err)
	}
}
