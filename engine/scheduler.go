package engine

import (
	"container/heap"
	"time"

	"github.com/lixenwraith/deadwood/components"
)

// Task is a deferred continuation; now is the game time of the frame running it
type Task func(now time.Time)

// TaskID identifies a scheduled task for cancellation
type TaskID uint64

type scheduledTask struct {
	id        TaskID
	at        time.Time
	owner     components.EntityID
	fn        Task
	cancelled bool
	index     int
}

type taskHeap []*scheduledTask

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].id < h[j].id
	}
	return h[i].at.Before(h[j].at)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*scheduledTask)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler runs delayed gameplay continuations on the frame goroutine
// Tasks are ordered by due time then by scheduling order, and keyed by the owning
// entity so everything tied to a removed entity can be dropped at once
// Not safe for concurrent use
type Scheduler struct {
	tasks  taskHeap
	byID   map[TaskID]*scheduledTask
	nextID TaskID
	ran    uint64
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks:  make(taskHeap, 0, 64),
		byID:   make(map[TaskID]*scheduledTask),
		nextID: 1,
	}
}

// After schedules fn to run on the first RunDue at or after now+delay
func (s *Scheduler) After(now time.Time, delay time.Duration, owner components.EntityID, fn Task) TaskID {
	t := &scheduledTask{
		id:    s.nextID,
		at:    now.Add(delay),
		owner: owner,
		fn:    fn,
	}
	s.nextID++
	heap.Push(&s.tasks, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel drops a pending task; returns false if it already ran or was cancelled
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	t.cancelled = true
	// Held tasks are outside the heap while RunDue is in progress
	if t.index >= 0 {
		heap.Remove(&s.tasks, t.index)
	}
	return true
}

// CancelOwner drops every pending task owned by the entity and returns how many were dropped
func (s *Scheduler) CancelOwner(owner components.EntityID) int {
	var ids []TaskID
	for id, t := range s.byID {
		if t.owner == owner {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		s.Cancel(id)
	}
	return len(ids)
}

// RunDue runs tasks due at or before now in due order
// Tasks scheduled by a running task wait for the next call even when already due
func (s *Scheduler) RunDue(now time.Time) int {
	limit := s.nextID
	var held []*scheduledTask
	ran := 0
	for len(s.tasks) > 0 && !s.tasks[0].at.After(now) {
		next := heap.Pop(&s.tasks).(*scheduledTask)
		if next.id >= limit {
			held = append(held, next)
			continue
		}
		delete(s.byID, next.id)
		next.fn(now)
		ran++
	}
	for _, t := range held {
		if !t.cancelled {
			heap.Push(&s.tasks, t)
		}
	}
	s.ran += uint64(ran)
	return ran
}

// Len returns the number of pending tasks
func (s *Scheduler) Len() int {
	return len(s.byID)
}

// PendingFor returns the number of pending tasks owned by the entity
func (s *Scheduler) PendingFor(owner components.EntityID) int {
	n := 0
	for _, t := range s.byID {
		if t.owner == owner {
			n++
		}
	}
	return n
}

// Executed returns the total number of tasks run since creation
func (s *Scheduler) Executed() uint64 {
	return s.ran
}
