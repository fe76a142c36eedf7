package ecs

import "sort"

// System is one logic unit invoked once per tick over the shared World.
type System interface {
	Process(w *World, dt float64) error
}

type scheduledSystem struct {
	system   System
	priority int
	seq      int // insertion order, tie-breaker
}

// Scheduler runs an ordered list of systems once per tick.
// Higher priority runs first. Single-threaded: one tick fully completes each
// system's Process before the next begins.
type Scheduler struct {
	systems []scheduledSystem
	nextSeq int
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AddSystem registers a system at the given priority. Systems with equal
// priority run in insertion order. Calling AddSystem while a Tick is in
// progress is a precondition violation; the result is undefined.
func (s *Scheduler) AddSystem(sys System, priority int) {
	s.systems = append(s.systems, scheduledSystem{system: sys, priority: priority, seq: s.nextSeq})
	s.nextSeq++
	sort.Slice(s.systems, func(i, j int) bool {
		if s.systems[i].priority != s.systems[j].priority {
			return s.systems[i].priority > s.systems[j].priority
		}
		return s.systems[i].seq < s.systems[j].seq
	})
}

// Len returns the number of registered systems.
func (s *Scheduler) Len() int { return len(s.systems) }

// Tick invokes every system's Process once, in descending-priority order,
// passing dt through unchanged. The first system error aborts the tick and
// is returned to the caller.
func (s *Scheduler) Tick(w *World, dt float64) error {
	for _, entry := range s.systems {
		if err := entry.system.Process(w, dt); err != nil {
			return err
		}
	}
	return nil
}
