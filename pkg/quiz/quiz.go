// Package quiz scores the "which course fits me" questionnaire. The
// tally is caller-owned and the recommendation is a pure function of
// it, so callers can reset or replay a session freely.
package quiz

// Track is the learning path an individual quiz answer points at.
type Track string

const (
	TrackFrontend  Track = "frontend"
	TrackBackend   Track = "backend"
	TrackFullstack Track = "fullstack"
)

// Course names shown to the visitor.
const (
	CourseFrontend  = "Frontend Development"
	CourseBackend   = "Backend Development"
	CourseFullstack = "Full Stack Development"

	// CourseDefault is recommended when no answer has been recorded.
	CourseDefault = "Computer Basics"
)

// Tally counts answers per track over one quiz session.
type Tally struct {
	Frontend  int `json:"frontend"`
	Backend   int `json:"backend"`
	Fullstack int `json:"fullstack"`
}

// Add records one answer. Unknown tracks are ignored.
func (t *Tally) Add(track Track) {
	switch track {
	case TrackFrontend:
		t.Frontend++
	case TrackBackend:
		t.Backend++
	case TrackFullstack:
		t.Fullstack++
	}
}

// Reset clears the session.
func (t *Tally) Reset() {
	*t = Tally{}
}

// Total returns the number of answers recorded so far.
func (t Tally) Total() int {
	return t.Frontend + t.Backend + t.Fullstack
}

// Recommend returns the course whose counter is strictly highest. Ties
// resolve in the order frontend, backend, fullstack. An all-zero tally
// yields CourseDefault.
func (t Tally) Recommend() string {
	best := 0
	name := ""

	if t.Frontend > best {
		best, name = t.Frontend, CourseFrontend
	}
	if t.Backend > best {
		best, name = t.Backend, CourseBackend
	}
	if t.Fullstack > best {
		best, name = t.Fullstack, CourseFullstack
	}

	if name == "" {
		return CourseDefault
	}
	return name
}
