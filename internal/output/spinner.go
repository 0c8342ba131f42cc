package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

const spinnerInterval = 80 * time.Millisecond

// Spinner displays an animated braille spinner on a writer (typically stderr)
// while the analyzers run. It is safe for concurrent use; Update may be
// called from any goroutine.
type Spinner struct {
	mu      sync.Mutex
	w       io.Writer
	message string
	done    chan struct{}
	stopped bool
}

// NewSpinner creates a spinner that writes to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

// Start begins the spinner animation with the given message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	s.message = message
	s.done = make(chan struct{})
	s.stopped = false
	s.mu.Unlock()

	go s.loop()
}

// Update changes the displayed message while the spinner is running.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stop halts the spinner and clears its line. It is idempotent.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	width := len(s.message) + 4
	s.mu.Unlock()

	close(s.done)

	s.mu.Lock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width))
	s.mu.Unlock()
}

func (s *Spinner) loop() {
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	i := 0
	for {
		select {
		case <-s.done:
			return
		case <-tick.C:
			s.mu.Lock()
			frame := spinnerFrames[i%len(spinnerFrames)]
			// Pad to overwrite leftovers from a longer previous message
			fmt.Fprintf(s.w, "%-80s", fmt.Sprintf("\r%c %s", frame, s.message))
			s.mu.Unlock()
			i++
		}
	}
}
