package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/mode"
)

// Source reads chords from a tcell screen.
type Source struct {
	screen   tcell.Screen
	onResize func(width, height int)
	mu       sync.Mutex
}

// NewSource creates a chord source over an initialized screen.
func NewSource(screen tcell.Screen) *Source {
	return &Source{screen: screen}
}

// OnResize registers a callback for terminal resize events.
func (s *Source) OnResize(callback func(width, height int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onResize = callback
}

// Next blocks until the next key event that converts to a chord.
// Mouse, paste and focus events are skipped, as are keys FromEvent rejects.
// It returns ErrClosed once the screen is finalized.
func (s *Source) Next() (key.Chord, error) {
	for {
		ev := s.screen.PollEvent()
		switch e := ev.(type) {
		case nil:
			return key.Chord{}, ErrClosed
		case *tcell.EventKey:
			if c, ok := FromEvent(e); ok {
				return c, nil
			}
		case *tcell.EventResize:
			s.mu.Lock()
			cb := s.onResize
			s.mu.Unlock()
			if cb != nil {
				w, h := e.Size()
				cb(w, h)
			}
		}
	}
}

// Post queues c on the screen as if it had been typed.
func (s *Source) Post(c key.Chord) error {
	return s.screen.PostEvent(ToEvent(c))
}

// ShowMode sets the cursor style for m.
func (s *Source) ShowMode(m mode.Mode) {
	s.screen.SetCursorStyle(CursorStyle(m.CursorStyle()))
}
