package display

import (
	"sync"

	"usercards/internal/users/render"
)

// MemorySurface is an in-memory Surface that records every operation, used to
// assert pipeline behavior in tests without any markup involved.
type MemorySurface struct {
	mu sync.Mutex

	LoadingShown  int
	LoadingHidden int
	Loading       bool

	ErrorsShown []string
	ErrorHidden int
	ErrorText   string

	Clears int
	Cards  []render.Card
	Empty  bool

	// PanicOn makes the named operation panic, for exercising the
	// loading-cleared-on-every-path guarantee. Recognized values:
	// "AppendCard", "ShowEmpty", "ShowError".
	PanicOn string
}

// NewMemorySurface creates an empty recording surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{}
}

func (s *MemorySurface) ShowLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LoadingShown++
	s.Loading = true
}

func (s *MemorySurface) HideLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LoadingHidden++
	s.Loading = false
}

func (s *MemorySurface) ShowError(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PanicOn == "ShowError" {
		panic("surface failure in ShowError")
	}
	s.ErrorsShown = append(s.ErrorsShown, text)
	s.ErrorText = text
}

func (s *MemorySurface) HideError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ErrorHidden++
	s.ErrorText = ""
}

func (s *MemorySurface) ClearCards() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Clears++
	s.Cards = nil
	s.Empty = false
}

func (s *MemorySurface) AppendCard(card render.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PanicOn == "AppendCard" {
		panic("surface failure in AppendCard")
	}
	s.Cards = append(s.Cards, card)
}

func (s *MemorySurface) ShowEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PanicOn == "ShowEmpty" {
		panic("surface failure in ShowEmpty")
	}
	s.Empty = true
}

var _ Surface = (*MemorySurface)(nil)
