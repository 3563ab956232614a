package display

import (
	"strings"

	"usercards/internal/users/render"
)

// EmptyMessage is shown in the card container when the upstream returns no users.
const EmptyMessage = "No users found."

// errorMarker prefixes every user-facing error sentence in the banner.
const errorMarker = "⚠️ "

// HTMLSurface accumulates surface operations and produces an HTML fragment
// with the final state of the three regions. One instance serves one
// operation; it is not safe for concurrent use.
type HTMLSurface struct {
	loading  bool
	errText  string
	hasError bool
	cards    []render.Card
	empty    bool
}

// NewHTMLSurface creates an empty HTML surface.
func NewHTMLSurface() *HTMLSurface {
	return &HTMLSurface{}
}

func (s *HTMLSurface) ShowLoading() { s.loading = true }
func (s *HTMLSurface) HideLoading() { s.loading = false }

func (s *HTMLSurface) ShowError(text string) {
	s.hasError = true
	s.errText = render.EscapeHTML(text)
}

func (s *HTMLSurface) HideError() {
	s.hasError = false
	s.errText = ""
}

func (s *HTMLSurface) ClearCards() {
	s.cards = nil
	s.empty = false
}

func (s *HTMLSurface) AppendCard(card render.Card) {
	s.cards = append(s.cards, card)
}

func (s *HTMLSurface) ShowEmpty() {
	s.empty = true
}

// Fragment renders the current state of all three regions as an HTML fragment.
func (s *HTMLSurface) Fragment() string {
	var b strings.Builder

	b.WriteString(`<div id="loading" class="loading`)
	if !s.loading {
		b.WriteString(` hidden`)
	}
	b.WriteString(`">Loading users...</div>` + "\n")

	b.WriteString(`<div id="error" class="error`)
	if !s.hasError {
		b.WriteString(` hidden`)
	}
	b.WriteString(`">`)
	if s.hasError {
		b.WriteString(errorMarker)
		b.WriteString(s.errText)
	}
	b.WriteString(`</div>` + "\n")

	b.WriteString(`<div id="user-cards" class="card-list">` + "\n")
	switch {
	case s.empty:
		b.WriteString(`<p class="empty">` + EmptyMessage + `</p>` + "\n")
	default:
		for _, card := range s.cards {
			writeCard(&b, card)
		}
	}
	b.WriteString(`</div>` + "\n")

	return b.String()
}

// writeCard emits the markup for one card. Fields are pre-escaped by the
// renderer.
func writeCard(b *strings.Builder, card render.Card) {
	b.WriteString(`<div class="user-card">` + "\n")
	b.WriteString(`<h3>` + card.Name + `</h3>` + "\n")
	b.WriteString(`<p><strong>ID:</strong> ` + card.ID + `</p>` + "\n")
	b.WriteString(`<p><strong>Username:</strong> ` + card.Username + `</p>` + "\n")
	b.WriteString(`<p><strong>Email:</strong> ` + card.Email + `</p>` + "\n")
	b.WriteString(`<p><strong>City:</strong> ` + card.City + `</p>` + "\n")
	b.WriteString(`</div>` + "\n")
}

var _ Surface = (*HTMLSurface)(nil)
