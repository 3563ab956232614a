// Package render maps a fetch outcome to a deterministic sequence of display
// instructions, escaping every piece of untrusted text on the way.
package render

import (
	"strconv"
	"strings"

	"usercards/internal/users/models"
)

// Fallback strings for card fields whose source is absent.
const (
	FallbackID       = "N/A"
	FallbackName     = "Name not available"
	FallbackUsername = "Username not available"
	FallbackEmail    = "Email not available"
	FallbackCity     = "City not available"
)

// Card holds the resolved, escaped display fields for one user.
type Card struct {
	ID       string
	Name     string
	Username string
	Email    string
	City     string
}

// Op discriminates display instructions.
type Op int

const (
	// OpShowCard appends one card to the card container.
	OpShowCard Op = iota
	// OpShowEmpty shows the empty-state message.
	OpShowEmpty
	// OpShowError shows the error banner with a user-facing sentence.
	OpShowError
)

// Instruction is one abstract rendering command for the display surface.
// Card is set for OpShowCard, Message for OpShowError.
type Instruction struct {
	Op      Op
	Card    Card
	Message string
}

// User-facing sentences for each failure kind. The raw diagnostic message is
// never part of an instruction; it belongs in logs only.
var userSentences = map[models.ErrorKind]string{
	models.KindTimeout:             "Request timed out. Please check your connection and try again.",
	models.KindNetworkUnreachable:  "Unable to connect to the server. Please check your internet connection.",
	models.KindHTTPStatus:          "Server error. Please try again later.",
	models.KindInvalidPayloadShape: "An unexpected error occurred. Please try again.",
	models.KindUnknown:             "An unexpected error occurred. Please try again.",
}

// UserSentence resolves the fixed user-facing sentence for a failure kind.
func UserSentence(kind models.ErrorKind) string {
	if s, ok := userSentences[kind]; ok {
		return s
	}
	return userSentences[models.KindUnknown]
}

// htmlEscaper substitutes every markup-significant character in one pass, so
// entities introduced by one substitution are never rescanned by another.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"`", "&#x60;",
	"/", "&#x2F;",
)

// EscapeHTML escapes untrusted text for interpolation into markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Render maps an outcome to its instruction sequence. It is pure: the same
// outcome always yields the same instructions, in the same order.
//
//   - failure        -> exactly one OpShowError with the mapped sentence
//   - empty success  -> exactly one OpShowEmpty
//   - success        -> one OpShowCard per record, in input order
func Render(outcome models.FetchOutcome) []Instruction {
	if outcome.Failed() {
		return []Instruction{{Op: OpShowError, Message: UserSentence(outcome.Err.Kind)}}
	}

	if len(outcome.Users) == 0 {
		return []Instruction{{Op: OpShowEmpty}}
	}

	instructions := make([]Instruction, 0, len(outcome.Users))
	for _, u := range outcome.Users {
		instructions = append(instructions, Instruction{
			Op:   OpShowCard,
			Card: buildCard(u),
		})
	}
	return instructions
}

// buildCard resolves each optional source field to its fallback and escapes
// the result. Fallbacks pass through the same escaping as fetched text so the
// treatment is uniform regardless of source.
func buildCard(u models.UserRecord) Card {
	id := FallbackID
	if u.ID != nil {
		id = strconv.FormatInt(*u.ID, 10)
	}
	return Card{
		ID:       EscapeHTML(id),
		Name:     EscapeHTML(orFallback(u.Name, FallbackName)),
		Username: EscapeHTML(orFallback(u.Username, FallbackUsername)),
		Email:    EscapeHTML(orFallback(u.Email, FallbackEmail)),
		City:     EscapeHTML(orFallback(u.City(), FallbackCity)),
	}
}

func orFallback(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
