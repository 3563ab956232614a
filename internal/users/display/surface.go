// Package display defines the display-surface capability the pipeline renders
// into, plus an HTML implementation for the web page and an in-memory fake
// for tests.
package display

import "usercards/internal/users/render"

// Surface is the injected display capability with the three addressable
// regions the pipeline touches: a loading indicator, an error banner, and a
// card container. The pipeline fully overwrites the container on each run
// (clear, then populate), so a completed operation never leaves a partial
// render behind.
//
// Card text arrives already escaped by the renderer; implementations write it
// into markup verbatim.
type Surface interface {
	// Loading indicator.
	ShowLoading()
	HideLoading()

	// Error banner.
	ShowError(text string)
	HideError()

	// Card container.
	ClearCards()
	AppendCard(card render.Card)
	ShowEmpty()
}
