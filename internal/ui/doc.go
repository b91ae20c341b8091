// Package ui hosts a pager.Pager inside a Bubble Tea program. The pager owns
// the selection logic; this package owns everything the terminal needs to
// show it.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (keys, mouse, resize, animation frames,
//     settle timers).
//   - Handlers translate terminal input into pager events: a click on a button
//     becomes SelectByButton, shift+arrows drag the page strip and report
//     OnScrollOffsetChanged, a quiet period after dragging snaps the strip to a
//     page and reports OnDragEnded/OnDecelerateEnded, and a resize becomes
//     OnSizeChanged.
//   - The pager answers synchronously through Model.Apply with declarative
//     commands. Apply only updates host state (button styles, indicator and
//     strip animations); the view is derived from that state on demand.
//
// State ownership:
//   - internal/ui/state holds the animated indicator and the page strip
//     offset. Animations advance on fixed frames so tests drive them
//     deterministically through the Harness.
//   - The selected index lives only in the pager.
package ui
