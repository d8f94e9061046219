// Package masthead keeps a published header-height value in sync with the
// rendered height of a page's header element.
//
// The site's stylesheet offsets sticky content by a document-wide style
// variable. That variable is only correct if something re-measures the header
// whenever layout changes, so the package exposes one operation,
// Synchronizer.Synchronize, and wires it to the hosting environment's
// trigger points:
//
//  1. document ready - run once, immediately if readiness already passed
//  2. viewport resize - re-run synchronously
//  3. header box resize - re-run synchronously, when the environment can
//     observe element sizes at all
//
// Synchronize locates the header through a fixed class selector, measures its
// box height in whole pixels, and publishes the result through a Publisher.
// A missing header is not an error: the fallback height is published instead,
// so the variable is always defined even before the header mounts.
//
// EXECUTION MODEL:
//
// Everything here is single-threaded and synchronous. Each trigger runs
// Synchronize to completion before the next event is dispatched, so the
// published value is simply last-write-wins and no locking is involved.
// Callers that dispatch triggers from multiple goroutines must serialize
// them; the hosting environments in this repository already do.
package masthead
