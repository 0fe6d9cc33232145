// Package cli is the interactive shell of the recipebox client. It composes
// the session manager, the recipe repository, and the draft form into a
// read–eval–print loop whose available commands depend on whether a user is
// signed in: a signed-out landing set and a signed-in dashboard set.
//
// All rendering goes through an io.Writer held by the App so tests can
// capture output; interactive input helpers carry function-variable seams
// for the same reason.
package cli
