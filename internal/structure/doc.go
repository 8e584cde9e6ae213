// Package structure turns the flat set of content pages into a navigable tree.
//
// Pages are addressed by slash-delimited site paths ("/", "/guides",
// "/guides/setup"). The Index keeps two maps over the same items, one keyed
// by path and one keyed by parent path, and answers the derived navigation
// queries used during page assembly: main menu, side menu, breadcrumbs and
// notification inheritance.
//
// The Index has two phases. During the build phase workers call Insert and
// SetNotifications concurrently. Sort ends the build phase; after it, the
// Index is read-only and every query may be called from any goroutine.
package structure
