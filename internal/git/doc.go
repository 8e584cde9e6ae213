// Package git fetches a remote content tree with go-git so a site can be
// built straight from a repository.
package git
