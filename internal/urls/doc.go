// Package urls holds the external links shown to users, so they can be
// updated in one place.
//
// Usage:
//
//	import "github.com/muurk/plantdeck/internal/urls"
//
//	fmt.Printf("Get a key at %s\n", urls.RapidAPIHub)
package urls
