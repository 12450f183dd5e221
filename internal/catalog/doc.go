// Package catalog provides an HTTP client for the house-plants catalog API.
//
// The API exposes two read endpoints, both answered with JSON arrays:
//
//	GET /categories        -> [{"Category": "Succulent"}, ...]
//	GET /category/{name}   -> [{"id": "...", "Common name": [...], ...}, ...]
//
// Every request carries the same two headers, X-RapidAPI-Key and
// X-RapidAPI-Host. They come from a RequestConfig fixed when the client is
// constructed.
//
// # Usage
//
//	client := catalog.NewClient(catalog.RequestConfig{APIKey: key}, nil)
//
//	categories, err := client.Categories(ctx)
//	if err != nil {
//	    return err
//	}
//
//	plants, err := client.PlantsByCategory(ctx, categories[0].Name)
//
// # Errors
//
// All failures are returned as *CatalogError with a Type describing the
// cause: transport (network, timeout, canceled, DNS, connection refused),
// status (auth for 401/403, HTTP for other non-2xx) or payload shape
// (parse). Use the IsXxx helpers to inspect them.
//
// The client never retries and never caches.
package catalog
