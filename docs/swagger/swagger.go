// Package swagger Shop Crawl Service API.
//
// Service for planning multi-stop shopping trips. Resolves a shop list to
// concrete places via AMap, expands chain brands into nearby branches,
// evaluates the branch combinations and returns the best routes ranked by
// time and by distance. Shop lists can be saved as named trips and reloaded.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package swagger
