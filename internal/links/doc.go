// Package links provides the persistent abbreviation to URL store for linked.
//
// Links are stored in ~/.config/linked/links.json as a single flat JSON object:
//
//	{
//	  "docs": "https://pkg.go.dev",
//	  "gh": "https://github.com"
//	}
//
// # Protocol
//
// Every invocation follows the same load, mutate, save cycle:
//   - Load the complete LinkMap with Store.Load
//   - Read or mutate it in memory (Set, Get, Delete)
//   - Persist the complete map with Store.Save
//
// Load rejects content that is not such an object with a *ParseError: null
// targets, empty abbreviations and invalid UTF-8 included.
//
// The Store keeps no map state between calls. A missing or zero-length
// backing file loads as an empty map. Save always writes a full snapshot to a
// temporary file and renames it over the backing file.
//
// # Concurrency
//
// Read-modify-write is not protected across processes. Two commands
// modifying links at the same time can lose one of the updates; the last
// Save wins. The rename in Save only guarantees that readers never observe a
// partially written file.
package links
