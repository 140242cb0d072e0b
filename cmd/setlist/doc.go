// Command setlist generates, inspects, and assembles presentation
// documents and playlists for a worship service workflow.
package main
