// Package playlist assembles presentation documents and file
// references into playlist archives the host application can import.
//
// An archive is a ZIP file: the embedded presentations come first as
// uncompressed entries, followed by a "data" entry holding the encoded
// playlist document that references them.
package playlist

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"setlist/internal/rv"
)

// DefaultLibraryFolder names the synthetic folder embedded items are
// addressed under inside the archive.
const DefaultLibraryFolder = "Library"

// Item is one playlist entry. External items reference a document on
// disk by path; embedded items carry the encoded document itself.
type Item struct {
	Name string
	Kind Kind

	// Path references an external document. Empty for embedded items.
	Path string

	// Data is the encoded document of an embedded item.
	Data []byte
}

// External references a document already in the host library.
func External(name string, kind Kind, path string) Item {
	return Item{Name: name, Kind: kind, Path: path}
}

// Embedded carries a document inside the archive.
func Embedded(name string, kind Kind, data []byte) Item {
	return Item{Name: name, Kind: kind, Data: data}
}

// Entry is an embedded blob the archive must carry alongside the
// playlist document, stored at Path inside the archive.
type Entry struct {
	Path string
	Data []byte
}

// Assembler builds playlist documents and archives.
type Assembler struct {
	// LibraryFolder overrides DefaultLibraryFolder.
	LibraryFolder string
}

func (a *Assembler) libraryFolder() string {
	if a.LibraryFolder != "" {
		return a.LibraryFolder
	}
	return DefaultLibraryFolder
}

// Build assembles the playlist document for name. The returned entries
// are the embedded blobs, in item order, that an archive must carry.
func (a *Assembler) Build(name string, items []Item) (*rv.PlaylistDocument, []Entry, error) {
	node := &rv.Playlist{
		UUID: freshUUID(),
		Name: name,
		Type: rv.NodePlaylist,
	}

	var entries []Entry
	used := make(map[string]bool)
	for i, item := range items {
		wireItem, ent, err := a.buildItem(item, used)
		if err != nil {
			return nil, nil, fmt.Errorf("playlist: item %d (%s): %w", i, item.Name, err)
		}
		node.Items = append(node.Items, wireItem)
		if ent != nil {
			entries = append(entries, *ent)
		}
	}

	doc := &rv.PlaylistDocument{
		ApplicationInfo: &rv.ApplicationInfo{
			Platform:        rv.PlatformMacOS,
			PlatformVersion: &rv.Version{MajorVersion: 14},
			Application:     rv.ApplicationProPresenter,
			ApplicationVersion: &rv.Version{
				MajorVersion: 7,
				MinorVersion: 14,
			},
		},
		RootNode: &rv.Playlist{
			UUID:     freshUUID(),
			Name:     "Root",
			Type:     rv.NodeRoot,
			Children: []*rv.Playlist{node},
		},
	}
	return doc, entries, nil
}

func (a *Assembler) buildItem(item Item, used map[string]bool) (*rv.PlaylistItem, *Entry, error) {
	switch {
	case item.Path != "":
		return &rv.PlaylistItem{
			UUID: freshUUID(),
			Name: item.Name,
			Type: &rv.PlaylistItemPresentation{
				URL: &rv.URL{
					Platform: rv.URLPlatformMacOS,
					Storage:  &rv.URLAbsoluteString{Path: item.Path},
				},
				LibraryRelativePath: libraryRelativePath(item.Path),
			},
		}, nil, nil

	case item.Data != nil:
		filename := dedupFilename(Sanitize(item.Name, item.Kind)+".pro", used)
		path := a.libraryFolder() + "/" + filename
		return &rv.PlaylistItem{
			UUID: freshUUID(),
			Name: item.Name,
			Type: &rv.PlaylistItemPresentation{
				LibraryRelativePath: path,
			},
		}, &Entry{Path: path, Data: item.Data}, nil

	default:
		return nil, nil, fmt.Errorf("neither path nor data set")
	}
}

// libraryRelativePath derives the path the host application uses to
// resolve an external reference. Paths inside a Libraries tree keep
// their position below it; anything else falls back to the bare
// filename.
func libraryRelativePath(path string) string {
	norm := strings.ReplaceAll(path, "\\", "/")
	if _, rel, ok := strings.Cut(norm, "/Libraries/"); ok {
		return rel
	}
	if i := strings.LastIndex(norm, "/"); i >= 0 {
		return norm[i+1:]
	}
	return norm
}

// dedupFilename claims a free filename, suffixing " (2)", " (3)" and
// so on before the extension until one is unused.
func dedupFilename(filename string, used map[string]bool) string {
	if !used[filename] {
		used[filename] = true
		return filename
	}
	stem, ext := filename, ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		stem, ext = filename[:i], filename[i:]
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}

// WriteArchive assembles the playlist for name and writes the complete
// archive to w.
func (a *Assembler) WriteArchive(w io.Writer, name string, items []Item) error {
	doc, entries, err := a.Build(name, items)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, ent := range entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   ent.Path,
			Method: zip.Store,
		})
		if err != nil {
			return fmt.Errorf("playlist: archive entry %s: %w", ent.Path, err)
		}
		if _, err := fw.Write(ent.Data); err != nil {
			return fmt.Errorf("playlist: archive entry %s: %w", ent.Path, err)
		}
	}

	fw, err := zw.CreateHeader(&zip.FileHeader{Name: "data", Method: zip.Store})
	if err != nil {
		return fmt.Errorf("playlist: archive data entry: %w", err)
	}
	if _, err := fw.Write(rv.Marshal(doc)); err != nil {
		return fmt.Errorf("playlist: archive data entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("playlist: finalize archive: %w", err)
	}
	return nil
}

func freshUUID() *rv.UUID {
	return rv.NewUUID(strings.ToUpper(uuid.NewString()))
}
