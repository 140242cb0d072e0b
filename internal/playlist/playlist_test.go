package playlist

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"setlist/internal/rv"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
		want string
	}{
		{"scripture full form", "Scripture - 1 Kings 18:18-21 (Connie)", KindScripture, "1 Kings 18v18-21"},
		{"scripture reading prefix", "Scripture Reading: John 3:16", KindScripture, "John 3v16"},
		{"reading prefix", "Reading - Psalm 23:1-6", KindScripture, "Psalm 23v1-6"},
		{"scripture nested parens", "Romans 8:28 (read by (guest))", KindScripture, "Romans 8v28"},
		{"scripture stray close paren", "Romans 8:28) extra", KindScripture, "Romans 8v28 extra"},
		{"scripture only annotation", "Scripture (Robert)", KindScripture, "Untitled"},
		{"lyrics passthrough", "Firm Foundation (He Won't)", KindLyrics, "Firm Foundation (He Won't)"},
		{"lyrics unsafe chars", `What a Friend / We Have`, KindLyrics, "What a Friend We Have"},
		{"text colon", "Prelude: Truro Procession", KindText, "Prelude - Truro Procession"},
		{"text parenthetical", "Welcome (Pastor Dan)", KindText, "Welcome"},
		{"empty", "", KindText, "Untitled"},
		{"whitespace only", "   ", KindLyrics, "Untitled"},
		{"unsafe everywhere", `a<b>c:d"e|f`, KindLyrics, "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in, tt.kind)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Sanitize(got, tt.kind); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestKindForCategory(t *testing.T) {
	tests := []struct {
		category string
		want     Kind
	}{
		{"Song", KindLyrics},
		{"Scripture", KindScripture},
		{"Presentation", KindText},
		{"", KindText},
	}
	for _, tt := range tests {
		if got := KindForCategory(tt.category); got != tt.want {
			t.Errorf("KindForCategory(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestDedupFilenames(t *testing.T) {
	used := make(map[string]bool)
	got := []string{
		dedupFilename("Untitled.pro", used),
		dedupFilename("Untitled.pro", used),
		dedupFilename("Untitled.pro", used),
		dedupFilename("Other.pro", used),
	}
	want := []string{"Untitled.pro", "Untitled (2).pro", "Untitled (3).pro", "Other.pro"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dedup %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildDocumentStructure(t *testing.T) {
	var a Assembler
	doc, entries, err := a.Build("Sunday Service", []Item{
		External("Amazing Grace", KindLyrics, "/data/Libraries/Default/Amazing Grace.pro"),
		Embedded("Scripture - 1 Kings 18:18-21 (Connie)", KindScripture, []byte("blob")),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	root := doc.RootNode
	if root.Name != "Root" || root.Type != rv.NodeRoot {
		t.Errorf("root node = %q %v, want Root container", root.Name, root.Type)
	}
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	child := root.Children[0]
	if child.Name != "Sunday Service" || child.Type != rv.NodePlaylist {
		t.Errorf("child = %q %v", child.Name, child.Type)
	}
	if len(child.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(child.Items))
	}

	ext, ok := child.Items[0].Type.(*rv.PlaylistItemPresentation)
	if !ok {
		t.Fatalf("item 0 type = %T", child.Items[0].Type)
	}
	abs, ok := ext.URL.Storage.(*rv.URLAbsoluteString)
	if !ok || abs.Path != "/data/Libraries/Default/Amazing Grace.pro" {
		t.Errorf("external URL = %+v", ext.URL)
	}
	if ext.LibraryRelativePath != "Default/Amazing Grace.pro" {
		t.Errorf("relative path = %q, want below Libraries", ext.LibraryRelativePath)
	}

	emb, ok := child.Items[1].Type.(*rv.PlaylistItemPresentation)
	if !ok {
		t.Fatalf("item 1 type = %T", child.Items[1].Type)
	}
	if emb.LibraryRelativePath != "Library/1 Kings 18v18-21.pro" {
		t.Errorf("embedded path = %q", emb.LibraryRelativePath)
	}
	if emb.URL != nil {
		t.Errorf("embedded item should not carry a file URL")
	}

	if len(entries) != 1 || entries[0].Path != "Library/1 Kings 18v18-21.pro" {
		t.Fatalf("entries = %+v", entries)
	}
	if !bytes.Equal(entries[0].Data, []byte("blob")) {
		t.Errorf("entry data mismatch")
	}
}

func TestLibraryRelativePathFallsBackToFilename(t *testing.T) {
	var a Assembler
	doc, _, err := a.Build("Service", []Item{
		External("Hymn", KindLyrics, "/home/av/hymn.pro"),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	item := doc.RootNode.Children[0].Items[0].Type.(*rv.PlaylistItemPresentation)
	if item.LibraryRelativePath != "hymn.pro" {
		t.Errorf("relative path = %q, want bare filename", item.LibraryRelativePath)
	}
}

func TestBuildRejectsEmptyItem(t *testing.T) {
	var a Assembler
	if _, _, err := a.Build("Service", []Item{{Name: "Nothing"}}); err == nil {
		t.Errorf("expected error for item with neither path nor data")
	}
}

func TestWriteArchiveLayout(t *testing.T) {
	var a Assembler
	var buf bytes.Buffer
	err := a.WriteArchive(&buf, "Service", []Item{
		Embedded("Scripture (Robert)", KindScripture, []byte("first")),
		Embedded("Scripture (Hope)", KindScripture, []byte("second")),
	})
	if err != nil {
		t.Fatalf("write archive: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}

	wantNames := []string{"Library/Untitled.pro", "Library/Untitled (2).pro", "data"}
	if len(zr.File) != len(wantNames) {
		t.Fatalf("archive has %d entries, want %d", len(zr.File), len(wantNames))
	}
	for i, f := range zr.File {
		if f.Name != wantNames[i] {
			t.Errorf("entry %d = %q, want %q", i, f.Name, wantNames[i])
		}
		if f.Method != zip.Store {
			t.Errorf("entry %q method = %v, want Store", f.Name, f.Method)
		}
	}

	rc, err := zr.File[2].Open()
	if err != nil {
		t.Fatalf("open data entry: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read data entry: %v", err)
	}
	doc, err := rv.UnmarshalPlaylistDocument(data)
	if err != nil {
		t.Fatalf("decode data entry: %v", err)
	}
	items := doc.RootNode.Children[0].Items
	if len(items) != 2 {
		t.Fatalf("decoded items = %d, want 2", len(items))
	}
	first := items[0].Type.(*rv.PlaylistItemPresentation)
	second := items[1].Type.(*rv.PlaylistItemPresentation)
	if first.LibraryRelativePath != "Library/Untitled.pro" || second.LibraryRelativePath != "Library/Untitled (2).pro" {
		t.Errorf("decoded paths = %q, %q", first.LibraryRelativePath, second.LibraryRelativePath)
	}
}
