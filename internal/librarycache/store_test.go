package librarycache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndLookup(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, "Amazing Grace", "/lib/Amazing Grace.pro"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.Record(ctx, "AMAZING   grace", "/lib/Amazing Grace.pro"); err != nil {
		t.Fatalf("record again: %v", err)
	}

	sel, err := store.Lookup(ctx, "amazing grace")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Path != "/lib/Amazing Grace.pro" {
		t.Errorf("path = %q", sel.Path)
	}
	if sel.Uses != 2 {
		t.Errorf("uses = %d, want 2 after normalized re-record", sel.Uses)
	}
	if sel.LastUsedAt.IsZero() {
		t.Error("last used timestamp missing")
	}
}

func TestRecordNewPathResetsUses(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, "Grace", "/lib/a.pro"); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, "Grace", "/lib/a.pro"); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, "Grace", "/lib/b.pro"); err != nil {
		t.Fatal(err)
	}

	sel, err := store.Lookup(ctx, "Grace")
	if err != nil {
		t.Fatal(err)
	}
	if sel.Path != "/lib/b.pro" || sel.Uses != 1 {
		t.Errorf("selection = %+v, want new path with uses reset", sel)
	}
}

func TestLookupMissing(t *testing.T) {
	store := openTestStore(t)
	sel, err := store.Lookup(context.Background(), "never seen")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if sel != nil {
		t.Errorf("selection = %+v, want nil", sel)
	}
}

func TestListForgetClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		if err := store.Record(ctx, title, "/lib/"+title+".pro"); err != nil {
			t.Fatal(err)
		}
	}

	selections, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(selections) != 3 {
		t.Fatalf("selections = %d, want 3", len(selections))
	}

	removed, err := store.Forget(ctx, "Two")
	if err != nil || !removed {
		t.Fatalf("forget: removed=%v err=%v", removed, err)
	}
	removed, err = store.Forget(ctx, "Two")
	if err != nil || removed {
		t.Fatalf("second forget: removed=%v err=%v", removed, err)
	}

	count, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if count != 2 {
		t.Errorf("cleared = %d, want 2", count)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Record(context.Background(), "Grace", "/lib/a.pro"); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	sel, err := store.Lookup(context.Background(), "Grace")
	if err != nil || sel == nil {
		t.Fatalf("lookup after reopen: sel=%v err=%v", sel, err)
	}
}

func TestResolverPrefersHistoryThenFallsBack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	remembered := filepath.Join(dir, "Amazing Grace (My Chains Are Gone).pro")
	if err := os.WriteFile(remembered, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries := []Entry{
		{Title: "Amazing Grace", Path: filepath.Join(dir, "Amazing Grace.pro")},
		{Title: "Amazing Grace (My Chains Are Gone)", Path: remembered},
	}
	resolver := &Resolver{Store: store, MinScore: 0.5}

	// History pins the longer variant even though fuzzy matching would
	// pick the exact title.
	if err := store.Record(ctx, "Amazing Grace", remembered); err != nil {
		t.Fatal(err)
	}
	entry, ok, err := resolver.Resolve(ctx, "Amazing Grace", entries)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !ok || entry.Path != remembered {
		t.Errorf("entry = %+v ok %v, want remembered pick", entry, ok)
	}

	// Once the remembered file disappears, resolution falls back to the
	// fuzzy match and re-records it.
	if err := os.Remove(remembered); err != nil {
		t.Fatal(err)
	}
	entry, ok, err = resolver.Resolve(ctx, "Amazing Grace", entries)
	if err != nil {
		t.Fatalf("resolve after removal: %v", err)
	}
	if !ok || entry.Title != "Amazing Grace" {
		t.Errorf("entry = %+v ok %v, want fuzzy fallback", entry, ok)
	}
	sel, err := store.Lookup(ctx, "Amazing Grace")
	if err != nil {
		t.Fatal(err)
	}
	if sel == nil || sel.Path != entries[0].Path {
		t.Errorf("history after fallback = %+v", sel)
	}
}

func TestResolverWithoutStore(t *testing.T) {
	resolver := &Resolver{MinScore: 0.5}
	entries := []Entry{{Title: "Silent Night", Path: "/lib/sn.pro"}}

	entry, ok, err := resolver.Resolve(context.Background(), "silent night", entries)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !ok || entry.Path != "/lib/sn.pro" {
		t.Errorf("entry = %+v ok %v", entry, ok)
	}

	if _, ok, _ := resolver.Resolve(context.Background(), "unknown", entries); ok {
		t.Error("expected no match for unknown title")
	}
}
