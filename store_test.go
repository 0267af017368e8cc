package folio

import (
	"testing"
)

func TestFileStoreSaveLoad(t *testing.T) {
	store := NewFileStore(t.TempDir())

	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	p, _ = p.AddLot("AAPL", Q(2), MustParseDate("2024-06-04"))

	if err := store.Save(p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !store.Exists("retirement") {
		t.Error("Exists = false after save")
	}

	back, err := store.Load("retirement")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if back.Size() != 2 || back.Name() != "retirement" {
		t.Errorf("got %d lots in %q, want 2 in \"retirement\"", back.Size(), back.Name())
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := NewFileStore(t.TempDir())

	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	if err := store.Save(p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	p, _ = p.Sell("GOOG", Q(4), MustParseDate("2024-06-05"))
	if err := store.Save(p); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	back, err := store.Load("retirement")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := back.TotalShares("GOOG", MustParseDate("2024-06-05")); !got.Equal(Q(6)) {
		t.Errorf("got %s shares, want 6", got)
	}
}

func TestFileStoreListNames(t *testing.T) {
	store := NewFileStore(t.TempDir())
	for _, name := range []string{"b", "a"} {
		p := NewPortfolio(name)
		p, _ = p.AddLot("GOOG", Q(1), MustParseDate("2024-06-03"))
		if err := store.Save(p); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	names, err := store.ListNames()
	if err != nil {
		t.Fatalf("ListNames failed: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("got %v, want [a b]", names)
	}
}

func TestFileStoreListNamesEmptyDir(t *testing.T) {
	store := NewFileStore(t.TempDir() + "/never-created")
	names, err := store.ListNames()
	if err != nil {
		t.Fatalf("ListNames failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("got %v, want none", names)
	}
}

func TestFileStoreLoadAll(t *testing.T) {
	store := NewFileStore(t.TempDir())
	for _, name := range []string{"retirement", "college"} {
		p := NewPortfolio(name)
		p, _ = p.AddLot("GOOG", Q(1), MustParseDate("2024-06-03"))
		if err := store.Save(p); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	repo, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if repo.Len() != 2 {
		t.Fatalf("got %d portfolios, want 2", repo.Len())
	}
	if _, ok := repo.Find("retirement"); !ok {
		t.Error("retirement not loaded")
	}
}

func TestFileStoreDelete(t *testing.T) {
	store := NewFileStore(t.TempDir())
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(1), MustParseDate("2024-06-03"))
	if err := store.Save(p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete("retirement"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.Exists("retirement") {
		t.Error("Exists = true after delete")
	}
	if err := store.Delete("retirement"); err == nil {
		t.Error("want an error deleting an absent portfolio")
	}
}
