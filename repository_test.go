package folio

import "testing"

func TestRepositoryAddFind(t *testing.T) {
	repo := NewRepository()
	if err := repo.Add(NewPortfolio("retirement")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := repo.Add(NewPortfolio("Retirement")); err == nil {
		t.Error("want an error on duplicate name, names are case-insensitive")
	}

	p, ok := repo.Find("RETIREMENT")
	if !ok || p.Name() != "retirement" {
		t.Errorf("Find by any case: got %v %v", p, ok)
	}
	if _, ok := repo.Find("college"); ok {
		t.Error("found a portfolio that was never added")
	}
}

func TestRepositoryAdopt(t *testing.T) {
	repo := NewRepository()
	p := NewPortfolio("retirement")
	repo.Adopt(p)

	next, _ := p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	repo.Adopt(next)

	if repo.Len() != 1 {
		t.Fatalf("got %d portfolios, want the mutation adopted in place", repo.Len())
	}
	got, _ := repo.Find("retirement")
	if got.Size() != 1 {
		t.Errorf("got %d lots, want the mutated state", got.Size())
	}
}

func TestRepositoryRemove(t *testing.T) {
	repo := NewRepository()
	repo.Adopt(NewPortfolio("retirement"))
	if err := repo.Remove("retirement"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if repo.Len() != 0 {
		t.Errorf("got %d portfolios, want 0", repo.Len())
	}
	if err := repo.Remove("retirement"); err == nil {
		t.Error("want an error removing an absent portfolio")
	}
}

func TestRepositoryNames(t *testing.T) {
	repo := NewRepository()
	repo.Adopt(NewPortfolio("b"))
	repo.Adopt(NewPortfolio("a"))
	names := repo.Names()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Errorf("got %v, want insertion order [b a]", names)
	}
}
