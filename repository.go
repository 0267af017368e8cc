package folio

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Repository is the collection of portfolios a caller works on. It replaces
// a global mutable list: whichever component composes the core owns one.
//
// The repository is not safe for concurrent use; the core guarantees no
// internal concurrency and callers serialize their own operations.
type Repository struct {
	portfolios []*Portfolio
}

// NewRepository returns an empty repository.
func NewRepository() *Repository { return &Repository{} }

// Len returns the number of portfolios.
func (r *Repository) Len() int { return len(r.portfolios) }

// Names returns the portfolio names in insertion order.
func (r *Repository) Names() []string {
	names := make([]string, len(r.portfolios))
	for i, p := range r.portfolios {
		names[i] = p.Name()
	}
	return names
}

// All returns an iterator over portfolios in insertion order.
func (r *Repository) All() iter.Seq[*Portfolio] {
	return func(yield func(*Portfolio) bool) {
		for _, p := range r.portfolios {
			if !yield(p) {
				return
			}
		}
	}
}

func (r *Repository) index(name string) int {
	return slices.IndexFunc(r.portfolios, func(p *Portfolio) bool {
		return strings.EqualFold(p.Name(), name)
	})
}

// Find returns the portfolio with this name, or false.
func (r *Repository) Find(name string) (*Portfolio, bool) {
	if i := r.index(name); i >= 0 {
		return r.portfolios[i], true
	}
	return nil, false
}

// Add inserts a portfolio. Names are unique within the repository.
func (r *Repository) Add(p *Portfolio) error {
	if r.index(p.Name()) >= 0 {
		return fmt.Errorf("portfolio %q already exists", p.Name())
	}
	r.portfolios = append(r.portfolios, p)
	return nil
}

// Adopt replaces the stored portfolio of the same name with the new value
// returned by a mutation. It adds the portfolio when absent.
func (r *Repository) Adopt(p *Portfolio) {
	if i := r.index(p.Name()); i >= 0 {
		r.portfolios[i] = p
		return
	}
	r.portfolios = append(r.portfolios, p)
}

// Remove deletes the portfolio with this name.
func (r *Repository) Remove(name string) error {
	i := r.index(name)
	if i < 0 {
		return fmt.Errorf("portfolio %q does not exist", name)
	}
	r.portfolios = slices.Delete(r.portfolios, i, i+1)
	return nil
}
