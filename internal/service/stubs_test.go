package service

import (
	"context"
	"fmt"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/repository"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────

type stubCategoryRepo struct {
	items []model.Category
	seq   int
	err   error // returned by every call when set
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]model.Category(nil), r.items...), nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.items {
		if r.items[i].ID == id {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.items {
		if r.items[i].Slug == slug {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.items {
		if existing.Slug == c.Slug {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	c.ID = fmt.Sprintf("cat-%d", r.seq)
	r.items = append(r.items, *c)
	return nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i].Name = c.Name
			r.items[i].Description = c.Description
			r.items[i].Emoji = c.Emoji
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type stubProductRepo struct {
	items        []model.Product
	categories   *stubCategoryRepo // receives the category set on ReplaceAll
	replaceCalls int
	err          error
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]model.Product(nil), r.items...), nil
}

func (r *stubProductRepo) CountByCategory(_ context.Context, slug string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, p := range r.items {
		if p.Category == slug {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) ReplaceAll(_ context.Context, products []model.Product, categories []model.Category) error {
	r.replaceCalls++
	if r.err != nil {
		return r.err
	}
	r.items = append([]model.Product(nil), products...)
	if len(categories) > 0 && r.categories != nil {
		r.categories.items = nil
		for _, c := range categories {
			c := c
			if err := r.categories.Create(context.Background(), &c); err != nil {
				return err
			}
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

func seedCategories(repo *stubCategoryRepo, slugs ...string) {
	for _, s := range slugs {
		_ = repo.Create(context.Background(), &model.Category{Slug: s, Name: s, Description: "Descripción de " + s})
	}
}
