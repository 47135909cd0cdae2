package repository

import (
	"context"
	"errors"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository is the storage contract for categories. Services depend
// on this interface; the concrete backend is picked in main.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	// Create returns ErrDuplicate when the slug is taken.
	Create(ctx context.Context, c *model.Category) error
	// Update writes name, description and emoji only. The slug column is never touched.
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).Order("created_at asc, position asc").Find(&list).Error
	return list, err
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *categoryRepository) Update(ctx context.Context, c *model.Category) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
		"emoji":       c.Emoji,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps gorm sentinels onto the package errors. It relies on the
// connection being opened with TranslateError so unique violations surface
// as gorm.ErrDuplicatedKey on every dialect.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
