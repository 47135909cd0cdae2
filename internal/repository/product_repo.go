package repository

import (
	"context"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	// CountByCategory is read straight from the store on every call.
	CountByCategory(ctx context.Context, slug string) (int64, error)
	// ReplaceAll swaps the whole product set, and the category set when
	// categories is non-empty, in a single transaction. Order is preserved.
	ReplaceAll(ctx context.Context, products []model.Product, categories []model.Category) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("created_at asc, position asc").Find(&products).Error
	return products, err
}

func (r *productRepo) CountByCategory(ctx context.Context, slug string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("category = ?", slug).Count(&n).Error
	return n, err
}

func (r *productRepo) ReplaceAll(ctx context.Context, products []model.Product, categories []model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		if err := all.Delete(&model.Product{}).Error; err != nil {
			return err
		}
		if len(products) > 0 {
			for i := range products {
				products[i].Position = i
			}
			if err := tx.Create(&products).Error; err != nil {
				return translate(err)
			}
		}

		if len(categories) == 0 {
			return nil
		}
		if err := all.Delete(&model.Category{}).Error; err != nil {
			return err
		}
		for i := range categories {
			categories[i].Position = i
		}
		return translate(tx.Create(&categories).Error)
	})
}
