package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"
)

type productDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	PublicID            int64              `bson:"id"`
	Name                string             `bson:"name"`
	Images              []string           `bson:"images"`
	Description         string             `bson:"description"`
	DetailedDescription string             `bson:"detailedDescription"`
	Features            []string           `bson:"features"`
	Category            string             `bson:"category"`
	CreatedAt           time.Time          `bson:"createdAt"`
}

func (d productDocument) toModel() model.Product {
	return model.Product{
		InternalID:          d.ID.Hex(),
		ID:                  d.PublicID,
		Name:                d.Name,
		Images:              d.Images,
		Description:         d.Description,
		DetailedDescription: d.DetailedDescription,
		Features:            d.Features,
		Category:            d.Category,
		CreatedAt:           d.CreatedAt,
	}
}

type mongoProductRepository struct {
	client     *mongo.Client
	products   *mongo.Collection
	categories *mongo.Collection
}

// NewMongoProductRepository needs a replica set (or mongos) deployment:
// ReplaceAll runs inside a multi-document transaction.
func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		client:     db.Client(),
		products:   db.Collection(productsCollection),
		categories: db.Collection(categoriesCollection),
	}
}

func (r *mongoProductRepository) List(ctx context.Context) ([]model.Product, error) {
	cur, err := r.products.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]model.Product, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toModel())
	}
	return list, nil
}

func (r *mongoProductRepository) CountByCategory(ctx context.Context, slug string) (int64, error) {
	return r.products.CountDocuments(ctx, bson.M{"category": slug})
}

func (r *mongoProductRepository) ReplaceAll(ctx context.Context, products []model.Product, categories []model.Category) error {
	now := time.Now().UTC()

	productDocs := make([]interface{}, 0, len(products))
	for _, p := range products {
		productDocs = append(productDocs, productDocument{
			PublicID:            p.ID,
			Name:                p.Name,
			Images:              p.Images,
			Description:         p.Description,
			DetailedDescription: p.DetailedDescription,
			Features:            p.Features,
			Category:            p.Category,
			CreatedAt:           now,
		})
	}
	categoryDocs := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		categoryDocs = append(categoryDocs, newCategoryDocument(c, now))
	}

	sess, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.products.DeleteMany(sc, bson.D{}); err != nil {
			return nil, err
		}
		if len(productDocs) > 0 {
			if _, err := r.products.InsertMany(sc, productDocs); err != nil {
				return nil, err
			}
		}
		if len(categoryDocs) == 0 {
			return nil, nil
		}
		if _, err := r.categories.DeleteMany(sc, bson.D{}); err != nil {
			return nil, err
		}
		if _, err := r.categories.InsertMany(sc, categoryDocs); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicate
			}
			return nil, err
		}
		return nil, nil
	})
	return err
}
