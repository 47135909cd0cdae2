package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"
)

const (
	categoriesCollection = "categories"
	productsCollection   = "products"
)

// categoryDocument is the shape the site has always stored: the slug lives
// under "id" and the store key under "_id".
type categoryDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Slug        string             `bson:"id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Emoji       *string            `bson:"emoji,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d categoryDocument) toModel() model.Category {
	return model.Category{
		ID:          d.ID.Hex(),
		Slug:        d.Slug,
		Name:        d.Name,
		Description: d.Description,
		Emoji:       d.Emoji,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func newCategoryDocument(c model.Category, now time.Time) categoryDocument {
	return categoryDocument{
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Emoji:       c.Emoji,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type mongoCategoryRepository struct{ coll *mongo.Collection }

func NewMongoCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{coll: db.Collection(categoriesCollection)}
}

func (r *mongoCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []categoryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]model.Category, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toModel())
	}
	return list, nil
}

func (r *mongoCategoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *mongoCategoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return r.findOne(ctx, bson.M{"id": slug})
}

func (r *mongoCategoryRepository) findOne(ctx context.Context, filter bson.M) (*model.Category, error) {
	var d categoryDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c := d.toModel()
	return &c, nil
}

func (r *mongoCategoryRepository) Create(ctx context.Context, c *model.Category) error {
	d := newCategoryDocument(*c, time.Now().UTC())
	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	c.CreatedAt, c.UpdatedAt = d.CreatedAt, d.UpdatedAt
	return nil
}

func (r *mongoCategoryRepository) Update(ctx context.Context, c *model.Category) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return ErrNotFound
	}
	set := bson.M{
		"name":        c.Name,
		"description": c.Description,
		"updatedAt":   time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if c.Emoji != nil {
		set["emoji"] = *c.Emoji
	} else {
		update["$unset"] = bson.M{"emoji": ""}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
