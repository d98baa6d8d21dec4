package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogRepository defines the interface for the category and city lookup
// collections.
type CatalogRepository interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	AddCategory(ctx context.Context, category *models.Category) error
	GetCities(ctx context.Context) ([]models.City, error)
	AddCity(ctx context.Context, city *models.City) error
}

// MongoCatalogRepository implements CatalogRepository for MongoDB.
type MongoCatalogRepository struct {
	categories *mongo.Collection
	cities     *mongo.Collection
}

// NewMongoCatalogRepository creates a new MongoCatalogRepository.
func NewMongoCatalogRepository(db *mongo.Database) *MongoCatalogRepository {
	return &MongoCatalogRepository{
		categories: db.Collection("categories"),
		cities:     db.Collection("cities"),
	}
}

// GetCategories retrieves every category, sorted by name.
func (r *MongoCatalogRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.categories.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "listing categories")
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, errors.Wrap(err, "decoding categories")
	}
	return categories, nil
}

// AddCategory inserts a category; slugs are unique.
func (r *MongoCatalogRepository) AddCategory(ctx context.Context, category *models.Category) error {
	count, err := r.categories.CountDocuments(ctx, bson.M{"slug": category.Slug})
	if err != nil {
		return errors.Wrap(err, "checking category slug uniqueness")
	}
	if count > 0 {
		return apperr.NewConflict("category %q already exists", category.Slug)
	}
	category.ID = primitive.NewObjectID()
	if _, err := r.categories.InsertOne(ctx, category); err != nil {
		return errors.Wrap(err, "inserting category")
	}
	return nil
}

// GetCities retrieves every city, sorted by name.
func (r *MongoCatalogRepository) GetCities(ctx context.Context) ([]models.City, error) {
	cursor, err := r.cities.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "listing cities")
	}
	defer cursor.Close(ctx)

	var cities []models.City
	if err = cursor.All(ctx, &cities); err != nil {
		return nil, errors.Wrap(err, "decoding cities")
	}
	return cities, nil
}

// AddCity inserts a city; slugs are unique.
func (r *MongoCatalogRepository) AddCity(ctx context.Context, city *models.City) error {
	count, err := r.cities.CountDocuments(ctx, bson.M{"slug": city.Slug})
	if err != nil {
		return errors.Wrap(err, "checking city slug uniqueness")
	}
	if count > 0 {
		return apperr.NewConflict("city %q already exists", city.Slug)
	}
	city.ID = primitive.NewObjectID()
	if _, err := r.cities.InsertOne(ctx, city); err != nil {
		return errors.Wrap(err, "inserting city")
	}
	return nil
}
