package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PackageRepository defines the interface for package data operations.
type PackageRepository interface {
	CreatePackage(ctx context.Context, pkg *models.Package) error
	GetPackageByID(ctx context.Context, id string) (*models.Package, error)
	GetPackagesByOwner(ctx context.Context, ownerID string) ([]models.Package, error)
	GetActivePackages(ctx context.Context, skip, limit int64) ([]models.Package, error)
	UpdatePackage(ctx context.Context, id string, pkg *models.Package) error
	DeletePackage(ctx context.Context, id string) error
}

// MongoPackageRepository implements PackageRepository for MongoDB.
type MongoPackageRepository struct {
	collection *mongo.Collection
}

// NewMongoPackageRepository creates a new MongoPackageRepository.
func NewMongoPackageRepository(db *mongo.Database) *MongoPackageRepository {
	return &MongoPackageRepository{collection: db.Collection("packages")}
}

// CreatePackage inserts a new package.
func (r *MongoPackageRepository) CreatePackage(ctx context.Context, pkg *models.Package) error {
	pkg.ID = primitive.NewObjectID()
	pkg.Active = true
	pkg.CreatedAt = time.Now()
	pkg.UpdatedAt = pkg.CreatedAt
	if _, err := r.collection.InsertOne(ctx, pkg); err != nil {
		return errors.Wrap(err, "inserting package")
	}
	return nil
}

// GetPackageByID retrieves a package by ID.
func (r *MongoPackageRepository) GetPackageByID(ctx context.Context, id string) (*models.Package, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("invalid package ID format")
	}
	var pkg models.Package
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("package %s not found", id)
		}
		return nil, errors.Wrap(err, "finding package")
	}
	return &pkg, nil
}

// GetPackagesByOwner retrieves every package belonging to an owner.
func (r *MongoPackageRepository) GetPackagesByOwner(ctx context.Context, ownerID string) ([]models.Package, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID}, 0, 0)
}

// GetActivePackages retrieves active packages, newest first.
func (r *MongoPackageRepository) GetActivePackages(ctx context.Context, skip, limit int64) ([]models.Package, error) {
	return r.find(ctx, bson.M{"active": true}, skip, limit)
}

// UpdatePackage updates an existing package.
func (r *MongoPackageRepository) UpdatePackage(ctx context.Context, id string, pkg *models.Package) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("invalid package ID format")
	}
	pkg.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":          pkg.Title,
		"description":    pkg.Description,
		"price":          pkg.Price,
		"currency":       pkg.Currency,
		"deliverables":   pkg.Deliverables,
		"duration_hours": pkg.DurationHrs,
		"active":         pkg.Active,
		"updated_at":     pkg.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return errors.Wrap(err, "updating package")
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("package %s not found", id)
	}
	return nil
}

// DeletePackage removes a package. Packages are not part of the review
// workflow, so removal is a hard delete.
func (r *MongoPackageRepository) DeletePackage(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("invalid package ID format")
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return errors.Wrap(err, "deleting package")
	}
	if res.DeletedCount == 0 {
		return apperr.NewNotFound("package %s not found", id)
	}
	return nil
}

func (r *MongoPackageRepository) find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Package, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if skip > 0 {
		findOptions.SetSkip(skip)
	}
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "listing packages")
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err = cursor.All(ctx, &packages); err != nil {
		return nil, errors.Wrap(err, "decoding packages")
	}
	return packages, nil
}
