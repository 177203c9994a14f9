package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/component/mongodb"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

const usersCollection = "users"

// datastore implements the Factory interface on MongoDB.
type datastore struct {
	client *mongodb.Client
}

// NewMongoFactory creates a MongoDB-backed store factory and ensures the
// required indexes exist.
func NewMongoFactory(ctx context.Context, client *mongodb.Client) (Factory, error) {
	ds := &datastore{client: client}
	if err := ds.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return ds, nil
}

// ensureIndexes creates the unique email index. Creating an index that
// already exists is a no-op on the server.
func (ds *datastore) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := ds.client.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Users returns the user store.
func (ds *datastore) Users() UserStore {
	return &users{coll: ds.client.Collection(usersCollection)}
}

// Close closes the underlying connection.
func (ds *datastore) Close() error {
	return ds.client.Close()
}

type users struct {
	coll *mongo.Collection
}

// Create inserts a new user. A duplicate email maps to ErrUserExists.
func (u *users) Create(ctx context.Context, user *model.User) error {
	now := time.Now().Unix()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := u.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apierrors.ErrUserExists
		}
		return apierrors.ErrStoreUnavailable.WithCause(err)
	}
	return nil
}

// GetByEmail retrieves a user by email.
func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := u.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierrors.ErrUserNotFound
		}
		return nil, apierrors.ErrStoreUnavailable.WithCause(err)
	}
	return &user, nil
}

// GetByID retrieves a user by its hex object ID.
func (u *users) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierrors.ErrUserNotFound
	}

	var user model.User
	if err := u.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierrors.ErrUserNotFound
		}
		return nil, apierrors.ErrStoreUnavailable.WithCause(err)
	}
	return &user, nil
}

// DeductCredits subtracts amount only when the balance covers it, so a
// concurrent pair of generations cannot drive the balance negative.
func (u *users) DeductCredits(ctx context.Context, id string, amount int) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierrors.ErrUserNotFound
	}

	filter := bson.M{
		"_id":           oid,
		"creditBalance": bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{"creditBalance": -amount},
		"$set": bson.M{"updatedAt": time.Now().Unix()},
	}

	var user model.User
	err = u.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierrors.ErrNoCredits
		}
		return nil, apierrors.ErrStoreUnavailable.WithCause(err)
	}
	return &user, nil
}
