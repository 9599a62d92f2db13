package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	collUsers         = "users"
	collCarts         = "carts"
	collCategories    = "categories"
	collSubCategories = "subcategories"
	collProducts      = "products"
	collVariants      = "productvariants"
)

// Connection wraps a mongo client scoped to one database.
type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection connects to MongoDB, verifies the connection and ensures
// the unique indexes the data model relies on.
func NewConnection(ctx context.Context, uri, database string) (*Connection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	conn := &Connection{
		client: client,
		db:     client.Database(database),
	}

	if err := conn.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return conn, nil
}

func (c *Connection) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		collUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		collCarts: {
			{Keys: bson.D{{Key: "user", Value: 1}}, Options: unique},
		},
		collCategories: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		collSubCategories: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		collProducts: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "subCategory", Value: 1}}},
		},
		collVariants: {
			{Keys: bson.D{{Key: "product", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := c.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("collection %s: %w", coll, err)
		}
	}

	return nil
}

// Collection returns a handle to the named collection.
func (c *Connection) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Ping verifies the server is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("mongo client is nil")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
