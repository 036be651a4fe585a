package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

const rosterCollection = "roster_entries"

// RosterRepository persists roster entries in a single collection scoped by
// owner code and kind, mirroring the per-user, per-entity-type paths the
// real-time consumers subscribe to.
type RosterRepository struct {
	coll *mongo.Collection
}

func NewRosterRepository(db *mongo.Database) *RosterRepository {
	return &RosterRepository{coll: db.Collection(rosterCollection)}
}

// List returns all entries for (ownerCode, kind) in creation order.
func (r *RosterRepository) List(ctx context.Context, ownerCode string, kind domain.RosterKind) ([]domain.RosterEntry, error) {
	filter := bson.M{"owner_code": ownerCode, "kind": kind}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]domain.RosterEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode roster entries: %w", err)
	}
	return entries, nil
}

func (r *RosterRepository) Insert(ctx context.Context, entry *domain.RosterEntry) error {
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert roster entry: %w", err)
	}
	return nil
}

func (r *RosterRepository) Update(ctx context.Context, entry *domain.RosterEntry) error {
	filter := bson.M{"_id": entry.ID, "owner_code": entry.OwnerCode, "kind": entry.Kind}
	res, err := r.coll.ReplaceOne(ctx, filter, entry)
	if err != nil {
		return fmt.Errorf("update roster entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRosterEntryNotFound
	}
	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, ownerCode string, kind domain.RosterKind, id string) error {
	filter := bson.M{"_id": id, "owner_code": ownerCode, "kind": kind}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete roster entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRosterEntryNotFound
	}
	return nil
}

func (r *RosterRepository) FindByID(ctx context.Context, ownerCode string, kind domain.RosterKind, id string) (*domain.RosterEntry, error) {
	filter := bson.M{"_id": id, "owner_code": ownerCode, "kind": kind}

	var entry domain.RosterEntry
	if err := r.coll.FindOne(ctx, filter).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRosterEntryNotFound
		}
		return nil, fmt.Errorf("find roster entry: %w", err)
	}
	return &entry, nil
}
