package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savoria/ordering-system/internal/core/domain"
)

const collectionCarts = "carts"

// CartRepository implements ports.CartRepository on MongoDB. All id-based
// mutations filter on the owner email as well as the id, so the store itself
// enforces the ownership invariant even if a caller slips past the service.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts)}
}

type cartItemDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	MenuItemID string             `bson:"menu_item_id"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image,omitempty"`
	Price      float64            `bson:"price"`
	Quantity   int                `bson:"quantity"`
}

func (d cartItemDoc) toDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:         d.ID.Hex(),
		Email:      d.Email,
		MenuItemID: d.MenuItemID,
		Name:       d.Name,
		Image:      d.Image,
		Price:      d.Price,
		Quantity:   d.Quantity,
	}
}

func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}
	defer cur.Close(ctx)

	items := []*domain.CartItem{}
	for cur.Next(ctx) {
		var doc cartItemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	return items, cur.Err()
}

func (r *CartRepository) Insert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := cartItemDoc{
		Email:      item.Email,
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
		Quantity:   item.Quantity,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}

	created := *item
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, id, email string, quantity int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCartItemNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "email": email},
		bson.M{"$set": bson.M{"quantity": quantity}},
	)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

// Delete removes a single owned cart item. An absent or malformed id yields a
// zero count, not an error — repeated deletes are idempotent.
func (r *CartRepository) Delete(ctx context.Context, id, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "email": email})
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteByIDs bulk-removes the owner's cart items named in ids. Malformed ids
// are skipped; ids already removed simply do not count.
func (r *CartRepository) DeleteByIDs(ctx context.Context, email string, ids []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}

	res, err := r.col.DeleteMany(ctx, bson.M{
		"_id":   bson.M{"$in": oids},
		"email": email,
	})
	if err != nil {
		return 0, fmt.Errorf("delete cart items: %w", err)
	}
	return res.DeletedCount, nil
}
