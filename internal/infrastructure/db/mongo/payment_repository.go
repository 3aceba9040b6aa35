package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/savoria/ordering-system/internal/core/domain"
	"github.com/savoria/ordering-system/internal/core/ports"
)

const collectionPayments = "payments"

// PaymentRepository implements ports.PaymentRepository on MongoDB. The
// collection is append-only: there is deliberately no update or delete here.
type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

type paymentDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Email         string               `bson:"email"`
	Price         float64              `bson:"price"`
	TransactionID string               `bson:"transaction_id,omitempty"`
	CartItemIDs   []string             `bson:"cart_items"`
	MenuItemIDs   []primitive.ObjectID `bson:"menu_items"`
	CreatedAt     time.Time            `bson:"created_at"`
}

func (d paymentDoc) toDomain() *domain.Payment {
	menuIDs := make([]string, len(d.MenuItemIDs))
	for i, oid := range d.MenuItemIDs {
		menuIDs[i] = oid.Hex()
	}
	return &domain.Payment{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		Price:         d.Price,
		TransactionID: d.TransactionID,
		CartItemIDs:   d.CartItemIDs,
		MenuItemIDs:   menuIDs,
		CreatedAt:     d.CreatedAt,
	}
}

// Insert appends a payment record. Menu item references are stored as
// ObjectIDs so the category pipeline can join them against the menu catalog;
// malformed references are dropped rather than failing the settlement.
func (r *PaymentRepository) Insert(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	menuIDs := make([]primitive.ObjectID, 0, len(p.MenuItemIDs))
	for _, id := range p.MenuItemIDs {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			menuIDs = append(menuIDs, oid)
		}
	}

	doc := paymentDoc{
		Email:         p.Email,
		Price:         p.Price,
		TransactionID: p.TransactionID,
		CartItemIDs:   p.CartItemIDs,
		MenuItemIDs:   menuIDs,
		CreatedAt:     p.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer cur.Close(ctx)

	payments := []*domain.Payment{}
	for cur.Next(ctx) {
		var doc paymentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		payments = append(payments, doc.toDomain())
	}
	return payments, cur.Err()
}

// TotalRevenue sums the price field over the whole ledger store-side.
func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("total revenue: %w", err)
	}
	defer cur.Close(ctx)

	var row struct {
		Total float64 `bson:"total"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&row); err != nil {
			return 0, fmt.Errorf("decode revenue: %w", err)
		}
	}
	return row.Total, cur.Err()
}

// CategoryStats joins each payment's menu references against the menu catalog
// and groups order count and revenue by category. Categories without payments
// never appear in the output.
func (r *PaymentRepository) CategoryStats(ctx context.Context) ([]ports.CategoryStat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionMenu,
			"localField":   "menu_items",
			"foreignField": "_id",
			"as":           "menu_docs",
		}}},
		{{Key: "$unwind", Value: "$menu_docs"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$menu_docs.category",
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$menu_docs.price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"category": "$_id",
			"count":    1,
			"total":    bson.M{"$round": bson.A{"$total", 2}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	defer cur.Close(ctx)

	stats := []ports.CategoryStat{}
	for cur.Next(ctx) {
		var row struct {
			Category string  `bson:"category"`
			Count    int64   `bson:"count"`
			Total    float64 `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode category stat: %w", err)
		}
		stats = append(stats, ports.CategoryStat{
			Category: row.Category,
			Count:    row.Count,
			Total:    row.Total,
		})
	}
	return stats, cur.Err()
}

func (r *PaymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.EstimatedDocumentCount(ctx)
}
