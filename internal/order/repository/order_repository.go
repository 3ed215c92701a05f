package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"framerly/internal/domain"
	"framerly/internal/errors"
)

const DefaultLimit = 5

// OrderFilter narrows a listing. A Status outside the valid set is ignored
// and yields the unfiltered view, matching the storefront's query contract.
type OrderFilter struct {
	Status string
}

// MongoOrderRepository owns order persistence. Every operation runs under a
// bounded timeout so a stalled backend cannot hold a request open forever.
type MongoOrderRepository struct {
	orders  *mongo.Collection
	timeout time.Duration
}

func NewMongoOrderRepository(db *mongo.Database, timeout time.Duration) *MongoOrderRepository {
	return &MongoOrderRepository{
		orders:  db.Collection("orders"),
		timeout: timeout,
	}
}

// orderDocument is the stored shape. It mirrors domain.Order but keeps the
// id as a native ObjectID so Mongo assigns and indexes it as usual.
type orderDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FrameID       int                `bson:"frameId"`
	FrameName     string             `bson:"frameName"`
	FramePrice    float64            `bson:"framePrice"`
	Mode          string             `bson:"mode"`
	Quote         string             `bson:"quote,omitempty"`
	Author        string             `bson:"author,omitempty"`
	PhotoOption   string             `bson:"photoOption"`
	Size          string             `bson:"size,omitempty"`
	CustomMessage string             `bson:"customMessage,omitempty"`
	PhotoURL      string             `bson:"photoUrl,omitempty"`
	Country       string             `bson:"country"`
	State         string             `bson:"state"`
	District      string             `bson:"district"`
	PinCode       string             `bson:"pinCode"`
	Landmark      string             `bson:"landmark,omitempty"`
	VillageOrCity string             `bson:"villageOrCity"`
	Phone         string             `bson:"phone"`
	Email         string             `bson:"email"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func toDocument(o domain.Order) orderDocument {
	return orderDocument{
		FrameID:       o.FrameID,
		FrameName:     o.FrameName,
		FramePrice:    o.FramePrice,
		Mode:          o.Mode,
		Quote:         o.Quote,
		Author:        o.Author,
		PhotoOption:   o.PhotoOption,
		Size:          o.Size,
		CustomMessage: o.CustomMessage,
		PhotoURL:      o.PhotoURL,
		Country:       o.Country,
		State:         o.State,
		District:      o.District,
		PinCode:       o.PinCode,
		Landmark:      o.Landmark,
		VillageOrCity: o.VillageOrCity,
		Phone:         o.Phone,
		Email:         o.Email,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (d orderDocument) toDomain() domain.Order {
	return domain.Order{
		ID:            d.ID.Hex(),
		FrameID:       d.FrameID,
		FrameName:     d.FrameName,
		FramePrice:    d.FramePrice,
		Mode:          d.Mode,
		Quote:         d.Quote,
		Author:        d.Author,
		PhotoOption:   d.PhotoOption,
		Size:          d.Size,
		CustomMessage: d.CustomMessage,
		PhotoURL:      d.PhotoURL,
		Country:       d.Country,
		State:         d.State,
		District:      d.District,
		PinCode:       d.PinCode,
		Landmark:      d.Landmark,
		VillageOrCity: d.VillageOrCity,
		Phone:         d.Phone,
		Email:         d.Email,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// Create persists a new order. Status is forced to pending and timestamps
// are assigned here regardless of what the caller set.
func (r *MongoOrderRepository) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	order.Status = domain.OrderStatusPending
	order.CreatedAt = now
	order.UpdatedAt = now

	doc := toDocument(order)

	result, err := r.orders.InsertOne(ctx, doc)
	if err != nil {
		return nil, errors.NewStorageError("inserting order", err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

// List returns one page of orders plus the total count of records matching
// the filter, so pagination stays consistent independent of the page asked
// for. Creation-time ordering, newest first unless sortDir is "asc".
func (r *MongoOrderRepository) List(ctx context.Context, filter OrderFilter, page, limit int, sortDir string) ([]domain.Order, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	query := bson.M{}
	if domain.IsValidStatus(filter.Status) {
		query["status"] = filter.Status
	}

	sortOrder := -1
	if sortDir == domain.SortAsc {
		sortOrder = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: sortOrder}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.orders.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.NewStorageError("querying orders", err)
	}
	defer cursor.Close(ctx)

	docs := make([]orderDocument, 0, limit)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, errors.NewStorageError("decoding orders", err)
	}

	orders := make([]domain.Order, len(docs))
	for i, d := range docs {
		orders[i] = d.toDomain()
	}

	total, err := r.orders.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.NewStorageError("counting orders", err)
	}

	return orders, total, nil
}

// UpdateStatus atomically moves an order to the given status and advances
// updatedAt, returning the updated record.
func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if !domain.IsValidStatus(status) {
		return nil, errors.NewInvalidArgumentError("invalid status: " + status)
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never reference a stored order.
		return nil, errors.NewNotFoundError("order not found: " + id)
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc orderDocument
	err = r.orders.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFoundError("order not found: " + id)
	}
	if err != nil {
		return nil, errors.NewStorageError("updating order status", err)
	}

	updated := doc.toDomain()
	return &updated, nil
}
