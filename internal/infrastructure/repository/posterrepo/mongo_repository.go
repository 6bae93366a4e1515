package posterrepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	domain "github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/metrics"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/observability"
	"github.com/oshaneheath-star/Poster-collection-app/internal/utils/platformerrors"
	"github.com/oshaneheath-star/Poster-collection-app/utils/posterid"
)

const backendMongo = "mongodb"

// posterDocument is the stored shape of a poster.
type posterDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Date      string             `bson:"date"`
	Location  string             `bson:"location"`
	Image     string             `bson:"image"`
	CreatedAt string             `bson:"createdAt"`
}

// MongoRepository persists posters in a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Insert(ctx context.Context, p *domain.Poster) (id string, err error) {
	ctx, done := observeStore(ctx, backendMongo, "insert")
	defer func() { done(err) }()

	doc := posterDocument{
		ID:        primitive.NewObjectID(),
		Title:     p.Title,
		Date:      p.Date,
		Location:  p.Location,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
	if _, insertErr := r.coll.InsertOne(ctx, doc); insertErr != nil {
		return "", platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to insert poster",
			insertErr,
			"c1e7a4d2-3f58-4b90-8e16-7a2d9c0b4f31",
		)
	}
	return doc.ID.Hex(), nil
}

func (r *MongoRepository) FindAll(ctx context.Context) (posters []*domain.Poster, err error) {
	ctx, done := observeStore(ctx, backendMongo, "find_all")
	defer func() { done(err) }()

	opts := options.Find().
		SetSort(bson.D{{Key: domain.FieldDate, Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(domain.ListLimit)

	cursor, findErr := r.coll.Find(ctx, bson.D{}, opts)
	if findErr != nil {
		return nil, listError(ctx, findErr)
	}
	defer cursor.Close(ctx)

	var docs []posterDocument
	if decodeErr := cursor.All(ctx, &docs); decodeErr != nil {
		return nil, listError(ctx, decodeErr)
	}

	posters = make([]*domain.Poster, 0, len(docs))
	for i := range docs {
		posters = append(posters, docs[i].toDomain())
	}
	return posters, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (_ *domain.Poster, err error) {
	ctx, done := observeStore(ctx, backendMongo, "find_by_id")
	defer func() { done(err) }()

	oid, err := parseID(ctx, id)
	if err != nil {
		return nil, err
	}

	var doc posterDocument
	if findErr := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); findErr != nil {
		if errors.Is(findErr, mongo.ErrNoDocuments) {
			return nil, notFoundError(ctx, id)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get poster by id",
			findErr,
			"5b8d2e7f-0a14-4c63-9f2b-e4d1a6c8b093",
		)
	}
	return doc.toDomain(), nil
}

func (r *MongoRepository) UpdateByID(ctx context.Context, id string, update domain.Update) (_ *domain.Poster, err error) {
	ctx, done := observeStore(ctx, backendMongo, "update_by_id")
	defer func() { done(err) }()

	oid, err := parseID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	for field, value := range update.Fields() {
		set[field] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc posterDocument
	updateErr := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if updateErr != nil {
		if errors.Is(updateErr, mongo.ErrNoDocuments) {
			return nil, notFoundError(ctx, id)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update poster",
			updateErr,
			"8e3a1f6c-2d97-4b05-a1c8-6f4e2b9d7a50",
		)
	}
	return doc.toDomain(), nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id string) (err error) {
	ctx, done := observeStore(ctx, backendMongo, "delete_by_id")
	defer func() { done(err) }()

	oid, err := parseID(ctx, id)
	if err != nil {
		return err
	}

	res, deleteErr := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if deleteErr != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete poster",
			deleteErr,
			"2f9c6b1e-7a34-4d80-b5e2-0c8a3d6f1e97",
		)
	}
	if res.DeletedCount == 0 {
		return notFoundError(ctx, id)
	}
	return nil
}

// Ping checks the document store is reachable.
func (r *MongoRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (r *MongoRepository) Close(ctx context.Context) error {
	return r.coll.Database().Client().Disconnect(ctx)
}

func (d *posterDocument) toDomain() *domain.Poster {
	return &domain.Poster{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Date:      d.Date,
		Location:  d.Location,
		Image:     d.Image,
		CreatedAt: d.CreatedAt,
	}
}

func parseID(ctx context.Context, id string) (primitive.ObjectID, error) {
	oid, err := posterid.Parse(id)
	if err != nil {
		return primitive.NilObjectID, invalidIDError(ctx, id, err)
	}
	return oid, nil
}

func listError(ctx context.Context, err error) error {
	return platformerrors.NewError(
		ctx,
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeDatabaseError,
		"failed to list posters",
		err,
		"a4c0e8b2-6d1f-4e37-9b5a-3f7c1d2e8a64",
	)
}

func notFoundError(ctx context.Context, id string) error {
	return platformerrors.NewErrorWithContext(
		ctx,
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		"Poster not found",
		nil,
		"0d6b3e9a-1c47-4f28-8a5d-b2e7f4c9a013",
		map[string]any{"poster_id": id},
	)
}

func invalidIDError(ctx context.Context, id string, err error) error {
	return platformerrors.NewErrorWithContext(
		ctx,
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeInvalidIdentifier,
		"Invalid poster id",
		err,
		"7c2e5a8d-4b91-4f06-9e3c-d1a6b0f2e875",
		map[string]any{"poster_id": id},
	)
}

// observeStore opens a span and returns a completion func recording duration and outcome.
func observeStore(ctx context.Context, backend, operation string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := observability.StartStoreSpan(ctx, backend, operation)
	return ctx, func(err error) {
		if err != nil && !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) &&
			!platformerrors.IsErrorType(err, platformerrors.ErrorTypeInvalidIdentifier) {
			observability.RecordError(span, err)
		}
		span.End()
		metrics.RecordStoreOperation(backend, operation, time.Since(start).Seconds())
	}
}
