package employee

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const CollectionName = "employees"

// employeeDocument keeps the field names mongoose used, so collections
// written by the previous service stay readable.
type employeeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Location  string             `bson:"location"`
	Position  string             `bson:"position"`
	Salary    float64            `bson:"salary"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
	Version   int32              `bson:"__v"`
}

func (d employeeDocument) toEntity() Employee {
	return Employee{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Location:  d.Location,
		Position:  d.Position,
		Salary:    d.Salary,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type mongoRepository struct {
	coll        *mongo.Collection
	listMaxTime time.Duration
	now         func() time.Time
}

// NewMongoRepository stores employees in coll. listMaxTime, when positive,
// is sent as maxTimeMS on the list query so the server abandons it too.
func NewMongoRepository(coll *mongo.Collection, listMaxTime time.Duration) Repository {
	return &mongoRepository{
		coll:        coll,
		listMaxTime: listMaxTime,
		now:         storeNow,
	}
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]Employee, error) {
	opts := options.Find()
	if r.listMaxTime > 0 {
		opts.SetMaxTime(r.listMaxTime)
	}

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	empls := make([]Employee, 0, len(docs))
	for _, d := range docs {
		empls = append(empls, d.toEntity())
	}
	return empls, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errMalformedID
	}

	var doc employeeDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, err
	}

	empl := doc.toEntity()
	return &empl, nil
}

func (r *mongoRepository) Create(ctx context.Context, empl *Employee) error {
	now := r.now()
	doc := employeeDocument{
		ID:        primitive.NewObjectID(),
		Name:      empl.Name,
		Location:  empl.Location,
		Position:  empl.Position,
		Salary:    empl.Salary,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}

	*empl = doc.toEntity()
	return nil
}

func (r *mongoRepository) Update(ctx context.Context, id string, fields EmployeeFields) (*Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errMalformedID
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: fields.Name},
		{Key: "location", Value: fields.Location},
		{Key: "position", Value: fields.Position},
		{Key: "salary", Value: fields.Salary},
		{Key: "updatedAt", Value: r.now()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc employeeDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc); err != nil {
		return nil, err
	}

	empl := doc.toEntity()
	return &empl, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) (*Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errMalformedID
	}

	var doc employeeDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, err
	}

	empl := doc.toEntity()
	return &empl, nil
}

func (r *mongoRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
