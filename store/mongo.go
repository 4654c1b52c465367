// path: store/mongo.go
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lostid/models"
)

const (
	reportsCollection = "lostIDs"
	usersCollection   = "users"
)

// Mongo implements ReportStore and UserStore on a MongoDB database handle.
type Mongo struct {
	reports *mongo.Collection
	users   *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		reports: db.Collection(reportsCollection),
		users:   db.Collection(usersCollection),
	}
}

// EnsureIndexes creates the report indexes. The unique index on id_number is
// what makes at-most-one-report-per-id hold even when two submissions race
// past the duplicate pre-check.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.reports.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create report indexes: %w", err)
	}
	return nil
}

// reportDoc is the persisted shape; primitives stay behind the store boundary.
type reportDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Surname     string             `bson:"surname"`
	IDNumber    string             `bson:"id_number"`
	Reason      string             `bson:"reason"`
	DateLost    string             `bson:"date_lost"`
	SelfieImage string             `bson:"selfie_image,omitempty"`
	UsedAtShop  string             `bson:"used_at_shop,omitempty"`
	UsedDate    string             `bson:"used_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *reportDoc) toModel() (models.LostIDReport, error) {
	if d.Name == "" || d.Surname == "" || d.IDNumber == "" || d.CreatedAt.IsZero() {
		return models.LostIDReport{}, fmt.Errorf("%w: document %s missing mandatory fields", ErrDecode, d.ID.Hex())
	}
	return models.LostIDReport{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Surname:     d.Surname,
		IDNumber:    d.IDNumber,
		Reason:      d.Reason,
		DateLost:    d.DateLost,
		SelfieImage: d.SelfieImage,
		UsedAtShop:  d.UsedAtShop,
		UsedDate:    d.UsedDate,
		CreatedAt:   d.CreatedAt,
	}, nil
}

func (s *Mongo) Insert(ctx context.Context, r *models.LostIDReport) (string, error) {
	doc := reportDoc{
		Name:        r.Name,
		Surname:     r.Surname,
		IDNumber:    r.IDNumber,
		Reason:      r.Reason,
		DateLost:    r.DateLost,
		SelfieImage: r.SelfieImage,
		UsedAtShop:  r.UsedAtShop,
		UsedDate:    r.UsedDate,
		CreatedAt:   r.CreatedAt,
	}
	res, err := s.reports.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateIDNumber
		}
		return "", fmt.Errorf("insert report: %w", err)
	}
	id := res.InsertedID.(primitive.ObjectID).Hex()
	r.ID = id
	return id, nil
}

func (s *Mongo) HasReport(ctx context.Context, idNumber string) (bool, error) {
	n, err := s.reports.CountDocuments(ctx, bson.M{"id_number": idNumber}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count reports by id number: %w", err)
	}
	return n > 0, nil
}

func (s *Mongo) List(ctx context.Context, q ListQuery) ([]models.LostIDReport, error) {
	filter := bson.M{}
	if q.Search != "" {
		term := regexp.QuoteMeta(q.Search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": term, "$options": "i"}},
			{"id_number": bson.M{"$regex": term}},
		}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if q.Limit > 0 {
		findOpts.SetLimit(int64(q.Limit))
	}

	cur, err := s.reports.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find reports: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.LostIDReport
	for cur.Next(ctx) {
		var doc reportDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		r, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return out, nil
}

func (s *Mongo) Count(ctx context.Context) (int64, error) {
	n, err := s.reports.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return n, nil
}

type userDoc struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"created_at"`
}

func (s *Mongo) Upsert(ctx context.Context, u *models.User) error {
	doc := userDoc{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
	_, err := s.users.ReplaceOne(ctx, bson.M{"_id": u.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", u.ID, err)
	}
	return nil
}

func (s *Mongo) Get(ctx context.Context, id string) (*models.User, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &models.User{ID: doc.ID, Username: doc.Username, Email: doc.Email, CreatedAt: doc.CreatedAt}, nil
}
