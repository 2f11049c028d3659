package mongo

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CaseDoc is one simulator case as produced by the case-generation tooling.
// Cases carry no fixed schema; documents are stored exactly as loaded.
type CaseDoc = bson.M

func (c *Client) CasesCollection() *mongo.Collection {
	return c.DB.Collection(c.casesColl)
}

// Non-unique only: re-running an import is allowed to re-insert duplicates.
func (c *Client) EnsureCaseIndexes(ctx context.Context) error {
	col := c.CasesCollection()
	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "specialty", Value: 1}}},
	})
	return err
}

// InsertCases submits all docs in a single InsertMany. No batching, no
// retry; a write error leaves whatever the server managed to insert.
func (c *Client) InsertCases(ctx context.Context, docs []CaseDoc) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	items := make([]interface{}, len(docs))
	for i, d := range docs {
		items[i] = d
	}
	res, err := c.CasesCollection().InsertMany(ctx, items)
	if err != nil {
		return 0, err
	}
	log.Printf(`{"msg":"cases-insert","inserted":%d}`, len(res.InsertedIDs))
	return len(res.InsertedIDs), nil
}

func (c *Client) CountCases(ctx context.Context, filter bson.M) (int64, error) {
	return c.CasesCollection().CountDocuments(ctx, filter)
}

// ListCases pages through cases in a stable _id order.
func (c *Client) ListCases(ctx context.Context, filter bson.M, page int, limit int64) ([]CaseDoc, int64, error) {
	col := c.CasesCollection()
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSkip(int64(page-1) * limit).
		SetLimit(limit).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	var out []CaseDoc
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (c *Client) FindCaseByID(ctx context.Context, hexID string) (CaseDoc, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, err
	}
	var out CaseDoc
	if err := c.CasesCollection().FindOne(ctx, bson.M{"_id": oid}).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
