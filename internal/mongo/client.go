package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client struct {
	DB        *mongo.Database
	casesColl string
	c         *mongo.Client
}

// NewClient connects and pings, so an unreachable store fails here instead
// of on the first write.
func NewClient(ctx context.Context, uri, db, casesColl string) (*Client, error) {
	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cl.Ping(pctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping %s: %w", uri, err)
	}
	return &Client{DB: cl.Database(db), casesColl: casesColl, c: cl}, nil
}

func (c *Client) Close(ctx context.Context) { _ = c.c.Disconnect(ctx) }
