package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/donorhive/donorhive-server/config"
	"github.com/donorhive/donorhive-server/internal/domain/entity"
	"github.com/donorhive/donorhive-server/internal/infrastructure/mongodb"
)

// Seeds a bootstrap admin account so the elevated routes are reachable on a
// fresh database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@donorhive.local"
	}
	name := os.Getenv("SEED_ADMIN_NAME")
	if name == "" {
		name = "DonorHive Admin"
	}

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoConnTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	res, err := db.Collection(mongodb.UsersCollection).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set": bson.M{
				"name":   name,
				"role":   entity.RoleAdmin,
				"status": entity.StatusActive,
			},
			"$setOnInsert": bson.M{"createdAt": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	if res.UpsertedID != nil {
		fmt.Printf("seeded admin: email=%s name=%s\n", email, name)
	} else {
		fmt.Printf("admin already present, role/status refreshed: email=%s\n", email)
	}
}
