package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	SitesCollection          *mongo.Collection
	SiteMediaCollection      *mongo.Collection
	VisitingHoursCollection  *mongo.Collection
	TicketTypesCollection    *mongo.Collection
	TransportationCollection *mongo.Collection
	TranslationsCollection   *mongo.Collection
	Client                   *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	ClientOptions := options.Client().ApplyURI(uri)
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	SitesCollection = Client.Database("heritagedb").Collection("sites")
	SiteMediaCollection = Client.Database("heritagedb").Collection("sitemedia")
	VisitingHoursCollection = Client.Database("heritagedb").Collection("visitinghours")
	TicketTypesCollection = Client.Database("heritagedb").Collection("tickettypes")
	TransportationCollection = Client.Database("heritagedb").Collection("transportation")
	TranslationsCollection = Client.Database("heritagedb").Collection("translations")
}
