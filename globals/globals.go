package globals

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var JwtSecret []byte

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()

func init() {
	// Resolve the secret only after the .env file has had a chance to load;
	// package init order would otherwise race main()'s godotenv call.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env variables")
	}
	JwtSecret = []byte(getenv("JWT_SECRET", "change_me_in_production"))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
