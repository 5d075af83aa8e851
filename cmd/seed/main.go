package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/studentperksph/perks-api/config"
	pginfra "github.com/studentperksph/perks-api/internal/infrastructure/postgres"
)

// Seeds one demo profile so a freshly migrated database has a session
// target to exercise against.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	id := uuid.NewString()
	email := "juan.delacruz@up.edu.ph"
	name := "Juan Dela Cruz"
	favorites := []string{"github-student", "spotify"}

	var got string
	err = pool.QueryRow(ctx, `
		INSERT INTO profiles (id, email, full_name, is_verified, university, favorites)
		VALUES ($1, $2, $3, TRUE, 'up.edu.ph', $4)
		ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, id, email, name, favorites).Scan(&got)
	if err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%s email=%s name=%s\n", got, email, name)
}
