package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/scorp5438/articles-app/internal/config"
	"github.com/scorp5438/articles-app/internal/domain"
	"github.com/scorp5438/articles-app/internal/logger"
	"github.com/scorp5438/articles-app/internal/storage/pg"
	"github.com/scorp5438/articles-app/internal/utils/email"
	"github.com/scorp5438/articles-app/internal/utils/password"
)

// create-admin bootstraps a staff account directly in the database. The
// account is created already active, no confirmation email is sent.
func main() {
	var configFolder, addr, pass, fullName string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&addr, "email", "", "admin email (required)")
	flag.StringVar(&pass, "password", "", "admin password (required)")
	flag.StringVar(&fullName, "fullname", "admin", "admin display name")
	flag.Parse()

	if addr == "" || pass == "" {
		log.Fatal("both -email and -password are required")
	}

	addr = strings.ToLower(addr)
	if err := email.IsCorrect(addr); err != nil {
		log.Fatalf("invalid email: %v", err)
	}
	if err := password.CheckStrength(pass); err != nil {
		log.Fatalf("weak password: %v", err)
	}

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to storage: %v", err)
	}
	defer storage.Cleanup()

	passHash, err := password.NewHasher(password.DefaultCost).Hash(pass)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	id, err := storage.SaveUser(domain.User{
		Email:    addr,
		PassHash: passHash,
		FullName: fullName,
		Active:   true,
		Staff:    true,
	})
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Printf("admin created: id=%d email=%s\n", id, addr)
}
