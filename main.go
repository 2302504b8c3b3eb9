package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"sahayog/app/logging"
	"sahayog/app/models"
	"sahayog/app/repositories"
	"sahayog/app/routes"
	"sahayog/app/storage"
	"sahayog/config"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("sahayog version %s\n", cliVersion)
	case "serve":
		serve()
	case "admin":
		provisionAdmin()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: sahayog <command> [options]
Commands:
  help                       Display this help message.
  version                    Show version information.
  serve                      Run the donation and blog API server.
  admin <username> <password>
                             Provision the admin credential record.
`
	fmt.Println(helpText)
}

// serve wires the store, routes and logger together and runs the HTTP
// server.
func serve() {
	cfg := config.Load()
	logger := logging.NewLogger(cfg.Env)

	db, err := storage.OpenBadger(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to open database")
	}
	defer db.Close()

	store := storage.NewBadgerStore(db)
	router := routes.SetupRoutes(store, logger, cfg.IsProduction())

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

// provisionAdmin writes the admin credential document. The server never
// writes credentials itself.
func provisionAdmin() {
	if len(os.Args) < 4 {
		fmt.Println("Error: username and password are required for admin command")
		os.Exit(1)
	}

	cfg := config.Load()
	logger := logging.NewLogger(cfg.Env)

	db, err := storage.OpenBadger(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to open database")
	}
	defer db.Close()

	adminRepo := repositories.NewStoreAdminRepository(storage.NewBadgerStore(db))
	cred := models.AdminCredential{Username: os.Args[2], Password: os.Args[3]}
	if err := adminRepo.SetCredential(cred); err != nil {
		logger.Fatal().Err(err).Msg("failed to store admin credential")
	}
	logger.Info().Str("username", cred.Username).Msg("admin credential stored")
}
