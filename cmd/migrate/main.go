package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/yourusername/trivia-questions/internal/config"
	"github.com/yourusername/trivia-questions/pkg/database"
)

const usage = `usage: migrate [-config path] <command> [arg]

commands:
  up            применить все миграции
  down [N]      откатить N миграций (по умолчанию 1)
  version       показать текущую версию
  force V       установить версию V и снять флаг dirty
`

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "путь к config.yaml")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	if err := run(*configPath, flag.Args()); err != nil {
		log.Printf("Migration failed: %v", err)
		os.Exit(1)
	}
}

// run открывает БД и выполняет команду; соединение закрывается до выхода из процесса
func run(configPath string, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	m, err := database.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		return err
	}

	return execute(m, args)
}

func execute(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		return ignoreNoChange(m.Up())
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n <= 0 {
				return fmt.Errorf("down: invalid number of steps %q", args[1])
			}
			steps = n
		}
		return ignoreNoChange(m.Steps(-steps))
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	case "force":
		if len(args) < 2 {
			return errors.New("force: version is required")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("force: invalid version %q", args[1])
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
		fmt.Printf("Version forced to %d, dirty state cleaned.\n", version)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("Изменений в миграциях не найдено, база данных уже актуальна.")
		return nil
	}
	return err
}
