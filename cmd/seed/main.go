package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/naveen224793-boop/assignment3/internal/app"
	"github.com/naveen224793-boop/assignment3/internal/config"
	"github.com/naveen224793-boop/assignment3/internal/employee"
	"github.com/naveen224793-boop/assignment3/internal/shared/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// seed inserts one employee, then lists the whole collection. It exercises
// the configured store end to end without the HTTP layer.
func main() {
	var fields employee.EmployeeFields
	flag.StringVar(&fields.Name, "name", "Test Employee", "employee name")
	flag.StringVar(&fields.Location, "location", "Test City", "employee location")
	flag.StringVar(&fields.Position, "position", "Test Developer", "employee position")
	flag.Float64Var(&fields.Salary, "salary", 50000, "employee salary")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.Install(cfg.IsDevelopment(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.RequireStore(); err != nil {
		var missing *config.MissingEnvError
		if errors.As(err, &missing) {
			log.Fatal("record store connection string missing",
				zap.String("variable", missing.Name),
				zap.String("hint", "create a .env file or set the variable before running; see .env.example"),
			)
		}
		log.Fatal("invalid configuration", zap.Error(err))
	}

	if fields.Salary < 0 {
		log.Fatal("salary must not be negative", zap.Float64("salary", fields.Salary))
	}

	ctx := context.Background()

	log.Info("connecting to record store", zap.String("driver", cfg.Store.Driver))
	repo, closeStore, err := app.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal("record store connection failed", zap.Error(err))
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Error("close record store failed", zap.Error(err))
			return
		}
		log.Info("connection closed")
	}()

	svc := employee.NewService(repo, employee.ServiceOptions{ListTimeout: cfg.ListQueryTimeout}, log)

	created, err := svc.Create(ctx, fields)
	if err != nil {
		log.Error("add employee failed", zap.Error(err))
		return
	}
	log.Info("employee added", zap.Any("employee", created))

	all, err := svc.GetAll(ctx)
	if err != nil {
		log.Error("fetch employees failed", zap.Error(err))
		return
	}
	log.Info("all employees", zap.Int("count", len(all)), zap.Any("employees", all))
}
