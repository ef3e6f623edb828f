// Command spanner-setup provisions the Spanner instance and database named by
// store.spanner_database and creates the products table, so the freshmart
// shell can run with store.driver = spanner against the emulator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/freshmart/internal/app/inventory/repo"
	"github.com/light-bringer/freshmart/internal/pkg/config"
	"github.com/light-bringer/freshmart/internal/pkg/logger"
)

var (
	configFile = flag.String("config", "", "Path to a freshmart.toml config file")
	dbName     = flag.String("database", "", "Full database name (overrides store.spanner_database)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spanner-setup: %v\n", err)
		os.Exit(1)
	}
	if *dbName != "" {
		cfg.Store.SpannerDatabase = *dbName
	}

	log := logger.New(&logger.Config{Level: "info", Format: cfg.Log.Format, Output: cfg.Log.Output})
	defer logger.Sync(log)

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Info("using spanner emulator", zap.String("host", host))
	}

	if err := run(context.Background(), cfg.Store.SpannerDatabase, log); err != nil {
		log.Fatal("setup failed", zap.Error(err))
	}

	log.Info("setup completed", zap.String("database", cfg.Store.SpannerDatabase))
}

func run(ctx context.Context, name string, log *zap.Logger) error {
	dbPath, err := parseDatabaseName(name)
	if err != nil {
		return err
	}

	if err := ensureInstance(ctx, dbPath, log); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := ensureDatabase(ctx, dbPath, log); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	// Opening the catalog creates the products table when it is missing.
	catalog, err := repo.OpenSpannerCatalog(ctx, dbPath.String(), log)
	if err != nil {
		return err
	}
	return catalog.Close()
}

// databasePath is a parsed projects/<p>/instances/<i>/databases/<d> name.
type databasePath struct {
	project  string
	instance string
	database string
}

func parseDatabaseName(name string) (databasePath, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return databasePath{}, fmt.Errorf("malformed database name %q", name)
	}
	for _, p := range []string{parts[1], parts[3], parts[5]} {
		if p == "" {
			return databasePath{}, fmt.Errorf("malformed database name %q", name)
		}
	}
	return databasePath{project: parts[1], instance: parts[3], database: parts[5]}, nil
}

func (p databasePath) projectName() string {
	return "projects/" + p.project
}

func (p databasePath) instanceName() string {
	return p.projectName() + "/instances/" + p.instance
}

func (p databasePath) String() string {
	return p.instanceName() + "/databases/" + p.database
}

func ensureInstance(ctx context.Context, p databasePath, log *zap.Logger) error {
	admin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: p.instanceName()})
	if err == nil {
		log.Info("instance already exists", zap.String("instance", p.instance))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check instance: %w", err)
	}

	log.Info("creating instance", zap.String("instance", p.instance))
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     p.projectName(),
		InstanceId: p.instance,
		Instance: &instancepb.Instance{
			Config:      p.projectName() + "/instanceConfigs/emulator-config",
			DisplayName: "FreshMart",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}

	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance creation: %w", err)
	}
	return nil
}

func ensureDatabase(ctx context.Context, p databasePath, log *zap.Logger) error {
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: p.String()})
	if err == nil {
		log.Info("database already exists", zap.String("database", p.database))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check database: %w", err)
	}

	log.Info("creating database", zap.String("database", p.database))
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          p.instanceName(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", p.database),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}
