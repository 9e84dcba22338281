package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/course-matcher/internal/config"
	"github.com/jonathan/course-matcher/internal/db"
	"github.com/jonathan/course-matcher/internal/engine"
	"github.com/jonathan/course-matcher/internal/server"
	"github.com/jonathan/course-matcher/internal/types"
)

var (
	servePort       int
	serveConfigPath string
	serveDataset    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume uploads and course recommendations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveDataset, "dataset", "", "Path to course dataset (CSV or JSON, overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}
	if serveDataset != "" {
		cfg.DatasetPath = serveDataset
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	authCfg, err := config.LoadAuthConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	source, cleanup, err := buildSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	eng, err := engine.New(ctx, source, engine.Config{
		MaxFeatures:  cfg.MaxFeatures,
		TopN:         cfg.TopN,
		MinimumScore: cfg.MinimumScore,
	})
	if err != nil {
		return fmt.Errorf("failed to build recommendation engine: %w", err)
	}

	srv, err := server.New(eng, cfg, authCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadConfig reads the optional config file and merges defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg := (&config.Config{}).MergeWithDefaults(config.Default())
		return cfg, nil
	}
	loaded, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	return loaded.MergeWithDefaults(config.Default()), nil
}

// buildSource selects the course source: Postgres when DATABASE_URL is set,
// otherwise the dataset file.
func buildSource(ctx context.Context, cfg config.Config) (engine.CourseSource, func(), error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return dbSource{database}, database.Close, nil
	}
	if cfg.DatasetPath == "" {
		return nil, nil, fmt.Errorf("a course dataset is required (set --dataset, DATASET_PATH or DATABASE_URL)")
	}
	return engine.FileSource{Path: cfg.DatasetPath}, func() {}, nil
}

// dbSource adapts the database catalog reader to the engine source interface.
type dbSource struct {
	db *db.DB
}

func (s dbSource) Load(ctx context.Context) ([]types.CourseRecord, error) {
	return s.db.LoadCourses(ctx)
}
