package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Saubhagya1707/crying-tailor/internal/account"
	"github.com/Saubhagya1707/crying-tailor/internal/auth"
	"github.com/Saubhagya1707/crying-tailor/internal/documents"
	"github.com/Saubhagya1707/crying-tailor/internal/extraction"
	"github.com/Saubhagya1707/crying-tailor/internal/llm"
	"github.com/Saubhagya1707/crying-tailor/internal/llm/gemini"
	"github.com/Saubhagya1707/crying-tailor/internal/llm/openai"
	"github.com/Saubhagya1707/crying-tailor/internal/notify"
	"github.com/Saubhagya1707/crying-tailor/internal/profiles"
	"github.com/Saubhagya1707/crying-tailor/internal/services/health"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/config"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/server"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/storage/db"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/storage/object"
	localstore "github.com/Saubhagya1707/crying-tailor/internal/shared/storage/object/local"
	s3store "github.com/Saubhagya1707/crying-tailor/internal/shared/storage/object/s3"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
	"github.com/Saubhagya1707/crying-tailor/internal/tailoring"
	"github.com/Saubhagya1707/crying-tailor/internal/users"
	"github.com/Saubhagya1707/crying-tailor/resume/render"
)

// App holds shared dependencies and the HTTP router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client

	DocumentsRepo documents.Repo
	ProfilesRepo  profiles.Repo
	UsersRepo     users.Repo

	DocumentsService  *documents.Service
	ProfilesService   *profiles.Service
	TailoringService  *tailoring.Service
	ExtractionService *extraction.Service
	UsersService      *users.Service
	AccountService    *account.Service
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := BuildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    client,
	}
	buildServices(app)
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: database unavailable; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// BuildLLM selects the generative provider. A missing key yields a client
// that reports itself unconfigured, so requests fail with a configuration
// error instead of at startup.
func BuildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			return placeholderLLM("openai", "OPENAI_API_KEY"), nil
		}
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel), nil
	default:
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			return placeholderLLM("gemini", "GEMINI_API_KEY"), nil
		}
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, gemini.Options{})
	}
}

func placeholderLLM(provider, setting string) llm.Client {
	telemetry.Warn("llm.not_configured", map[string]any{
		"provider": provider,
		"setting":  setting,
		"message":  setting + " is not set; tailoring and import will fail until it is",
	})
	return llm.PlaceholderClient{Setting: setting}
}

// BuildRenderer selects the export renderer. The Chrome renderer falls back
// to the block-layout renderer when Chrome is unavailable.
func BuildRenderer(cfg config.Config) render.Renderer {
	if cfg.PDFRenderer == "chrome" {
		return render.Fallback{
			Primary:   render.NewChromeRenderer(cfg.ChromePath),
			Secondary: render.NewPDFRenderer(),
		}
	}
	return render.NewPDFRenderer()
}

func buildServices(app *App) {
	if app.DB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	cfg := app.Config
	app.ProfilesService = &profiles.Service{Repo: app.ProfilesRepo}
	app.TailoringService = &tailoring.Service{
		Profiles:  app.ProfilesService,
		Engine:    tailoring.NewEngine(app.LLM),
		Documents: app.DocumentsRepo,
	}
	app.ExtractionService = &extraction.Service{
		Engine:   extraction.NewEngine(app.LLM),
		Profiles: app.ProfilesService,
		Store:    app.Store,
	}
	app.DocumentsService = &documents.Service{
		Repo:      app.DocumentsRepo,
		Generator: app.TailoringService,
		Renderer:  BuildRenderer(cfg),
	}
	app.UsersService = users.NewService(app.UsersRepo)
	app.AccountService = &account.Service{
		DB:        app.DB,
		Documents: app.DocumentsRepo,
		Profiles:  app.ProfilesRepo,
		Users:     app.UsersRepo,
		Store:     app.Store,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		Health: health.NewService(app.DB),
		Credentials: &auth.CredentialsHandler{
			Users:    app.UsersService,
			Notifier: notify.New(cfg.ResendAPIKey, cfg.ResendFrom),
			BaseURL:  cfg.AppBaseURL,
			LoginURL: cfg.LoginURL,
		},
		GoogleAuth: auth.NewGoogleService(
			app.UsersService,
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
		),
		UserHandler:     users.NewHandler(app.UsersService),
		ProfileHandler:  profiles.NewHandler(app.ProfilesService, app.ExtractionService),
		DocumentHandler: documents.NewHandler(app.DocumentsService),
		AccountHandler:  account.NewHandler(app.AccountService),
	})
}
