package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	DatabaseURL     string
	Env             string
	LogLevel        string

	LLMProvider  string
	LLMModel     string
	GeminiAPIKey string
	OpenAIAPIKey string

	PDFRenderer string
	ChromePath  string

	JWTSecret  string
	AppBaseURL string

	ResendAPIKey string
	ResendFrom   string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
	LoginURL           string
}

// Load reads configuration from environment variables with sensible defaults.
// Values from an optional YAML file (CONFIG_FILE) act as defaults that the
// environment overrides.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}

	file := fileConfig{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fc, err := loadFile(path)
		if err != nil {
			log.Printf("config: ignoring %s: %v", path, err)
		} else {
			file = fc
		}
	}

	env := normalizeEnv(getEnv("ENV", file.Env, "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", file.Server.Port, "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", strings.Join(file.Server.CORSAllowOrigins, ","), "http://localhost:3000")),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", file.Storage.Type, "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", file.Storage.LocalDir, "./data"),
		AWSRegion:       getEnv("AWS_REGION", file.Storage.AWSRegion, ""),
		S3Bucket:        getEnv("S3_BUCKET", file.Storage.S3Bucket, ""),
		S3Prefix:        getEnv("S3_PREFIX", file.Storage.S3Prefix, ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", "", ""),
		DatabaseURL:     dbURL,
		Env:             env,
		LogLevel:        getEnv("LOG_LEVEL", file.Log.Level, "info"),

		LLMProvider:  normalizeProvider(getEnv("LLM_PROVIDER", file.LLM.Provider, "gemini")),
		LLMModel:     getEnv("LLM_MODEL", file.LLM.Model, ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", "", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", "", ""),

		PDFRenderer: normalizeRenderer(getEnv("PDF_RENDERER", file.Export.Renderer, "pdf")),
		ChromePath:  getEnv("CHROME_PATH", file.Export.ChromePath, ""),

		JWTSecret:  getEnv("JWT_SECRET", "", ""),
		AppBaseURL: strings.TrimRight(getEnv("APP_BASE_URL", file.Server.BaseURL, "http://localhost:8080"), "/"),

		ResendAPIKey: getEnv("RESEND_API_KEY", "", ""),
		ResendFrom:   getEnv("RESEND_FROM", file.Mail.From, "onboarding@resend.dev"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", "", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", "", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "", ""),
		UIRedirectURL:      getEnv("UI_REDIRECT_URL", "", ""),
		LoginURL:           getEnv("LOGIN_URL", file.Server.LoginURL, ""),
	}
}

// IsDevLike reports whether in-memory fallbacks are allowed.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}

func getEnv(key, fileVal, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if fileVal != "" {
		return fileVal
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	default:
		return "gemini"
	}
}

func normalizeRenderer(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "chrome", "chromedp", "html":
		return "chrome"
	default:
		return "pdf"
	}
}
