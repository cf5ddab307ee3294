package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	GitHub GitHubConfig
	Grant  GrantConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	ActivityTopic      string
}

type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	AppSlug      string
	IdeasRepo    string
	// Overridable endpoints so tests can stand in for GitHub.
	APIBaseURL string
	AuthURL    string
	TokenURL   string
}

type GrantConfig struct {
	Secret   string
	TTLHours int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			ActivityTopic:      getEnv("IDEA_ACTIVITY_TOPIC_NAME", "IDEA_ACTIVITY"),
		},
		GitHub: GitHubConfig{
			ClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			ClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			AppSlug:      getEnv("GITHUB_APP_SLUG", "idea-garden"),
			IdeasRepo:    getEnv("GITHUB_IDEAS_REPO", "ideas"),
			APIBaseURL:   getEnv("GITHUB_API_BASE_URL", ""),
			AuthURL:      getEnv("GITHUB_OAUTH_AUTH_URL", "https://github.com/login/oauth/authorize"),
			TokenURL:     getEnv("GITHUB_OAUTH_TOKEN_URL", "https://github.com/login/oauth/access_token"),
		},
		Grant: GrantConfig{
			Secret:   getEnv("GRANT_SECRET", ""),
			TTLHours: getEnvAsInt("GRANT_TTL_HOURS", 720),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
