package planner

import (
	"log"
	"os"
	"path"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	LogLevel    string
	LogPath     string
	VoiceOutput bool

	OpenAIKey   string
	OpenAIModel string
}

const (
	DefaultLogLevel    = "WARN"
	DefaultOpenAIModel = "gpt-3.5-turbo"
)

var (
	userHome, _        = os.UserHomeDir()
	DefaultDatabaseURL = path.Join(userHome, ".planner", "tasks.db")
	DefaultLogPath     = path.Join(userHome, ".planner", "planner.log")
)

// LoadConfig resolves configuration from the environment, then a generated
// conf file, then compiled defaults. A .env in the working directory is
// honored so the OpenAI key can live next to the binary during development.
func LoadConfig() Config {
	_ = godotenv.Load()

	confFromEnv := configFromEnv()

	// load file
	cfgDir, _ := os.UserConfigDir()
	cfgDir = path.Join(cfgDir, "planner")
	confFile := path.Join(cfgDir, "planner.conf")
	if _, err := os.Stat(confFile); err != nil {
		log.Println("creating default conf file")
		if err := os.MkdirAll(cfgDir, 0o744); err != nil {
			panic(err)
		}
		f, err := os.Create(confFile)
		if err != nil {
			panic(err)
		}
		if _, err := f.WriteString("PLANNER_DB_URL=" + DefaultDatabaseURL + "\n"); err != nil {
			panic(err)
		}
		if _, err := f.WriteString("PLANNER_LOG_LEVEL=" + DefaultLogLevel + "\n"); err != nil {
			panic(err)
		}
		if _, err := f.WriteString("PLANNER_LOG_PATH=" + DefaultLogPath + "\n"); err != nil {
			panic(err)
		}
		_ = f.Close()
	}
	if err := godotenv.Load(confFile); err != nil {
		panic(err)
	}
	confFromFile := configFromEnv()

	return Config{
		DatabaseURL: coalesce(confFromEnv.DatabaseURL, confFromFile.DatabaseURL, DefaultDatabaseURL),
		LogLevel:    coalesce(confFromEnv.LogLevel, confFromFile.LogLevel, DefaultLogLevel),
		LogPath:     coalesce(confFromEnv.LogPath, confFromFile.LogPath, DefaultLogPath),
		VoiceOutput: confFromEnv.VoiceOutput || confFromFile.VoiceOutput,
		OpenAIKey:   coalesce(confFromEnv.OpenAIKey, confFromFile.OpenAIKey),
		OpenAIModel: coalesce(confFromEnv.OpenAIModel, confFromFile.OpenAIModel, DefaultOpenAIModel),
	}
}

func configFromEnv() Config {
	return Config{
		DatabaseURL: os.Getenv("PLANNER_DB_URL"),
		LogLevel:    os.Getenv("PLANNER_LOG_LEVEL"),
		LogPath:     os.Getenv("PLANNER_LOG_PATH"),
		VoiceOutput: os.Getenv("PLANNER_VOICE") != "",
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: os.Getenv("OPENAI_MODEL"),
	}
}

func coalesce(args ...string) string {
	for _, s := range args {
		if s != "" {
			return s
		}
	}
	return ""
}
