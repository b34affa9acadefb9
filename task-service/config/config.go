package config

import "os"

// Config holds everything the service reads from the environment.
type Config struct {
	MongoURI        string
	Database        string
	Port            string
	EnableBootstrap bool
}

func Load() Config {
	return Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:        getEnv("MONGO_DB", "taskdb"),
		Port:            getEnv("PORT", "8080"),
		EnableBootstrap: os.Getenv("ENABLE_BOOTSTRAP") == "true",
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
