package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the knobs shared by the CLI and the visualization
// server. Every key has a default so the binaries run with an empty
// environment.
type Config struct {
	Port         string // Port for the visualization server
	MazeFile     string // Maze the visualization server solves
	CellWidth    int    // Rendered cell side in pixels
	FrameDelayMS int    // Delay between streamed frames
}

// Load reads configuration from the environment, with a .env file
// picked up when present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file loaded: %v", err)
	}
	return Config{
		Port:         getEnvWithDefault("PORT", "8080"),
		MazeFile:     getEnvWithDefault("MAZE_FILE", "data/maze_1.txt"),
		CellWidth:    getEnvAsIntWithDefault("CELL_WIDTH", 70),
		FrameDelayMS: getEnvAsIntWithDefault("FRAME_DELAY_MS", 40),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warnf("environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
