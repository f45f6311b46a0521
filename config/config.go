package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/swdee/go-poseviz"
	"github.com/swdee/go-poseviz/render"
)

type Config struct {
	// Application
	LogLevel string

	// Canvas
	WindowName    string
	SurfaceWidth  int
	SurfaceHeight int
	FPS           int

	// Overlay
	DrawLabels        bool
	KeyPointThreshold float64
	PointRadius       int
	LineThickness     int

	// Label font, the built in bitmap font is used when FontFile is empty
	FontFile string
	FontSize float64

	// Skeleton topology file, the COCO skeleton is used when empty
	TopologyFile string
}

// Load reads the configuration from the environment, after loading any .env
// file in the working directory
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found or error loading .env file, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		LogLevel: getEnv("POSEVIZ_LOG_LEVEL", "info"),

		// Canvas
		WindowName:    getEnv("POSEVIZ_WINDOW_NAME", "Pose Visualizer"),
		SurfaceWidth:  getEnvInt("POSEVIZ_SURFACE_WIDTH", 1280),
		SurfaceHeight: getEnvInt("POSEVIZ_SURFACE_HEIGHT", 720),
		FPS:           getEnvInt("POSEVIZ_FPS", 30),

		// Overlay
		DrawLabels:        getEnvBool("POSEVIZ_DRAW_LABELS", true),
		KeyPointThreshold: getEnvFloat("POSEVIZ_KEYPOINT_THRESHOLD", 0.2),
		PointRadius:       getEnvInt("POSEVIZ_POINT_RADIUS", 3),
		LineThickness:     getEnvInt("POSEVIZ_LINE_THICKNESS", 2),

		// Label font
		FontFile: getEnv("POSEVIZ_FONT_FILE", ""),
		FontSize: getEnvFloat("POSEVIZ_FONT_SIZE", 14),

		TopologyFile: getEnv("POSEVIZ_TOPOLOGY_FILE", ""),
	}
}

// Level returns the configured log level, falling back to info when it
// can not be parsed
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)

	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

// SkeletonStyle returns the skeleton style with the configured overrides
func (c *Config) SkeletonStyle() render.SkeletonStyle {
	style := render.DefaultSkeletonStyle()
	style.Threshold = float32(c.KeyPointThreshold)

	if c.PointRadius > 0 {
		style.PointRadius = c.PointRadius
	}

	if c.LineThickness > 0 {
		style.LineThickness = c.LineThickness
	}

	return style
}

// Topology returns the skeleton topology to draw
func (c *Config) Topology() (poseviz.Topology, error) {
	if c.TopologyFile == "" {
		return poseviz.COCOTopology(), nil
	}

	topo, err := poseviz.LoadTopology(c.TopologyFile)

	if err != nil {
		return poseviz.Topology{}, fmt.Errorf("error loading topology %s: %w", c.TopologyFile, err)
	}

	return topo, nil
}

// Font returns the label font, loading the configured font file if set
func (c *Config) Font() (render.Font, error) {
	f := render.DefaultFont()

	if c.FontFile == "" {
		return f, nil
	}

	face, err := render.LoadFontFace(c.FontFile, c.FontSize)

	if err != nil {
		return f, err
	}

	return f.WithFace(face), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
