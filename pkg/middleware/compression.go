package middleware

import (
	"compress/gzip"

	gingzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// CompressionConfig represents compression middleware configuration
type CompressionConfig struct {
	// Compression level (1-9, default: gzip.DefaultCompression)
	Level int
	// Exclude paths from compression
	ExcludePaths []string
	// Exclude file extensions from compression
	ExcludeExtensions []string
}

// DefaultCompressionConfig returns default compression configuration.
// Encoded images are already compressed, so only JSON routes are gzipped.
func DefaultCompressionConfig(imagePath string) *CompressionConfig {
	cfg := &CompressionConfig{
		Level:             gzip.DefaultCompression,
		ExcludePaths:      []string{"/metrics", "/health"},
		ExcludeExtensions: []string{".jpg", ".jpeg", ".png", ".gif"},
	}
	if imagePath != "" {
		cfg.ExcludePaths = append(cfg.ExcludePaths, imagePath)
	}
	return cfg
}

// CompressionMiddleware creates compression middleware
func CompressionMiddleware(config *CompressionConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultCompressionConfig("")
	}
	return gingzip.Gzip(config.Level,
		gingzip.WithExcludedPaths(config.ExcludePaths),
		gingzip.WithExcludedExtensions(config.ExcludeExtensions),
	)
}
