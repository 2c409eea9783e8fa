package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/code-100-precent/LingCaptcha/pkg/captcha"
	imagex "github.com/code-100-precent/LingCaptcha/pkg/image"
	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"go.uber.org/zap"
)

type sample struct {
	name    string
	builder *captcha.Builder
}

func standard(dark bool) *captcha.Builder {
	return captcha.NewBuilder().Length(5).Width(130).Height(40).DarkMode(dark)
}

// samples 示例图片集合：明暗各三张、复杂度 1-10、阴影、强干扰、扭曲
func samples() []sample {
	var out []sample
	for i := 1; i <= 3; i++ {
		out = append(out,
			sample{fmt.Sprintf("img-light-%d", i), standard(false)},
			sample{fmt.Sprintf("img-dark-%d", i), standard(true)},
		)
	}
	for i := captcha.MinComplexity; i <= captcha.MaxComplexity; i++ {
		out = append(out,
			sample{fmt.Sprintf("img-light-complexity-%d", i), standard(false).Complexity(i)},
			sample{fmt.Sprintf("img-dark-complexity-%d", i), standard(true).Complexity(i)},
		)
	}
	out = append(out,
		sample{"img-light-shadow", standard(false).DropShadow(true)},
		sample{"img-light-interference-heavy", standard(false).InterferenceLines(8).InterferenceEllipses(6)},
		sample{"img-light-distortion", standard(false).Distortion(2)},
		sample{"img-light-distortion-heavy", standard(false).Distortion(5)},
	)
	return out
}

func run(dir string, format imagex.Format) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	list := samples()
	for _, s := range list {
		path := filepath.Join(dir, s.name+format.Extension())
		if err := s.builder.Build().Save(path); err != nil {
			return 0, fmt.Errorf("failed to save %s: %w", path, err)
		}
		logger.Debug("sample written", zap.String("path", path))
	}
	return len(list), nil
}

func main() {
	out := flag.String("out", "images", "output directory")
	formatName := flag.String("format", "png", "image format (jpeg, png, gif, bmp, tiff)")
	flag.Parse()

	if err := logger.Init(&logger.LogConfig{Level: "info"}, "development"); err != nil {
		panic(err)
	}
	defer logger.Sync()

	format, ok := imagex.ParseFormat(*formatName)
	if !ok {
		logger.Fatal("unknown image format", zap.String("format", *formatName))
	}

	n, err := run(*out, format)
	if err != nil {
		logger.Fatal("generate samples failed", zap.Error(err))
	}
	logger.Info("samples generated", zap.Int("count", n), zap.String("dir", *out))
}
