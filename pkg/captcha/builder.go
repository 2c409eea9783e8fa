package captcha

import (
	imagex "github.com/code-100-precent/LingCaptcha/pkg/image"
	"github.com/golang/freetype/truetype"
)

const (
	DefaultLength               = 5
	DefaultWidth                = 130
	DefaultHeight               = 40
	DefaultComplexity           = 1
	DefaultCompression          = imagex.DefaultQuality
	DefaultInterferenceLines    = 2
	DefaultInterferenceEllipses = 2

	MinWidth  = 30
	MaxWidth  = 2000
	MinHeight = 20
	MaxHeight = 2000
)

// Config is the fully resolved, immutable parameter set of one build.
type Config struct {
	Text                 string
	Length               int
	Characters           CharacterSet
	Width                int
	Height               int
	DarkMode             bool
	Complexity           int
	Compression          int
	DropShadow           bool
	InterferenceLines    int
	InterferenceEllipses int
	Distortion           int
	Format               imagex.Format
	Font                 []byte
	Face                 *truetype.Font // parsed font, takes precedence over Font
}

// Builder collects optional settings; nothing is clamped or defaulted until
// Config or Build is called.
type Builder struct {
	text                 *string
	length               *int
	characters           CharacterSet
	width                *int
	height               *int
	darkMode             *bool
	complexity           *int
	compression          *int
	dropShadow           *bool
	interferenceLines    *int
	interferenceEllipses *int
	distortion           *int
	format               *imagex.Format
	font                 []byte
	face                 *truetype.Font
}

// NewBuilder 创建验证码构建器
func NewBuilder() *Builder {
	return &Builder{}
}

// Text uses text verbatim as the solution. An empty string means random.
func (b *Builder) Text(text string) *Builder {
	b.text = &text
	return b
}

func (b *Builder) Length(length int) *Builder {
	b.length = &length
	return b
}

// Characters sets the alphabet for random solutions.
func (b *Builder) Characters(chars []rune) *Builder {
	b.characters = append(CharacterSet(nil), chars...)
	return b
}

func (b *Builder) Width(width int) *Builder {
	b.width = &width
	return b
}

func (b *Builder) Height(height int) *Builder {
	b.height = &height
	return b
}

func (b *Builder) DarkMode(dark bool) *Builder {
	b.darkMode = &dark
	return b
}

// Complexity sets the noise level, 1 (none) to 10.
func (b *Builder) Complexity(complexity int) *Builder {
	b.complexity = &complexity
	return b
}

// Compression sets the encoder quality, 1 to 99.
func (b *Builder) Compression(quality int) *Builder {
	b.compression = &quality
	return b
}

func (b *Builder) DropShadow(enabled bool) *Builder {
	b.dropShadow = &enabled
	return b
}

func (b *Builder) InterferenceLines(n int) *Builder {
	b.interferenceLines = &n
	return b
}

func (b *Builder) InterferenceEllipses(n int) *Builder {
	b.interferenceEllipses = &n
	return b
}

// Distortion sets the wavy warp level; 0 disables it.
func (b *Builder) Distortion(level int) *Builder {
	b.distortion = &level
	return b
}

// Format selects the output codec. Unknown formats fall back to JPEG.
func (b *Builder) Format(format imagex.Format) *Builder {
	b.format = &format
	return b
}

// Font replaces the embedded font with TTF bytes. Unparseable data falls
// back to the embedded font at build time.
func (b *Builder) Font(ttf []byte) *Builder {
	b.font = append([]byte(nil), ttf...)
	return b
}

// TrueTypeFont uses a font parsed once by the caller, e.g. with ParseFont,
// so repeated builds skip hashing and parsing the raw bytes.
func (b *Builder) TrueTypeFont(f *truetype.Font) *Builder {
	b.face = f
	return b
}

// Config resolves defaults and clamps every numeric option.
func (b *Builder) Config() Config {
	cfg := Config{
		Length:               clamp(intOr(b.length, DefaultLength), MinLength, MaxLength),
		Characters:           b.characters,
		Width:                clamp(intOr(b.width, DefaultWidth), MinWidth, MaxWidth),
		Height:               clamp(intOr(b.height, DefaultHeight), MinHeight, MaxHeight),
		Complexity:           clamp(intOr(b.complexity, DefaultComplexity), MinComplexity, MaxComplexity),
		Compression:          imagex.ClampQuality(intOr(b.compression, DefaultCompression)),
		InterferenceLines:    max(intOr(b.interferenceLines, DefaultInterferenceLines), 0),
		InterferenceEllipses: max(intOr(b.interferenceEllipses, DefaultInterferenceEllipses), 0),
		Distortion:           max(intOr(b.distortion, 0), 0),
		Format:               imagex.DefaultFormat,
		Font:                 b.font,
		Face:                 b.face,
	}
	if len(cfg.Characters) == 0 {
		cfg.Characters = DefaultCharacterSet()
	}
	if b.text != nil {
		cfg.Text = *b.text
	}
	if b.darkMode != nil {
		cfg.DarkMode = *b.darkMode
	}
	if b.dropShadow != nil {
		cfg.DropShadow = *b.dropShadow
	}
	if b.format != nil && imagex.IsValidFormat(*b.format) {
		cfg.Format = *b.format
	}
	return cfg
}

// Build renders a captcha. It never fails.
func (b *Builder) Build() *Captcha {
	return Render(b.Config())
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
