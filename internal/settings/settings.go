package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vcamkit/vcamctl/internal/videoformat"
)

// File is the decoded settings document.
type File struct {
	General General      `yaml:"general"`
	Formats []FormatPool `yaml:"formats"`
	Cameras []Camera     `yaml:"cameras"`
}

// General holds the global defaults section.
type General struct {
	DefaultFrame string `yaml:"default_frame"`
	LogLevel     string `yaml:"loglevel"`
}

// FormatPool is one entry of the shared formats list. Each field accepts a
// single value or a comma-separated list; the pool expands to the cross
// product of all four fields.
type FormatPool struct {
	Format string `yaml:"format"`
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
	FPS    string `yaml:"fps"`
}

// Camera describes one device to create. Formats lists 1-based positions
// into the file's format pools, comma-separated.
type Camera struct {
	Description string `yaml:"description"`
	Formats     string `yaml:"formats"`
}

// Load reads and decodes the settings file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}
	return &f, nil
}

// splitList splits a comma-separated field into trimmed non-empty values.
func splitList(s string) []string {
	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Expand returns the pool's formats: the cross product of its pixel
// formats, widths, heights and frame rates, keeping only valid entries.
// A pool with any empty field expands to nothing.
func (p FormatPool) Expand() []videoformat.Format {
	matrix := [][]string{
		splitList(p.Format),
		splitList(p.Width),
		splitList(p.Height),
		splitList(p.FPS),
	}
	for _, row := range matrix {
		if len(row) == 0 {
			return nil
		}
	}

	var formats []videoformat.Format
	for _, combo := range matrixCombine(matrix) {
		width, errW := strconv.Atoi(combo[1])
		height, errH := strconv.Atoi(combo[2])
		if errW != nil || errH != nil {
			continue
		}

		f := videoformat.New(
			videoformat.FourCCFromString(combo[0]),
			width,
			height,
			videoformat.ParseFraction(combo[3]),
		)
		if f.IsValid() {
			formats = append(formats, f)
		}
	}
	return formats
}

// matrixCombine builds every combination taking one element per row, in
// row-major order.
func matrixCombine(matrix [][]string) [][]string {
	var combinations [][]string
	combine(matrix, 0, nil, &combinations)
	return combinations
}

func combine(matrix [][]string, index int, picked []string, out *[][]string) {
	if index >= len(matrix) {
		*out = append(*out, append([]string(nil), picked...))
		return
	}
	for _, v := range matrix[index] {
		combine(matrix, index+1, append(picked, v), out)
	}
}

// poolFormats resolves a camera's pool references against the expanded
// pools. Malformed or out-of-range references are skipped.
func poolFormats(refs string, pools [][]videoformat.Format) []videoformat.Format {
	var formats []videoformat.Format
	for _, ref := range splitList(refs) {
		index, err := strconv.Atoi(ref)
		if err != nil {
			continue
		}
		index--
		if index < 0 || index >= len(pools) {
			continue
		}
		formats = append(formats, pools[index]...)
	}
	return formats
}

// logLevelNames maps symbolic log level names to their numeric values.
var logLevelNames = map[string]int{
	"emergency": 0,
	"fatal":     1,
	"critical":  2,
	"error":     3,
	"warning":   4,
	"notice":    5,
	"info":      6,
	"debug":     7,
}

// ParseLogLevel accepts a numeric level or a symbolic name.
func ParseLogLevel(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := logLevelNames[strings.ToLower(strings.TrimSpace(s))]
	return n, ok
}
