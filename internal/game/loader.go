package game

import (
	"bufio"
	"fmt"
	"go-pairs/internal/board"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MaxGlyphWidth is the widest label that fits inside a default card.
var MaxGlyphWidth = board.DefaultLayout().CardWidth - 2

// DefaultFaces is the built-in roster used when no manifest is given.
func DefaultFaces() []board.Face {
	roster := []struct{ id, glyph string }{
		{"ryu", "RYU"},
		{"ken", "KEN"},
		{"chun-li", "CHUN"},
		{"guile", "GUILE"},
		{"zangief", "ZGF"},
		{"dhalsim", "DHAL"},
		{"blanka", "BLNK"},
		{"e-honda", "HONDA"},
		{"vega", "VEGA"},
		{"balrog", "BALRG"},
		{"sagat", "SAGAT"},
		{"bison", "BISON"},
	}

	faces := make([]board.Face, len(roster))
	for i, r := range roster {
		faces[i] = board.Face{ID: r.id, Glyph: r.glyph}
	}
	return faces
}

var fieldsRe = regexp.MustCompile(`\s+`)

// LoadFaces reads a face manifest. Each non-blank line that does not start
// with '#' has the form "id glyph [asset]". Asset paths are resolved relative
// to the manifest and must exist.
func LoadFaces(path string) ([]board.Face, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer file.Close()

	dir := filepath.Dir(path)
	seen := make(map[string]int)

	var faces []board.Face
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := fieldsRe.Split(line, 3)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: expected \"id glyph [asset]\"", path, lineNo)
		}

		face := board.Face{ID: fields[0], Glyph: fields[1]}
		if prev, ok := seen[face.ID]; ok {
			return nil, fmt.Errorf("%s:%d: duplicate face %q (first on line %d)", path, lineNo, face.ID, prev)
		}
		seen[face.ID] = lineNo

		if w := lipgloss.Width(face.Glyph); w > MaxGlyphWidth {
			return nil, fmt.Errorf("%s:%d: glyph %q is %d cells wide, max %d", path, lineNo, face.Glyph, w, MaxGlyphWidth)
		}

		if len(fields) == 3 {
			asset := fields[2]
			if !filepath.IsAbs(asset) {
				asset = filepath.Join(dir, asset)
			}
			if _, err := os.Stat(asset); err != nil {
				return nil, fmt.Errorf("%s:%d: missing asset %s: %w", path, lineNo, asset, err)
			}
			face.Asset = asset
		}

		faces = append(faces, face)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan manifest %s: %w", path, err)
	}

	return faces, nil
}
