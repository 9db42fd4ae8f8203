// Package emit owns filesystem emission: picking a writable output root,
// deriving the per-project folder slug, and writing rendered documents.
//
// Emission is deliberately dumb — it receives filenames and bodies and
// never inspects document content. The engine stays filesystem-free.
package emit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNoWritableRoot means neither the requested root nor the fallback
// accepted a probe write.
var ErrNoWritableRoot = errors.New("no writable output root")

// probeName is the throwaway file used to verify a root accepts writes.
const probeName = ".umx-write-test"

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	dashRuns   = regexp.MustCompile(`-{2,}`)
	deaccenter = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// EnsureWritableRoot returns the first of requested and fallback that can
// actually be written to. A root counts as writable when it can be created
// and a probe file inside it can be written and removed. Returns
// ErrNoWritableRoot when both fail.
func EnsureWritableRoot(requested, fallback string) (string, error) {
	for _, root := range []string{requested, fallback} {
		if root == "" {
			continue
		}
		if err := probeWrite(root); err == nil {
			return root, nil
		}
	}
	return "", ErrNoWritableRoot
}

func probeWrite(root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(root, probeName)
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}

// Slugify turns a project name into a filesystem-safe folder name:
// diacritics folded, lowercased, non-alphanumeric runs collapsed to
// single dashes, capped at 64 characters. May return "" when the name
// has no ASCII-representable characters at all.
func Slugify(value string) string {
	folded, _, err := transform.String(deaccenter, value)
	if err != nil {
		folded = value
	}

	text := strings.ToLower(strings.TrimSpace(folded))
	text = nonAlnum.ReplaceAllString(text, "-")
	text = dashRuns.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")
	if len(text) > 64 {
		text = strings.Trim(text[:64], "-")
	}
	return text
}

// RunSlug returns the folder slug for a project name, falling back to a
// generated "project-<id>" slug when the name slugifies to nothing.
func RunSlug(projectName string) string {
	if slug := Slugify(projectName); slug != "" {
		return slug
	}
	id, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 12)
	if err != nil {
		// gonanoid only fails when the system RNG does.
		id = "fallback"
	}
	return "project-" + id
}

// WriteDoc writes one rendered document under dir, creating parent
// directories as needed. Bodies are normalized to end with exactly one
// newline.
func WriteDoc(dir, filename, body string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	content := strings.TrimRight(body, "\n") + "\n"
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
