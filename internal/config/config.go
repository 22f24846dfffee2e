package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values that book config files may override.
const (
	DefaultTitle  = "Summary"
	DefaultOutput = "SUMMARY.md"
)

// Options holds everything a generation run needs.
type Options struct {
	NotesDir   string   // directory to scan
	OutputFile string   // summary file name, written into NotesDir
	Format     string   // "md" or "git"
	Title      string   // summary document title
	Sort       []string // priority names pinned to the front of the root level
	MDHeader   bool     // take titles from the first markdown heading
	Overwrite  bool     // overwrite an existing summary without asking

	Port string // preview server port
}

// Defaults returns options seeded from the environment.
func Defaults() Options {
	return Options{
		NotesDir:   ".",
		OutputFile: envOr("BOOKSUM_OUTPUT", DefaultOutput),
		Format:     envOr("BOOKSUM_FORMAT", "md"),
		Title:      envOr("BOOKSUM_TITLE", DefaultTitle),
		MDHeader:   envBool("BOOKSUM_MDHEADER", false),
		Port:       envOr("BOOKSUM_PORT", "8099"),
	}
}

func (o Options) Validate() error {
	if o.Format != "md" && o.Format != "git" {
		return fmt.Errorf("format must be md or git, got %q", o.Format)
	}
	if strings.TrimSpace(o.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file must not be empty")
	}
	return nil
}

// bookTOML mirrors the [book] table of an mdBook book.toml.
type bookTOML struct {
	Book struct {
		Title string `toml:"title"`
		Src   string `toml:"src"`
	} `toml:"book"`
}

// bookJSON mirrors the fields of a GitBook book.json we care about.
type bookJSON struct {
	Title string `json:"title"`
	Root  string `json:"root"`
}

// ApplyBookConfig fills options the user left at their defaults from the
// book config file matching the chosen format: book.toml for md,
// book.json / book.js for git. Missing or malformed files are skipped.
func (o *Options) ApplyBookConfig(log *slog.Logger) {
	switch o.Format {
	case "git":
		o.applyJSON(filepath.Join(o.NotesDir, "book.json"), log)
		// Legacy book.js is honored only when it holds plain JSON;
		// JavaScript module syntax is skipped like any malformed file.
		o.applyJSON(filepath.Join(o.NotesDir, "book.js"), log)
	default:
		o.applyTOML(filepath.Join(o.NotesDir, "book.toml"), log)
	}
}

func (o *Options) applyTOML(path string, log *slog.Logger) {
	var cfg bookTOML
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		log.Debug("no usable book.toml", "path", path, "error", err)
		return
	}
	log.Debug("found book config", "path", path)
	o.adopt(cfg.Book.Src, cfg.Book.Title)
}

func (o *Options) applyJSON(path string, log *slog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug("no usable book config", "path", path, "error", err)
		return
	}
	var cfg bookJSON
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Debug("malformed book config", "path", path, "error", err)
		return
	}
	log.Debug("found book config", "path", path)
	o.adopt(cfg.Root, cfg.Title)
}

// adopt applies config file values only where the user kept the defaults,
// so explicit flags always win.
func (o *Options) adopt(src, title string) {
	if o.NotesDir == "." && src != "" {
		o.NotesDir = src
	}
	if o.Title == DefaultTitle && title != "" {
		o.Title = title
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
