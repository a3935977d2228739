package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/roadmap/internal/model"
	"github.com/idilsaglam/roadmap/internal/ui"
)

// Format selects the serialization written by Write/Save.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text|json|yaml)", s)
}

// FormatFromPath guesses the format from a file extension, falling back to def.
func FormatFromPath(path string, def Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt":
		return FormatText
	}
	return def
}

func Write(w io.Writer, r model.Roadmap, f Format) error {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		return enc.Close()
	case FormatText:
		ui.RenderRoadmap(w, r)
		return nil
	}
	return fmt.Errorf("unknown format %q", f)
}

// Save writes r to path. The file is replaced whole.
func Save(path string, r model.Roadmap, f Format) error {
	var buf bytes.Buffer
	if err := Write(&buf, r, f); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Load reads a roadmap previously saved as JSON or YAML.
func Load(path string) (model.Roadmap, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Roadmap{}, fmt.Errorf("read file: %w", err)
	}
	var r model.Roadmap
	switch FormatFromPath(path, FormatJSON) {
	case FormatYAML:
		if err := yaml.Unmarshal(b, &r); err != nil {
			return model.Roadmap{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(b, &r); err != nil {
			return model.Roadmap{}, fmt.Errorf("json unmarshal: %w", err)
		}
	default:
		return model.Roadmap{}, fmt.Errorf("cannot load text export %s", path)
	}
	return r, r.Validate()
}
