package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/prvkit/errs"
)

// Load reads a layout schema document from path.
//
// The document format is chosen by extension: ".yaml" and ".yml" are decoded
// as YAML, everything else as JSON (the legacy tool shipped layout.json).
// Missing fields receive defaults (line_length 78, most_common_cont_lines 6)
// and the resulting schema is validated.
//
// Returns:
//   - Schema: The decoded, validated schema
//   - error: errs.ErrLayoutNotFound if path does not exist, decode errors
//     wrapped with errs.ErrInvalidLayout, or Validate failures
func Load(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Schema{}, fmt.Errorf("%w: %s", errs.ErrLayoutNotFound, path)
		}

		return Schema{}, fmt.Errorf("read layout schema %s: %w", path, err)
	}

	var schema Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &schema)
	default:
		err = json.Unmarshal(data, &schema)
	}
	if err != nil {
		return Schema{}, fmt.Errorf("%w: %s: %v", errs.ErrInvalidLayout, path, err)
	}

	schema.applyDefaults()
	if err := schema.Validate(); err != nil {
		return Schema{}, fmt.Errorf("%s: %w", path, err)
	}

	return schema, nil
}
