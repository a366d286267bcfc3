// Package taxonomy decodes word taxonomies from JSON or YAML resources.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"wordtree/dicts"
	"wordtree/internal/models"
	"wordtree/internal/util"
)

/*
Load reads the taxonomy at path and decodes it into a tree.

An empty path loads the taxonomy bundled with the binary. Any failure
(missing file, binary content, syntax error, non-object root) wraps models.ErrLoad.
*/
func Load(path string) (models.Node, error) {
	if path == "" {
		return Decode(dicts.Tree, dicts.TreeName)
	}

	binary, err := util.IsLikelyBinary(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrLoad, err)
	}
	if binary {
		return nil, fmt.Errorf("%w: %s looks like a binary file", models.ErrLoad, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrLoad, err)
	}
	return Decode(data, path)
}

// Decode parses data as a taxonomy. The format is picked from the extension
// of name: .yaml and .yml use YAML, anything else is parsed as JSON.
func Decode(data []byte, name string) (models.Node, error) {
	content, err := util.CleanFileContent(data, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrLoad, err)
	}

	var raw any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal([]byte(content), &raw)
	default:
		err = json.Unmarshal([]byte(content), &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", models.ErrLoad, name, err)
	}

	root, ok := convert(raw).(models.Branch)
	if !ok {
		return nil, fmt.Errorf("%w: %s: root must be an object of categories", models.ErrLoad, name)
	}

	log.WithField("resource", name).Debugf("Loaded taxonomy with %d top-level categories", len(root))
	return root, nil
}

// convert maps decoded values onto the tree variants: objects become
// branches, arrays become leaves, everything else is Other.
func convert(value any) models.Node {
	switch v := value.(type) {
	case map[string]any:
		branch := make(models.Branch, len(v))
		for key, child := range v {
			branch[key] = convert(child)
		}
		return branch
	case map[any]any:
		branch := make(models.Branch, len(v))
		for key, child := range v {
			branch[fmt.Sprint(key)] = convert(child)
		}
		return branch
	case []any:
		leaf := make(models.Leaf, 0, len(v))
		for _, item := range v {
			word, ok := item.(string)
			if !ok {
				continue
			}
			leaf = append(leaf, word)
		}
		return leaf
	default:
		return models.Other{}
	}
}
