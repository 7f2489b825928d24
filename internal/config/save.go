package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/tabbar/internal/log"
)

// SaveTabs replaces the tabs list in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveTabs(configPath string, tabs []TabConfig) error {
	log.Debug(log.CatConfig, "Saving tabs", "path", configPath, "count", len(tabs))
	return saveKey(configPath, "tabs", buildTabsNode(tabs))
}

// SaveActive records the tab active at startup.
func SaveActive(configPath string, id string) error {
	log.Debug(log.CatConfig, "Saving active tab", "path", configPath, "id", id)
	return saveKey(configPath, "active", &yaml.Node{Kind: yaml.ScalarNode, Value: id})
}

// saveKey sets a top-level key in the config file to value, creating the
// file if needed.
func saveKey(configPath, key string, value *yaml.Node) error {
	// Read existing file content
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	// Update or create the key
	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: key},
						value,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return fmt.Errorf("parsing config: top level is not a mapping")
		}
		found := false
		for i := 0; i < len(root.Content)-1; i += 2 {
			if root.Content[i].Value == key {
				// Keep the comment attached to the old value
				value.LineComment = root.Content[i+1].LineComment
				root.Content[i+1] = value
				found = true
				break
			}
		}
		if !found {
			root.Content = append(root.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: key},
				value,
			)
		}
	}

	// Marshal back to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// writeAtomic writes to a temp file beside path, then renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".tabbar.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// buildTabsNode creates a yaml.Node representing the tabs array.
func buildTabsNode(tabs []TabConfig) *yaml.Node {
	node := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Content: make([]*yaml.Node, 0, len(tabs)),
	}

	for _, tab := range tabs {
		tabNode := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, 6),
		}

		// Always include id
		tabNode.Content = append(tabNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "id"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: tab.ID},
		)

		if tab.Label != "" {
			tabNode.Content = append(tabNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "label"},
				&yaml.Node{Kind: yaml.ScalarNode, Value: tab.Label},
			)
		}

		if tab.Icon != "" {
			tabNode.Content = append(tabNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "icon"},
				&yaml.Node{Kind: yaml.ScalarNode, Value: tab.Icon},
			)
		}

		node.Content = append(node.Content, tabNode)
	}

	return node
}
