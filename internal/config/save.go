package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SaveTheme updates the theme section in the config file. This
// preserves comments and formatting in other sections by using
// yaml.Node.
func SaveTheme(configPath string, theme ThemeConfig) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	themeNode, err := buildThemeNode(theme)
	if err != nil {
		return fmt.Errorf("building theme node: %w", err)
	}

	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "theme"},
						themeNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == "theme" {
					root.Content[i+1] = themeNode
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: "theme"},
					themeNode,
				)
			}
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := os.WriteFile(configPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// buildThemeNode converts a ThemeConfig into a yaml.Node. Empty
// fields are omitted so the saved section stays minimal.
func buildThemeNode(theme ThemeConfig) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	if theme.Preset != "" {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "preset"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: theme.Preset},
		)
	}
	if theme.Mode != "" {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "mode"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: theme.Mode},
		)
	}
	if len(theme.Colors) > 0 {
		var colorsNode yaml.Node
		if err := colorsNode.Encode(theme.Colors); err != nil {
			return nil, fmt.Errorf("encoding colors: %w", err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "colors"},
			&colorsNode,
		)
	}

	return node, nil
}
