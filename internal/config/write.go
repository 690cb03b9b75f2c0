package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rileyhilliard/bwmon/internal/errors"
	"gopkg.in/yaml.v3"
)

// keyDocs documents each key in a generated config file, in file order.
var keyDocs = []struct {
	key, doc string
}{
	{"interface", "Interface to monitor. Empty picks the first interface that is up."},
	{"delay", "Seconds between samples (0.5) or a duration (500ms). Minimum 0.1s."},
	{"units", "binary (KiB, 1024) or decimal (kB, 1000)."},
	{"scale", "Graph scale: zero-max, min-max or sync."},
	{"peak", "Show the all-time peak instead of the window max."},
	{"lines", "Fixed graph height. 0 fits the terminal."},
	{"colors", "Colored output."},
	{"host", "Read counters from a remote Linux host over SSH (alias, host, user@host:port)."},
	{"metrics_addr", "Serve Prometheus metrics on this address, e.g. :9101."},
	{"log_file", "Write logs here while the dashboard is running."},
}

// Keys returns the known config keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(keyDocs))
	for _, k := range keyDocs {
		keys = append(keys, k.key)
	}
	sort.Strings(keys)
	return keys
}

func isKnownKey(key string) bool {
	for _, k := range keyDocs {
		if k.key == key {
			return true
		}
	}
	return false
}

// Marshal renders cfg as YAML with a comment above every key.
func Marshal(cfg *Config) ([]byte, error) {
	values := map[string]string{
		"interface":    cfg.Interface,
		"delay":        cfg.Delay,
		"units":        cfg.Units,
		"scale":        cfg.Scale,
		"peak":         strconv.FormatBool(cfg.Peak),
		"lines":        strconv.Itoa(cfg.Lines),
		"colors":       strconv.FormatBool(cfg.Colors),
		"host":         cfg.Host,
		"metrics_addr": cfg.MetricsAddr,
		"log_file":     cfg.LogFile,
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range keyDocs {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.key, HeadComment: k.doc},
			scalarNode(k.key, values[k.key]))
	}
	root := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{doc}}

	return encode(root)
}

// WriteDefault writes a documented config file with the built-in defaults.
// An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			"Config file already exists: "+path,
			"Use --force to overwrite it.")
	}

	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot create config directory", "Check directory permissions")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot write config file "+path, "Check file permissions")
	}
	return nil
}

// Set changes one key in the config file at path, keeping the rest of the
// file and its comments intact. The key is added if missing.
func Set(path, key, value string) error {
	if !isKnownKey(key) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown config key '%s'", key),
			"Known keys: "+strings.Join(Keys(), ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind == 0 {
		// Empty file
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}
	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	newValue := scalarNode(key, value)
	if existing := findMapValue(docNode, key); existing != nil {
		existing.Kind = newValue.Kind
		existing.Tag = newValue.Tag
		existing.Value = newValue.Value
		existing.Style = newValue.Style
	} else {
		docNode.Content = append(docNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, newValue)
	}

	out, err := encode(&root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// scalarNode types value for key: booleans and integers stay unquoted,
// everything else is a string.
func scalarNode(key, value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	switch key {
	case "peak", "colors":
		if _, err := strconv.ParseBool(value); err == nil {
			n.Tag = "!!bool"
		}
	case "lines":
		if _, err := strconv.Atoi(value); err == nil {
			n.Tag = "!!int"
		}
	case "delay":
		// "1" must stay a string so it round-trips through the Delay field.
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

func encode(root *yaml.Node) ([]byte, error) {
	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()
	return []byte(buf.String()), nil
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
