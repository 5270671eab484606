package calendar

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/username/bank-holidays/internal/holiday"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileSource implements Source using a local holiday file.
//
// The file is a YAML mapping of dates to names, which also accepts the JSON
// documents served by calendrier.api.gouv.fr:
//
//	2017-01-01: 1er janvier
//	2017-04-17: Lundi de Pâques
type FileSource struct {
	filePath string
	logger   *zap.Logger
	mu       sync.RWMutex
	entries  map[string]string // key: "YYYY-MM-DD"
	loaded   bool
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
		entries:  make(map[string]string),
	}
}

// Name returns "file"
func (fs *FileSource) Name() string {
	return "file"
}

// Load loads holiday data from file
func (fs *FileSource) Load() error {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse holiday file: %w", err)
	}

	entries, err := mappingEntries(&doc)
	if err != nil {
		return fmt.Errorf("failed to parse holiday file: %w", err)
	}

	fs.mu.Lock()
	fs.entries = entries
	fs.loaded = true
	fs.mu.Unlock()

	fs.logger.Info("Holiday file loaded",
		zap.String("file", fs.filePath),
		zap.Int("holidays", len(entries)))

	return nil
}

// Holidays returns the holidays of the year found in the file.
// The file is loaded on first use.
func (fs *FileSource) Holidays(_ context.Context, year int) ([]holiday.Holiday, error) {
	fs.mu.RLock()
	loaded := fs.loaded
	fs.mu.RUnlock()

	if !loaded {
		if err := fs.Load(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
	}

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	holidays, err := holidaysFromMap(year, fs.entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, fs.filePath, err)
	}
	return holidays, nil
}

// mappingEntries reads the scalar pairs of a top-level YAML mapping.
// Keys are taken verbatim so that unquoted dates are not turned into timestamps.
func mappingEntries(doc *yaml.Node) (map[string]string, error) {
	entries := make(map[string]string)
	if doc.Kind == 0 {
		// Empty file
		return entries, nil
	}

	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of dates to names", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: expected \"date: name\"", key.Line)
		}
		entries[key.Value] = value.Value
	}

	return entries, nil
}
