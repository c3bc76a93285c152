package codebase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chuhta/php-ide-serenata/php"
	"github.com/chuhta/php-ide-serenata/php/parser"
	"github.com/chuhta/php-ide-serenata/php/reader"
)

// Codebase holds the open and scanned PHP files of a project.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	config  *Config
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path    string
	Content []byte
	Tokens  []parser.Token
}

func New(rootDir string) *Codebase {
	return NewWithConfig(rootDir, DefaultConfig())
}

func NewWithConfig(rootDir string, config *Config) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		config:  config,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) Config() *Config {
	return c.config
}

func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if c.config.excludesDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if c.config.matchesExtension(path) {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := reader.FromFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

func (c *Codebase) UpdateFile(path string, content []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files[path] = &FileInfo{
		Path:    path,
		Content: content,
		Tokens:  parser.TokenizeFile(content, filepath.Base(path)),
	}
	return nil
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// AccessChainAt returns the access chain of the expression ending at the
// given position. line is 1-indexed, character is a 0-indexed character (not
// byte) offset into the line.
func (c *Codebase) AccessChainAt(path string, line, character int) ([]string, error) {
	c.mu.RLock()
	f := c.files[path]
	c.mu.RUnlock()

	if f == nil {
		return nil, fmt.Errorf("no such file in codebase: %s", path)
	}

	offset, err := byteOffsetForPosition(string(f.Content), line, character)
	if err != nil {
		return nil, err
	}
	return php.ExtractAccessChain(string(f.Content)[:offset])
}

// byteOffsetForPosition converts a 1-indexed line and 0-indexed character
// column to a byte offset into source.
func byteOffsetForPosition(source string, line, character int) (int, error) {
	if line < 1 {
		return 0, fmt.Errorf("line %d out of range", line)
	}
	start := 0
	for l := 1; l < line; l++ {
		next := strings.IndexByte(source[start:], '\n')
		if next < 0 {
			return 0, fmt.Errorf("line %d out of range", line)
		}
		start += next + 1
	}
	lineText := source[start:]
	if end := strings.IndexByte(lineText, '\n'); end >= 0 {
		lineText = lineText[:end]
	}
	return start + php.CharOffsetToByteOffset(character, lineText), nil
}

// VariablesInFile returns the distinct variable names appearing in the file,
// in order of first appearance.
func (c *Codebase) VariablesInFile(path string) []string {
	c.mu.RLock()
	f := c.files[path]
	c.mu.RUnlock()

	if f == nil {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, tok := range f.Tokens {
		if tok.Kind != parser.TokenVariable {
			continue
		}
		if !seen[tok.Literal] {
			seen[tok.Literal] = true
			names = append(names, tok.Literal)
		}
	}
	return names
}

type CompletionKind int

const (
	CompletionKindVariable CompletionKind = iota
	CompletionKindMethod
	CompletionKindProperty
	CompletionKindClass
)

type CompletionItem struct {
	Label      string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

// CompletionsAt suggests completions for the position. When the chain is a
// single partial variable the known variables of the file are offered; member
// completion on a receiver requires a type resolver, which lives outside this
// codebase.
func (c *Codebase) CompletionsAt(path string, line, character int) []CompletionItem {
	chain, err := c.AccessChainAt(path, line, character)
	if err != nil || len(chain) != 1 {
		return nil
	}

	prefix := chain[0]
	if !strings.HasPrefix(prefix, "$") {
		return nil
	}

	var items []CompletionItem
	for _, name := range c.VariablesInFile(path) {
		if name == prefix || !strings.HasPrefix(name, prefix) {
			continue
		}
		items = append(items, CompletionItem{
			Label:      name,
			Kind:       CompletionKindVariable,
			Detail:     "variable",
			InsertText: name,
		})
	}
	return items
}
