// Package indexer performs bulk background indexing of PHP source trees.
package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chuhta/php-ide-serenata/php/parser"
	"github.com/chuhta/php-ide-serenata/php/reader"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

type Request struct {
	ID         string
	Path       string
	Extensions []string
	CreatedAt  time.Time
}

type FileReport struct {
	Path      string
	Tokens    int
	Variables []string
	LexErrors int
}

type Result struct {
	ID        string
	Status    Status
	Request   Request
	Files     []*FileReport
	Error     string
	Errors    []string
	StartedAt time.Time
	EndedAt   time.Time
	Progress  int
	Total     int
}

func (r *Result) ProgressPercent() int {
	if r.Total == 0 {
		return 0
	}
	return (r.Progress * 100) / r.Total
}

// Indexer runs index requests on a background goroutine and keeps their
// results addressable by ID.
type Indexer struct {
	mu       sync.RWMutex
	indexes  map[string]*Result
	requests chan Request
	nextID   int
}

func New() *Indexer {
	ix := &Indexer{
		indexes:  make(map[string]*Result),
		requests: make(chan Request, 100),
	}
	go ix.run()
	return ix
}

func (ix *Indexer) run() {
	for req := range ix.requests {
		ix.processIndex(req)
	}
}

func (ix *Indexer) processIndex(req Request) {
	ix.mu.Lock()
	result := ix.indexes[req.ID]
	result.Status = StatusInProgress
	result.StartedAt = time.Now()
	ix.mu.Unlock()

	extensions := req.Extensions
	if len(extensions) == 0 {
		extensions = []string{".php"}
	}

	var files []string
	var errors []string
	err := filepath.Walk(req.Path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			errors = append(errors, fmt.Sprintf("walk %s: %v", p, err))
			return nil
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(p)
		for _, e := range extensions {
			if ext == e {
				files = append(files, p)
				break
			}
		}
		return nil
	})
	if err != nil {
		errors = append(errors, fmt.Sprintf("walk %s: %v", req.Path, err))
	}

	ix.mu.Lock()
	result.Total = len(files)
	ix.mu.Unlock()

	var reports []*FileReport
	for i, file := range files {
		report, err := indexFile(file)
		if err != nil {
			errors = append(errors, fmt.Sprintf("index %s: %v", file, err))
		} else {
			reports = append(reports, report)
		}

		ix.mu.Lock()
		result.Progress = i + 1
		ix.mu.Unlock()
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	result.EndedAt = time.Now()
	result.Files = reports
	result.Errors = errors
	if len(errors) > 0 && len(reports) == 0 {
		result.Status = StatusFailed
		result.Error = errors[0]
	} else {
		result.Status = StatusCompleted
	}
}

func indexFile(path string) (*FileReport, error) {
	content, err := reader.FromFile(path)
	if err != nil {
		return nil, err
	}

	tokens := parser.TokenizeFile(content, filepath.Base(path))
	report := &FileReport{Path: path, Tokens: len(tokens)}

	seen := make(map[string]bool)
	for _, tok := range tokens {
		switch tok.Kind {
		case parser.TokenVariable:
			if !seen[tok.Literal] {
				seen[tok.Literal] = true
				report.Variables = append(report.Variables, tok.Literal)
			}
		case parser.TokenError:
			report.LexErrors++
		}
	}
	return report, nil
}

func (ix *Indexer) Submit(req Request) string {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.nextID++
	req.ID = fmt.Sprintf("%d", ix.nextID)
	req.CreatedAt = time.Now()

	ix.indexes[req.ID] = &Result{
		ID:      req.ID,
		Status:  StatusPending,
		Request: req,
	}

	ix.requests <- req
	return req.ID
}

// Get returns a snapshot of the result; the background worker keeps mutating
// the stored one until the index completes.
func (ix *Indexer) Get(id string) (*Result, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	result, ok := ix.indexes[id]
	if !ok {
		return nil, false
	}
	snapshot := *result
	return &snapshot, true
}

func (ix *Indexer) List() []*Result {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	results := make([]*Result, 0, len(ix.indexes))
	for _, r := range ix.indexes {
		snapshot := *r
		results = append(results, &snapshot)
	}
	return results
}
