package codebase

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/mjc/minijava/config"
	"github.com/dhamidi/mjc/minijava/parser"
)

var log = commonlog.GetLogger("mjc.codebase")

// Codebase keeps the last syntax check of every source file under a root.
type Codebase struct {
	mu       sync.RWMutex
	rootDir  string
	cfg      *config.Config
	files    map[string]*FileInfo
	onUpdate func(*FileInfo)
}

type FileInfo struct {
	Path    string
	Content []byte
	Result  *parser.Result
	// Err is a failure other than a syntax error, such as a read error.
	Err error
}

func (f *FileInfo) OK() bool {
	return f.Err == nil && f.Result != nil && f.Result.OK()
}

func New(rootDir string, cfg *config.Config) *Codebase {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Codebase{
		rootDir: rootDir,
		cfg:     cfg,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// OnUpdate registers fn to be called after each file is checked.
func (c *Codebase) OnUpdate(fn func(*FileInfo)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = fn
}

func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warning("walk failed", "path", path, "error", err)
			return nil
		}
		if info.IsDir() {
			if path != c.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if c.cfg.Matches(path) {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Error("read failed", "path", path, "error", err)
		c.store(&FileInfo{Path: path, Err: err})
		return err
	}
	c.UpdateFile(path, content)
	return nil
}

// UpdateFile checks content as the source of path.
func (c *Codebase) UpdateFile(path string, content []byte) *FileInfo {
	opts := append(c.cfg.ParserOptions(), parser.WithFile(path))
	result, err := parser.Parse(bytes.NewReader(content), opts...)

	var fatal *parser.FatalError
	if errors.As(err, &fatal) {
		err = nil
	}

	info := &FileInfo{
		Path:    path,
		Content: content,
		Result:  result,
		Err:     err,
	}
	log.Debug("checked", "path", path, "errors", result.Errors())
	c.store(info)
	return info
}

func (c *Codebase) store(info *FileInfo) {
	c.mu.Lock()
	c.files[info.Path] = info
	fn := c.onUpdate
	c.mu.Unlock()

	if fn != nil {
		fn(info)
	}
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

// Files returns every known file ordered by path.
func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	files := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

// Failed counts files that did not check cleanly.
func (c *Codebase) Failed() int {
	n := 0
	for _, f := range c.Files() {
		if !f.OK() {
			n++
		}
	}
	return n
}
