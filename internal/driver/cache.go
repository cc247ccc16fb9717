package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"comet/internal/config"
	"comet/internal/diag"
	"comet/internal/source"
)

// Bump when the payload layout changes: stale entries are simply misses.
const cacheSchemaVersion uint16 = 1

// Cache memoizes per-file lint results on disk, keyed by the sha256 of the
// file content combined with a fingerprint of the configuration that
// produced them. Editing comet.toml therefore invalidates every entry, the
// same way editing the file does. A hit replays the stored findings without
// re-lexing. Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// NewCache creates (if needed) the cache directory.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

type cachedNote struct {
	StartByte uint32
	EndByte   uint32
	Msg       string
}

type cachedFinding struct {
	Severity  uint8
	Code      uint16
	Message   string
	StartByte uint32
	EndByte   uint32
	Notes     []cachedNote
}

type cachePayload struct {
	Schema   uint16
	Path     string
	Findings []cachedFinding
}

// configFingerprint hashes every configuration input that influences the
// findings stored in a cache entry: comment styles, enabled rules, and the
// per-rule settings. Extensions are excluded, they only select files.
func configFingerprint(cfg config.Config) [32]byte {
	h := sha256.New()
	for _, lc := range cfg.Lexer.LineComments {
		io.WriteString(h, "line:"+lc+"\n")
	}
	fmt.Fprintf(h, "block:%t\n", cfg.Lexer.BlockComments)
	for _, r := range cfg.Lint.Rules {
		io.WriteString(h, "rule:"+r+"\n")
	}
	for _, l := range cfg.Lint.Header.Lines {
		io.WriteString(h, "header:"+l+"\n")
	}
	for _, m := range cfg.Lint.Todo.Markers {
		io.WriteString(h, "todo:"+m+"\n")
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func (c *Cache) entryPath(file *source.File, cfg config.Config) string {
	fp := configFingerprint(cfg)
	key := sha256.New()
	key.Write(file.Hash[:])
	key.Write(fp[:])
	return filepath.Join(c.dir, hex.EncodeToString(key.Sum(nil))+".bin")
}

// Get returns the stored payload for the file's content under the given
// configuration, if any.
func (c *Cache) Get(file *source.File, cfg config.Config) (*cachePayload, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.entryPath(file, cfg))
	if err != nil {
		return nil, false
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// Put stores the bag's findings under the file content and configuration.
func (c *Cache) Put(file *source.File, cfg config.Config, bag *diag.Bag) error {
	payload := cachePayload{
		Schema: cacheSchemaVersion,
		Path:   file.Path,
	}
	for _, d := range bag.Items() {
		finding := cachedFinding{
			Severity:  uint8(d.Severity),
			Code:      uint16(d.Code),
			Message:   d.Message,
			StartByte: d.Primary.Start,
			EndByte:   d.Primary.End,
		}
		for _, n := range d.Notes {
			finding.Notes = append(finding.Notes, cachedNote{
				StartByte: n.Span.Start,
				EndByte:   n.Span.End,
				Msg:       n.Msg,
			})
		}
		payload.Findings = append(payload.Findings, finding)
	}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	path := c.entryPath(file, cfg)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return os.Rename(tmp, path)
}

// replay rebuilds diagnostics from the payload into bag, rebinding spans to
// the current run's FileID.
func (p *cachePayload) replay(fileID source.FileID, bag *diag.Bag) {
	for _, f := range p.Findings {
		d := diag.Diagnostic{
			Severity: diag.Severity(f.Severity),
			Code:     diag.Code(f.Code),
			Message:  f.Message,
			Primary:  source.Span{File: fileID, Start: f.StartByte, End: f.EndByte},
		}
		for _, n := range f.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: n.StartByte, End: n.EndByte},
				Msg:  n.Msg,
			})
		}
		bag.Add(d)
	}
}
