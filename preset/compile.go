package preset

import (
	"context"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/mediacore/internal/logging"
	"github.com/opd-ai/mediacore/profile"
)

// Options tunes a compilation.
type Options struct {
	// Workers bounds how many documents are parsed concurrently.
	Workers int
}

// DefaultOptions returns options sized to the host.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Entry is one compiled preset.
type Entry struct {
	Name       string
	Definition Definition
	Profile    profile.Profile
}

// Compilation is the result of compiling a preset tree.
type Compilation struct {
	// Entries are in traversal order. Names may repeat; later entries win.
	Entries []Entry
	// Digest is BLAKE2b-256 over every document's path and content in
	// traversal order.
	Digest [blake2b.Size256]byte
}

// DigestHex returns Digest as lower-case hex.
func (c *Compilation) DigestHex() string {
	return hex.EncodeToString(c.Digest[:])
}

type documentRef struct {
	path     string
	category string
}

// walk lists every regular file under root using an explicit directory
// stack. Files are listed as their directory is read; subdirectories are
// visited last-pushed first.
func walk(fsys fs.FS, root string) ([]documentRef, error) {
	var refs []documentRef
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("read preset directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			p := path.Join(dir, entry.Name())
			if entry.IsDir() {
				stack = append(stack, p)
				continue
			}
			refs = append(refs, documentRef{path: p, category: path.Base(dir)})
		}
	}
	return refs, nil
}

// Compile reads every document under root in fsys and validates it.
//
// The first malformed document or I/O error aborts the compilation; no
// partial result is returned.
func Compile(ctx context.Context, fsys fs.FS, root string, opts Options) (*Compilation, error) {
	log := logging.New("preset", "Compile").WithField("root", root)
	log.Debug("Compiling presets")

	refs, err := walk(fsys, root)
	if err != nil {
		log.WithError(err).WithField("operation", "walk").Error("Preset traversal failed")
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	defs := make([]Definition, len(refs))
	contents := make([][]byte, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, ref.path)
			if err != nil {
				return fmt.Errorf("read preset %s: %w", ref.path, err)
			}
			def, err := parseDefinition(ref.path, ref.category, data)
			if err != nil {
				logging.New("preset", "Compile").
					WithField("path", ref.path).
					WithFields(logging.BytePreview(data, "document")).
					Debug("Rejected preset document")
				return err
			}
			defs[i] = def
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).WithField("operation", "parse").Error("Preset compilation failed")
		return nil, err
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, fmt.Errorf("init digest: %w", err)
	}

	out := &Compilation{Entries: make([]Entry, 0, len(defs))}
	for i, def := range defs {
		h.Write([]byte(def.Path))
		h.Write([]byte{0})
		h.Write(contents[i])
		h.Write([]byte{0})

		out.Entries = append(out.Entries, Entry{
			Name:       def.Name(),
			Definition: def,
			Profile:    def.Profile(),
		})
	}
	copy(out.Digest[:], h.Sum(nil))

	log.WithFields(logrus.Fields{
		"documents": len(out.Entries),
		"digest":    out.DigestHex(),
	}).Info("Presets compiled")

	return out, nil
}
