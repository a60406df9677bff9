package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"pdfhtml/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty report. When destination cannot be created report
// goes to temporary directory.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{items: make(map[string]item), file: f}, nil
}

type item struct {
	source string // location as it was stored
	path   string
	stamp  time.Time
	data   []byte
	copied bool // path points to private copy removed on Close
}

// Report accumulates files and data for debug archive which is written when
// report is closed. All methods are safe to call on nil report, meaning no
// report was requested. Not safe for concurrent use.
type Report struct {
	items map[string]item
	file  *os.File
}

// Name returns absolute name of the archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers file or directory to be archived under name. Content is
// read when report is closed.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if old, ok := r.items[name]; ok && old.source != path {
		panic(fmt.Sprintf("report entry [%s] stored twice: was %s, now %s", name, old.source, path))
	}
	it := item{source: path, path: path}
	if abs, err := filepath.Abs(path); err == nil {
		it.path = abs
	}
	r.items[name] = it
}

// StoreData archives data under name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, ok := r.items[name]; ok {
		panic(fmt.Sprintf("report entry [%s] stored twice", name))
	}
	r.items[name] = item{data: data, stamp: time.Now()}
}

// StoreYAML archives YAML representation of v under name.
func (r *Report) StoreYAML(name string, v any) error {
	if r == nil {
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("unable to marshal report entry [%s]: %w", name, err)
	}
	r.StoreData(name, data)
	return nil
}

// StoreCopy copies file or directory as it is now, so later changes do not
// affect the report. Repeated names get a time stamp suffix.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}
	src, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	it := item{source: path, stamp: time.Now(), copied: true}
	if _, ok := r.items[name]; ok {
		name = fmt.Sprintf("%s-%d", name, it.stamp.UnixNano())
	}
	if it.path, err = os.MkdirTemp("", misc.GetAppName()+"-report-"); err != nil {
		return err
	}

	switch {
	case info.Mode().IsRegular():
		err = copyFile(filepath.Join(it.path, filepath.Base(src)), src, info.ModTime())
	case info.IsDir():
		err = walkFiles(src, func(rel, full string, info fs.FileInfo) error {
			return copyFile(filepath.Join(it.path, rel), full, info.ModTime())
		})
	}
	if err != nil {
		return multierr.Append(err, os.RemoveAll(it.path))
	}
	r.items[name] = it
	return nil
}

// Close writes the archive and removes private copies.
func (r *Report) Close() (err error) {
	if r == nil || r.file == nil {
		return nil
	}
	defer func() {
		for _, it := range r.items {
			if it.copied {
				err = multierr.Append(err, os.RemoveAll(it.path))
			}
		}
		err = multierr.Append(err, r.file.Close())
	}()
	return r.write()
}

func (r *Report) write() error {
	arc := zip.NewWriter(r.file)

	now := time.Now()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	slices.Sort(names)

	var manifest strings.Builder
	for _, name := range names {
		it := r.items[name]
		stamp := it.stamp
		if stamp.IsZero() {
			stamp = now
		}
		fmt.Fprintf(&manifest, "%s\t%s\t%s : %s\n", stamp.UTC().Format(time.UnixDate), name, it.source, it.path)
	}
	if err := addEntry(arc, "MANIFEST", now, strings.NewReader(manifest.String())); err != nil {
		return multierr.Append(err, arc.Close())
	}

	for _, name := range names {
		if err := r.archive(arc, name, r.items[name]); err != nil {
			return multierr.Append(err, arc.Close())
		}
	}
	return arc.Close()
}

func (r *Report) archive(arc *zip.Writer, name string, it item) error {
	if it.data != nil {
		return addEntry(arc, name, it.stamp, bytes.NewReader(it.data))
	}
	info, err := os.Stat(it.path)
	if err != nil {
		// absent files are skipped
		return nil
	}
	if info.Mode().IsRegular() && !it.copied {
		return addFile(arc, name, it.path, info)
	}
	return walkFiles(it.path, func(rel, full string, info fs.FileInfo) error {
		return addFile(arc, filepath.ToSlash(filepath.Join(name, rel)), full, info)
	})
}

// walkFiles calls fn for every regular file under dir with its relative path.
func walkFiles(dir string, fn func(rel, full string, info fs.FileInfo) error) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.Type().IsRegular() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		return fn(rel, path, info)
	})
}

func addFile(arc *zip.Writer, name, path string, info fs.FileInfo) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return addEntry(arc, name, info.ModTime(), f)
}

func addEntry(arc *zip.Writer, name string, stamp time.Time, src io.Reader) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: stamp})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

func copyFile(dst, src string, modTime time.Time) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0700); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, modTime, modTime)
}
