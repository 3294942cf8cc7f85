package filesystem

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/linkfarm/pkg/types"
)

// OpKind identifies a recorded dry-run mutation.
type OpKind string

const (
	OpMkdirAll  OpKind = "mkdir"
	OpSymlink   OpKind = "symlink"
	OpHardlink  OpKind = "hardlink"
	OpWriteFile OpKind = "write"
	OpRemove    OpKind = "remove"
	OpRemoveAll OpKind = "remove-all"
)

// Operation is one mutation a dry run would have performed.
type Operation struct {
	Kind   OpKind
	Path   string // the path being created or removed
	Target string // link target, for symlink and hardlink operations
}

// String renders the operation in shell-like notation for reports.
func (op Operation) String() string {
	switch op.Kind {
	case OpMkdirAll:
		return "mkdir -p " + op.Path
	case OpSymlink:
		return "ln -s " + op.Target + " " + op.Path
	case OpHardlink:
		return "ln " + op.Target + " " + op.Path
	case OpWriteFile:
		return "write " + op.Path
	case OpRemove, OpRemoveAll:
		return "rm " + op.Path
	}
	return string(op.Kind) + " " + op.Path
}

// DryRun wraps a types.FS so that reads pass through while mutations are
// recorded instead of performed. Recorded creations are visible to later
// Lstat and Stat calls, and creating over an existing entry fails the way
// the real filesystem would, so a preview takes the same decisions a real
// run takes.
type DryRun struct {
	fs      types.FS
	ops     []Operation
	created map[string]Operation
}

// NewDryRun creates a recording wrapper around fs.
func NewDryRun(fs types.FS) *DryRun {
	return &DryRun{
		fs:      fs,
		created: make(map[string]Operation),
	}
}

// Operations returns the recorded mutations in the order they were requested.
func (d *DryRun) Operations() []Operation {
	return d.ops
}

func (d *DryRun) record(op Operation) {
	d.ops = append(d.ops, op)
	d.created[op.Path] = op
}

// exists reports whether name exists, in the recording or on the wrapped
// filesystem.
func (d *DryRun) exists(name string) bool {
	if _, ok := d.created[name]; ok {
		return true
	}
	_, err := d.fs.Lstat(name)
	return err == nil
}

func (d *DryRun) Stat(name string) (fs.FileInfo, error) {
	if op, ok := d.created[name]; ok {
		return newDryInfo(op), nil
	}
	return d.fs.Stat(name)
}

func (d *DryRun) ReadFile(name string) ([]byte, error) {
	return d.fs.ReadFile(name)
}

func (d *DryRun) WriteFile(name string, data []byte, perm fs.FileMode) error {
	d.record(Operation{Kind: OpWriteFile, Path: name})
	return nil
}

func (d *DryRun) MkdirAll(path string, perm fs.FileMode) error {
	d.record(Operation{Kind: OpMkdirAll, Path: path})
	return nil
}

func (d *DryRun) ReadDir(name string) ([]fs.DirEntry, error) {
	return d.fs.ReadDir(name)
}

func (d *DryRun) Symlink(oldname, newname string) error {
	if d.exists(newname) {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	d.record(Operation{Kind: OpSymlink, Path: newname, Target: oldname})
	return nil
}

func (d *DryRun) Link(oldname, newname string) error {
	if d.exists(newname) {
		return &fs.PathError{Op: "link", Path: newname, Err: fs.ErrExist}
	}
	d.record(Operation{Kind: OpHardlink, Path: newname, Target: oldname})
	return nil
}

func (d *DryRun) Readlink(name string) (string, error) {
	if op, ok := d.created[name]; ok && op.Kind == OpSymlink {
		return op.Target, nil
	}
	return d.fs.Readlink(name)
}

func (d *DryRun) Remove(name string) error {
	d.ops = append(d.ops, Operation{Kind: OpRemove, Path: name})
	delete(d.created, name)
	return nil
}

func (d *DryRun) RemoveAll(path string) error {
	d.ops = append(d.ops, Operation{Kind: OpRemoveAll, Path: path})
	delete(d.created, path)
	return nil
}

func (d *DryRun) Lstat(name string) (fs.FileInfo, error) {
	if op, ok := d.created[name]; ok {
		return newDryInfo(op), nil
	}
	return d.fs.Lstat(name)
}

// dryInfo is the synthetic FileInfo for entries that exist only in the
// recording.
type dryInfo struct {
	name string
	mode fs.FileMode
}

func newDryInfo(op Operation) dryInfo {
	info := dryInfo{name: filepath.Base(op.Path)}
	switch op.Kind {
	case OpMkdirAll:
		info.mode = fs.ModeDir | 0755
	case OpSymlink:
		info.mode = fs.ModeSymlink | 0777
	default:
		info.mode = 0644
	}
	return info
}

func (i dryInfo) Name() string       { return i.name }
func (i dryInfo) Size() int64        { return 0 }
func (i dryInfo) Mode() fs.FileMode  { return i.mode }
func (i dryInfo) ModTime() time.Time { return time.Time{} }
func (i dryInfo) IsDir() bool        { return i.mode.IsDir() }
func (i dryInfo) Sys() interface{}   { return nil }
