package localesync

import (
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// recordingFS records every file opened through it and can fail writes for
// selected names.
type recordingFS struct {
	billy.Filesystem
	opened    []string
	written   []string
	failWrite map[string]error
}

func newRecordingFS(fsys billy.Filesystem) *recordingFS {
	return &recordingFS{Filesystem: fsys, failWrite: map[string]error{}}
}

func (r *recordingFS) Open(name string) (billy.File, error) {
	r.opened = append(r.opened, name)
	return r.Filesystem.Open(name)
}

func (r *recordingFS) OpenFile(name string, flag int, perm os.FileMode) (billy.File, error) {
	r.opened = append(r.opened, name)
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		if err := r.failWrite[name]; err != nil {
			return nil, err
		}
		r.written = append(r.written, name)
	}
	return r.Filesystem.OpenFile(name, flag, perm)
}

func (r *recordingFS) touched(name string) bool {
	for _, opened := range r.opened {
		if opened == name {
			return true
		}
	}
	return false
}

func newLocaleFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	for name, content := range files {
		if err := util.WriteFile(fsys, name, []byte(content), 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	return fsys
}

func readLocale(t *testing.T, fsys billy.Filesystem, name string) string {
	t.Helper()
	data, err := util.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}
