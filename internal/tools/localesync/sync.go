package localesync

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/localesync/internal/locale"
	apperrors "github.com/louisbranch/localesync/internal/platform/errors"
	"github.com/louisbranch/localesync/internal/platform/otel"
)

const (
	jsonExt   = ".json"
	filePerm  = 0o644
	tracerKey = "github.com/louisbranch/localesync/internal/tools/localesync"
)

// Result describes a completed (or aborted) synchronization pass.
type Result struct {
	// Source is the source file name.
	Source string
	// Keys is the length of the master key list.
	Keys int
	// Targets lists the target files processed, in processing order.
	Targets []string
	// Changed lists files whose content differed from the synchronized
	// output, source included.
	Changed []string
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithCheck makes the synchronizer compare instead of write. Sync then fails
// with an out-of-sync error when any file would change.
func WithCheck(check bool) Option {
	return func(s *Synchronizer) {
		s.check = check
	}
}

// Synchronizer rewrites the locale files of one directory.
type Synchronizer struct {
	fs     billy.Filesystem
	source string
	check  bool
	out    io.Writer
	errOut io.Writer
	tracer trace.Tracer
}

// New returns a Synchronizer for the locale files at the root of fsys.
func New(fsys billy.Filesystem, source string, out io.Writer, errOut io.Writer, opts ...Option) *Synchronizer {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	s := &Synchronizer{
		fs:     fsys,
		source: source,
		out:    out,
		errOut: errOut,
		tracer: otel.Tracer(tracerKey),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync sorts the source file and reconciles every other JSON file against its
// keys. The source is fully written before any target is read, targets are
// handled one at a time, and the first failure stops the pass. Files written
// before the failure keep their new content.
func (s *Synchronizer) Sync(ctx context.Context) (Result, error) {
	result := Result{Source: s.source}
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("sync %s: %w", s.source, err)
	}

	fmt.Fprintf(s.out, "Processing source file: %s\n", s.source)
	keys, changed, err := s.syncSource(ctx)
	if err != nil {
		return result, err
	}
	result.Keys = len(keys)
	if changed {
		result.Changed = append(result.Changed, s.source)
	}
	s.report(s.source, changed, "Successfully sorted and saved", "")
	fmt.Fprintln(s.out, "---")

	targets, err := s.targets()
	if err != nil {
		return result, err
	}
	for _, name := range targets {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("sync %s: %w", name, err)
		}
		changed, err := s.syncTarget(ctx, name, keys)
		if err != nil {
			return result, err
		}
		result.Targets = append(result.Targets, name)
		if changed {
			result.Changed = append(result.Changed, name)
		}
		s.report(name, changed, "Synced, sorted, and saved", locale.Label(name))
	}

	fmt.Fprintln(s.out, "\n---")
	if s.check && len(result.Changed) > 0 {
		return result, apperrors.WithMetadata(apperrors.CodeOutOfSync, "locale files are out of sync",
			map[string]string{"files": strings.Join(result.Changed, ",")})
	}
	if s.check {
		fmt.Fprintln(s.out, "All locale files are organized.")
		return result, nil
	}
	fmt.Fprintln(s.out, "All locale files have been successfully organized!")
	return result, nil
}

func (s *Synchronizer) syncSource(ctx context.Context) (locale.KeyList, bool, error) {
	_, span := s.tracer.Start(ctx, "localesync.source", trace.WithAttributes(
		attribute.String("locale.file", s.source),
	))
	defer span.End()

	original, mapping, err := s.load(s.source)
	if err != nil {
		return nil, false, recordError(span, err)
	}
	sorted, keys := mapping.Sorted()
	span.SetAttributes(attribute.Int("locale.keys", len(keys)))

	changed, err := s.store(s.source, original, sorted.Encode())
	if err != nil {
		return nil, false, recordError(span, err)
	}
	return keys, changed, nil
}

func (s *Synchronizer) syncTarget(ctx context.Context, name string, keys locale.KeyList) (bool, error) {
	attrs := []attribute.KeyValue{attribute.String("locale.file", name)}
	if tag, ok := locale.Tag(name); ok {
		attrs = append(attrs, attribute.String("locale.tag", tag.String()))
	} else {
		fmt.Fprintf(s.errOut, "warning: %s is not named after a locale tag\n", name)
	}
	_, span := s.tracer.Start(ctx, "localesync.target", trace.WithAttributes(attrs...))
	defer span.End()

	original, mapping, err := s.load(name)
	if err != nil {
		return false, recordError(span, err)
	}
	span.SetAttributes(attribute.Int("locale.keys", mapping.Len()))

	changed, err := s.store(name, original, locale.Reconcile(mapping, keys).Encode())
	if err != nil {
		return false, recordError(span, err)
	}
	return changed, nil
}

// targets lists the JSON files to reconcile in directory listing order.
func (s *Synchronizer) targets() ([]string, error) {
	entries, err := s.fs.ReadDir(".")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeIO, "list locales directory", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, jsonExt) || name == s.source {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (s *Synchronizer) load(name string) ([]byte, *locale.Mapping, error) {
	data, err := util.ReadFile(s.fs, name)
	if err != nil {
		return nil, nil, apperrors.WrapWithMetadata(apperrors.CodeIO, "read locale file", fileMetadata(name), err)
	}
	mapping, err := locale.Parse(data)
	if err != nil {
		return nil, nil, apperrors.WrapWithMetadata(apperrors.CodeParse, "parse locale file", fileMetadata(name), err)
	}
	return data, mapping, nil
}

// store replaces the content of name with data, or only compares in check
// mode. It reports whether the content differs from original.
func (s *Synchronizer) store(name string, original, data []byte) (bool, error) {
	changed := !bytes.Equal(original, data)
	if s.check {
		return changed, nil
	}
	if err := writeFile(s.fs, name, data); err != nil {
		return changed, apperrors.WrapWithMetadata(apperrors.CodeIO, "write locale file", fileMetadata(name), err)
	}
	return changed, nil
}

func (s *Synchronizer) report(name string, changed bool, done string, label string) {
	switch {
	case s.check && changed:
		fmt.Fprintf(s.out, "❌ Out of sync: %s\n", name)
	case s.check:
		fmt.Fprintf(s.out, "✅ In sync: %s\n", name)
	case label != "":
		fmt.Fprintf(s.out, "✅ %s %s (%s)\n", done, name, label)
	default:
		fmt.Fprintf(s.out, "✅ %s %s\n", done, name)
	}
}

// writeFile truncates and rewrites name. Unlike util.WriteFile it reports
// errors from Write.
func writeFile(fsys billy.Filesystem, name string, data []byte) (err error) {
	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	return err
}

func fileMetadata(name string) map[string]string {
	return map[string]string{"file": name}
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
