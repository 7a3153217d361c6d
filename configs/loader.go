package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader looks up settings in an ordered list of cue files.
// Files are read and validated against the schema on first use.
type Loader struct {
	files func() ([]file, error)
}

type file struct {
	path  string
	value cue.Value
}

func NewLoader(paths []string, schema string) Loader {
	return Loader{
		files: sync.OnceValues(func() ([]file, error) {
			return compile(paths, schema)
		}),
	}
}

func compile(paths []string, schemaSrc string) ([]file, error) {
	// schema and files must share one runtime to be unified
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("compile schema: %w", err)
		}
	}

	files := make([]file, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		value := ctx.CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("compile %s: %w", path, err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, fmt.Errorf("validate %s: %w", path, err)
			}
		}
		files = append(files, file{
			path:  path,
			value: value,
		})
	}
	return files, nil
}

func (l Loader) lookup(path string) iter.Seq2[file, error] {
	return func(yield func(file, error) bool) {
		files, err := l.files()
		if err != nil {
			yield(file{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, f := range files {
			value := f.value.LookupPath(cuePath)
			if value.Err() != nil || !value.Exists() {
				continue
			}
			if !yield(file{path: f.path, value: value}, nil) {
				return
			}
		}
	}
}

// IterCueValues yields path from every file defining it, in file order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		for f, err := range l.lookup(path) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(&f.value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes path from the first file defining it into target.
func (l Loader) AssignFirst(path string, target any) error {
	for f, err := range l.lookup(path) {
		if err != nil {
			return err
		}
		if err := f.value.Decode(target); err != nil {
			return fmt.Errorf("decode %s in %s: %w", path, f.path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
