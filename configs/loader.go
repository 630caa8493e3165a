package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader looks up values in a list of cue files. Earlier files take precedence.
type Loader struct {
	paths    []string
	getRoots func() ([]rootInfo, error)
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		paths: filePaths,

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("schema: %w", err)
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err = value.Err(); err != nil {
					return nil, fmt.Errorf("%s: %w", filePath, err)
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, fmt.Errorf("%s: %w", filePath, err)
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

func (l Loader) Paths() []string {
	return l.paths
}

// Err reports the first compile or validation error of the loaded files.
func (l Loader) Err() error {
	if l.getRoots == nil {
		return nil
	}
	_, err := l.getRoots()
	return err
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		if l.getRoots == nil {
			return
		}
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if err := value.Err(); err == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
