package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"raster/internal/lexer"
	"raster/internal/opcode"
	"raster/internal/source"
	"raster/internal/token"
)

// Definition is one named symbol the workspace index knows about.
// Span.Line/Col are 0-based scanner coordinates of the defined name.
type Definition struct {
	Name string
	Path string
	Span source.Span
}

// Index is the workspace-wide definition registry: every Definition
// statement of every scanned file, addressable by name. Read-only once
// built; a re-index replaces it wholesale.
type Index struct {
	interner *source.Interner
	byName   map[source.StringID][]int
	defs     []Definition
}

func NewIndex() *Index {
	return &Index{
		interner: source.NewInterner(),
		byName:   make(map[source.StringID][]int),
	}
}

// Add appends one definition.
func (ix *Index) Add(def Definition) {
	id := ix.interner.Intern(def.Name)
	ix.byName[id] = append(ix.byName[id], len(ix.defs))
	ix.defs = append(ix.defs, def)
}

// AddStream records every definition statement of a scanned file.
func (ix *Index) AddStream(path string, stream *token.Stream) {
	for i := 0; i < stream.NumDefinitions(); i++ {
		st := stream.Definition(i)
		tok := stream.Tokens[st.First]
		ix.Add(Definition{
			Name: tok.Text,
			Path: path,
			Span: tok.Span,
		})
	}
}

// Lookup returns all definitions carrying the name, in index order.
func (ix *Index) Lookup(name string) []Definition {
	id := ix.interner.Intern(name)
	idxs := ix.byName[id]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]Definition, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, ix.defs[i])
	}
	return out
}

// All returns every indexed definition in file order.
func (ix *Index) All() []Definition {
	return ix.defs
}

// Len returns the number of indexed definitions.
func (ix *Index) Len() int {
	return len(ix.defs)
}

// IndexStage tags progress events for one file.
type IndexStage uint8

const (
	StageQueued IndexStage = iota
	StageScan
	StageCached
	StageDone
	StageError
)

// IndexEvent reports per-file progress to the UI.
type IndexEvent struct {
	Path  string
	Stage IndexStage
}

// IndexOptions configures a workspace indexing run.
type IndexOptions struct {
	Dir            string
	Extensions     []string
	CPU            opcode.CPU
	MaxDiagnostics int
	Jobs           int
	// Cache may be nil — тогда каждый файл сканируется заново.
	Cache *DiskCache
	// Events may be nil; the channel is not closed by BuildIndex.
	Events chan<- IndexEvent
}

func (o *IndexOptions) emit(path string, stage IndexStage) {
	if o.Events != nil {
		o.Events <- IndexEvent{Path: path, Stage: stage}
	}
}

// BuildIndex scans (or restores from cache) every source file under the
// directory and returns the combined definition index.
func BuildIndex(ctx context.Context, opts IndexOptions) (*Index, *source.FileSet, error) {
	files, err := ListSourceFiles(opts.Dir, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(opts.Dir)
	index := NewIndex()
	if len(files) == 0 {
		return index, fileSet, nil
	}

	for _, path := range files {
		opts.emit(path, StageQueued)
	}

	// Загрузка последовательная: детерминированные FileID и один writer у FileSet
	type loaded struct {
		path string
		id   source.FileID
		err  error
	}
	loadedFiles := make([]loaded, 0, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		loadedFiles = append(loadedFiles, loaded{path: path, id: id, err: err})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	mnemonics := opcode.ForCPU(opts.CPU)
	perFile := make([][]Definition, len(loadedFiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(loadedFiles)))

	for i, lf := range loadedFiles {
		i, lf := i, lf
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if lf.err != nil {
				opts.emit(lf.path, StageError)
				return nil
			}

			file := fileSet.Get(lf.id)
			digest := Digest(file.Hash)

			// Кэш-хит: определения без повторного скана
			var payload DiskPayload
			if hit, err := opts.Cache.Get(digest, &payload); err == nil && hit {
				opts.emit(lf.path, StageCached)
				defs := make([]Definition, 0, len(payload.Defs))
				for _, cd := range payload.Defs {
					defs = append(defs, Definition{
						Name: cd.Name,
						Path: lf.path,
						Span: source.Span{
							File:  lf.id,
							Start: cd.Start,
							End:   cd.End,
							Line:  cd.Line,
							Col:   cd.Col,
						},
					})
				}
				perFile[i] = defs
				opts.emit(lf.path, StageDone)
				return nil
			}

			opts.emit(lf.path, StageScan)
			stream := lexer.New(file, lexer.Options{Mnemonics: mnemonics}).Scan()

			defs := make([]Definition, 0, stream.NumDefinitions())
			cached := make([]CachedDef, 0, stream.NumDefinitions())
			for d := 0; d < stream.NumDefinitions(); d++ {
				tok := stream.Tokens[stream.Definition(d).First]
				defs = append(defs, Definition{Name: tok.Text, Path: lf.path, Span: tok.Span})
				cached = append(cached, CachedDef{
					Name:  tok.Text,
					Start: tok.Span.Start,
					End:   tok.Span.End,
					Line:  tok.Span.Line,
					Col:   tok.Span.Col,
				})
			}
			perFile[i] = defs

			if opts.Cache != nil {
				// Ошибка записи кэша не мешает индексации
				_ = opts.Cache.Put(digest, &DiskPayload{
					Schema: diskCacheSchemaVersion,
					Path:   lf.path,
					Defs:   cached,
				})
			}
			opts.emit(lf.path, StageDone)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return index, fileSet, err
	}

	// Слияние в детерминированном файловом порядке
	for _, defs := range perFile {
		for _, def := range defs {
			index.Add(def)
		}
	}
	return index, fileSet, nil
}
