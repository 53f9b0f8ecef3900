package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"raster/internal/diag"
	"raster/internal/lexer"
	"raster/internal/opcode"
	"raster/internal/source"
	"raster/internal/token"
)

// DefaultExtensions are the source suffixes a workspace scan picks up.
var DefaultExtensions = []string{".asm", ".a", ".s", ".inc"}

// TokenizeDirResult содержит результат сканирования одного файла
type TokenizeDirResult struct {
	Path    string        // Относительный путь к файлу
	FileID  source.FileID // ID файла в FileSet
	Stream  *token.Stream // Токены и statements файла
	Bag     *diag.Bag     // Диагностики
	LoadErr error         // Ошибка чтения, если файл не загрузился
}

// ListSourceFiles возвращает отсортированный список исходников в директории
func ListSourceFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir сканирует все исходники в директории параллельно.
// Каждому файлу — свой Scanner: сканер несёт изменяемые счётчики строки
// и между горутинами не разделяется.
func TokenizeDir(ctx context.Context, dir string, exts []string, cpu opcode.CPU, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir, exts)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Предзагружаем файлы последовательно: FileID должны быть детерминированы
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))
	mnemonics := opcode.ForCPU(cpu) // immutable, можно разделять

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				results[i] = TokenizeDirResult{Path: path, LoadErr: loadErr}
				return nil
			}

			fileID := fileIDs[path]
			bag := diag.NewBag(maxDiagnostics)
			sc := lexer.New(fileSet.Get(fileID), lexer.Options{
				Reporter:  diag.BagReporter{Bag: bag},
				Mnemonics: mnemonics,
			})

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Stream: sc.Scan(),
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
