package driver

import (
	"raster/internal/diag"
	"raster/internal/lexer"
	"raster/internal/opcode"
	"raster/internal/source"
	"raster/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Stream  *token.Stream
	Bag     *diag.Bag
}

// Tokenize loads one file and runs a full scanning pass over it.
func Tokenize(path string, cpu opcode.CPU, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, cpu, maxDiagnostics), nil
}

// TokenizeBytes scans an in-memory buffer (editor overlay, stdin, test).
func TokenizeBytes(name string, content []byte, cpu opcode.CPU, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, cpu, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, cpu opcode.CPU, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	sc := lexer.New(file, lexer.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		Mnemonics: opcode.ForCPU(cpu),
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Stream:  sc.Scan(),
		Bag:     bag,
	}
}
