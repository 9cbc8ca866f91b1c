// Package pdf reads positioned word tokens from PDF documents.
package pdf

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/pricegrid"
	"github.com/gabriel-vasile/mimetype"
	lpdf "github.com/ledongthuc/pdf"
)

// Ensure Source implements pricegrid.TokenSource at compile time.
var _ pricegrid.TokenSource = (*Source)(nil)

// defaultPageHeight is US Letter, used when a page has no usable MediaBox.
const defaultPageHeight = 792.0

// Source is a token source backed by a PDF file.
// It is safe for concurrent use; page reads are serialized.
type Source struct {
	// WordGap is the horizontal gap, as a fraction of the font size,
	// above which two glyphs belong to different words.
	WordGap float64

	mu     sync.Mutex
	file   io.Closer
	reader *lpdf.Reader
}

// Open opens the PDF at path. Returns EINVALID if the file is not a PDF
// and ESOURCE if it cannot be read.
func Open(path string) (*Source, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, pricegrid.Errorf(pricegrid.ESOURCE, "cannot read %s: %v", path, err)
	}
	if !mtype.Is("application/pdf") {
		return nil, pricegrid.Errorf(pricegrid.EINVALID, "%s is %s, not a PDF", path, mtype.String())
	}

	f, r, err := open(path)
	if err != nil {
		return nil, pricegrid.Errorf(pricegrid.ESOURCE, "cannot open %s: %v", path, err)
	}

	return &Source{
		WordGap: DefaultWordGap,
		file:    f,
		reader:  r,
	}, nil
}

// PageCount returns the number of pages in the document.
func (s *Source) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reader.NumPage()
}

// Tokens returns the words of a 0-based page in top-down coordinates.
func (s *Source) Tokens(ctx context.Context, page int) (tokens []pricegrid.Token, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n := s.reader.NumPage(); page < 0 || page >= n {
		return nil, pricegrid.Errorf(pricegrid.ESOURCE, "page %d out of range (document has %d pages)", page, n)
	}

	p := s.reader.Page(page + 1)
	if p.V.IsNull() {
		return nil, pricegrid.Errorf(pricegrid.ESOURCE, "page %d not found", page)
	}

	// The reader panics on malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = pricegrid.Errorf(pricegrid.ESOURCE, "page %d has unreadable content: %v", page, r)
		}
	}()

	content := p.Content()
	return Words(content.Text, pageHeight(p.V), s.WordGap), nil
}

// Close closes the underlying file.
func (s *Source) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// open wraps lpdf.Open, converting parser panics on damaged files into errors.
func open(path string) (f io.Closer, r *lpdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			if f != nil {
				_ = f.Close()
			}
			f, r, err = nil, nil, fmt.Errorf("malformed PDF: %v", p)
		}
	}()
	file, reader, err := lpdf.Open(path)
	if err != nil {
		if file != nil {
			_ = file.Close()
		}
		return nil, nil, err
	}
	return file, reader, nil
}

// pageHeight returns the MediaBox height of a page, following the Parent
// chain since MediaBox is inheritable.
func pageHeight(v lpdf.Value) float64 {
	for depth := 0; depth < 32 && v.Kind() == lpdf.Dict; depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == lpdf.Array && box.Len() == 4 {
			if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}
