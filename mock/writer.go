package mock

import "github.com/jboczar/digest"

var _ digest.DocumentWriter = (*Writer)(nil)

// Writer is a mock implementation of digest.DocumentWriter.
type Writer struct {
	WriteDocumentFn func(doc *digest.Document, path string) (string, error)
}

func (w *Writer) WriteDocument(doc *digest.Document, path string) (string, error) {
	return w.WriteDocumentFn(doc, path)
}
