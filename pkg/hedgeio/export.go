package hedgeio

import (
	"encoding/json"
	"io"
	"os"

	herrors "github.com/matzehuels/hedi/pkg/errors"
)

// WriteJSON encodes a document as indented JSON and writes it to w.
// The output includes every vertex, half-edge, and face with its topology
// references and metadata, and can be re-imported with [ReadJSON].
func WriteJSON(doc *Document, w io.Writer) error {
	data, err := encode(doc)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return herrors.Wrap(herrors.ErrCodeInternal, err, "encode document %s", doc.ID)
	}
	return nil
}

// ExportJSON writes a document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(doc *Document, path string) error {
	if err := herrors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}

// MarshalDocument returns the document's JSON encoding as a byte slice.
// Used by store backends that persist documents as blobs.
func MarshalDocument(doc *Document) ([]byte, error) {
	data, err := encode(doc)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInternal, err, "encode document %s", doc.ID)
	}
	return b, nil
}
