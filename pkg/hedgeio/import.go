package hedgeio

import (
	"encoding/json"
	"io"
	"os"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedge"
)

// ReadJSON decodes a JSON document from r and rebuilds the diagram.
//
// The input must follow the format described in the package documentation.
// File handles are remapped to freshly issued ones; all topology references
// (twin, next, face, reference edge) are preserved under the new handles.
//
// ReadJSON returns an error if:
//   - The JSON is malformed (INVALID_FORMAT)
//   - A handle is duplicated or a reference dangles (INVALID_DOCUMENT)
//   - The rebuilt diagram violates the half-edge invariants (INVALID_DOCUMENT)
//
// The returned document is independent of r and can be modified safely
// after ReadJSON returns. ReadJSON does not close r.
//
// Options (for example [hedge.WithWalkLimit]) are applied to the rebuilt
// diagram before validation.
func ReadJSON(r io.Reader, opts ...hedge.Option) (*Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidFormat, err, "decode document")
	}
	return decode(&data, opts...)
}

// ImportJSON reads a JSON file at path and returns the decoded document.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. It returns the same validation errors as [ReadJSON] for malformed
// or inconsistent documents.
func ImportJSON(path string, opts ...hedge.Option) (*Document, error) {
	if err := herrors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, herrors.Wrap(herrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, herrors.Wrap(herrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f, opts...)
}

// UnmarshalDocument rebuilds a document from its JSON encoding.
// Counterpart of [MarshalDocument] for store backends.
func UnmarshalDocument(b []byte, opts ...hedge.Option) (*Document, error) {
	var data document
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidFormat, err, "decode document")
	}
	return decode(&data, opts...)
}
