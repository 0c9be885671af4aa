package stemsplit

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// uploadFieldName is the multipart form field the API reads the audio
// file from.
const uploadFieldName = "file"

// defaultUploadName is attached when neither the input nor the options
// provide a usable filename.
const defaultUploadName = "audio"

// buildQuery emits parameters only for recognized option values.
// Unknown or empty values are silently omitted so the server applies
// its own defaults instead of failing the call.
func buildQuery(opts *SeparationOptions) url.Values {
	q := url.Values{}
	if opts == nil {
		return q
	}
	if opts.Stems.Valid() {
		q.Set("stems", string(opts.Stems))
	}
	if opts.Format.Valid() {
		q.Set("format", string(opts.Format))
	}
	if bitrate := strings.TrimSpace(opts.Bitrate); bitrate != "" {
		q.Set("bitrate", bitrate)
	}
	return q
}

// uploadName resolves the filename attached to the multipart file
// field: the path's basename for path inputs, the input's own name for
// byte and reader inputs, then the options fallback. The result always
// passes sanitizeFilename.
func uploadName(in *FileInput, opts *SeparationOptions) (string, error) {
	name := ""
	if opts != nil {
		name = strings.TrimSpace(opts.Filename)
	}

	switch {
	case in.path != "":
		if base := filepath.Base(strings.TrimSpace(in.path)); base != "." && base != string(filepath.Separator) {
			name = base
		}
	case in.name != "":
		name = in.name
	}

	if name == "" {
		name = defaultUploadName
	}
	return sanitizeFilename(name)
}

// formEncoder builds the outbound multipart body for one upload. The
// returned content type carries the multipart boundary and must be set
// on the request. Implementations are selected once at client
// construction, not per call.
type formEncoder interface {
	encode(in *FileInput, filename string) (body io.Reader, contentType string, err error)
}

// streamEncoder pipes the multipart body to the transport as it is
// written, so path and reader inputs upload in constant memory.
type streamEncoder struct{}

func (streamEncoder) encode(in *FileInput, filename string) (io.Reader, string, error) {
	src, err := openInput(in)
	if err != nil {
		return nil, "", err
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		defer closeIfCloser(src)
		// Failures here surface through the pipe while the request is in
		// flight. They are wrapped as typed errors so the transport
		// reports them as local input failures, not network ones.
		part, err := mw.CreateFormFile(uploadFieldName, filename)
		if err != nil {
			_ = pw.CloseWithError(newError(KindInvalidArgument, "failed to build multipart form", 0, err))
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			_ = pw.CloseWithError(newError(KindInvalidArgument, "failed to read file input", 0, errors.Wrap(err, "copy input")))
			return
		}
		if err := mw.Close(); err != nil {
			_ = pw.CloseWithError(newError(KindInvalidArgument, "failed to build multipart form", 0, err))
			return
		}
		_ = pw.Close()
	}()

	return pr, mw.FormDataContentType(), nil
}

// bufferEncoder assembles the whole multipart body up front. It costs
// memory proportional to the input but yields a rewindable body with a
// known length.
type bufferEncoder struct{}

func (bufferEncoder) encode(in *FileInput, filename string) (io.Reader, string, error) {
	src, err := openInput(in)
	if err != nil {
		return nil, "", err
	}
	defer closeIfCloser(src)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		return nil, "", newError(KindInvalidArgument, "failed to build multipart form", 0, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", newError(KindInvalidArgument, "failed to read file input", 0, errors.Wrap(err, "copy input"))
	}
	if err := mw.Close(); err != nil {
		return nil, "", newError(KindInvalidArgument, "failed to build multipart form", 0, err)
	}

	return bytes.NewReader(buf.Bytes()), mw.FormDataContentType(), nil
}

// openInput turns a FileInput into a byte source. Path inputs open the
// file; the caller owns closing via closeIfCloser.
func openInput(in *FileInput) (io.Reader, error) {
	switch {
	case in.path != "":
		f, err := os.Open(strings.TrimSpace(in.path))
		if err != nil {
			return nil, newError(KindInvalidArgument, "cannot open input file", 0, errors.Wrap(err, "open input"))
		}
		return f, nil
	case in.reader != nil:
		return in.reader, nil
	default:
		return bytes.NewReader(in.data), nil
	}
}

func closeIfCloser(r io.Reader) {
	if c, ok := r.(io.Closer); ok {
		_ = c.Close()
	}
}
