package stemsplit

import "io"

// FileInput is one audio file to upload for separation. Build it with
// one of the File* constructors; the zero value is rejected.
type FileInput struct {
	path   string
	name   string
	data   []byte
	reader io.Reader
}

// FileFromPath uploads the file at path, streaming it from disk. The
// path's basename becomes the uploaded filename.
func FileFromPath(path string) *FileInput {
	return &FileInput{path: path}
}

// FileFromBytes uploads an in-memory buffer under the given filename.
func FileFromBytes(name string, data []byte) *FileInput {
	return &FileInput{name: name, data: data}
}

// FileFromReader uploads everything read from r under the given
// filename. The reader is consumed once; if it implements io.Closer it
// is closed after the upload.
func FileFromReader(name string, r io.Reader) *FileInput {
	return &FileInput{name: name, reader: r}
}
