package utils

import (
	"io"
	"sync"
)

// FlushingWriter makes each write visible immediately by flushing writers that buffer. After the
// first failed write or flush it stops writing and keeps returning that failure, so a closed
// pipe ends a scan's output instead of producing a stream of errors.
type FlushingWriter struct {
	writer      io.Writer
	mutex       sync.Mutex
	stickyError error
}

// NewFlushingWriter wraps writer unless it is already a FlushingWriter.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if writer == nil {
		return nil
	}
	if _, alreadyWrapped := writer.(*FlushingWriter); alreadyWrapped {
		return writer
	}
	return &FlushingWriter{writer: writer}
}

// Write delegates to the underlying writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	if flushingWriter == nil || flushingWriter.writer == nil {
		return 0, nil
	}

	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	if flushingWriter.stickyError != nil {
		return 0, flushingWriter.stickyError
	}

	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		flushingWriter.stickyError = writeError
		return bytesWritten, writeError
	}

	if flushableWriter, implementsFlush := flushingWriter.writer.(interface{ Flush() error }); implementsFlush {
		if flushError := flushableWriter.Flush(); flushError != nil {
			flushingWriter.stickyError = flushError
			return bytesWritten, flushError
		}
	}

	return bytesWritten, nil
}
