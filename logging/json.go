package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
	"time"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

type jsonEntity struct {
	Timestamp string            `json:"timestamp"`
	File      string            `json:"file"`
	Level     string            `json:"level"`
	Prefix    string            `json:"prefix"`
	Message   string            `json:"message"`
	Context   map[string]string `json:"context"`
}

type JSONWriter struct {
	ioWriter io.Writer
	sep      string
}

func NewJSONWriter(ioWriter io.Writer) LogWriter {
	return NewJSONWriterWithSep(ioWriter, "")
}

func NewlineSeparatedJSONWriter(ioWriter io.Writer) LogWriter {
	return NewJSONWriterWithSep(ioWriter, "\n")
}

func NewJSONWriterWithSep(ioWriter io.Writer, sep string) LogWriter {
	return &JSONWriter{
		ioWriter: ioWriter,
		sep:      sep,
	}
}

func (w *JSONWriter) Write(entity *LogEntity) {
	buffer := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buffer.Reset()
		bufferPool.Put(buffer)
	}()
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(jsonEntity{
		Timestamp: entity.Timestamp.Format(time.RFC3339),
		File:      entity.File,
		Level:     LogLevelPrefixMap[entity.Level],
		Prefix:    entity.Prefix,
		Message:   entity.Message,
		Context:   entity.Context,
	}); err != nil {
		return
	}
	// Encode always terminates with a newline
	buffer.Truncate(buffer.Len() - 1)
	buffer.WriteString(w.sep)
	w.ioWriter.Write(buffer.Bytes())
}
