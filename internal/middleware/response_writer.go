package middleware

import "net/http"

// ResponseRecorder remembers the status and size of what was written.
type ResponseRecorder struct {
	http.ResponseWriter
	status        int
	bytesSent     int
	headerWritten bool
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (w *ResponseRecorder) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}
	w.status = statusCode
	w.headerWritten = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseRecorder) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesSent += n
	return n, err
}

func (w *ResponseRecorder) Status() int {
	return w.status
}

func (w *ResponseRecorder) BytesWritten() int {
	return w.bytesSent
}

func (w *ResponseRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
