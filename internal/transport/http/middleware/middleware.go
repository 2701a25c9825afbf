package middleware

import (
	"net/http"
)

// Middleware — обёртка над http.Handler в терминах net/http.
type Middleware func(http.Handler) http.Handler

// Chain собирает цепочку мидлваров вокруг обработчика: первый в списке
// оказывается самым внешним и видит запрос раньше остальных.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// statusWriter запоминает код ответа и число записанных байт
// для логирования и метрик.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func wrapWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	// net/http при первом Write без явного WriteHeader отдаёт 200.
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

// Status возвращает зафиксированный код ответа, по умолчанию 200.
func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
