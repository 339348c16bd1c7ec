package middleware

import (
	"bufio"
	"net"

	"github.com/gin-gonic/gin"
)

// cookieWriter adds Set-Cookie headers once, right before the response
// headers are committed, so cookies survive handlers that stream a body and
// land after any headers the handler set itself.
type cookieWriter struct {
	gin.ResponseWriter
	bake  func()
	baked bool
}

func (w *cookieWriter) flushCookies() {
	if w.baked {
		return
	}

	w.baked = true

	if !w.ResponseWriter.Written() {
		w.bake()
	}
}

func (w *cookieWriter) WriteHeaderNow() {
	w.flushCookies()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *cookieWriter) Write(data []byte) (int, error) {
	w.flushCookies()
	return w.ResponseWriter.Write(data)
}

func (w *cookieWriter) WriteString(s string) (int, error) {
	w.flushCookies()
	return w.ResponseWriter.WriteString(s)
}

func (w *cookieWriter) Flush() {
	w.flushCookies()
	w.ResponseWriter.Flush()
}

func (w *cookieWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	w.baked = true
	return w.ResponseWriter.Hijack()
}
