// Package response - writes Popos as JSON HTTP response bodies (net/http and gin).
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/imperiuse/popo/logger"
	"github.com/imperiuse/popo/serializable"
	"github.com/imperiuse/popo/serializable/json"
)

// ContentType - of every Popo body.
const ContentType = "application/json; charset=utf-8"

// ErrNilPopo - handler returned neither Popo nor error.
var ErrNilPopo = serializable.ErrNilPopo

type (
	// Responder - renders Popos into gin responses, logs serialization failures.
	Responder struct {
		log  logger.Logger
		test bool
	}

	// HandlerFunc - gin handler which produces a Popo instead of writing the response.
	HandlerFunc = func(*gin.Context) (serializable.Popo, error)

	// Render - gin render.Render for any JSON Marshaler, usually json.Payload.
	Render struct {
		Payload serializable.Marshaler
	}
)

// New - Responder writing keys as declared.
func New() *Responder {
	return &Responder{log: logger.Log}
}

// NewTest - Responder writing snake_case keys, for fixture routes in tests.
func NewTest() *Responder {
	return &Responder{log: logger.Log, test: true}
}

// UseCustomLogger - register your own logger instance of zap.Logger.
func (r *Responder) UseCustomLogger(log logger.Logger) {
	r.log = log
}

// Respond - serialize p and write it with status code; 500 with a JSON error if p can't be serialized.
func (r *Responder) Respond(c *gin.Context, code int, p serializable.Popo) {
	data, err := json.Payload{Popo: p, Test: r.test}.Marshal()
	if err != nil {
		r.fail(c, err)

		return
	}

	c.Data(code, ContentType, data)
}

// Handler - wrap h into gin.HandlerFunc which responds 200 with the returned Popo.
func (r *Responder) Handler(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h(c)
		if err == nil && serializable.IsNil(p) {
			err = ErrNilPopo
		}

		if err != nil {
			r.fail(c, err)

			return
		}

		r.Respond(c, http.StatusOK, p)
	}
}

func (r *Responder) fail(c *gin.Context, err error) {
	r.log.Error("[Responder] popo response",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)

	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": http.StatusText(http.StatusInternalServerError)})
}

// Write - plain net/http variant: serialize p, then write header and body.
// Nothing is written if serialization fails.
func Write(w http.ResponseWriter, code int, p serializable.Popo) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(code)

	if _, err = w.Write(data); err != nil {
		return errors.Wrap(err, "w.Write")
	}

	return nil
}

// Render - writes the payload; use as c.Render(code, response.Render{...}).
func (r Render) Render(w http.ResponseWriter) error {
	if r.Payload == nil {
		return ErrNilPopo
	}

	data, err := r.Payload.Marshal()
	if err != nil {
		return err
	}

	r.WriteContentType(w)

	_, err = w.Write(data)

	return errors.Wrap(err, "w.Write")
}

// WriteContentType _ .
func (r Render) WriteContentType(w http.ResponseWriter) {
	if header := w.Header(); len(header["Content-Type"]) == 0 {
		header["Content-Type"] = []string{ContentType}
	}
}
