package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"reviewhub/internal/api"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, "not found")
}

func (app *application) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("upstream error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadGateway, "the reviews service is unavailable")
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds()+0.5)))

	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter.String())
}

// upstreamError reports a failed call to the reviews API. Client errors the
// API rejected are the user's to fix; everything else is a gateway failure.
func (app *application) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode >= 400 && httpErr.StatusCode < 500 {
		app.badRequestResponse(w, r, fmt.Errorf("rejected by reviews service: %s", httpErr.Body))
		return
	}
	app.badGatewayResponse(w, r, err)
}

func (app *application) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	app.notFoundResponse(w, r, fmt.Errorf("no route for %s", r.URL.Path))
}

func (app *application) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("method not allowed", "method", r.Method, "path", r.URL.Path)

	writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
}
