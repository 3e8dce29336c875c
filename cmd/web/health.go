package main

import "net/http"

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports version, environment and review cache state
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Router			/v1/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	snap := app.store.Reviews.Snapshot()

	data := map[string]any{
		"status":         "ok",
		"env":            app.config.Env,
		"version":        version,
		"cached_reviews": len(snap.Reviews),
		"last_error":     snap.LastError,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
