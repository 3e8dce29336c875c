package main

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"reviewhub/internal/domain/reviews"
	"reviewhub/internal/params"
	"reviewhub/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2 Jan 2006 15:04")
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

type page struct {
	Title string
	Home  string
	List  string
	Data  any
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	p.Home = app.router.Href("/home")
	p.List = app.router.Href("/reviews")

	var buf strings.Builder
	if err := app.templates.ExecuteTemplate(&buf, name, p); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(buf.String()))
}

func (app *application) homeView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		app.methodNotAllowedHandler(w, r)
		return
	}
	app.render(w, r, http.StatusOK, "home.html", page{Title: "Home"})
}

// reviewsView lists reviews on GET and submits a new one on POST.
func (app *application) reviewsView(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		app.listReviewsHandler(w, r)
	case http.MethodPost:
		app.createReviewHandler(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		app.methodNotAllowedHandler(w, r)
	}
}

// listReviewsHandler godoc
//
//	@Summary		List reviews
//	@Description	Reloads the review cache from the reviews API and returns one page of it. A failed reload keeps the previous list and reports it in last_error.
//	@Tags			reviews
//	@Produce		json,html
//	@Param			page	query		int	false	"Page number, starting at 1"
//	@Param			limit	query		int	false	"Items per page (max 100)"
//	@Success		200		{object}	reviewList
//	@Router			/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	app.store.Reviews.LoadReviews(r.Context())
	list := app.paginate(r, app.store.Reviews.Snapshot())

	if wantsJSON(r) {
		app.jsonResponse(w, http.StatusOK, list)
		return
	}
	app.render(w, r, http.StatusOK, "reviews.html", page{Title: "Reviews", Data: reviewsPage{reviewList: list}})
}

// reviewList is one page of the cached snapshot.
type reviewList struct {
	store.Snapshot
	Pagination params.Pagination `json:"pagination"`
	Prev       string            `json:"-"`
	Next       string            `json:"-"`
}

func (app *application) paginate(r *http.Request, snap store.Snapshot) reviewList {
	q := r.URL.Query()
	pg := params.ParsePagination(q)
	start, end := pg.Window(len(snap.Reviews))
	snap.Reviews = snap.Reviews[start:end]

	list := reviewList{Snapshot: snap, Pagination: pg}
	if pg.HasPrev {
		list.Prev = app.router.Href("/reviews") + "?" + pg.Query(q, pg.Page-1)
	}
	if pg.HasNext {
		list.Next = app.router.Href("/reviews") + "?" + pg.Query(q, pg.Page+1)
	}
	return list
}

type reviewsPage struct {
	reviewList
	Draft string
	Error string
}

// createReviewHandler godoc
//
//	@Summary		Create a review
//	@Description	Posts a review to the reviews API and puts it at the front of the cached list. Form posts are redirected back to the list.
//	@Tags			reviews
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			payload	body		reviews.CreateReviewPayload	true	"Review content"
//	@Success		201		{object}	reviews.Review
//	@Success		303		{string}	string	"Redirect to the list after a form post"
//	@Failure		400		{object}	error	"Blank content or rejected by the reviews API"
//	@Failure		502		{object}	error	"Reviews API unavailable"
//	@Router			/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload reviews.CreateReviewPayload
	if wantsJSON(r) {
		if err := readJSON(w, r, &payload); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		payload.Content = r.PostForm.Get("content")
	}

	if err := Validate.Var(payload.Content, "notblank,max=5000"); err != nil {
		if wantsJSON(r) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.render(w, r, http.StatusBadRequest, "reviews.html", page{
			Title: "Reviews",
			Data: reviewsPage{
				reviewList: app.paginate(r, app.store.Reviews.Snapshot()),
				Draft:      payload.Content,
				Error:      "Please write something before submitting.",
			},
		})
		return
	}

	created, err := app.store.Reviews.AddReview(r.Context(), payload.Content)
	if err != nil {
		app.upstreamError(w, r, err)
		return
	}

	if wantsJSON(r) {
		app.jsonResponse(w, http.StatusCreated, created)
		return
	}
	http.Redirect(w, r, app.router.Href("/reviews"), http.StatusSeeOther)
}
