package main

import (
	"PassPlotApi/internal/data"
	"PassPlotApi/internal/validator"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func (app *application) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		app.notFoundResponse(w, r)
		return
	}

	game, err := app.models.Games.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"game": game}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
	return
}

func (app *application) GetAllGames(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	v := validator.New()
	filters := data.GamesFilter{}

	filters.Team = app.readString(qs, "team", "")
	filters.Status = app.readCSGameStatus(qs, nil, v)
	filters.AfterDate = app.readDate(qs, "after_date", time.Time{}, v)

	filters.Filters.Page = app.readInt(qs, "page", 1, v)
	filters.Filters.PageSize = app.readInt(qs, "page_size", 10, v)
	filters.Filters.Sort = app.readString(qs, "sort", "-start_time")
	filters.Filters.SortSafeList = []string{"id", "start_time", "-id", "-start_time"}

	if data.ValidateGamesFilter(v, filters); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	games, metadata, err := app.models.Games.GetAll(filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"metadata": metadata, "games": games}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
	return
}
