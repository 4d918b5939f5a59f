package main

import (
	"PassPlotApi/internal/data"
	"PassPlotApi/internal/feed"
	"PassPlotApi/internal/passplot"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func (app *application) GetGamePassPlot(w http.ResponseWriter, r *http.Request) {
	game, events, ok := app.gameEvents(w, r)
	if !ok {
		return
	}

	state := passplot.NewFilterState()
	if s := app.readString(r.URL.Query(), "team", ""); s != "" {
		team, err := passplot.ParseTeamSide(s)
		if err != nil {
			app.failedValidationResponse(w, r, map[string]string{
				"team": `must be either "home" or "away"`})
			return
		}
		state.SetTeam(team)
	}

	masters := passplot.BuildMasterPlayerLists(events, state.Team)
	counts := passplot.ComputeFilterCounts(events, state, masters)
	filtered := passplot.FilteredEvents(events, state)
	stats := passplot.ComputeStats(filtered)

	err := app.writeJSON(w, http.StatusOK, envelope{
		"game":   game,
		"team":   state.Team,
		"counts": counts,
		"events": passplot.ProjectEvents(filtered),
		"stats":  stats,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
	return
}

func (app *application) WatchGamePassPlot(w http.ResponseWriter, r *http.Request) {
	game, events, ok := app.gameEvents(w, r)
	if !ok {
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     app.checkWatchOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logError(r, err)
		return
	}

	hub := app.sessions.Open(game.FeedID, events)
	hub.Join(conn)
}

func (app *application) gameEvents(w http.ResponseWriter, r *http.Request) (*data.Game,
	[]passplot.PassPlotEvent, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		app.notFoundResponse(w, r)
		return nil, nil, false
	}

	game, err := app.models.Games.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return nil, nil, false
	}

	payload, err := app.feed.PlayByPlay(r.Context(), game.FeedID)
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrGameNotFound):
			app.notFoundResponse(w, r)
		default:
			app.badGatewayResponse(w, r, err)
		}
		return nil, nil, false
	}

	return game, passplot.ExtractEvents(payload), true
}

func (app *application) checkWatchOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, trusted := range app.config.cors.trustedOrigins {
		if origin == trusted {
			return true
		}
	}
	return false
}
