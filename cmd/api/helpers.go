package main

import (
	"PassPlotApi/internal/data"
	"PassPlotApi/internal/validator"
	json2 "encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	json, err := json2.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	json = append(json, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(json)
	if err != nil {
		return err
	}

	return nil
}

func (app *application) readString(qs url.Values, key string, defaultValue string) string {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}

	return s
}

func (app *application) readCSGameStatus(qs url.Values, defaultValue []data.GameStatus,
	v *validator.Validator) []data.GameStatus {
	key := "status"
	csv := qs.Get(key)
	if csv == "" {
		return defaultValue
	}

	statuses := make([]data.GameStatus, 0)
	split := strings.Split(csv, ",")
	for _, s := range split {
		var status data.GameStatus
		switch s {
		case "scheduled":
			status = data.SCHEDULED
		case "live":
			status = data.LIVE
		case "final":
			status = data.FINAL
		default:
			v.AddError(key,
				`must be selected from the following: "scheduled","live","final"`)
			return defaultValue
		}
		statuses = append(statuses, status)
	}

	return statuses
}

func (app *application) readInt(qs url.Values, key string, defaultValue int, v *validator.Validator) int {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		v.AddError(key, "must be an integer value")
		return defaultValue
	}

	return i
}

func (app *application) readDate(qs url.Values, key string, defaultValue time.Time,
	v *validator.Validator) time.Time {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		v.AddError(key, "must be a valid date (YYYY-MM-DD)")
		return defaultValue
	}

	return t
}
