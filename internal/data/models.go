package data

import (
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")

type Models struct {
	Games GameModel
}

func NewModels(initDb *sql.DB) Models {
	return Models{
		Games: GameModel{db: initDb},
	}
}
