package data

import (
	"PassPlotApi/internal/validator"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Game is one row of the game index: enough to render the games list and to
// resolve the feed identifier a detail view fetches play-by-play with.
type Game struct {
	ID        int64      `json:"id"`
	FeedID    string     `json:"feed_id"`
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	Status    GameStatus `json:"status"`
	StartTime time.Time  `json:"start_time"`
	CreatedAt time.Time  `json:"-"`
	Version   int64      `json:"-"`
}

type GameStatus int64

const (
	SCHEDULED GameStatus = iota
	LIVE
	FINAL
)

func (s GameStatus) MarshalJSON() ([]byte, error) {
	switch s {
	case SCHEDULED:
		return []byte(`"scheduled"`), nil
	case LIVE:
		return []byte(`"live"`), nil
	case FINAL:
		return []byte(`"final"`), nil
	default:
		return nil, errors.New("invalid game status")
	}
}

type GameModel struct {
	db *sql.DB
}

func (m *GameModel) Get(id int64) (*Game, error) {
	stmt := `
		SELECT id, feed_id, home_team, away_team, status, start_time, created_at, version
		FROM games
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var game Game
	err := m.db.QueryRowContext(ctx, stmt, id).Scan(
		&game.ID,
		&game.FeedID,
		&game.HomeTeam,
		&game.AwayTeam,
		&game.Status,
		&game.StartTime,
		&game.CreatedAt,
		&game.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &game, nil
}

type GamesFilter struct {
	Filters   `json:"filters"`
	Team      string       `json:"team,omitempty"`
	Status    []GameStatus `json:"status,omitempty"`
	AfterDate time.Time    `json:"after_date,omitempty"`
}

type GamesMetadata struct {
	Pag       Metadata     `json:"pag"`
	Team      string       `json:"team,omitempty"`
	Status    []GameStatus `json:"status,omitempty"`
	AfterDate *time.Time   `json:"after_date,omitempty"`
}

func (m *GameModel) GetAll(filters GamesFilter) ([]*Game, GamesMetadata, error) {
	stmt := fmt.Sprintf(`
		SELECT count(*) OVER(), id, feed_id, home_team, away_team, status, start_time,
			created_at, version
			FROM games
			WHERE (($1 = '')
				OR home_team ILIKE '%%' || $1 || '%%'
				OR away_team ILIKE '%%' || $1 || '%%')
			AND (($2 IS FALSE)
				OR status = ANY($3::integer[]))
			AND (($4 IS FALSE)
				OR start_time > $5)
			ORDER BY %s %s, id ASC
			LIMIT $6 OFFSET $7`, filters.Filters.sortColumn(), filters.Filters.sortDirection())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	args := []any{
		filters.Team,
		filters.Status != nil,
		pq.Array(filters.Status),
		!filters.AfterDate.IsZero(),
		filters.AfterDate,
		filters.Filters.limit(),
		filters.Filters.offset(),
	}

	rows, err := m.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, GamesMetadata{}, err
	}
	defer rows.Close()

	totalRecords := 0
	games := make([]*Game, 0)
	for rows.Next() {
		var game Game
		err := rows.Scan(
			&totalRecords,
			&game.ID,
			&game.FeedID,
			&game.HomeTeam,
			&game.AwayTeam,
			&game.Status,
			&game.StartTime,
			&game.CreatedAt,
			&game.Version,
		)
		if err != nil {
			return nil, GamesMetadata{}, err
		}
		games = append(games, &game)
	}
	if err := rows.Err(); err != nil {
		return nil, GamesMetadata{}, err
	}

	metadata := calculateGamesMetadata(totalRecords, filters)

	return games, metadata, nil
}

func calculateGamesMetadata(totalRecords int, f GamesFilter) GamesMetadata {
	if totalRecords == 0 {
		return GamesMetadata{}
	}

	metadata := GamesMetadata{
		Pag:    calculateMetadata(totalRecords, f.Filters.Page, f.Filters.PageSize),
		Team:   f.Team,
		Status: f.Status,
	}

	if !f.AfterDate.IsZero() {
		metadata.AfterDate = &f.AfterDate
	}

	return metadata
}

func ValidateGamesFilter(v *validator.Validator, f GamesFilter) {
	ValidateFilters(v, f.Filters)
	for _, s := range f.Status {
		v.Check(s >= SCHEDULED && s <= FINAL, "status",
			`must be selected from the following: "scheduled","live","final"`)
	}
}
