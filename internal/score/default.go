package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"git.lost.host/meutraa/caeli/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNotOpen = errors.New("score database not open")

type DefaultScorer struct {
	db *sql.DB
}

// InputsCompact holds every input of one lane, Matched parallel to Times.
type InputsCompact struct {
	Lane    int
	Times   []time.Duration
	Matched []bool
}

func compactInputs(inputs []Input) []InputsCompact {
	laneCount := 0
	for _, i := range inputs {
		if i.Lane+1 > laneCount {
			laneCount = i.Lane + 1
		}
	}
	ins := make([]InputsCompact, laneCount)
	for l := range ins {
		ins[l].Lane = l
	}
	for _, i := range inputs {
		if i.Lane < 0 {
			continue
		}
		ins[i.Lane].Times = append(ins[i.Lane].Times, i.Time)
		ins[i.Lane].Matched = append(ins[i.Lane].Matched, i.Matched)
	}
	return ins
}

func uncompactInputs(inputs []InputsCompact) []Input {
	ins := []Input{}
	for _, i := range inputs {
		for j, t := range i.Times {
			matched := j < len(i.Matched) && i.Matched[j]
			ins = append(ins, Input{Lane: i.Lane, Time: t, Matched: matched})
		}
	}
	return ins
}

func (s *DefaultScorer) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists scores 
	  (
		  id integer not null primary key, 
		  sum text,
		  rate real,
		  played_at integer,
		  inputs blob
	  );
	create index if not exists scores_sum on scores (sum);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create score table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func hashChart(c *game.Chart) string {
	h := sha256.New()
	h.Write([]byte(c.Difficulty.Name))
	h.Write([]byte{0})
	for _, n := range c.Notes {
		h.Write([]byte(strconv.FormatInt(int64(n.Time), 10)))
		h.Write([]byte{':'})
		h.Write([]byte(strconv.Itoa(n.Lane)))
		h.Write([]byte{';'})
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultScorer) Save(c *game.Chart, inputs []Input, rate float64) error {
	if nil == s.db {
		return ErrNotOpen
	}
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		return fmt.Errorf("unable to marshal inputs: %w", err)
	}
	_, err = s.db.Exec(
		"insert into scores(sum, rate, played_at, inputs) values(?, ?, ?, ?)",
		hashChart(c), rate, time.Now().Unix(), data,
	)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

func (s *DefaultScorer) Load(c *game.Chart) ([]History, error) {
	if nil == s.db {
		return nil, ErrNotOpen
	}
	histories := []History{}
	rows, err := s.db.Query("select sum, rate, played_at, inputs from scores where sum = ? order by id", hashChart(c))
	if nil != err {
		return nil, fmt.Errorf("unable to load scores: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sum string
		var data []byte
		var rate float64
		var playedAt int64
		if err := rows.Scan(&sum, &rate, &playedAt, &data); nil != err {
			return nil, err
		}
		var ns []InputsCompact
		if err := json.Unmarshal(data, &ns); nil != err {
			log.Println("unable to unmarshal input history", err)
			continue
		}
		histories = append(histories, History{
			Sum:      sum,
			Inputs:   uncompactInputs(ns),
			Rate:     rate,
			PlayedAt: time.Unix(playedAt, 0),
		})
	}
	return histories, rows.Err()
}
