package parser

import "git.lost.host/meutraa/caeli/internal/game"

type Parser interface {
	Parse(file string) ([]*game.Chart, error)
}
