package main

import (
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/caeli/internal/config"
	"git.lost.host/meutraa/caeli/internal/loop"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	p := &Program{}
	defer p.Finish()
	if err := p.Init(); nil != err {
		return err
	}

	loop.Run(loop.Period(*config.FPS), func(_ time.Time, dt time.Duration) bool {
		return p.Frame(dt)
	})
	return nil
}
