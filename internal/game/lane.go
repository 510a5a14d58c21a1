package game

type Lane struct {
	Name   string
	Active bool
}
