// Package track holds the bare row of toggleable sections driven by the
// immediate-mode prototype.
package track

import (
	"errors"
	"fmt"
)

var ErrSectionOutOfRange = errors.New("section index out of range")

type Track struct {
	sections []bool
}

func New(sectionCount int) *Track {
	if sectionCount < 0 {
		sectionCount = 0
	}
	return &Track{sections: make([]bool, sectionCount)}
}

func (t *Track) Len() int {
	return len(t.sections)
}

func (t *Track) check(section int) error {
	if section < 0 || section >= len(t.sections) {
		return fmt.Errorf("%w: %d of %d", ErrSectionOutOfRange, section, len(t.sections))
	}
	return nil
}

func (t *Track) Activate(section int) error {
	if err := t.check(section); nil != err {
		return err
	}
	t.sections[section] = true
	return nil
}

func (t *Track) Deactivate(section int) error {
	if err := t.check(section); nil != err {
		return err
	}
	t.sections[section] = false
	return nil
}

func (t *Track) IsActivated(section int) (bool, error) {
	if err := t.check(section); nil != err {
		return false, err
	}
	return t.sections[section], nil
}
