package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Confirmer asks a yes/no question before a destructive step.
type Confirmer interface {
	Confirm(title, description string) (bool, error)
}

// promptConfirmer shows a huh confirm field on interactive terminals and
// answers yes on its own in headless mode.
type promptConfirmer struct {
	headless *HeadlessManager
}

// NewConfirmer returns a Confirmer backed by huh. A nil HeadlessManager
// uses TTY detection.
func NewConfirmer(h *HeadlessManager) Confirmer {
	if h == nil {
		h = NewHeadlessManager()
	}
	return &promptConfirmer{headless: h}
}

// Confirm implements Confirmer. Aborting the prompt (ctrl+c) counts as no.
func (c *promptConfirmer) Confirm(title, description string) (bool, error) {
	if c.headless.IsHeadless() {
		return true, nil
	}

	ok := false
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Write").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return ok, nil
}
