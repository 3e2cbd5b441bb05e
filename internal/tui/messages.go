// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package tui

import "github.com/oelbekkali/colisops/models"

type loginResultMsg struct {
	user models.User
	err  error
}

type boardLoadedMsg struct {
	tab int
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
