package cellselection

import "errors"

// ErrInvalidDirection is returned by SelectCell for directions other than
// above/below
var ErrInvalidDirection = errors.New("invalid direction")

// caretEndOffset is far past any realistic cell content; SetCaret clamps it
// to end-of-content
const caretEndOffset = 100000
