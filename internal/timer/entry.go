package timer

import (
	"strings"
	"time"
)

// Entry accumulates keypad digit presses into an mm:ss value. Digits shift
// in from the right like a microwave keypad: pressing 1,3,0 reads 01:30.
// At most four digits are kept.
type Entry struct {
	digits string
}

// PushDigit appends a digit (0–9). A fifth digit or anything out of range
// is ignored, as is a leading zero on an empty entry.
func (e *Entry) PushDigit(d int) {
	if d < 0 || d > 9 {
		return
	}
	if len(e.digits) == 0 && d == 0 {
		return
	}
	if len(e.digits) >= 4 {
		return
	}
	e.digits += string(rune('0' + d))
}

// Backspace removes the most recently entered digit.
func (e *Entry) Backspace() {
	if len(e.digits) > 0 {
		e.digits = e.digits[:len(e.digits)-1]
	}
}

// Clear empties the entry.
func (e *Entry) Clear() {
	e.digits = ""
}

// Clock renders the entry as mm:ss with zero padding.
func (e *Entry) Clock() string {
	padded := strings.Repeat("0", 4-len(e.digits)) + e.digits
	return padded[:2] + ":" + padded[2:]
}

// Duration converts the entry to a countdown duration. The seconds field is
// taken at face value, so an entry reading 01:90 means one minute ninety
// seconds.
func (e *Entry) Duration() time.Duration {
	padded := strings.Repeat("0", 4-len(e.digits)) + e.digits
	mins := int(padded[0]-'0')*10 + int(padded[1]-'0')
	secs := int(padded[2]-'0')*10 + int(padded[3]-'0')
	return time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second
}
