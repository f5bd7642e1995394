package keyboard

// MiddleC is the note number of the first key of the QWERTY layout.
const MiddleC = 60

// qwertyOffsets lays a piano over two rows of a QWERTY keyboard: the letter
// row plays the white keys and the number row above it the black keys.
var qwertyOffsets = map[string]int{
	"q": 0, "2": 1,
	"w": 2, "3": 3,
	"e": 4,
	"r": 5, "5": 6,
	"t": 7, "6": 8,
	"y": 9, "7": 10,
	"u": 11,
	"i": 12, "9": 13,
	"o": 14, "0": 15,
	"p": 16,
	"[": 17, "=": 18,
	"]": 19,
}

// NoteForKey returns the note played by a key name, as reported by the
// terminal ("q", "2", "[", ...).
func NoteForKey(k string) (int, bool) {
	offset, ok := qwertyOffsets[k]
	if !ok {
		return 0, false
	}
	return MiddleC + offset, true
}
