package periodic

// Unknown marks a measurement the source did not provide.
const Unknown = -1

// Color is an rgb triple, each component in [0,255].
type Color [3]int

// UnknownColor is the sentinel emitted when the source row carries no
// usable hex color.
var UnknownColor = Color{Unknown, Unknown, Unknown}

// CovalentRadii holds bonded atomic radii in picometers, by bond order.
type CovalentRadii struct {
	SingleBond int `json:"single_bond"`
	DoubleBond int `json:"double_bond"`
	TripleBond int `json:"triple_bond"`
}

// Element is the merged per-symbol record. Covalent stays nil for
// elements the covalent-radii table does not list.
type Element struct {
	Color      Color          `json:"color"`
	VanDerWaal int            `json:"van_der_waal"`
	Covalent   *CovalentRadii `json:"covalent,omitempty"`
}

// legacySymbols translates provisional systematic symbols to their
// currently assigned IUPAC symbols. The "v" entry corrects a lowercase
// Vanadium cell produced by text extraction on the source markup; it is
// a single special case, not a case-folding rule.
var legacySymbols = map[string]string{
	"Uut": "Nh",
	"Uuq": "Fl",
	"Uup": "Mc",
	"Uuh": "Lv",
	"Uus": "Ts",
	"Uuo": "Og",
	"v":   "V",
}

// CanonicalSymbol resolves a possibly-legacy element symbol to its
// current form. Symbols outside the legacy table pass through unchanged,
// so the function is total and idempotent.
func CanonicalSymbol(symbol string) string {
	if current, ok := legacySymbols[symbol]; ok {
		return current
	}
	return symbol
}
