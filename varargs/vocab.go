package varargs

import (
	"strconv"
	"strings"
)

// MaxArity is the largest arity generated for every region. Each region is
// expanded once for every arity in [0, MaxArity].
const MaxArity = 8

// Placeholder is a token of the fixed expansion vocabulary.
type Placeholder int

const (
	Num        Placeholder = iota // @NUM
	ClassArgs                     // @CLASSARGS
	SelArgs                       // @SELARGS
	FuncArgs                      // @FUNCARGS
	InvokeArgs                    // @INVOKEARGS
)

var placeholders = [...]struct {
	token    string
	about    string
	fragment func(n int) string
}{
	Num: {
		"@NUM",
		"number of arguments",
		strconv.Itoa,
	},
	ClassArgs: {
		"@CLASSARGS",
		"template parameter declaration list",
		ClassList,
	},
	SelArgs: {
		"@SELARGS",
		"template argument list for selecting a template",
		SelectList,
	},
	FuncArgs: {
		"@FUNCARGS",
		"typed parameter list for declaring a function",
		FuncList,
	},
	InvokeArgs: {
		"@INVOKEARGS",
		"argument list for invoking a function",
		InvokeList,
	},
}

// Vocabulary returns every placeholder in the order its rules are applied.
func Vocabulary() []Placeholder {
	return []Placeholder{Num, ClassArgs, SelArgs, FuncArgs, InvokeArgs}
}

// String returns the placeholder token as written in a region, e.g. "@NUM".
func (p Placeholder) String() string {
	if !p.valid() {
		return "Placeholder(" + strconv.Itoa(int(p)) + ")"
	}

	return placeholders[p].token
}

// Description returns a short human-readable summary of the placeholder.
func (p Placeholder) Description() string {
	if !p.valid() {
		return ""
	}

	return placeholders[p].about
}

// Fragment returns the bare text substituted for p at arity n.
func (p Placeholder) Fragment(n int) string {
	if !p.valid() {
		return ""
	}

	return placeholders[p].fragment(n)
}

func (p Placeholder) valid() bool {
	return p >= 0 && int(p) < len(placeholders)
}

// InvokeList returns "p1, p2, ..., pn".
func InvokeList(n int) string {
	return list(n, func(sb *strings.Builder, k string) {
		sb.WriteString("p")
		sb.WriteString(k)
	})
}

// FuncList returns "Param1 p1, Param2 p2, ..., Paramn pn".
func FuncList(n int) string {
	return list(n, func(sb *strings.Builder, k string) {
		sb.WriteString("Param")
		sb.WriteString(k)
		sb.WriteString(" p")
		sb.WriteString(k)
	})
}

// SelectList returns "Param1, Param2, ..., Paramn".
func SelectList(n int) string {
	return list(n, func(sb *strings.Builder, k string) {
		sb.WriteString("Param")
		sb.WriteString(k)
	})
}

// ClassList returns "class Param1, class Param2, ..., class Paramn".
func ClassList(n int) string {
	return list(n, func(sb *strings.Builder, k string) {
		sb.WriteString("class Param")
		sb.WriteString(k)
	})
}

// list joins item(1)..item(n) with ", ". It is empty for n < 1.
func list(n int, item func(sb *strings.Builder, k string)) string {
	var sb strings.Builder

	for k := 1; k <= n; k++ {
		if k > 1 {
			sb.WriteString(", ")
		}

		item(&sb, strconv.Itoa(k))
	}

	return sb.String()
}
