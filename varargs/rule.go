package varargs

import (
	"slices"
	"strings"
)

// Rule is one entry of the substitution table: every occurrence of Pattern
// is replaced by the text the rule produces for the current arity.
type Rule struct {
	Pattern string

	expand func(n int) string
	// elide removes horizontal space following a match that expands to
	// nothing, so a vanished template header leaves no indentation behind.
	elide bool
}

// Replacement returns the text substituted for Pattern at arity n.
func (r Rule) Replacement(n int) string { return r.expand(n) }

// Apply replaces every non-overlapping occurrence of r.Pattern in text,
// scanning left to right. Replaced text is never rescanned by the same rule.
func (r Rule) Apply(text string, n int) string {
	if !strings.Contains(text, r.Pattern) {
		return text
	}

	repl := r.expand(n)
	if repl != "" || !r.elide {
		return strings.ReplaceAll(text, r.Pattern, repl)
	}

	var sb strings.Builder

	sb.Grow(len(text))

	for {
		i := strings.Index(text, r.Pattern)
		if i < 0 {
			break
		}

		sb.WriteString(text[:i])
		text = strings.TrimLeft(text[i+len(r.Pattern):], " \t")
	}

	sb.WriteString(text)

	return sb.String()
}

// rules is the substitution table in precedence order. More specific forms
// of a placeholder always precede its bare form.
var rules = compileRules()

// Rules returns a copy of the substitution table in the order it is applied.
func Rules() []Rule { return slices.Clone(rules) }

func compileRules() []Rule {
	table := []Rule{
		{Pattern: Num.String(), expand: Num.Fragment},
	}

	// Template declarations: "template<>" is invalid, so the whole header
	// disappears at arity zero.
	for _, pattern := range []string{
		"template<" + ClassArgs.String() + ">",
		"template <" + ClassArgs.String() + ">",
	} {
		table = append(table, Rule{
			Pattern: pattern,
			expand:  wrapped("template<", ClassArgs, ">"),
			elide:   true,
		})
	}

	table = append(table, commaForms(ClassArgs)...)

	// Template selections take precedence over the comma forms of @SELARGS.
	for _, pattern := range []string{
		"<" + SelArgs.String() + ">",
		"< " + SelArgs.String() + " >",
	} {
		table = append(table, Rule{
			Pattern: pattern,
			expand:  wrapped("<", SelArgs, ">"),
		})
	}

	for _, p := range []Placeholder{SelArgs, FuncArgs, InvokeArgs} {
		table = append(table, commaForms(p)...)
	}

	return table
}

// commaForms returns the rules for a list placeholder adjacent to a comma,
// followed by its bare form. The comma survives only when the list is
// non-empty.
func commaForms(p Placeholder) []Rule {
	tok := p.String()

	leading := func(n int) string {
		if s := p.Fragment(n); s != "" {
			return ", " + s
		}

		return ""
	}

	trailing := func(n int) string {
		if s := p.Fragment(n); s != "" {
			return s + ", "
		}

		return ""
	}

	return []Rule{
		{Pattern: "," + tok, expand: leading},
		{Pattern: ", " + tok, expand: leading},
		{Pattern: tok + ", ", expand: trailing},
		{Pattern: tok + ",", expand: trailing},
		{Pattern: tok, expand: p.Fragment},
	}
}

// wrapped returns open + fragment + end, or nothing for an empty fragment.
func wrapped(open string, p Placeholder, end string) func(int) string {
	return func(n int) string {
		if s := p.Fragment(n); s != "" {
			return open + s + end
		}

		return ""
	}
}
