// Package varargs expands variadic placeholder regions of a source file into
// one concrete copy per arity.
//
// A region starts at a line beginning with "@VARARGS" and ends at a line
// beginning with "@ENDVAR". Both marker lines are dropped. The region body is
// emitted once for every arity n from 0 through [MaxArity], each copy
// preceded by a "//N=<n>" line unless disabled with [WithMarker]:
//
//	@VARARGS
//	template<@CLASSARGS>
//	R call(R (*fn)(@FUNCARGS), @FUNCARGS) { return fn(@INVOKEARGS); }
//	@ENDVAR
//
// At n = 2 the body becomes
//
//	template<class Param1, class Param2>
//	R call(R (*fn)(Param1 p1, Param2 p2), Param1 p1, Param2 p2) { return fn(p1, p2); }
//
// and at n = 0 the template header disappears along with every comma that
// would otherwise dangle.
//
// # Vocabulary
//
//   - @NUM: the arity as a decimal number
//   - @CLASSARGS: class Param1, ..., class Paramn
//   - @SELARGS: Param1, ..., Paramn
//   - @FUNCARGS: Param1 p1, ..., Paramn pn
//   - @INVOKEARGS: p1, ..., pn
//
// Substitution is a fixed, ordered table of [Rule] values ([Rules]). Bracketed
// and comma-adjacent forms of a placeholder are replaced before its bare
// form. Any other @-token is copied verbatim; [Unknown] reports such tokens.
//
// # Errors
//
// A start marker inside an open region yields [ErrNestedRegion]. Input that
// ends inside a region yields [ErrUnterminatedRegion]. Both carry line
// numbers as structured attributes.
package varargs
