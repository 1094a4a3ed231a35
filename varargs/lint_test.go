package varargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknown(t *testing.T) {
	block := "template<@CLASSARGS>\n" +
		"R f@NUMBER(@FUNCARG, @FOO) @ x@y\n" +
		"// @VARARGS in a comment\n" +
		"g(@INVOKEARGS, @CLASSARG);\n"

	got := Unknown(block)
	require.Len(t, got, 4)

	assert.Equal(t, "@FUNCARG", got[0].Text)
	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, []string{"@FUNCARGS"}, got[0].Suggestions)

	assert.Equal(t, "@FOO", got[1].Text)
	assert.Equal(t, 2, got[1].Line)

	assert.Equal(t, "@y", got[2].Text)

	assert.Equal(t, "@CLASSARG", got[3].Text)
	assert.Equal(t, 4, got[3].Line)
	assert.Equal(t, "@CLASSARGS", got[3].Suggestions[0])
}

func TestUnknown_NoneInVocabularyOnlyText(t *testing.T) {
	assert.Empty(t, Unknown("template<@CLASSARGS> void f(@FUNCARGS) { g<@SELARGS>(@INVOKEARGS); } // @NUM"))
	assert.Empty(t, Unknown(""))
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		query string
		first string
	}{
		{"@SEL", "@SELARGS"},
		{"SEL", "@SELARGS"},
		{"invoke", "@INVOKEARGS"},
		{"num", "@NUM"},
		{"@classargs", "@CLASSARGS"},
	}

	for _, tt := range tests {
		got := Suggest(tt.query)
		require.NotEmpty(t, got, tt.query)
		assert.Equal(t, tt.first, got[0], tt.query)
	}

	assert.Empty(t, Suggest(""))
	assert.Empty(t, Suggest("@"))
	assert.Empty(t, Suggest("@zzz"))
}
