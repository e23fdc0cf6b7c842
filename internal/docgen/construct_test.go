package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociateFunction(t *testing.T) {
	src := "function(greet name)\n  message(${name})\nendfunction()\n"

	sig, warns := Associate(src, 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindFunction, sig.Kind)
	assert.Equal(t, "greet", sig.Name)
	assert.Equal(t, []string{"name"}, sig.Params)
}

func TestAssociateMacroCaseInsensitive(t *testing.T) {
	src := "MACRO(Shout msg loud)\nENDMACRO()\n"

	sig, warns := Associate(src, 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindMacro, sig.Kind)
	assert.Equal(t, "Shout", sig.Name)
	assert.Equal(t, []string{"msg", "loud"}, sig.Params)
}

func TestAssociateVariable(t *testing.T) {
	src := "set(MY_VERSION 1.2.3)\n"

	sig, warns := Associate(src, 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindVariable, sig.Kind)
	assert.Equal(t, "MY_VERSION", sig.Name)
	assert.Nil(t, sig.Params)
}

func TestAssociateSkipsBlanksAndComments(t *testing.T) {
	src := "\n\n# a note\n  # another note\nfunction(f a b)\n"

	sig, _ := Associate(src, 0)
	assert.Equal(t, KindFunction, sig.Kind)
	assert.Equal(t, "f", sig.Name)
	assert.Equal(t, []string{"a", "b"}, sig.Params)
}

func TestAssociateMultiLineDeclaration(t *testing.T) {
	src := "function(transfer\n    src\n    dst)\nendfunction()\n"

	sig, warns := Associate(src, 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindFunction, sig.Kind)
	assert.Equal(t, "transfer", sig.Name)
	assert.Equal(t, []string{"src", "dst"}, sig.Params)
}

func TestAssociateQuotedHashArgument(t *testing.T) {
	src := "set(GREETING \"hi #1\")\n"

	sig, warns := Associate(src, 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindVariable, sig.Kind)
	assert.Equal(t, "GREETING", sig.Name)
}

func TestAssociateQuotedParenArgument(t *testing.T) {
	src := "set(PATTERN \"(a|b)\")\nset(AFTER 1)\n"

	sig, warns := Associate(src, 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindVariable, sig.Kind)
	assert.Equal(t, "PATTERN", sig.Name)
}

func TestAssociateEscapedQuoteArgument(t *testing.T) {
	src := "set(MSG \"say \\\"hi\\\" #now\")\n"

	sig, warns := Associate(src, 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindVariable, sig.Kind)
	assert.Equal(t, "MSG", sig.Name)
}

func TestAssociateTrailingCommentInDeclaration(t *testing.T) {
	src := "function(f a # inline note\n  b)\n"

	sig, warns := Associate(src, 0)
	assert.Empty(t, warns)
	assert.Equal(t, "f", sig.Name)
	assert.Equal(t, []string{"a", "b"}, sig.Params)
}

func TestAssociateNoFollowingConstruct(t *testing.T) {
	sig, warns := Associate("", 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindNone, sig.Kind)
}

func TestAssociateUnrecognizedLine(t *testing.T) {
	src := "include(GNUInstallDirs)\n"

	sig, warns := Associate(src, 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindNone, sig.Kind)
}

func TestAssociateNextBlockStops(t *testing.T) {
	src := "\n#[[[\n# another block\n#]]\nfunction(late)\n"

	sig, _ := Associate(src, 0)
	assert.Equal(t, KindNone, sig.Kind, "a following block means this one stands alone")
}

func TestAssociateUnterminatedDeclaration(t *testing.T) {
	src := "function(broken a b\n"

	sig, warns := Associate(src, 0)
	assert.Equal(t, KindNone, sig.Kind)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Message, "unterminated function declaration")
}

func TestAssociateUnterminatedQuote(t *testing.T) {
	src := "set(BROKEN \"no closing quote\n"

	sig, warns := Associate(src, 0)
	assert.Equal(t, KindNone, sig.Kind)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Message, "unterminated variable declaration")
}

func TestAssociateEmptyArgList(t *testing.T) {
	sig, warns := Associate("function()\n", 0)
	assert.Empty(t, warns)
	assert.Equal(t, KindNone, sig.Kind)
}

func TestAssociateFromMidFile(t *testing.T) {
	src := "set(BEFORE 1)\n#[[[\n# doc\n#]]\nmacro(m x)\nendmacro()\n"
	from := len("set(BEFORE 1)\n#[[[\n# doc\n#]]")

	sig, _ := Associate(src, from)
	assert.Equal(t, KindMacro, sig.Kind)
	assert.Equal(t, "m", sig.Name)
	assert.Equal(t, []string{"x"}, sig.Params)
}
