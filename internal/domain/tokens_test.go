package domain_test

import (
	"testing"

	"github.com/cppgm/styletools/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTokenKind(t *testing.T) {
	assert.Equal(t, "identifier", domain.TokenKind("identifier 1 x\n"))
	assert.Equal(t, "new-line", domain.TokenKind("new-line\n"))
	assert.Equal(t, "new-line", domain.TokenKind("new-line 0\r\n"))
	assert.Equal(t, "eof", domain.TokenKind("eof"))
	assert.Equal(t, "", domain.TokenKind("\n"))
}

func TestNormalizeTokens(t *testing.T) {
	in := []string{
		"whitespace-sequence 0 \n",
		"identifier 1 x\n",
		"new-line 0\n",
		"preprocessing-op-or-punc 1 #\n",
		"whitespace-sequence\n",
		"new-line\n",
		"eof\n",
	}
	assert.Equal(t, []string{
		"identifier 1 x",
		"new-line",
		"preprocessing-op-or-punc 1 #",
		"new-line",
		"eof",
	}, domain.NormalizeTokens(in))
}

func TestNormalizeTokens_KindMustMatchExactly(t *testing.T) {
	in := []string{"new-lines 1\n", "whitespace-sequences\n"}
	assert.Equal(t, []string{"new-lines 1", "whitespace-sequences"}, domain.NormalizeTokens(in))
}

func TestAddedRemoved(t *testing.T) {
	assert.True(t, domain.Added("+++ b.txt"))
	assert.True(t, domain.Added("+eof"))
	assert.False(t, domain.Added(" eof"))
	assert.True(t, domain.Removed("--- a.txt"))
	assert.True(t, domain.Removed("-eof"))
	assert.False(t, domain.Removed("@@ -1 +1 @@"))
}
