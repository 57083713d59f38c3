package payments

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReceiptNumberFormat(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	token := newReceiptNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^RCP-20240115-[0-9A-F]{8}$`), token)
}

func TestNewReceiptNumberIsRandomized(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := newReceiptNumber(now)
		assert.False(t, seen[token], "token %s repeated within one instant", token)
		seen[token] = true
	}
}
