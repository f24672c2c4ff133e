package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveExcerpt_ShortBodyUnchanged(t *testing.T) {
	body := strings.Repeat("x", 120)
	assert.Equal(t, body, DeriveExcerpt(body))
}

func TestDeriveExcerpt_ExactLimitUnchanged(t *testing.T) {
	body := strings.Repeat("x", 200)
	assert.Equal(t, body, DeriveExcerpt(body))
}

func TestDeriveExcerpt_LongBodyTruncated(t *testing.T) {
	body := strings.Repeat("x", 250)
	got := DeriveExcerpt(body)
	assert.Equal(t, strings.Repeat("x", 200)+"...", got)
}

func TestDeriveExcerpt_CountsRunesNotBytes(t *testing.T) {
	body := strings.Repeat("가", 250)
	got := DeriveExcerpt(body)
	assert.Equal(t, strings.Repeat("가", 200)+"...", got)
}

func TestEffectiveExcerpt_PrefersStored(t *testing.T) {
	post := &Post{Body: strings.Repeat("x", 500), Excerpt: "hand-written"}
	assert.Equal(t, "hand-written", post.EffectiveExcerpt())
}

func TestEffectiveExcerpt_DerivesWhenEmpty(t *testing.T) {
	post := &Post{Body: "short"}
	assert.Equal(t, "short", post.EffectiveExcerpt())
}
