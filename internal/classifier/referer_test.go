package classifier

import (
	"testing"

	"linkstats/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeReferer(t *testing.T) {
	tests := []struct {
		name    string
		referer string
		want    domain.RefererCategory
	}{
		{name: "empty", referer: "", want: domain.CategoryDirect},
		{name: "facebook", referer: "https://facebook.com/some/post", want: domain.CategorySocial},
		{name: "facebook subdomain", referer: "https://m.facebook.com", want: domain.CategorySocial},
		{name: "upper case host", referer: "https://WWW.FACEBOOK.COM/", want: domain.CategorySocial},
		{name: "google search", referer: "https://www.google.com/search?q=x", want: domain.CategorySearch},
		{name: "country google", referer: "https://google.com.br", want: domain.CategorySearch},
		{name: "gmail resolves to search first", referer: "https://mail.google.com/mail/u/0", want: domain.CategorySearch},
		{name: "outlook", referer: "https://outlook.live.com/mail", want: domain.CategoryEmail},
		{name: "generic webmail", referer: "https://mail.example.net", want: domain.CategoryEmail},
		{name: "doubleclick", referer: "https://ad.doubleclick.net/x", want: domain.CategoryAds},
		{name: "ads subdomain", referer: "https://ads.example.com", want: domain.CategoryAds},
		{name: "no match", referer: "https://example.org", want: domain.CategoryOther},
		{name: "no host", referer: "mailto:someone@example.org", want: domain.CategoryOther},
		{name: "not a url", referer: "not a url", want: domain.CategoryUnknown},
		{name: "scheme relative", referer: "//facebook.com/x", want: domain.CategoryUnknown},
		{name: "bad escape", referer: "https://example.org/%zz", want: domain.CategoryUnknown},
		{name: "bad port", referer: "http://facebook.com:port/", want: domain.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeReferer(DefaultRefererTable, tt.referer))
		})
	}
}

func TestCategorizeReferer_FirstCategoryWins(t *testing.T) {
	table := RefererTable{
		Version: "test",
		Categories: []CategoryPatterns{
			{Category: domain.CategoryAds, Patterns: []string{"shop."}},
			{Category: domain.CategorySocial, Patterns: []string{"shop.example"}},
		},
	}

	assert.Equal(t, domain.CategoryAds, CategorizeReferer(table, "https://shop.example.com"))
}

func TestRefererClassifier(t *testing.T) {
	c := NewDefaultRefererClassifier()

	assert.Equal(t, DefaultRefererTable.Version, c.Version())
	assert.Equal(t, domain.CategorySocial, c.Categorize("https://t.co/abc"))
	assert.Equal(t, domain.CategoryDirect, c.Categorize(""))

	empty := NewRefererClassifier(RefererTable{Version: "empty"})
	assert.Equal(t, domain.CategoryOther, empty.Categorize("https://facebook.com"))
}
