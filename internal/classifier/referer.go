package classifier

import (
	"net/url"
	"strings"

	"linkstats/internal/domain"
)

// CategoryPatterns is a category and the hostname substrings that select it.
type CategoryPatterns struct {
	Category domain.RefererCategory
	Patterns []string
}

// RefererTable is a versioned set of hostname patterns. Categories are
// evaluated in slice order and the first match wins.
type RefererTable struct {
	Version    string
	Categories []CategoryPatterns
}

// DefaultRefererTable is the built-in classification table.
var DefaultRefererTable = RefererTable{
	Version: "2024-07-22",
	Categories: []CategoryPatterns{
		{
			Category: domain.CategorySocial,
			Patterns: []string{
				"facebook.com", "instagram.com", "twitter.com", "linkedin.com",
				"pinterest.com", "reddit.com", "tumblr.com", "t.co", "tiktok.com",
				"youtube.com", "whatsapp.com", "telegram.org", "snapchat.com",
				"discord.com", "medium.com",
			},
		},
		{
			Category: domain.CategorySearch,
			Patterns: []string{
				"google.", "bing.com", "yahoo.com", "duckduckgo.com", "baidu.com",
				"yandex.", "search.", "ask.com", "aol.com", "ecosia.org",
				"qwant.com", "startpage.com",
			},
		},
		{
			Category: domain.CategoryEmail,
			Patterns: []string{
				"mail.google.com", "outlook.com", "yahoo.mail", "protonmail.com",
				"mail.", "outlook.live.com", "zoho.com", "gmx.", "aol.mail",
			},
		},
		{
			Category: domain.CategoryAds,
			Patterns: []string{
				"ads.", "adwords.", "doubleclick.net", "googleadservices.com",
				"facebook.com/ads", "linkedin.com/ads", "twitter.com/i/cards",
			},
		},
	},
}

// RefererClassifier classifies traffic sources from referer URLs.
type RefererClassifier struct {
	table RefererTable
}

// NewRefererClassifier creates a classifier over table.
func NewRefererClassifier(table RefererTable) *RefererClassifier {
	return &RefererClassifier{table: table}
}

// NewDefaultRefererClassifier creates a classifier over DefaultRefererTable.
func NewDefaultRefererClassifier() *RefererClassifier {
	return NewRefererClassifier(DefaultRefererTable)
}

// Version returns the version of the table in use.
func (c *RefererClassifier) Version() string {
	return c.table.Version
}

// Categorize classifies referer with the classifier's table.
func (c *RefererClassifier) Categorize(referer string) domain.RefererCategory {
	return CategorizeReferer(c.table, referer)
}

// CategorizeReferer returns direct for an empty referer, unknown when it is
// not an absolute URL, the first category whose patterns occur in the
// lower-cased hostname, or other.
func CategorizeReferer(table RefererTable, referer string) domain.RefererCategory {
	if referer == "" {
		return domain.CategoryDirect
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Scheme == "" {
		return domain.CategoryUnknown
	}

	hostname := strings.ToLower(parsed.Hostname())
	if hostname == "" {
		return domain.CategoryOther
	}

	for _, c := range table.Categories {
		for _, pattern := range c.Patterns {
			if strings.Contains(hostname, pattern) {
				return c.Category
			}
		}
	}

	return domain.CategoryOther
}
