package seo

import (
	"fmt"
	"strings"
)

// Robots renders robots.txt, pointing crawlers at the sitemap.
func Robots(baseURL string) string {
	base := strings.TrimSuffix(baseURL, "/")
	return strings.Join([]string{
		"User-agent: *",
		"Allow: /",
		fmt.Sprintf("Sitemap: %s/sitemap.xml", base),
	}, "\n") + "\n"
}
