package github

import (
	"fmt"
	"net/url"
)

// StarsTabURL is the profile page that links every star list of username.
func StarsTabURL(webBase, username string) string {
	return fmt.Sprintf("%s/%s?tab=stars", webBase, url.PathEscape(username))
}

// ListPageURL is one page of a star list. Pages start at 1.
// listID is used verbatim since it is scraped from an href and already escaped.
func ListPageURL(webBase, username, listID string, page int) string {
	return fmt.Sprintf("%s/stars/%s/lists/%s?page=%d", webBase, url.PathEscape(username), listID, page)
}

// RepoWebURL is the repository's page on the site.
func RepoWebURL(webBase, fullName string) string {
	return webBase + "/" + fullName
}
