// Package github resolves repository identity and fetches pull request
// metadata from the GitHub API.
package github

import (
	"fmt"
	"regexp"
	"strings"
)

// remotePatterns match the SSH and HTTPS remote URL forms and capture the
// owner/name pair.
var remotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:ssh://)?git@[^:/]+[:/]([^/]+/[^/]+)$`),
	regexp.MustCompile(`^https?://[^/]+/([^/]+/[^/]+)$`),
}

// ParseOwnerRepo extracts the "owner/name" identifier from a git remote URL.
// A trailing ".git" suffix is stripped first. Returns an error naming the
// offending URL when no identifier can be extracted.
func ParseOwnerRepo(remoteURL string) (owner, repo string, err error) {
	trimmed := strings.TrimSpace(remoteURL)
	trimmed = strings.TrimSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	for _, re := range remotePatterns {
		if m := re.FindStringSubmatch(trimmed); m != nil {
			parts := strings.SplitN(m[1], "/", 2)
			if parts[0] == "" || parts[1] == "" {
				break
			}
			return parts[0], parts[1], nil
		}
	}
	return "", "", fmt.Errorf("could not extract owner/repo from remote URL %q", remoteURL)
}
