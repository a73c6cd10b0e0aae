// Package github implements the star, list and membership sources for GitHub.
//
// # Architecture
//
// The connector implements [driven.StarSource], [driven.ListSource] and
// [driven.MembershipSource]. It comprises the following components:
//
//   - Connector: exposes the three sources
//   - Client: REST API access through go-github with a static bearer token
//   - Scraper: reads star lists from the website's HTML
//   - RateLimiter: paces every request, REST and HTML alike
//
// # Starred Repositories
//
// Stars come from GET /users/{username}/starred with per_page=100.
// go-github sends the X-GitHub-Api-Version header and the starring media
// type, and parses the Link header; the client follows rel="next" until no
// pages remain. Any non-success response aborts the fetch.
//
// # Star Lists
//
// GitHub exposes no REST endpoint for user lists. The scraper reads
//
//   - https://github.com/{username}?tab=stars for the lists themselves
//   - https://github.com/stars/{username}/lists/{id}?page=N for members
//
// using regular expressions over the page markup. Member pages are read
// until one contains no repositories. A markup change therefore shows up as
// empty or short lists rather than an error. Non-2xx responses are returned
// as [PageError].
//
// # Rate Limiting
//
// A token bucket limits requests to Options.RequestRate per second (1.2 by
// default). Quota headers are recorded for diagnostics only. The connector
// never waits for a quota reset or retries.
//
// # Example Usage
//
//	conn := github.New(github.OptionsFromConfig(cfg), auth.NewPATProvider(cfg.Token))
//
//	catalog, err := conn.FetchStarred(ctx, cfg.Username)
//	lists, err := conn.DiscoverLists(ctx, cfg.Username)
//	members, err := conn.ListMembers(ctx, cfg.Username, lists[0].ID)
package github
