// Package router maps the client's fixed navigation surface. Routes are
// matched by path pattern; unmatched paths fall back to home.
package router

import (
	"strings"
)

type Route struct {
	Name      string
	Pattern   string
	Protected bool
	AdminOnly bool
}

// Match is a resolved route plus any :params captured from the path.
type Match struct {
	Route  Route
	Params map[string]string
}

var routes = []Route{
	{Name: "login", Pattern: "/login"},
	{Name: "register", Pattern: "/register"},
	{Name: "join", Pattern: "/join"},

	{Name: "home", Pattern: "/", Protected: true},
	{Name: "profile", Pattern: "/profile", Protected: true},
	{Name: "profile-user", Pattern: "/profile/:username", Protected: true},
	{Name: "gallery", Pattern: "/gallery", Protected: true},
	{Name: "gallery-user", Pattern: "/gallery/:username", Protected: true},
	{Name: "post", Pattern: "/post/:id", Protected: true},
	{Name: "achievements", Pattern: "/achievements", Protected: true},
	{Name: "achievement", Pattern: "/achievements/:id", Protected: true},
	{Name: "tournaments", Pattern: "/tournaments", Protected: true},
	{Name: "tournament", Pattern: "/tournaments/:id", Protected: true},
	{Name: "story", Pattern: "/story/:id", Protected: true},
	{Name: "chat", Pattern: "/chat", Protected: true},
	{Name: "notifications", Pattern: "/notifications", Protected: true},
	{Name: "settings", Pattern: "/settings", Protected: true},
	{Name: "events", Pattern: "/events", Protected: true},
	{Name: "event", Pattern: "/events/:id", Protected: true},
	{Name: "trending", Pattern: "/trending", Protected: true},

	{Name: "admin", Pattern: "/admin", Protected: true, AdminOnly: true},
	{Name: "admin-tournament-create", Pattern: "/admin/tournaments/new", Protected: true, AdminOnly: true},
	{Name: "admin-tournament-edit", Pattern: "/admin/tournaments/:id/edit", Protected: true, AdminOnly: true},

	{Name: "about", Pattern: "/about", Protected: true},
	{Name: "contact", Pattern: "/contact", Protected: true},
	{Name: "help", Pattern: "/help", Protected: true},
	{Name: "privacy", Pattern: "/privacy", Protected: true},
	{Name: "faq", Pattern: "/faq", Protected: true},
	{Name: "terms", Pattern: "/terms", Protected: true},
}

// Home is the fallback target for unmatched paths and for exiting the story
// viewer.
var Home = Match{Route: routes[3], Params: map[string]string{}}

// Resolve matches a path against the route table. Unmatched paths resolve
// to home per the client's catch-all redirect.
func Resolve(path string) Match {
	path = normalize(path)

	for _, route := range routes {
		if params, ok := match(route.Pattern, path); ok {
			return Match{Route: route, Params: params}
		}
	}

	return Home
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func match(pattern, path string) (map[string]string, bool) {
	if pattern == path {
		return map[string]string{}, true
	}

	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	if len(patternParts) != len(pathParts) || pattern == "/" || path == "/" {
		return nil, false
	}

	params := map[string]string{}
	for i, part := range patternParts {
		if strings.HasPrefix(part, ":") {
			if pathParts[i] == "" {
				return nil, false
			}
			params[part[1:]] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}

	return params, true
}
