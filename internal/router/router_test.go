package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveStaticRoutes(t *testing.T) {
	tests := []struct {
		path      string
		name      string
		protected bool
	}{
		{"/login", "login", false},
		{"/register", "register", false},
		{"/", "home", true},
		{"/gallery", "gallery", true},
		{"/notifications", "notifications", true},
		{"/admin", "admin", true},
	}

	for _, tc := range tests {
		got := Resolve(tc.path)
		require.Equal(t, tc.name, got.Route.Name, "path %s", tc.path)
		require.Equal(t, tc.protected, got.Route.Protected, "path %s", tc.path)
	}
}

func TestResolveCapturesParams(t *testing.T) {
	got := Resolve("/story/abc-123")
	require.Equal(t, "story", got.Route.Name)
	require.Equal(t, "abc-123", got.Params["id"])

	got = Resolve("/profile/ben")
	require.Equal(t, "profile-user", got.Route.Name)
	require.Equal(t, "ben", got.Params["username"])

	got = Resolve("/admin/tournaments/t-9/edit")
	require.Equal(t, "admin-tournament-edit", got.Route.Name)
	require.True(t, got.Route.AdminOnly)
	require.Equal(t, "t-9", got.Params["id"])
}

func TestUnmatchedPathFallsBackToHome(t *testing.T) {
	for _, path := range []string{"/nope", "/story", "/story/a/b", "/admin/unknown"} {
		require.Equal(t, "home", Resolve(path).Route.Name, "path %s", path)
	}
}

func TestResolveNormalizesPaths(t *testing.T) {
	require.Equal(t, "home", Resolve("").Route.Name)
	require.Equal(t, "gallery", Resolve("gallery").Route.Name)
	require.Equal(t, "gallery", Resolve("/gallery/").Route.Name)
}
