package update

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/acme/deadfinder/releases/latest", r.URL.Path)
		w.Write([]byte(`{"tag_name": "v0.3.0"}`))
	}))
	defer srv.Close()

	res := checkLatestWithBase(srv.URL, "v0.2.0", "acme/deadfinder")
	require.NotNil(t, res)
	require.Equal(t, "v0.3.0", res.Latest)
	require.Equal(t, "v0.2.0", res.Current)
	require.Contains(t, res.UpdateURL, "go install")
	require.True(t, res.NeedsUpdate())
}

func TestCheckLatestUpToDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "v0.2.0"}`))
	}))
	defer srv.Close()

	res := checkLatestWithBase(srv.URL, "v0.2.0", "acme/deadfinder")
	require.NotNil(t, res)
	require.False(t, res.NeedsUpdate())
}

func TestCheckLatestDevBuildSkipped(t *testing.T) {
	require.Nil(t, CheckLatest("dev", "acme/deadfinder"))
}

func TestCheckLatestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	require.Nil(t, checkLatestWithBase(srv.URL, "v0.2.0", "acme/deadfinder"))
}

func TestCheckLatestBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	require.Nil(t, checkLatestWithBase(srv.URL, "v0.2.0", "acme/deadfinder"))
}

func TestCheckLatestUnreachable(t *testing.T) {
	require.Nil(t, checkLatestWithBase("http://127.0.0.1:1", "v0.2.0", "acme/deadfinder"))
}
