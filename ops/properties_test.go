package ops

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evan-idocoding/dynconf/store"
)

func doRequest(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestListReturnsSortedSnapshot(t *testing.T) {
	st := store.New()
	st.Set("b.key", "2")
	st.Set("a.key", "1")
	st.Handle("c.unset")

	r := Routes(st)
	rec := doRequest(t, r, http.MethodGet, "/properties?format=json")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	require.Len(t, resp.Items, 3)
	require.Equal(t, "a.key", resp.Items[0].Name)
	require.Equal(t, "b.key", resp.Items[1].Name)
	require.Equal(t, "c.unset", resp.Items[2].Name)

	require.NotNil(t, resp.Items[0].Value)
	require.Equal(t, "1", *resp.Items[0].Value)
	require.NotNil(t, resp.Items[0].ChangedAt)

	// Unset handles are listed with no value and no change time.
	require.Nil(t, resp.Items[2].Value)
	require.Nil(t, resp.Items[2].ChangedAt)
}

func TestListTextFormat(t *testing.T) {
	st := store.New()
	st.Set("k", "v")

	rec := doRequest(t, Routes(st), http.MethodGet, "/properties")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "k=v")
}

func TestGetSingleProperty(t *testing.T) {
	st := store.New()
	st.Set("feature.x", "on")

	rec := doRequest(t, Routes(st), http.MethodGet, "/properties/feature.x?format=json")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp itemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	require.Equal(t, "feature.x", resp.Item.Name)
	require.Equal(t, "on", *resp.Item.Value)
}

func TestGetUnknownPropertyDoesNotCreateHandle(t *testing.T) {
	st := store.New()
	st.Set("known", "v")
	r := Routes(st, WithWrites())

	// Reads of unknown names must not grow the store.
	for _, name := range []string{"scanned.a", "scanned.b", "scanned.c"} {
		rec := doRequest(t, r, http.MethodGet, "/properties/"+name+"?format=json")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp itemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.False(t, resp.OK)
		require.Equal(t, "property not found", resp.Error)
	}

	rec := doRequest(t, r, http.MethodDelete, "/properties/scanned.a?format=json")
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, []string{"known"}, st.Names())
}

func TestGuardFiltersListAndForbidsGet(t *testing.T) {
	st := store.New()
	st.Set("feature.x", "on")
	st.Set("secret.token", "hunter2")

	r := Routes(st, WithAllowPrefixes("feature."))

	rec := doRequest(t, r, http.MethodGet, "/properties?format=json")
	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.Equal(t, "feature.x", resp.Items[0].Name)

	rec = doRequest(t, r, http.MethodGet, "/properties/secret.token?format=json")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAllowPrefixesFailClosed(t *testing.T) {
	st := store.New()
	st.Set("k", "v")

	r := Routes(st, WithAllowPrefixes())
	rec := doRequest(t, r, http.MethodGet, "/properties/k?format=json")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWritesOffByDefault(t *testing.T) {
	st := store.New()
	st.Set("k", "v")

	r := Routes(st)
	rec := doRequest(t, r, http.MethodPost, "/properties/k?value=w")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "v", st.Handle("k").StringOr(""))

	rec = doRequest(t, r, http.MethodDelete, "/properties/k")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSetAndUnset(t *testing.T) {
	st := store.New()
	r := Routes(st, WithWrites())

	rec := doRequest(t, r, http.MethodPost, "/properties/k?value=25&format=json")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp writeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	// The name did not exist before this write.
	require.Nil(t, resp.Old)
	require.Equal(t, "25", *resp.New.Value)
	require.Equal(t, "25", st.Handle("k").StringOr(""))

	// Empty string is a legal value.
	rec = doRequest(t, r, http.MethodPost, "/properties/k?value=&format=json")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "", st.Handle("k").StringOr("fallback"))

	rec = doRequest(t, r, http.MethodDelete, "/properties/k?format=json")
	require.Equal(t, http.StatusOK, rec.Code)
	_, present := st.Handle("k").Lookup()
	require.False(t, present)
}

func TestSetMissingValue(t *testing.T) {
	st := store.New()
	r := Routes(st, WithWrites())

	rec := doRequest(t, r, http.MethodPost, "/properties/k?format=json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteGuard(t *testing.T) {
	st := store.New()
	r := Routes(st, WithWrites(), WithKeyGuard(func(name string) bool {
		return name != "locked"
	}))

	rec := doRequest(t, r, http.MethodPost, "/properties/locked?value=x")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/properties/open?value=x")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNilStorePanics(t *testing.T) {
	require.Panics(t, func() { Routes(nil) })
}
