package console_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"edusite/console"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facadeResponse(w http.ResponseWriter, code int, status bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func TestHTTPGatewayList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/testimonials", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		facadeResponse(w, http.StatusOK, true, "Testimonials fetched successfully!", []map[string]interface{}{
			{"id": 1, "status": "PENDING", "name": "Asha"},
			{"id": 2, "status": "APPROVED", "name": "Ben"},
		})
	}))
	defer srv.Close()

	gw := console.NewHTTPGateway(srv.URL, "test-token")
	records, err := gw.List(context.Background(), "/api/admin/testimonials")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].ID())
	assert.Equal(t, "PENDING", records[0].Status())
	assert.Equal(t, "2", records[1].ID())
}

func TestHTTPGatewayListNullData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		facadeResponse(w, http.StatusOK, true, "ok", nil)
	}))
	defer srv.Close()

	gw := console.NewHTTPGateway(srv.URL, "")
	records, err := gw.List(context.Background(), "/api/admin/testimonials")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHTTPGatewayNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		facadeResponse(w, http.StatusUnauthorized, false, "Invalid or expired token", nil)
	}))
	defer srv.Close()

	gw := console.NewHTTPGateway(srv.URL, "stale")
	_, err := gw.List(context.Background(), "/api/admin/testimonials")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid or expired token")
}

func TestHTTPGatewayFalseStatusIsError(t *testing.T) {
	// Some endpoints answer 200 with status:false; that is still a
	// failure and must never confirm an optimistic mutation.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		facadeResponse(w, http.StatusOK, false, "Invalid status change!", nil)
	}))
	defer srv.Close()

	gw := console.NewHTTPGateway(srv.URL, "tok")
	_, err := gw.Patch(context.Background(), "/api/admin/blog", console.Record{"id": "1", "status": "PUBLISHED"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid status change!")
}

func TestHTTPGatewayMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	gw := console.NewHTTPGateway(srv.URL, "")
	_, err := gw.List(context.Background(), "/api/admin/courses")
	require.Error(t, err)
}

func TestHTTPGatewayInsertPostsBody(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		facadeResponse(w, http.StatusCreated, true, "Created", map[string]interface{}{
			"id": 42, "title": got["title"], "status": "DRAFT",
		})
	}))
	defer srv.Close()

	gw := console.NewHTTPGateway(srv.URL, "tok")
	rec, err := gw.Insert(context.Background(), "/api/admin/blog", console.Record{"title": "First Post"})
	require.NoError(t, err)
	assert.Equal(t, "First Post", got["title"])
	assert.Equal(t, "42", rec.ID())
}

func TestHTTPGatewayUpdateAndDeleteHitIdPath(t *testing.T) {
	var paths []string
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		facadeResponse(w, http.StatusOK, true, "ok", map[string]interface{}{"id": 7})
	}))
	defer srv.Close()

	gw := console.NewHTTPGateway(srv.URL, "tok")

	_, err := gw.Update(context.Background(), "/api/admin/gallery", "7", console.Record{"title": "x"})
	require.NoError(t, err)
	require.NoError(t, gw.Delete(context.Background(), "/api/admin/gallery", "7"))

	assert.Equal(t, []string{"/api/admin/gallery/7", "/api/admin/gallery/7"}, paths)
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
}
