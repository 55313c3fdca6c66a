package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCreatesUser(t *testing.T) {
	r := setupRouter(newFakeStore())

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"provider": "google",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["user_id"], 24)
	assert.Equal(t, "Ada", body["name"])
	assert.Equal(t, "ada@example.com", body["email"])
}

func TestSignupTwiceReturnsSameUser(t *testing.T) {
	r := setupRouter(newFakeStore())

	first := decodeBody(t, doJSON(t, r, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name": "Ada", "email": "ada@example.com",
	}))
	second := decodeBody(t, doJSON(t, r, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name": "Someone Else", "email": "ada@example.com",
	}))

	assert.Equal(t, first["user_id"], second["user_id"])
	// The stored record wins; the second submission's name is discarded.
	assert.Equal(t, "Ada", second["name"])
}

func TestSignupRejectsBadPayloads(t *testing.T) {
	r := setupRouter(newFakeStore())

	// Missing email, bad email format, missing name, unknown provider.
	cases := []map[string]interface{}{
		{"name": "Ada"},
		{"name": "Ada", "email": "not-an-email"},
		{"email": "ada@example.com"},
		{"name": "Ada", "email": "ada@example.com", "provider": "facebook"},
	}
	for _, payload := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/auth/signup", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %v", payload)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	r := setupRouter(newFakeStore())

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "ghost@example.com",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found. Please sign up.", decodeBody(t, w)["error"])
}

func TestLoginAfterSignup(t *testing.T) {
	r := setupRouter(newFakeStore())

	signedUp := decodeBody(t, doJSON(t, r, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name": "Ada", "email": "ada@example.com",
	}))

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "ada@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, signedUp["user_id"], body["user_id"])
	assert.Equal(t, "Ada", body["name"])
}

func TestAuthStoreUnavailable(t *testing.T) {
	f := newFakeStore()
	f.unavailable = true
	r := setupRouter(f)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name": "Ada", "email": "ada@example.com",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "ada@example.com",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
