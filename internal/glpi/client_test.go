package glpi

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glpi-inventory/internal/domain"
	"glpi-inventory/internal/glpi/glpitest"
)

var testCreds = domain.Credentials{
	AppToken:  glpitest.AppToken,
	UserToken: glpitest.UserToken,
}

func TestSanitizeBaseURL(t *testing.T) {
	cases := map[string]string{
		"":                             "",
		" https://glpi/apirest.php ":   "https://glpi/apirest.php",
		"https://glpi/apirest.php/":    "https://glpi/apirest.php",
		"https://glpi/apirest.php///":  "https://glpi/apirest.php",
		"http://localhost:8080/glpi/x": "http://localhost:8080/glpi/x",
	}
	for raw, want := range cases {
		if got := sanitizeBaseURL(raw); got != want {
			t.Fatalf("sanitizeBaseURL(%q)=%q want %q", raw, got, want)
		}
	}
}

func TestInitSession(t *testing.T) {
	srv := glpitest.NewServer(t)
	client := NewClient(srv.APIURL() + "/")

	session, err := client.InitSession(context.Background(), testCreds)
	require.NoError(t, err)
	assert.Equal(t, glpitest.SessionToken, session.Token)

	headers := srv.LastHeaders(OpInitSession)
	assert.Equal(t, glpitest.AppToken, headers.Get("App-Token"))
	assert.Equal(t, "user_token "+glpitest.UserToken, headers.Get("Authorization"))
	assert.Empty(t, headers.Get("Session-Token"))
	assert.Equal(t, "application/json", headers.Get("Accept"))
}

func TestInitSessionMissingToken(t *testing.T) {
	srv := glpitest.NewServer(t)
	srv.SetSessionToken("")

	_, err := NewClient(srv.APIURL()).InitSession(context.Background(), testCreds)
	require.Error(t, err)

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, OpInitSession, remoteErr.Op)
	assert.Contains(t, err.Error(), "session_token")
}

func TestInitSessionRejected(t *testing.T) {
	srv := glpitest.NewServer(t)
	creds := domain.Credentials{AppToken: "wrong", UserToken: glpitest.UserToken}

	_, err := NewClient(srv.APIURL()).InitSession(context.Background(), creds)

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.Equal(t, "ERROR_WRONG_APP_TOKEN_PARAMETER", remoteErr.Code)
	assert.Equal(t, "parameter app_token seems wrong", remoteErr.Message)
}

func TestListComputers(t *testing.T) {
	srv := glpitest.NewServer(t)
	srv.SetComputers(`[{"id":1,"name":"host-a"},{"id":2,"name":""},{"id":3},{"id":4,"name":null}]`)
	ctx := context.Background()

	session, err := NewClient(srv.APIURL()).InitSession(ctx, testCreds)
	require.NoError(t, err)

	assets, err := session.ListComputers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Asset{
		{ID: 1, Name: "host-a"},
		{ID: 2},
		{ID: 3},
		{ID: 4},
	}, assets)
	assert.Equal(t, glpitest.SessionToken, srv.LastHeaders(OpComputer).Get("Session-Token"))
}

func TestListComputersMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "object instead of array", body: `{"id":1,"name":"host-a"}`},
		{name: "not json", body: `<html>maintenance</html>`},
		{name: "named record without id", body: `[{"name":"host-a"}]`},
		{name: "name of wrong type", body: `[{"id":1,"name":42}]`},
		{name: "null body", body: `null`},
		{name: "trailing garbage", body: `[{"id":1,"name":"a"}] trailing-garbage`},
		{name: "two documents", body: `[{"id":1,"name":"a"}] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := glpitest.NewServer(t)
			srv.SetComputers(tt.body)
			ctx := context.Background()

			session, err := NewClient(srv.APIURL()).InitSession(ctx, testCreds)
			require.NoError(t, err)

			assets, err := session.ListComputers(ctx)
			assert.Nil(t, assets)

			var remoteErr *RemoteError
			require.True(t, errors.As(err, &remoteErr), "got %v", err)
			assert.Equal(t, OpComputer, remoteErr.Op)
		})
	}
}

func TestListComputersStatusError(t *testing.T) {
	srv := glpitest.NewServer(t)
	srv.Fail(OpComputer, http.StatusInternalServerError, "database is gone")
	ctx := context.Background()

	session, err := NewClient(srv.APIURL()).InitSession(ctx, testCreds)
	require.NoError(t, err)

	_, err = session.ListComputers(ctx)

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
	assert.Empty(t, remoteErr.Code)
	assert.Equal(t, "database is gone", remoteErr.Message)
	assert.Equal(t, "glpi Computer: 500 Internal Server Error: database is gone", err.Error())
}

func TestKill(t *testing.T) {
	srv := glpitest.NewServer(t)
	ctx := context.Background()

	session, err := NewClient(srv.APIURL()).InitSession(ctx, testCreds)
	require.NoError(t, err)

	require.NoError(t, session.Kill(ctx))
	assert.Equal(t, 1, srv.Calls(OpKillSession))
	assert.Equal(t, glpitest.SessionToken, srv.LastHeaders(OpKillSession).Get("Session-Token"))
}

func TestTransportError(t *testing.T) {
	srv := glpitest.NewServer(t)
	url := srv.APIURL()
	srv.Close()

	_, err := NewClient(url).InitSession(context.Background(), testCreds)

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, OpInitSession, remoteErr.Op)
	assert.Zero(t, remoteErr.StatusCode)
	assert.NotNil(t, remoteErr.Unwrap())
}

func TestOptions(t *testing.T) {
	client := NewClient("https://glpi/apirest.php", WithTimeout(5*time.Second), WithLogger(nil))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.NotNil(t, client.log)

	client = NewClient("https://glpi/apirest.php", WithTimeout(5*time.Second), WithTimeout(0))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout, "zero keeps an earlier timeout")

	client = NewClient("https://glpi/apirest.php", WithTimeout(0))
	assert.Zero(t, client.httpClient.Timeout)
	assert.Equal(t, "https://glpi/apirest.php", client.BaseURL())
}

func TestListComputersTrailingWhitespace(t *testing.T) {
	srv := glpitest.NewServer(t)
	srv.SetComputers("[{\"id\":1,\"name\":\"a\"}]\n\n")
	ctx := context.Background()

	session, err := NewClient(srv.APIURL()).InitSession(ctx, testCreds)
	require.NoError(t, err)

	assets, err := session.ListComputers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Asset{{ID: 1, Name: "a"}}, assets)
}
