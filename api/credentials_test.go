package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/compozy/n8n-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsList(t *testing.T) {
	t.Run("Should decode listings that omit secret data", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v1/credentials", r.URL.Path)
			writeJSON(w, http.StatusOK,
				`{"data":[{"id":"c1","name":"Slack","type":"slackApi"}],"nextCursor":""}`)
		})

		list, err := client.Credentials().List(context.Background(), ListOptions{})
		require.NoError(t, err)
		require.Len(t, list.Data, 1)
		assert.Equal(t, "slackApi", list.Data[0].Type)
		assert.Nil(t, list.Data[0].Data)
	})
}

func TestCredentialsCreate(t *testing.T) {
	t.Run("Should submit name, type and data only", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeJSON(w, http.StatusOK, `{"id":"c2","name":"GitHub","type":"githubApi"}`)
		})

		credential := &model.Credential{
			Name: "GitHub",
			Type: "githubApi",
			Data: map[string]any{"accessToken": "ghp_secret"},
		}
		created, err := client.Credentials().Create(context.Background(), credential)
		require.NoError(t, err)
		assert.Equal(t, "c2", created.ID)
		assert.Equal(t, map[string]any{
			"name": "GitHub",
			"type": "githubApi",
			"data": map[string]any{"accessToken": "ghp_secret"},
		}, body)
	})

	t.Run("Should refuse a credential without data", func(t *testing.T) {
		requests := 0
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			requests++
			writeJSON(w, http.StatusOK, `{}`)
		})

		_, err := client.Credentials().Create(context.Background(), &model.Credential{Name: "x", Type: "y"})
		require.Error(t, err)
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Zero(t, requests)
	})
}

func TestCredentialsGetSchema(t *testing.T) {
	t.Run("Should decode the schema for a credential type", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v1/credentials/schema/slackApi", r.URL.Path)
			writeJSON(w, http.StatusOK,
				`{"type":"object","properties":{"accessToken":{"type":"string"}},"required":["accessToken"]}`)
		})

		schema, err := client.Credentials().GetSchema(context.Background(), "slackApi")
		require.NoError(t, err)
		assert.Equal(t, "object", schema.Type)
		assert.Equal(t, []string{"accessToken"}, schema.Required)
		assert.Contains(t, schema.Properties, "accessToken")
	})
}

func TestCredentialsDelete(t *testing.T) {
	t.Run("Should issue DELETE against the credential path", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			gotPath = r.URL.Path
			writeJSON(w, http.StatusOK, `{"id":"c1","name":"Slack","type":"slackApi"}`)
		})

		require.NoError(t, client.Credentials().Delete(context.Background(), "c1"))
		assert.Equal(t, "/api/v1/credentials/c1", gotPath)
	})
}
