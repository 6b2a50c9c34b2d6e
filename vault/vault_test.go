/*
 * Copyright 2025 Comcast Cable Communications Management, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package vault

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Login_And_GetKVSecret(t *testing.T) {
	assert := assert.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/auth/approle/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["role_id"] != "test-role" || body["secret_id"] != "test-secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"auth": {"client_token": "s.token", "renewable": false, "lease_duration": 60}}`))
	})
	mux.HandleFunc("/v1/kv2/data/ilo/host1", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Vault-Token") != "s.token" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"data": {"user": "admin", "pass": "hunter2"}, "metadata": {"version": 1}}}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	v, err := NewVaultAppRoleClient(context.Background(), Parameters{
		Address:         server.URL,
		ApproleRoleID:   "test-role",
		ApproleSecretID: "test-secret",
	})
	assert.NoError(err)
	assert.False(v.IsLoggedIn())

	secret, err := v.GetKVSecret(context.Background(), &SecretProperties{
		MountPath:     "kv2",
		Path:          "ilo/host1",
		UserField:     "user",
		PasswordField: "pass",
	})
	assert.NoError(err)
	assert.True(v.IsLoggedIn())
	assert.Equal("admin", secret.Data["user"])
	assert.Equal("hunter2", secret.Data["pass"])
}

func Test_Login_BadSecretID(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	v, err := NewVaultAppRoleClient(context.Background(), Parameters{
		Address:         server.URL,
		ApproleRoleID:   "test-role",
		ApproleSecretID: "wrong",
	})
	assert.NoError(err)

	err = v.Login(context.Background())
	assert.Error(err)
	assert.False(v.IsLoggedIn())
}
