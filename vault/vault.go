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
	"errors"
	"fmt"

	vault "github.com/hashicorp/vault/api"
	"github.com/hashicorp/vault/api/auth/approle"
	"go.uber.org/zap"
)

var (
	log *zap.Logger

	ErrBadTLSConfig = errors.New("bad TLS configuration")
)

type Parameters struct {
	// connection and credential parameters
	Address         string
	ApproleRoleID   string
	ApproleSecretID string
	CACertBytes     []byte
}

// the location / field names of the kv secret holding the iLO credential
type SecretProperties struct {
	MountPath     string
	Path          string
	UserField     string
	PasswordField string
}

type Vault struct {
	client     *vault.Client
	Parameters Parameters
	isLoggedIn bool
}

// NewVaultAppRoleClient builds a Vault client configured for AppRole
// authentication. Login happens lazily on the first secret read; the probe
// runs once, so there is no token lifecycle to manage.
func NewVaultAppRoleClient(ctx context.Context, parameters Parameters) (*Vault, error) {
	config := vault.DefaultConfig()
	config.Address = parameters.Address
	if len(parameters.CACertBytes) > 0 {
		if err := config.ConfigureTLS(&vault.TLSConfig{
			CACertBytes: parameters.CACertBytes,
		}); err != nil {
			return nil, fmt.Errorf("unable to configure TLS: %w", err)
		}
	}

	client, err := vault.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize vault client: %w", err)
	}

	return &Vault{
		client:     client,
		Parameters: parameters,
	}, nil
}

// A combination of a RoleID and a SecretID is required to log into Vault
// with AppRole authentication method.
func (v *Vault) Login(ctx context.Context) error {
	log = zap.L()

	appRoleAuth, err := approle.NewAppRoleAuth(
		v.Parameters.ApproleRoleID,
		&approle.SecretID{
			FromString: v.Parameters.ApproleSecretID,
		},
	)
	if err != nil {
		return fmt.Errorf("unable to initialize approle authentication method: %w", err)
	}

	authInfo, err := v.client.Auth().Login(ctx, appRoleAuth)
	if err != nil {
		return fmt.Errorf("unable to login using approle auth method: %w", err)
	}
	if authInfo == nil {
		return fmt.Errorf("no auth info was returned after login")
	}

	v.isLoggedIn = true
	log.Debug("logged in to vault with approle auth")
	return nil
}

func (v *Vault) IsLoggedIn() bool {
	return v.isLoggedIn
}

// GetKVSecret fetches the latest version of the secret from kv-v1 or kv-v2,
// logging in first when needed.
func (v *Vault) GetKVSecret(ctx context.Context, props *SecretProperties) (*vault.KVSecret, error) {
	if !v.isLoggedIn && v.client.Token() == "" {
		if err := v.Login(ctx); err != nil {
			return nil, err
		}
	}

	var kvSecret *vault.KVSecret
	var err error

	if props.MountPath != "kv2" {
		kvSecret, err = v.client.KVv1(props.MountPath).Get(ctx, props.Path)
	} else {
		kvSecret, err = v.client.KVv2(props.MountPath).Get(ctx, props.Path)
	}
	if err != nil {
		return kvSecret, fmt.Errorf("unable to read secret: %w", err)
	}

	return kvSecret, nil
}

// SetToken overrides the AppRole flow with a static token, which the test
// rigs use.
func (v *Vault) SetToken(token string) {
	v.client.SetToken(token)
}
