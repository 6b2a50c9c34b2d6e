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

package common

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	cm_vault "github.com/comcast/checkilo/vault"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const CredentialsFileName = "credentials.yml"

var log *zap.Logger

type Credential struct {
	User string
	Pass string
}

// credentialsFile is the on-disk schema. The field names and nesting are a
// compatibility contract with existing deployments.
type credentialsFile struct {
	Ilo struct {
		User string `yaml:"user"`
		Pass string `yaml:"pass"`
	} `yaml:"ilo"`
}

// DefaultCredentialsPath returns credentials.yml co-located with the running
// executable, falling back to the working directory when the executable path
// cannot be resolved.
func DefaultCredentialsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return CredentialsFileName
	}
	return filepath.Join(filepath.Dir(exe), CredentialsFileName)
}

// LoadCredentials reads and parses the credentials file. The credential never
// leaves process memory and is never logged.
func LoadCredentials(path string) (*Credential, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file %s - %w", path, err)
	}

	var cf credentialsFile
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return nil, fmt.Errorf("unable to parse credentials file %s - %w", path, err)
	}

	if cf.Ilo.User == "" || cf.Ilo.Pass == "" {
		return nil, fmt.Errorf("credentials file %s is missing the ilo user or pass field", path)
	}

	return &Credential{
		User: cf.Ilo.User,
		Pass: cf.Ilo.Pass,
	}, nil
}

// VaultCredentials pulls the same two fields from a Vault KV secret instead
// of the local file.
func VaultCredentials(ctx context.Context, v *cm_vault.Vault, props *cm_vault.SecretProperties) (*Credential, error) {
	log = zap.L()

	secret, err := v.GetKVSecret(ctx, props)
	if err != nil {
		log.Error("issue retrieving credentials from vault", zap.Error(err))
		return nil, fmt.Errorf("issue retrieving credentials from vault: %w", err)
	}

	user, ok := secret.Data[props.UserField].(string)
	if !ok {
		return nil, fmt.Errorf("the secret retrieved from vault is missing the %q field", props.UserField)
	}

	pass, ok := secret.Data[props.PasswordField].(string)
	if !ok {
		return nil, fmt.Errorf("the secret retrieved from vault is missing the %q field", props.PasswordField)
	}

	return &Credential{
		User: user,
		Pass: pass,
	}, nil
}
