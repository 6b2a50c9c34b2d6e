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

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/comcast/checkilo/buildinfo"
	"github.com/comcast/checkilo/common"
	"github.com/comcast/checkilo/config"
	"github.com/comcast/checkilo/health"
	"github.com/comcast/checkilo/ilo"
	"github.com/comcast/checkilo/logger"
	"github.com/comcast/checkilo/nagios"
	checkilo_vault "github.com/comcast/checkilo/vault"
	"go.uber.org/zap"

	"github.com/nrednav/cuid2"
	"gopkg.in/alecthomas/kingpin.v2"
)

const app = "checkilo"

var (
	a                  = kingpin.New(app, "monitoring probe for the HP iLO embedded health report")
	host               = a.Flag("host", "iLO hostname or IP address").Short('H').Envar("ILO_HOST").String()
	timeout            = a.Flag("timeout", "probe timeout in seconds").Short('t').Default("10").Envar("ILO_TIMEOUT").Int()
	verbose            = a.Flag("verbose", "log debug diagnostics to stderr").Short('v').Bool()
	iloScheme          = a.Flag("scheme", "iLO scheme to use").Default("https").Envar("ILO_SCHEME").String()
	insecureSkipVerify = a.Flag("insecure-skip-verify", "Skip TLS verification").Default("true").Envar("INSECURE_SKIP_VERIFY").Bool()
	credFile           = a.Flag("credentials", "path to the credentials file, defaults to credentials.yml next to the executable").Default("").Envar("ILO_CREDENTIALS").String()
	logFilePath        = a.Flag("log.file-path", "directory path where debug log files are written, empty disables the file sink").Default("").Envar("LOG_FILE_PATH").String()
	vaultAddr          = a.Flag("vault.addr", "Vault instance address to get the iLO credential from instead of the credentials file").Default("").Envar("VAULT_ADDRESS").String()
	vaultRoleId        = a.Flag("vault.role-id", "Vault Role ID for AppRole").Default("").Envar("VAULT_ROLE_ID").String()
	vaultSecretId      = a.Flag("vault.secret-id", "Vault Secret ID for AppRole").Default("").Envar("VAULT_SECRET_ID").String()
	vaultMountPath     = a.Flag("vault.mount-path", "Vault KV engine mount path").Default("kv2").Envar("VAULT_MOUNT_PATH").String()
	vaultPath          = a.Flag("vault.path", "path to the secret holding the iLO credential").Default("").Envar("VAULT_PATH").String()
	vaultUserField     = a.Flag("vault.user-field", "secret field holding the iLO username").Default("user").Envar("VAULT_USER_FIELD").String()
	vaultPassField     = a.Flag("vault.password-field", "secret field holding the iLO password").Default("pass").Envar("VAULT_PASSWORD_FIELD").String()
	vaultCACert        = a.Flag("vault.ca-cert", "path to a CA certificate for the Vault endpoint").Default("").Envar("VAULT_CACERT").String()
	showVersion        = a.Flag("version", "show build information and exit").Bool()

	log *zap.Logger

	generate, _ = cuid2.Init(
		cuid2.WithLength(32),
	)
)

func main() {
	ctx := context.Background()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = ""
	}

	a.HelpFlag.Short('h')
	a.UsageWriter(os.Stdout)
	a.Terminate(func(int) {
		// help path: usage already printed, no result line
		nagios.Exit(app, nagios.UNKNOWN, "")
	})

	_, err = a.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stdout, err)
		a.Usage([]string{})
		nagios.Exit(app, nagios.UNKNOWN, "")
	}

	if *showVersion {
		buildinfo.Print(os.Stdout)
		os.Exit(nagios.OK.ExitCode())
	}

	if *host == "" {
		a.Usage([]string{})
		nagios.Exit(app, nagios.UNKNOWN, "")
	}

	logger.Initialize(app, hostname, *logFilePath)
	if *verbose {
		logger.SetLevel("debug")
	}
	log = zap.L()

	ctx = context.WithValue(ctx, "traceID", generate())
	log.Debug("starting "+app,
		zap.String("version", buildinfo.Info.GitVersion),
		zap.String("target", *host),
		zap.Any("trace_id", ctx.Value("traceID")))

	credential, err := resolveCredential(ctx)
	if err != nil {
		log.Debug("credential resolution failed", zap.Error(err), zap.Any("trace_id", ctx.Value("traceID")))
		exit(nagios.UNKNOWN, "Unable to find credentials in credentials file")
	}

	config.NewConfig(&config.Config{
		IloScheme:  *iloScheme,
		IloTimeout: time.Duration(*timeout) * time.Second,
		SSLVerify:  *insecureSkipVerify,
		User:       credential.User,
		Pass:       credential.Pass,
	})

	client := ilo.NewClient(*host)
	report, err := client.EmbeddedHealth(ctx)
	if err != nil {
		log.Error("unable to get health from "+*host, zap.Error(err), zap.Any("trace_id", ctx.Value("traceID")))
		exit(nagios.CRITICAL, fmt.Sprintf("Unable to get health from %s", *host))
	}

	sev, msg := health.EvaluateHealth(report)
	log.Debug("health evaluated",
		zap.String("severity", sev.String()),
		zap.String("message", msg),
		zap.Any("trace_id", ctx.Value("traceID")))
	exit(sev, msg)
}

// resolveCredential loads the iLO credential from Vault when a Vault address
// is configured, otherwise from the local credentials file.
func resolveCredential(ctx context.Context) (*common.Credential, error) {
	if *vaultAddr != "" {
		parameters := checkilo_vault.Parameters{
			Address:         *vaultAddr,
			ApproleRoleID:   *vaultRoleId,
			ApproleSecretID: *vaultSecretId,
		}
		if *vaultCACert != "" {
			ca, err := os.ReadFile(*vaultCACert)
			if err != nil {
				return nil, fmt.Errorf("unable to read vault CA certificate - %w", err)
			}
			parameters.CACertBytes = ca
		}

		vault, err := checkilo_vault.NewVaultAppRoleClient(ctx, parameters)
		if err != nil {
			return nil, err
		}

		return common.VaultCredentials(ctx, vault, &checkilo_vault.SecretProperties{
			MountPath:     *vaultMountPath,
			Path:          *vaultPath,
			UserField:     *vaultUserField,
			PasswordField: *vaultPassField,
		})
	}

	path := *credFile
	if path == "" {
		path = common.DefaultCredentialsPath()
	}
	return common.LoadCredentials(path)
}

func exit(sev nagios.Severity, msg string) {
	logger.Flush()
	nagios.Exit(app, sev, msg)
}
