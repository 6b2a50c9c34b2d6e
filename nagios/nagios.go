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

// Package nagios implements the monitoring plugin output convention: one
// descriptive line on stdout and an exit code of 0/1/2/3. The codes are a
// compatibility contract with monitoring frontends and must not change.
package nagios

import (
	"fmt"
	"io"
	"os"
)

type Severity int

const (
	OK Severity = iota
	WARNING
	CRITICAL
	UNKNOWN
)

func (s Severity) String() string {
	switch s {
	case OK:
		return "OK"
	case WARNING:
		return "WARNING"
	case CRITICAL:
		return "CRITICAL"
	}
	return "UNKNOWN"
}

// ExitCode returns the plugin exit code for the severity.
func (s Severity) ExitCode() int {
	if s < OK || s > UNKNOWN {
		return int(UNKNOWN)
	}
	return int(s)
}

// Report writes the single plugin result line. An empty message writes
// nothing, which the help/usage path relies on.
func Report(w io.Writer, program string, sev Severity, message string) {
	if message == "" {
		return
	}
	fmt.Fprintf(w, "%s %s - %s\n", program, sev, message)
}

// Exit emits the result line on stdout and terminates the process.
func Exit(program string, sev Severity, message string) {
	Report(os.Stdout, program, sev, message)
	os.Exit(sev.ExitCode())
}
