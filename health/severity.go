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

package health

import (
	"strings"

	"github.com/comcast/checkilo/nagios"
)

// severities is the fixed mapping from the status strings the iLO reports to
// plugin severities. Lookups are case-insensitive and strings outside the
// table degrade to UNKNOWN rather than erroring.
var severities = map[string]nagios.Severity{
	"ok":                        nagios.OK,
	"other":                     nagios.OK,
	"not installed":             nagios.OK,
	"not present/not installed": nagios.OK,
	"caution":                   nagios.WARNING,
	"critical":                  nagios.CRITICAL,
	"failed":                    nagios.CRITICAL,
	"fault":                     nagios.CRITICAL,
}

// StatusOf maps a raw controller status string onto a plugin severity.
func StatusOf(raw string) nagios.Severity {
	if sev, ok := severities[strings.ToLower(raw)]; ok {
		return sev
	}
	return nagios.UNKNOWN
}
