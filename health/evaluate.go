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
	"fmt"
	"sort"

	"github.com/comcast/checkilo/nagios"
	"github.com/comcast/checkilo/oem"
)

// subsystemOrder is the fixed sequence the report sections are checked in.
// The first section holding a non-OK item is the one reported, even when a
// later section holds something worse.
var subsystemOrder = []string{
	"health_at_a_glance",
	"temperature",
	"fans",
	"power_supplies",
	"vrm",
}

// EvaluateSubsystem scans one report section and returns the first non-OK
// entry. Keys are sorted so the selection is stable run to run.
func EvaluateSubsystem(items map[string]string) (nagios.Severity, string) {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if sev := StatusOf(items[name]); sev != nagios.OK {
			return sev, fmt.Sprintf("%s is %s", name, items[name])
		}
	}
	return nagios.OK, "All items OK"
}

// EvaluateDrives scans the first backplane's drive bays. Hardware without a
// storage controller reports no backplanes, which counts as healthy.
func EvaluateDrives(report *oem.HealthReport) (nagios.Severity, string) {
	if len(report.DrivesBackplanes) == 0 {
		return nagios.OK, "All items OK"
	}
	return EvaluateSubsystem(report.DrivesBackplanes[0].Bays)
}

// EvaluateHealth reduces a full embedded health report to one severity and
// message, walking the subsystems in their fixed order and the drive bays
// last.
func EvaluateHealth(report *oem.HealthReport) (nagios.Severity, string) {
	sections := map[string]map[string]string{
		"health_at_a_glance": report.HealthAtAGlance,
		"temperature":        report.Temperature,
		"fans":               report.Fans,
		"power_supplies":     report.PowerSupplies,
		"vrm":                report.VRM,
	}

	for _, name := range subsystemOrder {
		if sev, msg := EvaluateSubsystem(sections[name]); sev != nagios.OK {
			return sev, fmt.Sprintf("%s check: %s", name, msg)
		}
	}

	if sev, msg := EvaluateDrives(report); sev != nagios.OK {
		return sev, fmt.Sprintf("drives check: %s", msg)
	}

	return nagios.OK, "All checked items are ok"
}
