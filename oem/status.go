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

package oem

// Status contains metadata for the health of a particular component/module
type Status struct {
	Health       string `json:"Health,omitempty"`
	HealthRollup string `json:"HealthRollup,omitempty"`
	State        string `json:"State,omitempty"`
}

// Collection returns an array of the endpoints from the chassis pertaining to a resource type
type Collection struct {
	Members []struct {
		URL string `json:"@odata.id"`
	} `json:"Members"`
	MembersCount int `json:"Members@odata.count"`
}

type Link struct {
	URL string `json:"@odata.id"`
}

type HRef struct {
	URL string `json:"href"`
}

// StatusString reduces a Redfish health/state pair to the status vocabulary
// the iLO embedded health report uses. The severity table downstream is keyed
// on the legacy iLO strings, so the translation happens here at the boundary.
func (s Status) StatusString() string {
	if s.State == "Absent" {
		return "Not Installed"
	}
	switch s.Health {
	case "OK":
		return "OK"
	case "Warning":
		return "Caution"
	case "Critical":
		return "Critical"
	case "":
		return "Unknown"
	}
	return s.Health
}

// Empty reports whether the controller returned no health information at all
// for a component, which happens for sections a given iLO generation omits.
func (s Status) Empty() bool {
	return s.Health == "" && s.State == ""
}
