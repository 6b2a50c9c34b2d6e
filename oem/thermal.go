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

// /redfish/v1/Chassis/1/Thermal/

type ThermalMetrics struct {
	ID           string        `json:"Id"`
	Name         string        `json:"Name"`
	Fans         []Fan         `json:"Fans"`
	Temperatures []Temperature `json:"Temperatures"`
	Status       Status        `json:"Status,omitempty"`
}

type Fan struct {
	MemberID string `json:"MemberId"`
	Name     string `json:"Name"`
	FanName  string `json:"FanName"`
	Status   Status `json:"Status"`
}

// Label returns the fan name regardless of iLO generation; iLO4 reports
// FanName where newer firmware reports Name.
func (f Fan) Label() string {
	if f.FanName != "" {
		return f.FanName
	}
	return f.Name
}

type Temperature struct {
	MemberID        string `json:"MemberId"`
	Name            string `json:"Name"`
	PhysicalContext string `json:"PhysicalContext"`
	SensorNumber    int    `json:"SensorNumber"`
	Status          Status `json:"Status"`
}
