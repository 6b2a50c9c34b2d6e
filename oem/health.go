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

// HealthReport mirrors the layout of the embedded health report the iLO
// serves: one status-per-item section for each hardware subsystem, plus drive
// bays grouped per backplane. Values are raw status strings, already reduced
// to the iLO vocabulary by StatusString.
type HealthReport struct {
	HealthAtAGlance  map[string]string `json:"health_at_a_glance"`
	Temperature      map[string]string `json:"temperature"`
	Fans             map[string]string `json:"fans"`
	PowerSupplies    map[string]string `json:"power_supplies"`
	VRM              map[string]string `json:"vrm"`
	DrivesBackplanes []Backplane       `json:"drives_backplanes"`
}

// Backplane is one drive bay group, bay label to raw drive status.
type Backplane struct {
	Name string            `json:"name"`
	Bays map[string]string `json:"bays"`
}

func NewHealthReport() *HealthReport {
	return &HealthReport{
		HealthAtAGlance: make(map[string]string),
		Temperature:     make(map[string]string),
		Fans:            make(map[string]string),
		PowerSupplies:   make(map[string]string),
		VRM:             make(map[string]string),
	}
}
