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

import "fmt"

// /redfish/v1/Chassis/1/Power/

type PowerMetrics struct {
	ID            string        `json:"Id"`
	Name          string        `json:"Name"`
	PowerSupplies []PowerSupply `json:"PowerSupplies"`
	Voltages      []Voltage     `json:"Voltages,omitempty"`
}

type PowerSupply struct {
	MemberID     interface{} `json:"MemberId"`
	Name         string      `json:"Name"`
	Model        string      `json:"Model"`
	SerialNumber string      `json:"SerialNumber"`
	Status       Status      `json:"Status"`
}

// Label returns the report item name for a power supply. The controller does
// not always name supplies, so the fallback is the 1-based slot position the
// embedded health report uses.
func (p PowerSupply) Label(position int) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Power Supply %d", position+1)
}

type Voltage struct {
	Name   string `json:"Name"`
	Status Status `json:"Status"`
}
