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

// /redfish/v1/Systems/1/

// System carries the Oem aggregate health rollup and the SmartStorage links,
// which is all the probe needs from the systems endpoint.
type System struct {
	SerialNumber string `json:"SerialNumber"`
	Status       Status `json:"Status,omitempty"`
	Oem          OemSys `json:"Oem"`
}

type OemSys struct {
	Hpe HpeSys `json:"Hpe,omitempty"`
	Hp  HpeSys `json:"Hp,omitempty"`
}

type HpeSys struct {
	AggregateHealth AggregateHealth  `json:"AggregateHealthStatus"`
	Links           SystemLinksUpper `json:"Links"`
	LinksLower      SystemLinksLower `json:"links"`
}

type SystemLinksUpper struct {
	SmartStorage Link `json:"SmartStorage"`
}

type SystemLinksLower struct {
	SmartStorage HRef `json:"SmartStorage"`
}

// AggregateHealth is the Oem.Hp(e) per-subsystem health rollup. iLO
// generations differ in which fields they populate; absent fields decode to
// empty statuses and are skipped during report assembly.
type AggregateHealth struct {
	AgentlessService string           `json:"AgentlessManagementService,omitempty"`
	BiosHardware     StatusWrapper    `json:"BiosOrHardwareHealth"`
	Fans             StatusWrapper    `json:"Fans"`
	Memory           StatusWrapper    `json:"Memory"`
	Network          StatusWrapper    `json:"Network"`
	PowerSupplies    SummaryWithRedun `json:"PowerSupplies"`
	Processors       StatusWrapper    `json:"Processors"`
	StorageBattery   StatusWrapper    `json:"SmartStorageBattery"`
	Storage          StatusWrapper    `json:"Storage"`
	Temperatures     StatusWrapper    `json:"Temperatures"`
}

type StatusWrapper struct {
	Status Status `json:"Status"`
}

type SummaryWithRedun struct {
	Mismatch bool   `json:"PowerSuppliesMismatch,omitempty"`
	Status   Status `json:"Status"`
}

// Glance flattens the rollup into the health_at_a_glance section using the
// item names the embedded health report has always used.
func (a AggregateHealth) Glance() map[string]string {
	glance := make(map[string]string)
	add := func(name string, s Status) {
		if !s.Empty() {
			glance[name] = s.StatusString()
		}
	}

	add("bios_hardware", a.BiosHardware.Status)
	add("fans", a.Fans.Status)
	add("memory", a.Memory.Status)
	add("network", a.Network.Status)
	add("power_supplies", a.PowerSupplies.Status)
	add("processor", a.Processors.Status)
	add("battery", a.StorageBattery.Status)
	add("storage", a.Storage.Status)
	add("temperature", a.Temperatures.Status)

	return glance
}

// HpeOrHp returns whichever Oem branch the controller populated. Older iLOs
// nest under "Hp", newer under "Hpe".
func (o OemSys) HpeOrHp() HpeSys {
	if o.Hpe.Links.SmartStorage.URL != "" || o.Hpe.LinksLower.SmartStorage.URL != "" ||
		len(o.Hpe.AggregateHealth.Glance()) > 0 {
		return o.Hpe
	}
	return o.Hp
}
