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

// /redfish/v1/Systems/1/SmartStorage/

type SmartStorage struct {
	ID         string             `json:"Id"`
	Name       string             `json:"Name"`
	Links      StorageLinksUpper `json:"Links"`
	LinksLower StorageLinksLower `json:"links"`
}

type StorageLinksUpper struct {
	ArrayControllers Link `json:"ArrayControllers"`
}

type StorageLinksLower struct {
	ArrayControllers HRef `json:"ArrayControllers"`
}

// /redfish/v1/Systems/1/SmartStorage/ArrayControllers/X/

type ArrayController struct {
	ID         string               `json:"Id"`
	Location   string               `json:"Location"`
	Model      string               `json:"Model"`
	Status     Status               `json:"Status"`
	Links      ControllerLinksUpper `json:"Links"`
	LinksLower ControllerLinksLower `json:"links"`
}

type ControllerLinksUpper struct {
	PhysicalDrives Link `json:"PhysicalDrives"`
	LogicalDrives  Link `json:"LogicalDrives"`
}

type ControllerLinksLower struct {
	PhysicalDrives HRef `json:"PhysicalDrives"`
	LogicalDrives  HRef `json:"LogicalDrives"`
}

// DrivesURL returns the physical drive collection link regardless of the
// upper/lower link casing the firmware emits.
func (a ArrayController) DrivesURL() string {
	if a.Links.PhysicalDrives.URL != "" {
		return a.Links.PhysicalDrives.URL
	}
	return a.LinksLower.PhysicalDrives.URL
}

// /redfish/v1/Systems/1/SmartStorage/ArrayControllers/X/DiskDrives/X/

type DiskDrive struct {
	ID            string `json:"Id"`
	Name          string `json:"Name"`
	Model         string `json:"Model"`
	Location      string `json:"Location"`
	SerialNumber  string `json:"SerialNumber"`
	InterfaceType string `json:"InterfaceType"`
	Status        Status `json:"Status"`
}

// Label returns the bay label for a drive, preferring the port:box:bay
// location string the embedded health report keys drive bays with.
func (d DiskDrive) Label() string {
	if d.Location != "" {
		return d.Location
	}
	return d.ID
}
