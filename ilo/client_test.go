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

package ilo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/comcast/checkilo/config"
	"github.com/stretchr/testify/assert"
)

const (
	systemResponse = `{
		"SerialNumber": "SN98765",
		"Oem": {
			"Hp": {
				"AggregateHealthStatus": {
					"BiosOrHardwareHealth": {"Status": {"Health": "OK"}},
					"Fans": {"Status": {"Health": "OK"}},
					"Memory": {"Status": {"Health": "OK"}},
					"PowerSupplies": {"Status": {"Health": "OK"}},
					"Processors": {"Status": {"Health": "OK"}},
					"Storage": {"Status": {"Health": "OK"}},
					"Temperatures": {"Status": {"Health": "OK"}}
				},
				"Links": {"SmartStorage": {"@odata.id": "/redfish/v1/Systems/1/SmartStorage/"}}
			}
		}
	}`

	thermalResponse = `{
		"Id": "Thermal",
		"Fans": [
			{"FanName": "Fan 1", "Status": {"Health": "OK", "State": "Enabled"}},
			{"FanName": "Fan 2", "Status": {"Health": "Warning", "State": "Enabled"}}
		],
		"Temperatures": [
			{"Name": "01-Inlet Ambient", "Status": {"Health": "OK", "State": "Enabled"}},
			{"Name": "02-CPU 1", "Status": {"State": "Absent"}}
		]
	}`

	powerResponse = `{
		"Id": "Power",
		"PowerSupplies": [
			{"Name": "", "Status": {"Health": "OK", "State": "Enabled"}},
			{"Name": "", "Status": {"State": "Absent"}}
		],
		"Voltages": [
			{"Name": "VRM 1", "Status": {"Health": "OK", "State": "Enabled"}},
			{"Name": "PS 1 Input", "Status": {"Health": "OK", "State": "Enabled"}}
		]
	}`

	smartStorageResponse = `{
		"Id": "1",
		"Links": {"ArrayControllers": {"@odata.id": "/redfish/v1/Systems/1/SmartStorage/ArrayControllers/"}}
	}`

	controllersResponse = `{
		"Members": [{"@odata.id": "/redfish/v1/Systems/1/SmartStorage/ArrayControllers/0/"}],
		"Members@odata.count": 1
	}`

	controllerResponse = `{
		"Id": "0",
		"Location": "Slot 0",
		"Status": {"Health": "OK"},
		"Links": {"PhysicalDrives": {"@odata.id": "/redfish/v1/Systems/1/SmartStorage/ArrayControllers/0/DiskDrives/"}}
	}`

	diskDrivesResponse = `{
		"Members": [
			{"@odata.id": "/redfish/v1/Systems/1/SmartStorage/ArrayControllers/0/DiskDrives/0/"},
			{"@odata.id": "/redfish/v1/Systems/1/SmartStorage/ArrayControllers/0/DiskDrives/1/"}
		],
		"Members@odata.count": 2
	}`

	drive0Response = `{"Id": "0", "Location": "1I:1:1", "Status": {"Health": "OK", "State": "Enabled"}}`
	drive1Response = `{"Id": "1", "Location": "1I:1:2", "Status": {"Health": "Critical", "State": "Enabled"}}`
)

func testConfig() {
	config.NewConfig(&config.Config{
		IloScheme:  "http",
		IloTimeout: 10 * time.Second,
		SSLVerify:  true,
		User:       "testuser",
		Pass:       "testpass",
	})
}

func healthyMux(t *testing.T) *http.ServeMux {
	pages := map[string]string{
		"/redfish/v1/Systems/1/":                                              systemResponse,
		"/redfish/v1/Chassis/1/Thermal/":                                      thermalResponse,
		"/redfish/v1/Chassis/1/Power/":                                        powerResponse,
		"/redfish/v1/Systems/1/SmartStorage/":                                 smartStorageResponse,
		"/redfish/v1/Systems/1/SmartStorage/ArrayControllers/":                controllersResponse,
		"/redfish/v1/Systems/1/SmartStorage/ArrayControllers/0/":              controllerResponse,
		"/redfish/v1/Systems/1/SmartStorage/ArrayControllers/0/DiskDrives/":   diskDrivesResponse,
		"/redfish/v1/Systems/1/SmartStorage/ArrayControllers/0/DiskDrives/0/": drive0Response,
		"/redfish/v1/Systems/1/SmartStorage/ArrayControllers/0/DiskDrives/1/": drive1Response,
	}

	mux := http.NewServeMux()
	for path, body := range pages {
		payload := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != "testuser" || pass != "testpass" {
				t.Errorf("request to %s missing expected basic auth", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(payload))
		})
	}
	return mux
}

func Test_EmbeddedHealth(t *testing.T) {
	assert := assert.New(t)
	testConfig()

	server := httptest.NewServer(healthyMux(t))
	defer server.Close()

	client := NewClient(server.URL)
	report, err := client.EmbeddedHealth(context.Background())
	assert.NoError(err)

	assert.Equal("OK", report.HealthAtAGlance["fans"])
	assert.Equal("OK", report.HealthAtAGlance["storage"])

	assert.Equal("OK", report.Fans["Fan 1"])
	assert.Equal("Caution", report.Fans["Fan 2"])

	assert.Equal("OK", report.Temperature["01-Inlet Ambient"])
	assert.Equal("Not Installed", report.Temperature["02-CPU 1"])

	assert.Equal("OK", report.PowerSupplies["Power Supply 1"])
	assert.Equal("Not Installed", report.PowerSupplies["Power Supply 2"])

	// only VRM voltage domains land in the vrm section
	assert.Equal("OK", report.VRM["VRM 1"])
	_, ok := report.VRM["PS 1 Input"]
	assert.False(ok)

	if assert.Len(report.DrivesBackplanes, 1) {
		backplane := report.DrivesBackplanes[0]
		assert.Equal("Slot 0", backplane.Name)
		assert.Equal("OK", backplane.Bays["1I:1:1"])
		assert.Equal("Critical", backplane.Bays["1I:1:2"])
	}
}

func Test_EmbeddedHealth_NoSmartStorage(t *testing.T) {
	assert := assert.New(t)
	testConfig()

	mux := http.NewServeMux()
	mux.HandleFunc("/redfish/v1/Systems/1/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"SerialNumber": "SN98765", "Oem": {"Hp": {}}}`))
	})
	mux.HandleFunc("/redfish/v1/Chassis/1/Thermal/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Fans": [], "Temperatures": []}`))
	})
	mux.HandleFunc("/redfish/v1/Chassis/1/Power/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"PowerSupplies": []}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)
	report, err := client.EmbeddedHealth(context.Background())
	assert.NoError(err)
	assert.Empty(report.DrivesBackplanes)
	assert.Empty(report.Fans)
}

func Test_EmbeddedHealth_ServerError(t *testing.T) {
	assert := assert.New(t)
	testConfig()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.EmbeddedHealth(context.Background())
	assert.Error(err)
}

func Test_EmbeddedHealth_BadCredential(t *testing.T) {
	assert := assert.New(t)
	testConfig()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.EmbeddedHealth(context.Background())
	assert.ErrorIs(err, ErrInvalidCredential)
}

func Test_EmbeddedHealth_Unreachable(t *testing.T) {
	assert := assert.New(t)
	testConfig()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.EmbeddedHealth(context.Background())
	assert.Error(err)
}
