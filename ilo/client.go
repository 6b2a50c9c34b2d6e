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

// Package ilo fetches the embedded health report from an HP iLO controller.
// The wire protocol is plain Redfish over HTTPS with basic auth; the probe
// never manages sessions with the controller.
package ilo

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/comcast/checkilo/config"
	"github.com/comcast/checkilo/oem"
	"go.uber.org/zap"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	systemURL  = "/redfish/v1/Systems/1/"
	thermalURL = "/redfish/v1/Chassis/1/Thermal/"
	powerURL   = "/redfish/v1/Chassis/1/Power/"
)

var (
	ErrInvalidCredential = errors.New("invalid credential")

	log *zap.Logger
)

// Fetcher is the boundary the evaluator and main are written against, so the
// probe pipeline is testable without a BMC on the bench.
type Fetcher interface {
	EmbeddedHealth(ctx context.Context) (*oem.HealthReport, error)
}

// Client collects the embedded health report from a single iLO.
type Client struct {
	fqdn   *url.URL
	client *retryablehttp.Client
}

// NewClient builds a client for the given iLO address. Credentials, scheme,
// TLS behavior and the overall timeout come from the process config.
func NewClient(target string) *Client {
	log = zap.L()

	tr := &http.Transport{
		Dial: (&net.Dialer{
			Timeout: 3 * time.Second,
		}).Dial,
		MaxIdleConns:          1,
		MaxConnsPerHost:       1,
		MaxIdleConnsPerHost:   1,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.GetConfig().SSLVerify,
			Renegotiation:      tls.RenegotiateOnceAsClient,
		},
		TLSHandshakeTimeout: 10 * time.Second,
	}

	retryClient := retryablehttp.NewClient()
	retryClient.CheckRetry = retryablehttp.ErrorPropagatedRetryPolicy
	retryClient.HTTPClient.Transport = tr
	retryClient.HTTPClient.Timeout = config.GetConfig().IloTimeout
	retryClient.Logger = nil
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 1 * time.Second
	retryClient.RetryMax = 1

	// Check that the target passed in has http:// or https:// prefixed
	fqdn, err := url.ParseRequestURI(target)
	if err != nil || fqdn.Host == "" {
		fqdn = &url.URL{
			Scheme: config.GetConfig().IloScheme,
			Host:   target,
		}
	}

	return &Client{
		fqdn:   fqdn,
		client: retryClient,
	}
}

// EmbeddedHealth walks the controller's health endpoints sequentially and
// assembles the embedded health report. Any failure on the required
// endpoints fails the whole fetch; hardware that lacks a SmartStorage
// controller or voltage sensors simply yields empty sections.
func (c *Client) EmbeddedHealth(ctx context.Context) (*oem.HealthReport, error) {
	report := oem.NewHealthReport()

	var system oem.System
	if err := c.get(ctx, systemURL, &system); err != nil {
		return nil, fmt.Errorf("systems endpoint - %w", err)
	}
	hpe := system.Oem.HpeOrHp()
	report.HealthAtAGlance = hpe.AggregateHealth.Glance()

	var thermal oem.ThermalMetrics
	if err := c.get(ctx, thermalURL, &thermal); err != nil {
		return nil, fmt.Errorf("thermal endpoint - %w", err)
	}
	for _, fan := range thermal.Fans {
		report.Fans[fan.Label()] = fan.Status.StatusString()
	}
	for _, sensor := range thermal.Temperatures {
		report.Temperature[sensor.Name] = sensor.Status.StatusString()
	}

	var power oem.PowerMetrics
	if err := c.get(ctx, powerURL, &power); err != nil {
		return nil, fmt.Errorf("power endpoint - %w", err)
	}
	for i, supply := range power.PowerSupplies {
		report.PowerSupplies[supply.Label(i)] = supply.Status.StatusString()
	}
	for _, voltage := range power.Voltages {
		if isVRM(voltage.Name) {
			report.VRM[voltage.Name] = voltage.Status.StatusString()
		}
	}

	backplanes, err := c.drives(ctx, hpe)
	if err != nil {
		return nil, fmt.Errorf("smart storage endpoints - %w", err)
	}
	report.DrivesBackplanes = backplanes

	return report, nil
}

// drives chases the SmartStorage links down to the physical drives, one bay
// group per array controller. A system with no SmartStorage link reports no
// backplanes.
func (c *Client) drives(ctx context.Context, hpe oem.HpeSys) ([]oem.Backplane, error) {
	storageURL := hpe.Links.SmartStorage.URL
	if storageURL == "" {
		storageURL = hpe.LinksLower.SmartStorage.URL
	}
	if storageURL == "" {
		log.Debug("no smart storage link advertised, skipping drive bays")
		return nil, nil
	}

	var storage oem.SmartStorage
	if err := c.get(ctx, storageURL, &storage); err != nil {
		return nil, err
	}

	controllersURL := storage.Links.ArrayControllers.URL
	if controllersURL == "" {
		controllersURL = storage.LinksLower.ArrayControllers.URL
	}
	if controllersURL == "" {
		return nil, nil
	}

	var controllers oem.Collection
	if err := c.get(ctx, controllersURL, &controllers); err != nil {
		return nil, err
	}

	var backplanes []oem.Backplane
	for _, member := range controllers.Members {
		var controller oem.ArrayController
		if err := c.get(ctx, member.URL, &controller); err != nil {
			return nil, err
		}

		drivesURL := controller.DrivesURL()
		if drivesURL == "" {
			continue
		}

		var driveLinks oem.Collection
		if err := c.get(ctx, drivesURL, &driveLinks); err != nil {
			return nil, err
		}

		bays := make(map[string]string)
		for _, link := range driveLinks.Members {
			var drive oem.DiskDrive
			if err := c.get(ctx, link.URL, &drive); err != nil {
				return nil, err
			}
			bays[drive.Label()] = drive.Status.StatusString()
		}

		backplanes = append(backplanes, oem.Backplane{
			Name: controllerLabel(controller),
			Bays: bays,
		})
	}

	return backplanes, nil
}

func controllerLabel(controller oem.ArrayController) string {
	if controller.Location != "" {
		return controller.Location
	}
	return "Controller " + controller.ID
}

// get issues one authenticated GET and decodes the JSON payload into out.
func (c *Client) get(ctx context.Context, uri string, out interface{}) error {
	req, err := c.buildRequest(ctx, uri)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer emptyAndCloseBody(resp)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidCredential
	}
	if !(resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices) {
		return fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading Response Body - %v", err)
	}

	return json.Unmarshal(body, out)
}

func (c *Client) buildRequest(ctx context.Context, uri string) (*retryablehttp.Request, error) {
	if u, err := url.Parse(uri); err != nil || !u.IsAbs() {
		uri = c.fqdn.String() + uri
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil || req == nil {
		return nil, fmt.Errorf("failed to build retryable request - %v", err)
	}
	req.SetBasicAuth(config.GetConfig().User, config.GetConfig().Pass)
	req.Header.Add("Accept", "application/json")

	return req, nil
}

// Required to have a proper cleanup of the response body to have correctly
// working keep-alive connections
func emptyAndCloseBody(resp *http.Response) {
	if resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

func isVRM(name string) bool {
	return strings.Contains(strings.ToUpper(name), "VRM")
}
