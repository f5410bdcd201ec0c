// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/studytrack/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	data := fmt.Sprintf("Application │ studytrack\nVersion     │ %s\nDate        │ %s\nCommit      │ %s",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())
	return renderPage("ABOUT", data, "esc: back")
}
