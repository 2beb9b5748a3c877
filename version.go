// Copyright 2021 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
)

// versionString is the release version of the json5 tool.
const versionString = "1.0.0"

// versionInfo reports the version together with the platform details,
// for bug reports.
func versionInfo() string {
	return fmt.Sprintf("json5 %s (%s/%s, %s)",
		versionString, runtime.GOOS, runtime.GOARCH, runtime.Version())
}
