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

// Program json5 validates JSON5 documents and converts them to JSON.
//
// Usage: json5 [-o FILE] [-s N] [-v] [-V] [-i] [TARGET]
//
// TARGET is the JSON5 file to process.  With --validate the program
// prints a fixed success string and exits 0 when TARGET parses, or
// prints the decode error and exits 1.  Without it the document is
// re-encoded as strict JSON (double-quoted keys, no trailing commas)
// on standard output, or into --out-file.  --space sets the JSON
// indentation.  --version and --info print release information.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/juju/errors"
	"github.com/openconfig/gojson5/pkg/json5"
	"github.com/pborman/getopt"
)

const (
	errNoTarget   = "No target file specified."
	validJSON5    = "Valid JSON5"
	jsonConverted = "JSON5 converted to JSON"
	decodingError = "Error found when parsing JSON5 file"
)

var stop = os.Exit

func main() {
	var (
		outFile  string
		space    = -1
		validate bool
		version  bool
		info     bool
		help     bool
	)
	getopt.StringVarLong(&outFile, "out-file", 'o', "write the converted JSON to PATH", "PATH")
	getopt.IntVarLong(&space, "space", 's', "indentation level for the converted JSON", "N")
	getopt.BoolVarLong(&validate, "validate", 'v', "validate the target without converting")
	getopt.BoolVarLong(&version, "version", 'V', "show the version")
	getopt.BoolVarLong(&info, "info", 'i', "show version and platform information")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[TARGET]")
	getopt.Parse()

	switch {
	case help:
		getopt.PrintUsage(os.Stderr)
		stop(0)
	case info:
		fmt.Println(versionInfo())
		stop(0)
	case version:
		fmt.Println(versionString)
		stop(0)
	}

	args := getopt.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, errNoTarget)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}
	target := args[0]

	data, err := ioutil.ReadFile(target)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Annotatef(err, "reading %s", target))
		stop(1)
	}

	root, err := json5.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s:\n", decodingError, target)
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}

	if validate {
		fmt.Println(validJSON5)
		stop(0)
	}

	// Strict JSON output: double-quoted keys, no trailing commas.
	enc := json5.NewEncoder()
	enc.TrailingComma = json5.CommaNever
	if space >= 0 {
		enc.Indent = space
	}
	out, err := enc.Encode(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}

	if outFile != "" {
		if err := ioutil.WriteFile(outFile, []byte(out+"\n"), 0644); err != nil {
			fmt.Fprintln(os.Stderr, errors.Annotatef(err, "writing %s", outFile))
			stop(1)
		}
		fmt.Println("output to", outFile)
		return
	}
	fmt.Println(jsonConverted)
	fmt.Println(out)
}
