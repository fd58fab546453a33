/*
 * PanGraph
 *
 * Copyright 2026 The PanGraph Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package pgconfig holds the JSON-backed configuration for the standalone
pangraph server and CLI, grounded on the teacher's own config package:
a flat map of string keys to defaults, loaded (and written back with any
missing keys filled in) via fileutil.LoadConfig.
*/
package pgconfig

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/common/fileutil"
)

/*
DefaultConfigFile is the default config file used when none is given on
the command line.
*/
var DefaultConfigFile = "pangraph.config.json"

/*
Known configuration options for pangraph.
*/
const (
	ListenAddress  = "ListenAddress"
	EnableLiveFeed = "EnableLiveFeed"
	EnableECAL     = "EnableECAL"
	ECALScriptDir  = "ECALScriptDir"
	SnapshotFile   = "SnapshotFile"
	ReplayBuffer   = "ReplayBuffer"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	ListenAddress:  "localhost:9090",
	EnableLiveFeed: true,
	EnableECAL:     false,
	ECALScriptDir:  "scripts",
	SnapshotFile:   "pangraph.snapshot",
	ReplayBuffer:   100.0,
}

/*
Config is the actual configuration in use.
*/
var Config map[string]interface{}

/*
LoadConfigFile loads a given config file. If the file does not exist it
is created with the default options.
*/
func LoadConfigFile(configfile string) error {
	var err error

	Config, err = fileutil.LoadConfig(configfile, DefaultConfig)

	return err
}

/*
LoadDefaultConfig loads the default configuration without touching disk.
*/
func LoadDefaultConfig() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int64 {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
