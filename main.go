/*
dot-dev - Development Environment Profiles
Copyright (c) 2024 The dot-dev Authors. All rights reserved.

Licensed under the Business Source License 1.1.
See LICENSE file for full terms.
*/

package main

import (
	"github.com/cmdln/dot-dev/cmd"
	"github.com/cmdln/dot-dev/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	config.InitConfig()
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
